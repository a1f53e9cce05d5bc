// Copyright 2025 go-vecmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec

import (
	"fmt"
	"math"
)

// Cross-scalar conversions between vectors of different component types,
// in the three standard narrowing policies:
//
//   - truncating: Go's native conversion, applied per component. Silent.
//   - saturating: out-of-range components clamp to the target's range,
//     NaN clamps to zero.
//   - checked: out-of-range components (and NaN into integer targets)
//     report ErrOverflow. Fractional values still truncate silently;
//     checked guards magnitude, not precision.
//
// The scalar kernels dispatch on the concrete types with an any-type
// switch; components of defined types (~int32 and friends) take the
// native-conversion fallback.

// ConvertVec2 converts per component with Go's native (truncating)
// conversion semantics.
func ConvertVec2[U, T Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

// ConvertVec3 converts per component with Go's native (truncating)
// conversion semantics.
func ConvertVec3[U, T Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}

// ConvertVec4 converts per component with Go's native (truncating)
// conversion semantics.
func ConvertVec4[U, T Scalar](v Vec4[T]) Vec4[U] {
	return Vec4[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z), W: U(v.W)}
}

// ConvertQuat converts per component between floating scalar types.
func ConvertQuat[U, T Floats](q Quat[T]) Quat[U] {
	return Quat[U]{X: U(q.X), Y: U(q.Y), Z: U(q.Z), W: U(q.W)}
}

// ConvertQuatSaturating converts per component between floating scalar
// types. Float targets follow IEEE rounding, so for quaternions this
// matches ConvertQuat; it exists so all three conversion policies cover
// every value type.
func ConvertQuatSaturating[U, T Floats](q Quat[T]) Quat[U] {
	return Quat[U]{
		X: satConvert[U](q.X),
		Y: satConvert[U](q.Y),
		Z: satConvert[U](q.Z),
		W: satConvert[U](q.W),
	}
}

// ConvertQuatChecked converts per component, reporting ErrOverflow for
// any component not representable in U. The failing case is magnitude
// overflow narrowing float64 to float32; NaN is representable and passes
// through. No partial result is returned.
func ConvertQuatChecked[U, T Floats](q Quat[T]) (Quat[U], error) {
	x, err := checkedComponent[U](q.X, 0)
	if err != nil {
		return Quat[U]{}, err
	}
	y, err := checkedComponent[U](q.Y, 1)
	if err != nil {
		return Quat[U]{}, err
	}
	z, err := checkedComponent[U](q.Z, 2)
	if err != nil {
		return Quat[U]{}, err
	}
	w, err := checkedComponent[U](q.W, 3)
	if err != nil {
		return Quat[U]{}, err
	}
	return Quat[U]{X: x, Y: y, Z: z, W: w}, nil
}

// ConvertVec2Saturating converts per component, clamping out-of-range
// values to the target type's range.
func ConvertVec2Saturating[U, T Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: satConvert[U](v.X), Y: satConvert[U](v.Y)}
}

// ConvertVec3Saturating converts per component, clamping out-of-range
// values to the target type's range.
func ConvertVec3Saturating[U, T Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{X: satConvert[U](v.X), Y: satConvert[U](v.Y), Z: satConvert[U](v.Z)}
}

// ConvertVec4Saturating converts per component, clamping out-of-range
// values to the target type's range.
func ConvertVec4Saturating[U, T Scalar](v Vec4[T]) Vec4[U] {
	return Vec4[U]{X: satConvert[U](v.X), Y: satConvert[U](v.Y), Z: satConvert[U](v.Z), W: satConvert[U](v.W)}
}

// ConvertVec2Checked converts per component, reporting ErrOverflow for
// any component not representable in U. No partial result is returned.
func ConvertVec2Checked[U, T Scalar](v Vec2[T]) (Vec2[U], error) {
	x, err := checkedComponent[U](v.X, 0)
	if err != nil {
		return Vec2[U]{}, err
	}
	y, err := checkedComponent[U](v.Y, 1)
	if err != nil {
		return Vec2[U]{}, err
	}
	return Vec2[U]{X: x, Y: y}, nil
}

// ConvertVec3Checked converts per component, reporting ErrOverflow for
// any component not representable in U. No partial result is returned.
func ConvertVec3Checked[U, T Scalar](v Vec3[T]) (Vec3[U], error) {
	x, err := checkedComponent[U](v.X, 0)
	if err != nil {
		return Vec3[U]{}, err
	}
	y, err := checkedComponent[U](v.Y, 1)
	if err != nil {
		return Vec3[U]{}, err
	}
	z, err := checkedComponent[U](v.Z, 2)
	if err != nil {
		return Vec3[U]{}, err
	}
	return Vec3[U]{X: x, Y: y, Z: z}, nil
}

// ConvertVec4Checked converts per component, reporting ErrOverflow for
// any component not representable in U. No partial result is returned.
func ConvertVec4Checked[U, T Scalar](v Vec4[T]) (Vec4[U], error) {
	x, err := checkedComponent[U](v.X, 0)
	if err != nil {
		return Vec4[U]{}, err
	}
	y, err := checkedComponent[U](v.Y, 1)
	if err != nil {
		return Vec4[U]{}, err
	}
	z, err := checkedComponent[U](v.Z, 2)
	if err != nil {
		return Vec4[U]{}, err
	}
	w, err := checkedComponent[U](v.W, 3)
	if err != nil {
		return Vec4[U]{}, err
	}
	return Vec4[U]{X: x, Y: y, Z: z, W: w}, nil
}

func checkedComponent[U, T Scalar](v T, i int) (U, error) {
	u, ok := checkedConvert[U](v)
	if !ok {
		return u, fmt.Errorf("vec: component %d (%v): %w", i, v, ErrOverflow)
	}
	return u, nil
}

// satConvert clamps v into U's range. Floating sources are judged in
// float64, integer sources in 64-bit integer arithmetic, so the
// comparisons stay exact where the domain allows it.
func satConvert[U, T Scalar](v T) U {
	switch s := any(v).(type) {
	case float32:
		return satFromFloat[U](float64(s))
	case float64:
		return satFromFloat[U](s)
	case int8:
		return satFromInt[U](int64(s))
	case int16:
		return satFromInt[U](int64(s))
	case int32:
		return satFromInt[U](int64(s))
	case int64:
		return satFromInt[U](s)
	case uint8:
		return satFromUint[U](uint64(s))
	case uint16:
		return satFromUint[U](uint64(s))
	case uint32:
		return satFromUint[U](uint64(s))
	case uint64:
		return satFromUint[U](s)
	default:
		// Defined types: native conversion.
		return U(v)
	}
}

func satFromFloat[U Scalar](f float64) U {
	var z U
	switch any(z).(type) {
	case float32, float64:
		// Float targets follow IEEE rounding, overflow to Inf.
		return U(f)
	}
	if math.IsNaN(f) {
		return 0
	}
	lo, hi := intTargetRange[U]()
	if f < lo {
		return intTargetMin[U]()
	}
	if f >= hi {
		return intTargetMax[U]()
	}
	return U(f)
}

func satFromInt[U Scalar](i int64) U {
	var z U
	switch any(z).(type) {
	case float32, float64:
		return U(i)
	case int64:
		return U(i)
	case uint64:
		if i < 0 {
			return 0
		}
		return U(i)
	}
	lo, hi := intTargetRange[U]()
	if float64(i) < lo {
		return intTargetMin[U]()
	}
	if float64(i) >= hi {
		return intTargetMax[U]()
	}
	return U(i)
}

func satFromUint[U Scalar](u uint64) U {
	var z U
	switch any(z).(type) {
	case float32, float64:
		return U(u)
	case uint64:
		return U(u)
	case int64:
		if u > math.MaxInt64 {
			return intTargetMax[U]()
		}
		return U(u)
	}
	_, hi := intTargetRange[U]()
	if float64(u) >= hi {
		return intTargetMax[U]()
	}
	return U(u)
}

// checkedConvert reports whether v is representable in U, converting if
// so. Fractional float values truncate toward zero without complaint.
func checkedConvert[U, T Scalar](v T) (U, bool) {
	switch s := any(v).(type) {
	case float32:
		return checkedFromFloat[U](float64(s))
	case float64:
		return checkedFromFloat[U](s)
	case int8:
		return checkedFromInt[U](int64(s))
	case int16:
		return checkedFromInt[U](int64(s))
	case int32:
		return checkedFromInt[U](int64(s))
	case int64:
		return checkedFromInt[U](s)
	case uint8:
		return checkedFromUint[U](uint64(s))
	case uint16:
		return checkedFromUint[U](uint64(s))
	case uint32:
		return checkedFromUint[U](uint64(s))
	case uint64:
		return checkedFromUint[U](s)
	default:
		return U(v), true
	}
}

func checkedFromFloat[U Scalar](f float64) (U, bool) {
	var z U
	switch any(z).(type) {
	case float64:
		return U(f), true
	case float32:
		// Magnitude overflow into float32 is an error; NaN passes
		// through (it is representable).
		if !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return z, false
		}
		return U(f), true
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return z, false
	}
	lo, hi := intTargetRange[U]()
	if f < lo || f >= hi {
		return z, false
	}
	return U(f), true
}

func checkedFromInt[U Scalar](i int64) (U, bool) {
	var z U
	switch any(z).(type) {
	case float32, float64:
		return U(i), true
	case int64:
		return U(i), true
	case uint64:
		if i < 0 {
			return z, false
		}
		return U(i), true
	}
	lo, hi := intTargetRange[U]()
	if float64(i) < lo || float64(i) >= hi {
		return z, false
	}
	return U(i), true
}

func checkedFromUint[U Scalar](u uint64) (U, bool) {
	var z U
	switch any(z).(type) {
	case float32, float64:
		return U(u), true
	case uint64:
		return U(u), true
	case int64:
		if u > math.MaxInt64 {
			return z, false
		}
		return U(u), true
	}
	_, hi := intTargetRange[U]()
	if float64(u) >= hi {
		return z, false
	}
	return U(u), true
}

// intTargetRange returns [lo, hi) float64 bounds for integer targets
// narrower than 64 bits, where both bounds are exact in float64. The
// 64-bit targets are handled separately above (their extremes round in
// float64), so the default case here only serves defined types.
func intTargetRange[U Scalar]() (lo, hi float64) {
	var z U
	switch any(z).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8 + 1
	case int16:
		return math.MinInt16, math.MaxInt16 + 1
	case int32:
		return math.MinInt32, math.MaxInt32 + 1
	case int64:
		return math.MinInt64, math.MaxInt64 // hi rounds to 2^63: values at or past it overflow
	case uint8:
		return 0, math.MaxUint8 + 1
	case uint16:
		return 0, math.MaxUint16 + 1
	case uint32:
		return 0, math.MaxUint32 + 1
	case uint64:
		return 0, math.MaxUint64 // hi rounds to 2^64
	}
	return math.Inf(-1), math.Inf(1)
}

func intTargetMin[U Scalar]() U {
	var z U
	switch any(z).(type) {
	case int8:
		v := int8(math.MinInt8)
		return U(v)
	case int16:
		v := int16(math.MinInt16)
		return U(v)
	case int32:
		v := int32(math.MinInt32)
		return U(v)
	case int64:
		v := int64(math.MinInt64)
		return U(v)
	}
	return z // unsigned minimum
}

func intTargetMax[U Scalar]() U {
	var z U
	switch any(z).(type) {
	case int8:
		v := int8(math.MaxInt8)
		return U(v)
	case int16:
		v := int16(math.MaxInt16)
		return U(v)
	case int32:
		v := int32(math.MaxInt32)
		return U(v)
	case int64:
		v := int64(math.MaxInt64)
		return U(v)
	case uint8:
		v := uint8(math.MaxUint8)
		return U(v)
	case uint16:
		v := uint16(math.MaxUint16)
		return U(v)
	case uint32:
		v := uint32(math.MaxUint32)
		return U(v)
	case uint64:
		v := uint64(math.MaxUint64)
		return U(v)
	}
	return z
}
