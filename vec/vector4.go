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
	"cmp"
	"fmt"
)

// Vec4 is an immutable 4D vector of scalar type T.
// The zero value is the zero vector. Vec4 values compare with ==.
//
// Vec4 doubles as the homogeneous-coordinate carrier for the 2D/3D
// matrix transforms: lower-dimension vectors lift into a Vec4, multiply
// through the Mat4 rows, and project back.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// V4 constructs a Vec4 from four components.
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 constructs a Vec4 with all components set to s.
func Splat4[T Scalar](s T) Vec4[T] {
	return Vec4[T]{X: s, Y: s, Z: s, W: s}
}

// One4 returns the vector (1, 1, 1, 1).
func One4[T Scalar]() Vec4[T] {
	return Vec4[T]{X: 1, Y: 1, Z: 1, W: 1}
}

// UnitX4 returns the vector (1, 0, 0, 0).
func UnitX4[T Scalar]() Vec4[T] {
	return Vec4[T]{X: 1}
}

// UnitY4 returns the vector (0, 1, 0, 0).
func UnitY4[T Scalar]() Vec4[T] {
	return Vec4[T]{Y: 1}
}

// UnitZ4 returns the vector (0, 0, 1, 0).
func UnitZ4[T Scalar]() Vec4[T] {
	return Vec4[T]{Z: 1}
}

// UnitW4 returns the vector (0, 0, 0, 1).
func UnitW4[T Scalar]() Vec4[T] {
	return Vec4[T]{W: 1}
}

// V4FromSlice constructs a Vec4 from the first four elements of s.
// It returns ErrShortSlice if len(s) < 4.
func V4FromSlice[T Scalar](s []T) (Vec4[T], error) {
	if len(s) < 4 {
		return Vec4[T]{}, fmt.Errorf("vec: need 4 elements, have %d: %w", len(s), ErrShortSlice)
	}
	return Vec4[T]{X: s[0], Y: s[1], Z: s[2], W: s[3]}, nil
}

// Add returns the componentwise sum v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the componentwise difference v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the componentwise product v * w.
func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z, W: v.W * w.W}
}

// Div returns the componentwise quotient v / w.
// Division by a zero component follows the scalar type: Inf/NaN for
// floats, a runtime panic for integers.
func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z, W: v.W / w.W}
}

// Neg returns the componentwise negation -v.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// MulScalar returns v scaled by s.
func (v Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// DivScalar returns v divided by s.
func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Dot returns the dot product of v and w.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// LengthSquared returns Dot(v, v).
func (v Vec4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// DistanceSquared returns the squared distance between v and w.
func (v Vec4[T]) DistanceSquared(w Vec4[T]) T {
	return v.Sub(w).LengthSquared()
}

// Abs returns the componentwise absolute value.
func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{X: absScalar(v.X), Y: absScalar(v.Y), Z: absScalar(v.Z), W: absScalar(v.W)}
}

// Min returns the componentwise minimum of v and w.
// A component of w wins ties: the result is v.X if v.X < w.X, else w.X.
func (v Vec4[T]) Min(w Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: minScalar(v.X, w.X),
		Y: minScalar(v.Y, w.Y),
		Z: minScalar(v.Z, w.Z),
		W: minScalar(v.W, w.W),
	}
}

// Max returns the componentwise maximum of v and w.
// A component of w wins ties: the result is v.X if v.X > w.X, else w.X.
func (v Vec4[T]) Max(w Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: maxScalar(v.X, w.X),
		Y: maxScalar(v.Y, w.Y),
		Z: maxScalar(v.Z, w.Z),
		W: maxScalar(v.W, w.W),
	}
}

// Clamp restricts each component to [lo, hi], evaluated as
// Min(Max(v, lo), hi). When lo > hi the max-then-min order decides the
// result, matching shader clamp semantics; no error is raised.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return v.Max(lo).Min(hi)
}

// Reflect returns v reflected about the normal n: v - 2*dot(v,n)*n.
// n must be unit length for a true mirror reflection.
func (v Vec4[T]) Reflect(n Vec4[T]) Vec4[T] {
	d := v.Dot(n)
	return v.Sub(n.MulScalar(d + d))
}

// At returns the i'th component. It panics if i is not in [0, 4).
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("vec: index %d out of range [0, 4)", i))
}

// Array returns the components as a fixed-size array in declaration order.
func (v Vec4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// XY drops the Z and W components.
func (v Vec4[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// XYZ drops the W component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Compare orders vectors lexicographically by X, then Y, then Z, then W.
// It returns -1 if v sorts before w, 0 if equal, +1 otherwise.
func (v Vec4[T]) Compare(w Vec4[T]) int {
	if c := cmp.Compare(v.X, w.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, w.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Z, w.Z); c != 0 {
		return c
	}
	return cmp.Compare(v.W, w.W)
}

// Less reports whether v sorts before w under Compare.
func (v Vec4[T]) Less(w Vec4[T]) bool {
	return v.Compare(w) < 0
}

// String formats v as "<X, Y, Z, W>".
func (v Vec4[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", v.X, v.Y, v.Z, v.W)
}
