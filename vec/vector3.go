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

// Vec3 is an immutable 3D vector of scalar type T.
// The zero value is the zero vector. Vec3 values compare with ==.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 constructs a Vec3 from three components.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 constructs a Vec3 with all components set to s.
func Splat3[T Scalar](s T) Vec3[T] {
	return Vec3[T]{X: s, Y: s, Z: s}
}

// One3 returns the vector (1, 1, 1).
func One3[T Scalar]() Vec3[T] {
	return Vec3[T]{X: 1, Y: 1, Z: 1}
}

// UnitX3 returns the vector (1, 0, 0).
func UnitX3[T Scalar]() Vec3[T] {
	return Vec3[T]{X: 1}
}

// UnitY3 returns the vector (0, 1, 0).
func UnitY3[T Scalar]() Vec3[T] {
	return Vec3[T]{Y: 1}
}

// UnitZ3 returns the vector (0, 0, 1).
func UnitZ3[T Scalar]() Vec3[T] {
	return Vec3[T]{Z: 1}
}

// V3FromSlice constructs a Vec3 from the first three elements of s.
// It returns ErrShortSlice if len(s) < 3.
func V3FromSlice[T Scalar](s []T) (Vec3[T], error) {
	if len(s) < 3 {
		return Vec3[T]{}, fmt.Errorf("vec: need 3 elements, have %d: %w", len(s), ErrShortSlice)
	}
	return Vec3[T]{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Add returns the componentwise sum v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the componentwise difference v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the componentwise product v * w.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Div returns the componentwise quotient v / w.
// Division by a zero component follows the scalar type: Inf/NaN for
// floats, a runtime panic for integers.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

// Neg returns the componentwise negation -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// MulScalar returns v scaled by s.
func (v Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivScalar returns v divided by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v x w.
// For narrow scalar types, CrossIn computes the intermediate products in
// a wider type to reduce overflow and precision loss.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns Dot(v, v).
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// DistanceSquared returns the squared distance between v and w.
func (v Vec3[T]) DistanceSquared(w Vec3[T]) T {
	return v.Sub(w).LengthSquared()
}

// Abs returns the componentwise absolute value.
func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{X: absScalar(v.X), Y: absScalar(v.Y), Z: absScalar(v.Z)}
}

// Min returns the componentwise minimum of v and w.
// A component of w wins ties: the result is v.X if v.X < w.X, else w.X.
func (v Vec3[T]) Min(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: minScalar(v.X, w.X),
		Y: minScalar(v.Y, w.Y),
		Z: minScalar(v.Z, w.Z),
	}
}

// Max returns the componentwise maximum of v and w.
// A component of w wins ties: the result is v.X if v.X > w.X, else w.X.
func (v Vec3[T]) Max(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: maxScalar(v.X, w.X),
		Y: maxScalar(v.Y, w.Y),
		Z: maxScalar(v.Z, w.Z),
	}
}

// Clamp restricts each component to [lo, hi], evaluated as
// Min(Max(v, lo), hi). When lo > hi the max-then-min order decides the
// result, matching shader clamp semantics; no error is raised.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return v.Max(lo).Min(hi)
}

// Reflect returns v reflected about the normal n: v - 2*dot(v,n)*n.
// n must be unit length for a true mirror reflection.
func (v Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	d := v.Dot(n)
	return v.Sub(n.MulScalar(d + d))
}

// At returns the i'th component. It panics if i is not in [0, 3).
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vec: index %d out of range [0, 3)", i))
}

// Array returns the components as a fixed-size array in declaration order.
func (v Vec3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// XY drops the Z component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Extend returns the Vec4 (v.X, v.Y, v.Z, w).
func (v Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Compare orders vectors lexicographically by X, then Y, then Z.
// It returns -1 if v sorts before w, 0 if equal, +1 otherwise.
func (v Vec3[T]) Compare(w Vec3[T]) int {
	if c := cmp.Compare(v.X, w.X); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, w.Y); c != 0 {
		return c
	}
	return cmp.Compare(v.Z, w.Z)
}

// Less reports whether v sorts before w under Compare.
func (v Vec3[T]) Less(w Vec3[T]) bool {
	return v.Compare(w) < 0
}

// String formats v as "<X, Y, Z>".
func (v Vec3[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", v.X, v.Y, v.Z)
}
