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

// Vec2 is an immutable 2D vector of scalar type T.
// The zero value is the zero vector. Vec2 values compare with ==.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 constructs a Vec2 from two components.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 constructs a Vec2 with both components set to s.
func Splat2[T Scalar](s T) Vec2[T] {
	return Vec2[T]{X: s, Y: s}
}

// One2 returns the vector (1, 1).
func One2[T Scalar]() Vec2[T] {
	return Vec2[T]{X: 1, Y: 1}
}

// UnitX2 returns the vector (1, 0).
func UnitX2[T Scalar]() Vec2[T] {
	return Vec2[T]{X: 1}
}

// UnitY2 returns the vector (0, 1).
func UnitY2[T Scalar]() Vec2[T] {
	return Vec2[T]{Y: 1}
}

// V2FromSlice constructs a Vec2 from the first two elements of s.
// It returns ErrShortSlice if len(s) < 2.
func V2FromSlice[T Scalar](s []T) (Vec2[T], error) {
	if len(s) < 2 {
		return Vec2[T]{}, fmt.Errorf("vec: need 2 elements, have %d: %w", len(s), ErrShortSlice)
	}
	return Vec2[T]{X: s[0], Y: s[1]}, nil
}

// Add returns the componentwise sum v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the componentwise product v * w.
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the componentwise quotient v / w.
// Division by a zero component follows the scalar type: Inf/NaN for
// floats, a runtime panic for integers.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X / w.X, Y: v.Y / w.Y}
}

// Neg returns the componentwise negation -v.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// MulScalar returns v scaled by s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// DivScalar returns v divided by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// LengthSquared returns Dot(v, v).
func (v Vec2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// DistanceSquared returns the squared distance between v and w.
func (v Vec2[T]) DistanceSquared(w Vec2[T]) T {
	return v.Sub(w).LengthSquared()
}

// Abs returns the componentwise absolute value.
func (v Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{X: absScalar(v.X), Y: absScalar(v.Y)}
}

// Min returns the componentwise minimum of v and w.
// A component of w wins ties: the result is v.X if v.X < w.X, else w.X.
func (v Vec2[T]) Min(w Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: minScalar(v.X, w.X),
		Y: minScalar(v.Y, w.Y),
	}
}

// Max returns the componentwise maximum of v and w.
// A component of w wins ties: the result is v.X if v.X > w.X, else w.X.
func (v Vec2[T]) Max(w Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: maxScalar(v.X, w.X),
		Y: maxScalar(v.Y, w.Y),
	}
}

// Clamp restricts each component to [lo, hi], evaluated as
// Min(Max(v, lo), hi). When lo > hi the max-then-min order decides the
// result, matching shader clamp semantics; no error is raised.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return v.Max(lo).Min(hi)
}

// Reflect returns v reflected about the normal n: v - 2*dot(v,n)*n.
// n must be unit length for a true mirror reflection.
func (v Vec2[T]) Reflect(n Vec2[T]) Vec2[T] {
	d := v.Dot(n)
	return v.Sub(n.MulScalar(d + d))
}

// At returns the i'th component. It panics if i is not in [0, 2).
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("vec: index %d out of range [0, 2)", i))
}

// Array returns the components as a fixed-size array in declaration order.
func (v Vec2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// Extend returns the Vec3 (v.X, v.Y, z).
func (v Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

// Compare orders vectors lexicographically by X, then Y.
// It returns -1 if v sorts before w, 0 if equal, +1 otherwise.
func (v Vec2[T]) Compare(w Vec2[T]) int {
	if c := cmp.Compare(v.X, w.X); c != 0 {
		return c
	}
	return cmp.Compare(v.Y, w.Y)
}

// Less reports whether v sorts before w under Compare.
func (v Vec2[T]) Less(w Vec2[T]) bool {
	return v.Compare(w) < 0
}

// String formats v as "<X, Y>".
func (v Vec2[T]) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}

// Componentwise helpers shared by all dimensions. The asymmetric tie
// rule (second operand wins ties) is part of the contract.

func minScalar[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxScalar[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func absScalar[T Scalar](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
