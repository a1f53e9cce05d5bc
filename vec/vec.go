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

// Package vec provides generic 2D/3D/4D vectors and quaternions over any
// numeric scalar type.
//
// The value types are plain structs of N scalar fields with no hidden
// state, so they compare with ==, copy by value, and have the exact
// memory layout of N contiguous scalars (see the Bits* helpers for
// SIMD-register reinterpretation).
//
// Operations closed under ring arithmetic and comparison (add, sub,
// componentwise mul/div, dot, cross, min/max/clamp, reflect) are methods
// available for every Scalar. Operations that need square roots,
// trigonometry, or fractional weights (Length, Normalize, Lerp, Slerp,
// matrix and quaternion transforms) are gated to floating-point scalars
// at compile time via the Floats constraint.
//
// Degenerate arithmetic is deliberately unguarded: normalizing a zero
// vector or inverting a zero quaternion produces NaN/Inf per IEEE
// semantics, and integer division by zero traps, exactly as the scalar
// type itself behaves. Callers own the geometric invariants (unit axes,
// non-zero lengths).
//
// Basic usage:
//
//	v := vec.V3(1.0, 2.0, 3.0)
//	n := vec.Normalize3(v)
//	q := vec.QFromAxisAngle(vec.UnitZ3[float64](), math.Pi/2)
//	r := q.Rotate3(n)
package vec

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalar is a constraint for all types usable as vector components.
type Scalar interface {
	Floats | Integers
}
