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

import "math"

// Geometric operations that require square roots or fractional weights.
// These are free functions constrained to Floats: needing the capability
// is a compile-time requirement, not a runtime check.
//
// None of them guard against degenerate inputs. Normalizing a zero
// vector divides by zero and yields NaN components; that is the IEEE
// answer and callers who need a guard own the check.

// Length2 returns the Euclidean length of v.
func Length2[T Floats](v Vec2[T]) T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Length3 returns the Euclidean length of v.
func Length3[T Floats](v Vec3[T]) T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Length4 returns the Euclidean length of v.
func Length4[T Floats](v Vec4[T]) T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Distance2 returns the Euclidean distance between a and b.
func Distance2[T Floats](a, b Vec2[T]) T {
	return Length2(a.Sub(b))
}

// Distance3 returns the Euclidean distance between a and b.
func Distance3[T Floats](a, b Vec3[T]) T {
	return Length3(a.Sub(b))
}

// Distance4 returns the Euclidean distance between a and b.
func Distance4[T Floats](a, b Vec4[T]) T {
	return Length4(a.Sub(b))
}

// Normalize2 returns v scaled to unit length.
func Normalize2[T Floats](v Vec2[T]) Vec2[T] {
	return v.DivScalar(Length2(v))
}

// Normalize3 returns v scaled to unit length.
func Normalize3[T Floats](v Vec3[T]) Vec3[T] {
	return v.DivScalar(Length3(v))
}

// Normalize4 returns v scaled to unit length.
func Normalize4[T Floats](v Vec4[T]) Vec4[T] {
	return v.DivScalar(Length4(v))
}

// Lerp2 linearly interpolates a*(1-t) + b*t. t is not clamped, so
// values outside [0, 1] extrapolate.
func Lerp2[T Floats](a, b Vec2[T], t T) Vec2[T] {
	return a.MulScalar(1 - t).Add(b.MulScalar(t))
}

// Lerp3 linearly interpolates a*(1-t) + b*t. t is not clamped, so
// values outside [0, 1] extrapolate.
func Lerp3[T Floats](a, b Vec3[T], t T) Vec3[T] {
	return a.MulScalar(1 - t).Add(b.MulScalar(t))
}

// Lerp4 linearly interpolates a*(1-t) + b*t. t is not clamped, so
// values outside [0, 1] extrapolate.
func Lerp4[T Floats](a, b Vec4[T], t T) Vec4[T] {
	return a.MulScalar(1 - t).Add(b.MulScalar(t))
}

// CrossIn returns the cross product a x b with all intermediate products
// computed in W before truncating back to T. Pick W wider than T (say
// int64 for Vec3[int16], or float64 for Vec3[float32]) to keep the
// intermediate differences exact.
func CrossIn[W, T Scalar](a, b Vec3[T]) Vec3[T] {
	ax, ay, az := W(a.X), W(a.Y), W(a.Z)
	bx, by, bz := W(b.X), W(b.Y), W(b.Z)
	return Vec3[T]{
		X: T(ay*bz - az*by),
		Y: T(az*bx - ax*bz),
		Z: T(ax*by - ay*bx),
	}
}
