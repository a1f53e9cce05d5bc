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

// Package bulk applies vector operations across slices of vectors.
//
// Every function processes the common length of its slice arguments and
// leaves the rest of dst untouched; dst may alias an input. The main
// loops unroll in blocks of four when the detected SIMD width fits four
// components per register, with a scalar tail; the unrolling changes
// only the schedule, never the results.
package bulk

import "github.com/ajroetker/go-vecmath/vec"

// Add3 stores a[i] + b[i] into dst over the common length.
func Add3[T vec.Scalar](dst []vec.Vec3[T], a, b []vec.Vec3[T]) {
	n := min(len(dst), min(len(a), len(b)))
	var i int
	if vec.MaxLanes[T]() >= 4 {
		for ; i+4 <= n; i += 4 {
			dst[i] = a[i].Add(b[i])
			dst[i+1] = a[i+1].Add(b[i+1])
			dst[i+2] = a[i+2].Add(b[i+2])
			dst[i+3] = a[i+3].Add(b[i+3])
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i].Add(b[i])
	}
}

// Sub3 stores a[i] - b[i] into dst over the common length.
func Sub3[T vec.Scalar](dst []vec.Vec3[T], a, b []vec.Vec3[T]) {
	n := min(len(dst), min(len(a), len(b)))
	var i int
	if vec.MaxLanes[T]() >= 4 {
		for ; i+4 <= n; i += 4 {
			dst[i] = a[i].Sub(b[i])
			dst[i+1] = a[i+1].Sub(b[i+1])
			dst[i+2] = a[i+2].Sub(b[i+2])
			dst[i+3] = a[i+3].Sub(b[i+3])
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i].Sub(b[i])
	}
}

// Scale3 stores src[i] * s into dst over the common length.
func Scale3[T vec.Scalar](dst []vec.Vec3[T], src []vec.Vec3[T], s T) {
	n := min(len(dst), len(src))
	var i int
	if vec.MaxLanes[T]() >= 4 {
		for ; i+4 <= n; i += 4 {
			dst[i] = src[i].MulScalar(s)
			dst[i+1] = src[i+1].MulScalar(s)
			dst[i+2] = src[i+2].MulScalar(s)
			dst[i+3] = src[i+3].MulScalar(s)
		}
	}
	for ; i < n; i++ {
		dst[i] = src[i].MulScalar(s)
	}
}

// Lerp3 stores the interpolation of a[i] toward b[i] at parameter t
// into dst over the common length. t is not clamped.
func Lerp3[T vec.Floats](dst []vec.Vec3[T], a, b []vec.Vec3[T], t T) {
	n := min(len(dst), min(len(a), len(b)))
	for i := 0; i < n; i++ {
		dst[i] = vec.Lerp3(a[i], b[i], t)
	}
}

// Dot3 stores Dot(a[i], b[i]) into dst over the common length.
func Dot3[T vec.Scalar](dst []T, a, b []vec.Vec3[T]) {
	n := min(len(dst), min(len(a), len(b)))
	var i int
	if vec.MaxLanes[T]() >= 4 {
		for ; i+4 <= n; i += 4 {
			dst[i] = a[i].Dot(b[i])
			dst[i+1] = a[i+1].Dot(b[i+1])
			dst[i+2] = a[i+2].Dot(b[i+2])
			dst[i+3] = a[i+3].Dot(b[i+3])
		}
	}
	for ; i < n; i++ {
		dst[i] = a[i].Dot(b[i])
	}
}

// Length3 stores the length of src[i] into dst over the common length.
func Length3[T vec.Floats](dst []T, src []vec.Vec3[T]) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = vec.Length3(src[i])
	}
}

// Normalize3 stores the unit vector of src[i] into dst over the common
// length. Zero vectors produce NaN components, as in vec.Normalize3.
func Normalize3[T vec.Floats](dst []vec.Vec3[T], src []vec.Vec3[T]) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = vec.Normalize3(src[i])
	}
}

// Transform3 stores src[i] transformed by m into dst over the common
// length.
func Transform3[T vec.Floats](dst []vec.Vec3[T], src []vec.Vec3[T], m vec.Mat4[T]) {
	n := min(len(dst), len(src))
	var i int
	if vec.MaxLanes[T]() >= 4 {
		for ; i+4 <= n; i += 4 {
			dst[i] = vec.Transform3(src[i], m)
			dst[i+1] = vec.Transform3(src[i+1], m)
			dst[i+2] = vec.Transform3(src[i+2], m)
			dst[i+3] = vec.Transform3(src[i+3], m)
		}
	}
	for ; i < n; i++ {
		dst[i] = vec.Transform3(src[i], m)
	}
}

// Rotate3 stores src[i] rotated by q into dst over the common length.
func Rotate3[T vec.Floats](dst []vec.Vec3[T], src []vec.Vec3[T], q vec.Quat[T]) {
	n := min(len(dst), len(src))
	var i int
	if vec.MaxLanes[T]() >= 4 {
		for ; i+4 <= n; i += 4 {
			dst[i] = q.Rotate3(src[i])
			dst[i+1] = q.Rotate3(src[i+1])
			dst[i+2] = q.Rotate3(src[i+2])
			dst[i+3] = q.Rotate3(src[i+3])
		}
	}
	for ; i < n; i++ {
		dst[i] = q.Rotate3(src[i])
	}
}

// Bounds3 returns the componentwise minimum and maximum over src,
// the axis-aligned bounding box of the point set. Both bounds are the
// zero vector when src is empty.
func Bounds3[T vec.Scalar](src []vec.Vec3[T]) (lo, hi vec.Vec3[T]) {
	if len(src) == 0 {
		return lo, hi
	}
	lo, hi = src[0], src[0]
	for _, v := range src[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return lo, hi
}
