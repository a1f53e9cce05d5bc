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
	"math"
	"testing"
)

// Tolerance constants for floating point comparison
const (
	epsilon32 = 1e-6
	epsilon64 = 1e-12
)

// approxEqual64 checks if two float64 values are approximately equal
func approxEqual64(a, b, epsilon float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 0) && math.IsInf(b, 0) {
		return (a > 0) == (b > 0)
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

func vec2Approx(a, b Vec2[float64], epsilon float64) bool {
	return approxEqual64(a.X, b.X, epsilon) && approxEqual64(a.Y, b.Y, epsilon)
}

func vec3Approx(a, b Vec3[float64], epsilon float64) bool {
	return approxEqual64(a.X, b.X, epsilon) &&
		approxEqual64(a.Y, b.Y, epsilon) &&
		approxEqual64(a.Z, b.Z, epsilon)
}

func vec4Approx(a, b Vec4[float64], epsilon float64) bool {
	return approxEqual64(a.X, b.X, epsilon) &&
		approxEqual64(a.Y, b.Y, epsilon) &&
		approxEqual64(a.Z, b.Z, epsilon) &&
		approxEqual64(a.W, b.W, epsilon)
}

func quatApprox(a, b Quat[float64], epsilon float64) bool {
	return approxEqual64(a.X, b.X, epsilon) &&
		approxEqual64(a.Y, b.Y, epsilon) &&
		approxEqual64(a.Z, b.Z, epsilon) &&
		approxEqual64(a.W, b.W, epsilon)
}

// quatApproxSign compares rotations: q and -q represent the same
// orientation, so either match passes.
func quatApproxSign(a, b Quat[float64], epsilon float64) bool {
	return quatApprox(a, b, epsilon) || quatApprox(a, b.Neg(), epsilon)
}

// mustPanic asserts that f panics.
func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}
