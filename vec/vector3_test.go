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
	"errors"
	"math"
	"testing"
)

// algebraCases is a spread of magnitudes and signs for the law tests.
var algebraCases = []Vec3[float64]{
	{},
	{X: 1, Y: 2, Z: 3},
	{X: -4.5, Y: 0.25, Z: 19},
	{X: 1e-9, Y: -1e9, Z: 0.5},
	{X: 3.75, Y: -2.5, Z: -0.125},
}

func TestVec3AdditionLaws(t *testing.T) {
	var zero Vec3[float64]
	for _, a := range algebraCases {
		for _, b := range algebraCases {
			if a.Add(b) != b.Add(a) {
				t.Errorf("a+b != b+a for %v, %v", a, b)
			}
			for _, c := range algebraCases {
				l := a.Add(b).Add(c)
				r := a.Add(b.Add(c))
				if !vec3Approx(l, r, 1e-6) {
					t.Errorf("(a+b)+c != a+(b+c) for %v, %v, %v", a, b, c)
				}
			}
		}
		if a.Sub(a) != zero {
			t.Errorf("a-a != 0 for %v", a)
		}
		if a.Add(zero) != a {
			t.Errorf("a+0 != a for %v", a)
		}
	}
}

func TestVec3DotLaws(t *testing.T) {
	for _, a := range algebraCases {
		for _, b := range algebraCases {
			if a.Dot(b) != b.Dot(a) {
				t.Errorf("dot(a,b) != dot(b,a) for %v, %v", a, b)
			}
		}
		if a.LengthSquared() != a.Dot(a) {
			t.Errorf("lengthSq != dot(a,a) for %v", a)
		}
		if got, want := Length3(a), math.Sqrt(a.LengthSquared()); !approxEqual64(got, want, epsilon64) {
			t.Errorf("Length3(%v) = %v, want %v", a, got, want)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	a := V3(1.0, 2.0, 3.0)
	b := V3(4.0, 5.0, 6.0)

	if got := a.Cross(b); got != V3(-3.0, 6.0, -3.0) {
		t.Errorf("Cross = %v", got)
	}
	for _, a := range algebraCases {
		for _, b := range algebraCases {
			ab := a.Cross(b)
			if ab != b.Cross(a).Neg() {
				t.Errorf("cross(a,b) != -cross(b,a) for %v, %v", a, b)
			}
			// The cross product is orthogonal to both operands.
			scale := math.Max(1, ab.LengthSquared())
			if d := ab.Dot(a); math.Abs(d)/scale > 1e-12 {
				t.Errorf("dot(cross(a,b), a) = %v for %v, %v", d, a, b)
			}
			if d := ab.Dot(b); math.Abs(d)/scale > 1e-12 {
				t.Errorf("dot(cross(a,b), b) = %v for %v, %v", d, a, b)
			}
		}
	}
}

func TestCrossIn(t *testing.T) {
	a := V3[int16](12, -7, 3)
	b := V3[int16](-2, 9, 25)
	if got, want := CrossIn[int64](a, b), a.Cross(b); got != want {
		t.Errorf("CrossIn = %v, want %v", got, want)
	}
	af := V3[float32](1, 2, 3)
	bf := V3[float32](4, 5, 6)
	if got, want := CrossIn[float64](af, bf), af.Cross(bf); got != want {
		t.Errorf("CrossIn = %v, want %v", got, want)
	}
}

func TestVec3MinMaxTies(t *testing.T) {
	a := V3(1.0, 5.0, 2.0)
	b := V3(1.0, 3.0, 4.0)
	if got := a.Max(b); got != V3(1.0, 5.0, 4.0) {
		t.Errorf("Max = %v", got)
	}
	if got := a.Min(b); got != V3(1.0, 3.0, 2.0) {
		t.Errorf("Min = %v", got)
	}

	// Ties go to the second operand: 0 > -0 is false, so Max keeps the
	// negative zero from b.
	negZero := math.Copysign(0, -1)
	tied := V3(0.0, 0.0, 0.0).Max(V3(negZero, 0.0, 0.0))
	if !math.Signbit(tied.X) {
		t.Errorf("Max tie kept first operand: %v", tied.X)
	}
}

func TestVec3Clamp(t *testing.T) {
	v := V3(-1.0, 5.0, 0.5)
	lo := Splat3(0.0)
	hi := Splat3(1.0)
	if got := v.Clamp(lo, hi); got != V3(0.0, 1.0, 0.5) {
		t.Errorf("Clamp = %v", got)
	}
	// Inverted bounds follow max-then-min evaluation, not an error:
	// Max(v, 2) lifts everything to 2, then Min(_, 1) caps at 1.
	if got := v.Clamp(Splat3(2.0), Splat3(1.0)); got != Splat3(1.0) {
		t.Errorf("Clamp inverted = %v", got)
	}
}

func TestNormalize3(t *testing.T) {
	v := V3(3.0, 0.0, 4.0)
	n := Normalize3(v)
	if !vec3Approx(n, V3(0.6, 0.0, 0.8), epsilon64) {
		t.Errorf("Normalize3 = %v", n)
	}
	if got := Length3(n); !approxEqual64(got, 1, epsilon64) {
		t.Errorf("|Normalize3(v)| = %v", got)
	}

	// Zero vectors are not guarded: 0/0 is NaN and that is the contract.
	z := Normalize3(Vec3[float64]{})
	if !math.IsNaN(z.X) || !math.IsNaN(z.Y) || !math.IsNaN(z.Z) {
		t.Errorf("Normalize3(zero) = %v, want NaN components", z)
	}
}

func TestDistance3(t *testing.T) {
	a := V3(1.0, 2.0, 3.0)
	b := V3(4.0, 6.0, 3.0)
	if got := a.DistanceSquared(b); got != 25 {
		t.Errorf("DistanceSquared = %v", got)
	}
	if got := Distance3(a, b); !approxEqual64(got, 5, epsilon64) {
		t.Errorf("Distance3 = %v", got)
	}
}

func TestVec3IntScalars(t *testing.T) {
	a := V3[int32](6, 10, -4)
	b := V3[int32](3, 5, 2)
	if got := a.Div(b); got != V3[int32](2, 2, -2) {
		t.Errorf("int Div = %v", got)
	}
	if got := a.Abs(); got != V3[int32](6, 10, 4) {
		t.Errorf("Abs = %v", got)
	}
	if got := a.Dot(b); got != 60 {
		t.Errorf("int Dot = %v", got)
	}
}

func TestVec3At(t *testing.T) {
	v := V3(1, 2, 3)
	for i, want := range []int{1, 2, 3} {
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
	mustPanic(t, "At(3)", func() { v.At(3) })
	mustPanic(t, "At(-1)", func() { v.At(-1) })
}

func TestVec3Narrowing(t *testing.T) {
	v := V3(1.0, 2.0, 3.0)
	if got := v.XY(); got != V2(1.0, 2.0) {
		t.Errorf("XY = %v", got)
	}
	if got := v.Extend(4); got != V4(1.0, 2.0, 3.0, 4.0) {
		t.Errorf("Extend = %v", got)
	}
	if got := v.Array(); got != [3]float64{1, 2, 3} {
		t.Errorf("Array = %v", got)
	}
}

func TestVec3Compare(t *testing.T) {
	cases := []struct {
		a, b Vec3[int]
		want int
	}{
		{V3(1, 2, 3), V3(1, 2, 3), 0},
		{V3(1, 2, 3), V3(1, 2, 4), -1},
		{V3(1, 2, 3), V3(1, 3, 0), -1},
		{V3(2, 0, 0), V3(1, 9, 9), 1},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
		// Antisymmetry keeps Compare a total order.
		if got := c.b.Compare(c.a); got != -c.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", c.b, c.a, got, -c.want)
		}
	}
}

func TestV3FromSlice(t *testing.T) {
	v, err := V3FromSlice([]float32{1, 2, 3, 4})
	if err != nil || v != V3[float32](1, 2, 3) {
		t.Errorf("V3FromSlice = %v, %v", v, err)
	}
	if _, err := V3FromSlice([]float32{1, 2}); !errors.Is(err, ErrShortSlice) {
		t.Errorf("short slice: got %v, want ErrShortSlice", err)
	}
}
