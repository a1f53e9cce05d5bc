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
	"strings"
	"testing"
)

func TestConvertTruncating(t *testing.T) {
	// Float to int truncates toward zero, Go conversion semantics.
	if got := ConvertVec3[int32](V3(1.9, -2.9, 0.5)); got != V3[int32](1, -2, 0) {
		t.Errorf("ConvertVec3[int32] = %v", got)
	}
	if got := ConvertVec2[float64](V2[int16](-3, 7)); got != V2(-3.0, 7.0) {
		t.Errorf("ConvertVec2[float64] = %v", got)
	}
	if got := ConvertVec4[float32](V4(1.5, 2.5, 3.5, 4.5)); got != V4[float32](1.5, 2.5, 3.5, 4.5) {
		t.Errorf("ConvertVec4[float32] = %v", got)
	}
	q := ConvertQuat[float32](Q(0.25, 0.5, 0.75, 1.0))
	if q != Q[float32](0.25, 0.5, 0.75, 1) {
		t.Errorf("ConvertQuat = %v", q)
	}
}

func TestConvertSaturating(t *testing.T) {
	// Narrowing clamps to the target extremes instead of wrapping.
	if got := ConvertVec3Saturating[int8](V3[int16](300, -300, 12)); got != V3[int8](127, -128, 12) {
		t.Errorf("int16 -> int8 = %v", got)
	}
	if got := ConvertVec2Saturating[uint8](V2[int32](-1, 256)); got != V2[uint8](0, 255) {
		t.Errorf("int32 -> uint8 = %v", got)
	}
	if got := ConvertVec2Saturating[int16](V2[uint32](70000, 9)); got != V2[int16](32767, 9) {
		t.Errorf("uint32 -> int16 = %v", got)
	}

	// Float sources: out-of-range saturates, NaN maps to zero,
	// in-range values truncate.
	got := ConvertVec4Saturating[int32](V4(1e12, -1e12, math.NaN(), -7.8))
	if got != V4[int32](math.MaxInt32, math.MinInt32, 0, -7) {
		t.Errorf("float64 -> int32 = %v", got)
	}
	if got := ConvertVec2Saturating[uint16](V2(float32(-0.5), float32(1e9))); got != V2[uint16](0, 65535) {
		t.Errorf("float32 -> uint16 = %v", got)
	}

	// 64-bit corner: values near MaxInt64 are exact, no float64 detour.
	v := int64(math.MaxInt64 - 512)
	if got := ConvertVec2Saturating[int64](V2(v, -v)); got != V2(v, -v) {
		t.Errorf("int64 identity = %v", got)
	}
	if got := ConvertVec2Saturating[int64](V2(uint64(math.MaxUint64), 3)); got != V2[int64](math.MaxInt64, 3) {
		t.Errorf("uint64 -> int64 = %v", got)
	}
	if got := ConvertVec2Saturating[uint64](V2[int64](-5, 5)); got != V2[uint64](0, 5) {
		t.Errorf("int64 -> uint64 = %v", got)
	}
}

func TestConvertChecked(t *testing.T) {
	got, err := ConvertVec3Checked[int8](V3[int16](1, -2, 3))
	if err != nil {
		t.Fatalf("in-range checked conversion: %v", err)
	}
	if got != V3[int8](1, -2, 3) {
		t.Errorf("ConvertVec3Checked = %v", got)
	}

	// Fractional values truncate without error; only range trips it.
	got2, err := ConvertVec2Checked[int32](V2(1.75, -2.25))
	if err != nil {
		t.Fatalf("fractional checked conversion: %v", err)
	}
	if got2 != V2[int32](1, -2) {
		t.Errorf("fractional checked = %v", got2)
	}

	if _, err := ConvertVec2Checked[int8](V2[int16](1, 200)); !errors.Is(err, ErrOverflow) {
		t.Errorf("overflow error = %v, want ErrOverflow", err)
	}
	if _, err := ConvertVec3Checked[uint16](V3[int32](-1, 0, 1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("negative to unsigned error = %v", err)
	}
	if _, err := ConvertVec2Checked[int32](V2(math.NaN(), 0)); !errors.Is(err, ErrOverflow) {
		t.Errorf("NaN to int error = %v", err)
	}
	if _, err := ConvertVec2Checked[int64](V2(math.Inf(1), 0)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Inf to int error = %v", err)
	}
	if _, err := ConvertVec4Checked[uint8](V4[int16](0, 1, 2, 300)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Vec4 overflow error = %v", err)
	}

	// float64 -> float32 magnitude overflow is an error, NaN is not.
	if _, err := ConvertVec2Checked[float32](V2(1e300, 0)); !errors.Is(err, ErrOverflow) {
		t.Errorf("float64 -> float32 overflow = %v", err)
	}
	gotNaN, err := ConvertVec2Checked[float32](V2(math.NaN(), 1.5))
	if err != nil {
		t.Fatalf("NaN to float32: %v", err)
	}
	if !math.IsNaN(float64(gotNaN.X)) || gotNaN.Y != 1.5 {
		t.Errorf("NaN passthrough = %v", gotNaN)
	}

	// 64-bit corners stay exact.
	v := int64(math.MaxInt64 - 512)
	got3, err := ConvertVec2Checked[int64](V2(v, -v))
	if err != nil || got3 != V2(v, -v) {
		t.Errorf("int64 identity = %v, %v", got3, err)
	}
	if _, err := ConvertVec2Checked[int64](V2(uint64(math.MaxInt64)+1, 0)); !errors.Is(err, ErrOverflow) {
		t.Errorf("uint64 past MaxInt64 = %v", err)
	}
}

func TestConvertQuatPolicies(t *testing.T) {
	q := Q(0.25, -0.5, 0.75, 1.0)
	if got := ConvertQuatSaturating[float32](q); got != Q[float32](0.25, -0.5, 0.75, 1) {
		t.Errorf("ConvertQuatSaturating = %v", got)
	}

	got, err := ConvertQuatChecked[float32](q)
	if err != nil {
		t.Fatalf("in-range checked conversion: %v", err)
	}
	if got != Q[float32](0.25, -0.5, 0.75, 1) {
		t.Errorf("ConvertQuatChecked = %v", got)
	}

	// Narrowing a float64 magnitude past float32 range: saturating
	// follows IEEE overflow to Inf, checked reports the overflow.
	wide := Q(1e300, 0.0, 0.0, 1.0)
	if got := ConvertQuatSaturating[float32](wide); !math.IsInf(float64(got.X), 1) {
		t.Errorf("saturating overflow = %v, want +Inf X", got)
	}
	if _, err := ConvertQuatChecked[float32](wide); !errors.Is(err, ErrOverflow) {
		t.Errorf("checked overflow = %v, want ErrOverflow", err)
	}

	// NaN is representable in the target and passes through checked.
	gotNaN, err := ConvertQuatChecked[float32](Q(math.NaN(), 0.0, 0.0, 1.0))
	if err != nil {
		t.Fatalf("NaN checked conversion: %v", err)
	}
	if !math.IsNaN(float64(gotNaN.X)) || gotNaN.W != 1 {
		t.Errorf("NaN passthrough = %v", gotNaN)
	}
}

func TestConvertDefinedTypes(t *testing.T) {
	type angle float64
	// Defined scalar types take the native conversion path.
	if got := ConvertVec2Saturating[float32](V2[angle](1.5, -2.5)); got != V2[float32](1.5, -2.5) {
		t.Errorf("defined type saturating = %v", got)
	}
	got, err := ConvertVec2Checked[float64](V2[angle](3, 4))
	if err != nil || got != V2(3.0, 4.0) {
		t.Errorf("defined type checked = %v, %v", got, err)
	}
}

func TestCheckedErrorText(t *testing.T) {
	_, err := ConvertVec3Checked[int8](V3[int32](0, 999, 0))
	if err == nil {
		t.Fatal("want error")
	}
	// Error names the failing component.
	if want := "component 1"; !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %q", err, want)
	}
}
