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

func TestBitsRoundTrip(t *testing.T) {
	v2f32 := V2[float32](1.5, -2.25)
	if got := Vec2F32FromBits(BitsOfVec2F32(v2f32)); got != v2f32 {
		t.Errorf("Vec2F32 round trip = %v", got)
	}

	v4f32 := V4[float32](0.1, -0.2, 3e8, float32(math.Inf(-1)))
	if got := Vec4F32FromBits(BitsOfVec4F32(v4f32)); got != v4f32 {
		t.Errorf("Vec4F32 round trip = %v", got)
	}

	v2f64 := V2(math.Pi, -math.SmallestNonzeroFloat64)
	if got := Vec2F64FromBits(BitsOfVec2F64(v2f64)); got != v2f64 {
		t.Errorf("Vec2F64 round trip = %v", got)
	}

	v4f64 := V4(1.0, 2.0, -3.0, math.MaxFloat64)
	if got := Vec4F64FromBits(BitsOfVec4F64(v4f64)); got != v4f64 {
		t.Errorf("Vec4F64 round trip = %v", got)
	}

	qf32 := Q[float32](0.5, -0.5, 0.5, 0.5)
	if got := QuatF32FromBits(BitsOfQuatF32(qf32)); got != qf32 {
		t.Errorf("QuatF32 round trip = %v", got)
	}

	qf64 := QFromAxisAngle(UnitZ3[float64](), 1.0)
	if got := QuatF64FromBits(BitsOfQuatF64(qf64)); got != qf64 {
		t.Errorf("QuatF64 round trip = %v", got)
	}

	// NaN payloads survive: the pack is a bit copy, not a value copy.
	nan := math.Float32frombits(0x7fc00123)
	b := BitsOfVec2F32(V2(nan, nan))
	if got := uint32(b); got != 0x7fc00123 {
		t.Errorf("NaN payload low = %#x", got)
	}
}

func TestBitsLayout(t *testing.T) {
	// Component 0 occupies the lowest bits, as a little-endian register
	// load would place it.
	b := BitsOfVec2F32(V2[float32](1, 2))
	if lo := uint32(b); lo != math.Float32bits(1) {
		t.Errorf("low half = %#x, want bits of 1.0", lo)
	}
	if hi := uint32(b >> 32); hi != math.Float32bits(2) {
		t.Errorf("high half = %#x, want bits of 2.0", hi)
	}

	b128 := BitsOfVec2F64(V2(1.0, 2.0))
	if b128.Lo != math.Float64bits(1) || b128.Hi != math.Float64bits(2) {
		t.Errorf("Bits128 = %+v", b128)
	}

	b256 := BitsOfVec4F64(V4(1.0, 2.0, 3.0, 4.0))
	if b256.W0 != math.Float64bits(1) || b256.W3 != math.Float64bits(4) {
		t.Errorf("Bits256 = %+v", b256)
	}
}

func TestReinterpret(t *testing.T) {
	b64, err := Reinterpret64(V2[uint32](0xdeadbeef, 0x01020304))
	if err != nil {
		t.Fatalf("Reinterpret64: %v", err)
	}
	if b64 != Bits64(0x01020304_deadbeef) {
		t.Errorf("Reinterpret64 = %#x", b64)
	}

	if got, err := Reinterpret64(V2[int32](-1, 0)); err != nil || got != Bits64(0x00000000_ffffffff) {
		t.Errorf("Reinterpret64 int32 = %#x, %v", got, err)
	}

	f := V2[float32](1, 2)
	if got, err := Reinterpret64(f); err != nil || got != BitsOfVec2F32(f) {
		t.Errorf("Reinterpret64 float32 = %#x, %v", got, err)
	}

	v4 := V4[uint32](1, 2, 3, 4)
	b128, err := Reinterpret128(v4)
	if err != nil {
		t.Fatalf("Reinterpret128: %v", err)
	}
	if b128 != (Bits128{Lo: 2<<32 | 1, Hi: 4<<32 | 3}) {
		t.Errorf("Reinterpret128 = %+v", b128)
	}

	b256, err := Reinterpret256(V4[int64](-1, 0, 1, 2))
	if err != nil {
		t.Fatalf("Reinterpret256: %v", err)
	}
	if b256 != (Bits256{W0: math.MaxUint64, W1: 0, W2: 1, W3: 2}) {
		t.Errorf("Reinterpret256 = %+v", b256)
	}
}

func TestReinterpretWidthErrors(t *testing.T) {
	if _, err := Reinterpret64(V2[float64](1, 2)); !errors.Is(err, ErrWidth) {
		t.Errorf("Reinterpret64 of float64 = %v, want ErrWidth", err)
	}
	if _, err := Reinterpret64(V2[int8](1, 2)); !errors.Is(err, ErrWidth) {
		t.Errorf("Reinterpret64 of int8 = %v", err)
	}
	if _, err := Reinterpret128(V4[float64](1, 2, 3, 4)); !errors.Is(err, ErrWidth) {
		t.Errorf("Reinterpret128 of float64 = %v", err)
	}
	if _, err := Reinterpret256(V4[float32](1, 2, 3, 4)); !errors.Is(err, ErrWidth) {
		t.Errorf("Reinterpret256 of float32 = %v", err)
	}

	type wide float64
	if _, err := Reinterpret128(V4[wide](1, 2, 3, 4)); !errors.Is(err, ErrWidth) {
		t.Errorf("Reinterpret128 of 8-byte defined type = %v", err)
	}
}

func TestReinterpretDefinedTypes(t *testing.T) {
	// The width check is on the scalar's size, so defined types with a
	// matching underlying width reinterpret like their base type.
	type px float32
	got, err := Reinterpret64(V2[px](1, 2))
	if err != nil {
		t.Fatalf("Reinterpret64 of 4-byte defined type: %v", err)
	}
	if want := BitsOfVec2F32(V2[float32](1, 2)); got != want {
		t.Errorf("Reinterpret64 = %#x, want %#x", got, want)
	}

	type id uint32
	b128, err := Reinterpret128(V4[id](1, 2, 3, 4))
	if err != nil {
		t.Fatalf("Reinterpret128 of defined uint32: %v", err)
	}
	if b128 != (Bits128{Lo: 2<<32 | 1, Hi: 4<<32 | 3}) {
		t.Errorf("Reinterpret128 = %+v", b128)
	}

	type tick int64
	b256, err := Reinterpret256(V4[tick](-1, 0, 1, 2))
	if err != nil {
		t.Fatalf("Reinterpret256 of defined int64: %v", err)
	}
	if b256 != (Bits256{W0: math.MaxUint64, W1: 0, W2: 1, W3: 2}) {
		t.Errorf("Reinterpret256 = %+v", b256)
	}
}
