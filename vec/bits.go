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
	"fmt"
	"math"
	"unsafe"
)

// Register images. A vector whose components fill a SIMD register
// exactly can round-trip through one of these with the same bit layout
// a little-endian register load would see: component 0 in the lowest
// bits. The Reinterpret functions are the width-checked generic doors;
// the concrete BitsOf/FromBits pairs cover the common float cases.

// Bits64 is the image of a 64-bit register.
type Bits64 uint64

// Bits128 is the image of a 128-bit register as two 64-bit halves.
type Bits128 struct {
	Lo, Hi uint64
}

// Bits256 is the image of a 256-bit register as four 64-bit quarters,
// W0 lowest.
type Bits256 struct {
	W0, W1, W2, W3 uint64
}

// BitsOfVec2F32 packs a Vec2[float32] into a 64-bit image.
func BitsOfVec2F32(v Vec2[float32]) Bits64 {
	return Bits64(uint64(math.Float32bits(v.X)) | uint64(math.Float32bits(v.Y))<<32)
}

// Vec2F32FromBits is the inverse of BitsOfVec2F32.
func Vec2F32FromBits(b Bits64) Vec2[float32] {
	return Vec2[float32]{
		X: math.Float32frombits(uint32(b)),
		Y: math.Float32frombits(uint32(b >> 32)),
	}
}

// BitsOfVec4F32 packs a Vec4[float32] into a 128-bit image.
func BitsOfVec4F32(v Vec4[float32]) Bits128 {
	return Bits128{
		Lo: uint64(math.Float32bits(v.X)) | uint64(math.Float32bits(v.Y))<<32,
		Hi: uint64(math.Float32bits(v.Z)) | uint64(math.Float32bits(v.W))<<32,
	}
}

// Vec4F32FromBits is the inverse of BitsOfVec4F32.
func Vec4F32FromBits(b Bits128) Vec4[float32] {
	return Vec4[float32]{
		X: math.Float32frombits(uint32(b.Lo)),
		Y: math.Float32frombits(uint32(b.Lo >> 32)),
		Z: math.Float32frombits(uint32(b.Hi)),
		W: math.Float32frombits(uint32(b.Hi >> 32)),
	}
}

// BitsOfVec2F64 packs a Vec2[float64] into a 128-bit image.
func BitsOfVec2F64(v Vec2[float64]) Bits128 {
	return Bits128{Lo: math.Float64bits(v.X), Hi: math.Float64bits(v.Y)}
}

// Vec2F64FromBits is the inverse of BitsOfVec2F64.
func Vec2F64FromBits(b Bits128) Vec2[float64] {
	return Vec2[float64]{X: math.Float64frombits(b.Lo), Y: math.Float64frombits(b.Hi)}
}

// BitsOfVec4F64 packs a Vec4[float64] into a 256-bit image.
func BitsOfVec4F64(v Vec4[float64]) Bits256 {
	return Bits256{
		W0: math.Float64bits(v.X),
		W1: math.Float64bits(v.Y),
		W2: math.Float64bits(v.Z),
		W3: math.Float64bits(v.W),
	}
}

// Vec4F64FromBits is the inverse of BitsOfVec4F64.
func Vec4F64FromBits(b Bits256) Vec4[float64] {
	return Vec4[float64]{
		X: math.Float64frombits(b.W0),
		Y: math.Float64frombits(b.W1),
		Z: math.Float64frombits(b.W2),
		W: math.Float64frombits(b.W3),
	}
}

// BitsOfQuatF32 packs a Quat[float32] into a 128-bit image.
func BitsOfQuatF32(q Quat[float32]) Bits128 {
	return BitsOfVec4F32(Vec4[float32]{X: q.X, Y: q.Y, Z: q.Z, W: q.W})
}

// QuatF32FromBits is the inverse of BitsOfQuatF32.
func QuatF32FromBits(b Bits128) Quat[float32] {
	v := Vec4F32FromBits(b)
	return Quat[float32]{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// BitsOfQuatF64 packs a Quat[float64] into a 256-bit image.
func BitsOfQuatF64(q Quat[float64]) Bits256 {
	return BitsOfVec4F64(Vec4[float64]{X: q.X, Y: q.Y, Z: q.Z, W: q.W})
}

// QuatF64FromBits is the inverse of BitsOfQuatF64.
func QuatF64FromBits(b Bits256) Quat[float64] {
	v := Vec4F64FromBits(b)
	return Quat[float64]{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// Reinterpret64 reinterprets a Vec2 of 32-bit components as a 64-bit
// register image. Any scalar type of size 4 qualifies, defined types
// included; otherwise ErrWidth is returned. The reinterpretation is
// never implicit or truncating.
func Reinterpret64[T Scalar](v Vec2[T]) (Bits64, error) {
	var z T
	if unsafe.Sizeof(z) != 4 {
		return 0, reinterpretErr[T](2, 8)
	}
	return Bits64(uint64(scalarBits32(v.X)) | uint64(scalarBits32(v.Y))<<32), nil
}

// Reinterpret128 reinterprets a Vec4 of 32-bit components as a 128-bit
// register image. Any scalar type of size 4 qualifies, defined types
// included; otherwise ErrWidth is returned.
func Reinterpret128[T Scalar](v Vec4[T]) (Bits128, error) {
	var z T
	if unsafe.Sizeof(z) != 4 {
		return Bits128{}, reinterpretErr[T](4, 16)
	}
	return Bits128{
		Lo: uint64(scalarBits32(v.X)) | uint64(scalarBits32(v.Y))<<32,
		Hi: uint64(scalarBits32(v.Z)) | uint64(scalarBits32(v.W))<<32,
	}, nil
}

// Reinterpret256 reinterprets a Vec4 of 64-bit components as a 256-bit
// register image. Any scalar type of size 8 qualifies, defined types
// included; otherwise ErrWidth is returned.
func Reinterpret256[T Scalar](v Vec4[T]) (Bits256, error) {
	var z T
	if unsafe.Sizeof(z) != 8 {
		return Bits256{}, reinterpretErr[T](4, 32)
	}
	return Bits256{
		W0: scalarBits64(v.X),
		W1: scalarBits64(v.Y),
		W2: scalarBits64(v.Z),
		W3: scalarBits64(v.W),
	}, nil
}

// scalarBits32 reads the raw bit pattern of a 4-byte scalar. Callers
// must have checked unsafe.Sizeof(v) == 4.
func scalarBits32[T Scalar](v T) uint32 {
	return *(*uint32)(unsafe.Pointer(&v))
}

// scalarBits64 reads the raw bit pattern of an 8-byte scalar. Callers
// must have checked unsafe.Sizeof(v) == 8.
func scalarBits64[T Scalar](v T) uint64 {
	return *(*uint64)(unsafe.Pointer(&v))
}

func reinterpretErr[T Scalar](n int, want uintptr) error {
	var z T
	return fmt.Errorf("vec: %d %T components (%d bytes) have no %d-byte register image: %w",
		n, z, n*int(unsafe.Sizeof(z)), want, ErrWidth)
}
