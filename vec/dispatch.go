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
	"os"
	"strconv"
	"unsafe"
)

// The dispatch layer reports which SIMD register width the host offers.
// It is an optional fast path: nothing in this package changes its
// results based on the level, the scalar implementations are the
// behavior contract, and the bulk kernels only consult the width to
// pick their unroll stride.

// DispatchLevel identifies the SIMD instruction set detected at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go for the build's architecture.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the SIMD instruction set detected for this host.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes: 16 for
// SSE2/NEON, 32 for AVX2, 64 for AVX-512, 16 in scalar mode for
// consistency.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the detected target,
// for example "avx2" or "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether the VECMATH_NO_SIMD environment variable
// requests scalar mode regardless of CPU capabilities. Useful for
// testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("VECMATH_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many T components fit in one register at the
// current width. For example with AVX2 (32 bytes): 8 float32 lanes or
// 4 float64 lanes.
func MaxLanes[T Scalar]() int {
	var z T
	return currentWidth / int(unsafe.Sizeof(z))
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
}
