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

import "errors"

// Sentinel errors reported by this package. All returned errors wrap one
// of these, so callers can match with errors.Is.
var (
	// ErrShortSlice is returned by the FromSlice constructors when the
	// source slice has fewer elements than the vector has components.
	ErrShortSlice = errors.New("vec: slice too short")

	// ErrParse is returned when a vector literal is malformed. Parsing
	// is all-or-nothing; no partial result is ever produced.
	ErrParse = errors.New("vec: invalid vector literal")

	// ErrOverflow is returned by the checked conversions when a
	// component is not representable in the target scalar type.
	ErrOverflow = errors.New("vec: value out of range for target type")

	// ErrWidth is returned by the register reinterpretation helpers when
	// the vector's total bit width does not match the register width.
	ErrWidth = errors.New("vec: component width does not match register width")
)
