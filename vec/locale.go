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
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale-aware rendering of vector literals. Each component is printed
// with the printer's language conventions (decimal mark, digit
// grouping); the "<...>" framing and the ", " join stay fixed.
//
//	p := message.NewPrinter(language.German)
//	vec.LocaleFormatVec2(p, vec.V2(1.5, 2.5))  // "<1,5, 2,5>"
//
// There is no locale-aware parse: ParseVec* reads the invariant form
// only.

// LocaleFormatVec2 formats v for the printer's locale.
func LocaleFormatVec2[T Scalar](p *message.Printer, v Vec2[T]) string {
	return p.Sprintf("<%v, %v>", number.Decimal(v.X), number.Decimal(v.Y))
}

// LocaleFormatVec3 formats v for the printer's locale.
func LocaleFormatVec3[T Scalar](p *message.Printer, v Vec3[T]) string {
	return p.Sprintf("<%v, %v, %v>", number.Decimal(v.X), number.Decimal(v.Y), number.Decimal(v.Z))
}

// LocaleFormatVec4 formats v for the printer's locale.
func LocaleFormatVec4[T Scalar](p *message.Printer, v Vec4[T]) string {
	return p.Sprintf("<%v, %v, %v, %v>", number.Decimal(v.X), number.Decimal(v.Y), number.Decimal(v.Z), number.Decimal(v.W))
}

// LocaleFormatQuat formats q for the printer's locale.
func LocaleFormatQuat[T Floats](p *message.Printer, q Quat[T]) string {
	return p.Sprintf("<%v, %v, %v, %v>", number.Decimal(q.X), number.Decimal(q.Y), number.Decimal(q.Z), number.Decimal(q.W))
}
