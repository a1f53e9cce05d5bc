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
	"strconv"
	"strings"
)

// Vector literals read and write as "<c1, c2, ...>": angle brackets
// around the components, ", " between them. Parsing is strict and
// all-or-nothing: a missing bracket, a missing separator, a wrong
// component count, or an unparsable component reports ErrParse and no
// partial value.

// ParseVec2 parses "<x, y>".
func ParseVec2[T Scalar](s string) (Vec2[T], error) {
	parts, err := splitLiteral(s, 2)
	if err != nil {
		return Vec2[T]{}, err
	}
	x, err := parseScalar[T](parts[0])
	if err != nil {
		return Vec2[T]{}, err
	}
	y, err := parseScalar[T](parts[1])
	if err != nil {
		return Vec2[T]{}, err
	}
	return Vec2[T]{X: x, Y: y}, nil
}

// ParseVec3 parses "<x, y, z>".
func ParseVec3[T Scalar](s string) (Vec3[T], error) {
	parts, err := splitLiteral(s, 3)
	if err != nil {
		return Vec3[T]{}, err
	}
	x, err := parseScalar[T](parts[0])
	if err != nil {
		return Vec3[T]{}, err
	}
	y, err := parseScalar[T](parts[1])
	if err != nil {
		return Vec3[T]{}, err
	}
	z, err := parseScalar[T](parts[2])
	if err != nil {
		return Vec3[T]{}, err
	}
	return Vec3[T]{X: x, Y: y, Z: z}, nil
}

// ParseVec4 parses "<x, y, z, w>".
func ParseVec4[T Scalar](s string) (Vec4[T], error) {
	parts, err := splitLiteral(s, 4)
	if err != nil {
		return Vec4[T]{}, err
	}
	x, err := parseScalar[T](parts[0])
	if err != nil {
		return Vec4[T]{}, err
	}
	y, err := parseScalar[T](parts[1])
	if err != nil {
		return Vec4[T]{}, err
	}
	z, err := parseScalar[T](parts[2])
	if err != nil {
		return Vec4[T]{}, err
	}
	w, err := parseScalar[T](parts[3])
	if err != nil {
		return Vec4[T]{}, err
	}
	return Vec4[T]{X: x, Y: y, Z: z, W: w}, nil
}

// ParseQuat parses "<x, y, z, w>".
func ParseQuat[T Floats](s string) (Quat[T], error) {
	v, err := ParseVec4[T](s)
	if err != nil {
		return Quat[T]{}, err
	}
	return Quat[T]{X: v.X, Y: v.Y, Z: v.Z, W: v.W}, nil
}

// FormatVec2 formats each component with the given fmt verb, e.g. "%.3f".
func FormatVec2[T Scalar](v Vec2[T], verb string) string {
	return "<" + fmt.Sprintf(verb, v.X) + ", " + fmt.Sprintf(verb, v.Y) + ">"
}

// FormatVec3 formats each component with the given fmt verb, e.g. "%.3f".
func FormatVec3[T Scalar](v Vec3[T], verb string) string {
	return "<" + fmt.Sprintf(verb, v.X) + ", " + fmt.Sprintf(verb, v.Y) +
		", " + fmt.Sprintf(verb, v.Z) + ">"
}

// FormatVec4 formats each component with the given fmt verb, e.g. "%.3f".
func FormatVec4[T Scalar](v Vec4[T], verb string) string {
	return "<" + fmt.Sprintf(verb, v.X) + ", " + fmt.Sprintf(verb, v.Y) +
		", " + fmt.Sprintf(verb, v.Z) + ", " + fmt.Sprintf(verb, v.W) + ">"
}

// FormatQuat formats each component with the given fmt verb, e.g. "%.3f".
func FormatQuat[T Floats](q Quat[T], verb string) string {
	return FormatVec4(Vec4[T]{X: q.X, Y: q.Y, Z: q.Z, W: q.W}, verb)
}

func splitLiteral(s string, n int) ([]string, error) {
	rest, ok := strings.CutPrefix(s, "<")
	if !ok {
		return nil, fmt.Errorf("vec: missing leading '<' in %q: %w", s, ErrParse)
	}
	rest, ok = strings.CutSuffix(rest, ">")
	if !ok {
		return nil, fmt.Errorf("vec: missing trailing '>' in %q: %w", s, ErrParse)
	}
	parts := strings.Split(rest, ", ")
	if len(parts) != n {
		return nil, fmt.Errorf("vec: %q has %d components, want %d: %w", s, len(parts), n, ErrParse)
	}
	return parts, nil
}

// parseScalar parses one component as the concrete type behind T.
// Defined types (~int32 and friends) take the float64 fallback and
// convert natively.
func parseScalar[T Scalar](s string) (T, error) {
	var z T
	var out T
	var err error
	switch any(z).(type) {
	case float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		out = T(f)
	case float64:
		var f float64
		f, err = strconv.ParseFloat(s, 64)
		out = T(f)
	case int8:
		out, err = parseSigned[T](s, 8)
	case int16:
		out, err = parseSigned[T](s, 16)
	case int32:
		out, err = parseSigned[T](s, 32)
	case int64:
		out, err = parseSigned[T](s, 64)
	case uint8:
		out, err = parseUnsigned[T](s, 8)
	case uint16:
		out, err = parseUnsigned[T](s, 16)
	case uint32:
		out, err = parseUnsigned[T](s, 32)
	case uint64:
		out, err = parseUnsigned[T](s, 64)
	default:
		var f float64
		f, err = strconv.ParseFloat(s, 64)
		out = T(f)
	}
	if err != nil {
		return z, fmt.Errorf("vec: component %q: %w", s, ErrParse)
	}
	return out, nil
}

func parseSigned[T Scalar](s string, bits int) (T, error) {
	i, err := strconv.ParseInt(s, 10, bits)
	return T(i), err
}

func parseUnsigned[T Scalar](s string, bits int) (T, error) {
	u, err := strconv.ParseUint(s, 10, bits)
	return T(u), err
}
