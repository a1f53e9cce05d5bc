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

// Mat4 is a 4x4 matrix of scalar type T in row-vector convention:
// a vector transforms as v' = v * M, so row 4 (M41..M43) carries the
// translation. Mij is the element in row i, column j.
//
// Mat4 is a collaborator type: this package consumes it read-only in the
// Transform functions and QFromRotationMatrix. It carries no matrix
// algebra of its own.
type Mat4[T Scalar] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

// Mat4Identity returns the identity matrix.
func Mat4Identity[T Scalar]() Mat4[T] {
	return Mat4[T]{
		M11: 1,
		M22: 1,
		M33: 1,
		M44: 1,
	}
}

// Mat4FromRows assembles a matrix from four row vectors.
func Mat4FromRows[T Scalar](r1, r2, r3, r4 Vec4[T]) Mat4[T] {
	return Mat4[T]{
		M11: r1.X, M12: r1.Y, M13: r1.Z, M14: r1.W,
		M21: r2.X, M22: r2.Y, M23: r2.Z, M24: r2.W,
		M31: r3.X, M32: r3.Y, M33: r3.Z, M34: r3.W,
		M41: r4.X, M42: r4.Y, M43: r4.Z, M44: r4.W,
	}
}

// Row1 returns the first row as a vector.
func (m Mat4[T]) Row1() Vec4[T] { return Vec4[T]{X: m.M11, Y: m.M12, Z: m.M13, W: m.M14} }

// Row2 returns the second row as a vector.
func (m Mat4[T]) Row2() Vec4[T] { return Vec4[T]{X: m.M21, Y: m.M22, Z: m.M23, W: m.M24} }

// Row3 returns the third row as a vector.
func (m Mat4[T]) Row3() Vec4[T] { return Vec4[T]{X: m.M31, Y: m.M32, Z: m.M33, W: m.M34} }

// Row4 returns the fourth (translation) row as a vector.
func (m Mat4[T]) Row4() Vec4[T] { return Vec4[T]{X: m.M41, Y: m.M42, Z: m.M43, W: m.M44} }
