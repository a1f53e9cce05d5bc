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

// Matrix transforms. Vectors lift into homogeneous coordinates
// (w = 1 for points), multiply through the rows as
// x*Row1 + y*Row2 + z*Row3 + w*Row4, and project back by dropping the
// extra components.

// Transform2 applies m to the point v, treating it as (x, y, 0, 1).
func Transform2[T Floats](v Vec2[T], m Mat4[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X*m.M11 + v.Y*m.M21 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// Transform3 applies m to the point v, treating it as (x, y, z, 1).
func Transform3[T Floats](v Vec3[T], m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// Transform4 applies m to v.
func Transform4[T Floats](v Vec4[T], m Mat4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		W: v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// TransformNormal2 applies only the rotation/scale part of m to v,
// treating it as a direction (w = 0): the translation row is ignored.
func TransformNormal2[T Floats](v Vec2[T], m Mat4[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X*m.M11 + v.Y*m.M21,
		Y: v.X*m.M12 + v.Y*m.M22,
	}
}

// TransformNormal3 applies only the rotation/scale part of m to v,
// treating it as a direction (w = 0): the translation row is ignored.
func TransformNormal3[T Floats](v Vec3[T], m Mat4[T]) Vec3[T] {
	return Vec3[T]{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}
