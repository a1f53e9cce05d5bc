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
	"cmp"
	"fmt"
	"math"
)

// Quat is an immutable rotation quaternion of scalar type T.
// (X, Y, Z) is the vector (imaginary) part, W the scalar (real) part.
//
// A quaternion used as a rotation should have unit norm. That is a
// caller convention, not an enforced invariant: unnormalized values are
// legal and their algebra is well defined, but Rotate2/3/4 on them
// produces a meaningless rotation.
type Quat[T Floats] struct {
	X, Y, Z, W T
}

// slerpEpsilon bounds the cosine of the angle above which Slerp falls
// back to linear coefficient interpolation, avoiding the near-zero
// sin(omega) divisor.
const slerpEpsilon = 1e-6

// Q constructs a quaternion from four components.
func Q[T Floats](x, y, z, w T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// QFromVector constructs a quaternion from a vector part and a scalar part.
func QFromVector[T Floats](v Vec3[T], w T) Quat[T] {
	return Quat[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity[T Floats]() Quat[T] {
	return Quat[T]{W: 1}
}

// QFromAxisAngle constructs a rotation of angle radians about axis.
// axis must already be normalized; it is not validated.
func QFromAxisAngle[T Floats](axis Vec3[T], angle T) Quat[T] {
	half := float64(angle) * 0.5
	s := T(math.Sin(half))
	return Quat[T]{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: T(math.Cos(half)),
	}
}

// QFromYawPitchRoll constructs a rotation from yaw (about Y), pitch
// (about X), and roll (about Z), applied in roll-pitch-yaw order. The
// coefficients are the pre-expanded product of the three half-angle
// rotations.
func QFromYawPitchRoll[T Floats](yaw, pitch, roll T) Quat[T] {
	halfRoll := float64(roll) * 0.5
	sr, cr := T(math.Sin(halfRoll)), T(math.Cos(halfRoll))
	halfPitch := float64(pitch) * 0.5
	sp, cp := T(math.Sin(halfPitch)), T(math.Cos(halfPitch))
	halfYaw := float64(yaw) * 0.5
	sy, cy := T(math.Sin(halfYaw)), T(math.Cos(halfYaw))

	return Quat[T]{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QFromRotationMatrix extracts the rotation encoded in the upper-left
// 3x3 block of m (which must be a pure rotation) using Shepperd's
// method: branch on the trace if positive, otherwise on the largest
// diagonal element. M11 wins diagonal ties with M22 and M33, then M22
// wins over M33; picking the largest keeps the square root well away
// from zero.
func QFromRotationMatrix[T Floats](m Mat4[T]) Quat[T] {
	trace := m.M11 + m.M22 + m.M33

	var q Quat[T]
	if trace > 0 {
		s := T(math.Sqrt(float64(trace + 1)))
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m.M23 - m.M32) * s
		q.Y = (m.M31 - m.M13) * s
		q.Z = (m.M12 - m.M21) * s
	} else if m.M11 >= m.M22 && m.M11 >= m.M33 {
		s := T(math.Sqrt(float64(1 + m.M11 - m.M22 - m.M33)))
		invS := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m.M12 + m.M21) * invS
		q.Z = (m.M13 + m.M31) * invS
		q.W = (m.M23 - m.M32) * invS
	} else if m.M22 > m.M33 {
		s := T(math.Sqrt(float64(1 + m.M22 - m.M11 - m.M33)))
		invS := 0.5 / s
		q.X = (m.M21 + m.M12) * invS
		q.Y = 0.5 * s
		q.Z = (m.M32 + m.M23) * invS
		q.W = (m.M31 - m.M13) * invS
	} else {
		s := T(math.Sqrt(float64(1 + m.M33 - m.M11 - m.M22)))
		invS := 0.5 / s
		q.X = (m.M31 + m.M13) * invS
		q.Y = (m.M32 + m.M23) * invS
		q.Z = 0.5 * s
		q.W = (m.M12 - m.M21) * invS
	}
	return q
}

// Add returns the componentwise sum q + r.
func (q Quat[T]) Add(r Quat[T]) Quat[T] {
	return Quat[T]{X: q.X + r.X, Y: q.Y + r.Y, Z: q.Z + r.Z, W: q.W + r.W}
}

// Sub returns the componentwise difference q - r.
func (q Quat[T]) Sub(r Quat[T]) Quat[T] {
	return Quat[T]{X: q.X - r.X, Y: q.Y - r.Y, Z: q.Z - r.Z, W: q.W - r.W}
}

// Neg returns the componentwise negation -q. As a rotation, -q
// represents the same orientation as q.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Scale returns q with every component multiplied by s.
func (q Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Mul returns the Hamilton product q * r: the cross product of the
// vector parts, plus each vector part scaled by the other's real part,
// with real part q.W*r.W - dot(q.vec, r.vec). As a rotation, q.Mul(r)
// applies r first, then q (matrix convention).
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	cx := q.Y*r.Z - q.Z*r.Y
	cy := q.Z*r.X - q.X*r.Z
	cz := q.X*r.Y - q.Y*r.X
	dot := q.X*r.X + q.Y*r.Y + q.Z*r.Z

	return Quat[T]{
		X: q.X*r.W + r.X*q.W + cx,
		Y: q.Y*r.W + r.Y*q.W + cy,
		Z: q.Z*r.W + r.Z*q.W + cz,
		W: q.W*r.W - dot,
	}
}

// Div returns q * r^-1.
func (q Quat[T]) Div(r Quat[T]) Quat[T] {
	return q.Mul(r.Inverse())
}

// Concatenate returns the rotation "a followed by b". Quaternion
// composition runs right to left, so this is b.Mul(a) — the operand
// swap is the point of this function.
func Concatenate[T Floats](a, b Quat[T]) Quat[T] {
	return b.Mul(a)
}

// Conjugate negates the vector part of q. For a unit quaternion the
// conjugate is the inverse rotation.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns conjugate(q) / |q|². The zero quaternion has no
// inverse and yields NaN components; there is no guard.
func (q Quat[T]) Inverse() Quat[T] {
	invNorm := 1 / q.LengthSquared()
	return Quat[T]{
		X: -q.X * invNorm,
		Y: -q.Y * invNorm,
		Z: -q.Z * invNorm,
		W: q.W * invNorm,
	}
}

// Dot returns the four-component dot product of q and r.
func (q Quat[T]) Dot(r Quat[T]) T {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// LengthSquared returns Dot(q, q).
func (q Quat[T]) LengthSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the Euclidean norm of q.
func (q Quat[T]) Length() T {
	return T(math.Sqrt(float64(q.LengthSquared())))
}

// Normalize returns q scaled to unit norm. The zero quaternion yields
// NaN components; there is no guard.
func (q Quat[T]) Normalize() Quat[T] {
	return q.Scale(1 / q.Length())
}

// IsIdentity reports whether q is exactly (0, 0, 0, 1).
func (q Quat[T]) IsIdentity() bool {
	return q == Quat[T]{W: 1}
}

// Lerp blends q toward r componentwise by t and renormalizes. The blend
// is sign-aware: when dot(q, r) < 0, r's contribution is negated so the
// blend runs along the shorter rotational path.
func (q Quat[T]) Lerp(r Quat[T], t T) Quat[T] {
	t1 := 1 - t
	var out Quat[T]
	if q.Dot(r) >= 0 {
		out = q.Scale(t1).Add(r.Scale(t))
	} else {
		out = q.Scale(t1).Sub(r.Scale(t))
	}
	return out.Normalize()
}

// Slerp spherically interpolates from q (t=0) to r (t=1) along the
// shortest great-circle arc. When the quaternions are nearly parallel
// the sin(omega) weights degenerate, so the coefficients fall back to
// linear interpolation; that branch is inherently near unit length. The
// general branch does not renormalize.
func (q Quat[T]) Slerp(r Quat[T], t T) Quat[T] {
	cosOmega := q.Dot(r)

	flip := false
	if cosOmega < 0 {
		flip = true
		cosOmega = -cosOmega
	}

	var s1, s2 T
	if cosOmega > 1-slerpEpsilon {
		s1 = 1 - t
		s2 = t
	} else {
		omega := math.Acos(float64(cosOmega))
		invSinOmega := 1 / math.Sin(omega)
		s1 = T(math.Sin((1-float64(t))*omega) * invSinOmega)
		s2 = T(math.Sin(float64(t)*omega) * invSinOmega)
	}
	if flip {
		s2 = -s2
	}

	return q.Scale(s1).Add(r.Scale(s2))
}

// Rotate2 rotates v by q in the XY plane, using the algebraically
// expanded sandwich product q v q*.
func (q Quat[T]) Rotate2(v Vec2[T]) Vec2[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	wz2 := q.W * z2
	xx2 := q.X * x2
	xy2 := q.X * y2
	yy2 := q.Y * y2
	zz2 := q.Z * z2

	return Vec2[T]{
		X: v.X*(1-yy2-zz2) + v.Y*(xy2-wz2),
		Y: v.X*(xy2+wz2) + v.Y*(1-xx2-zz2),
	}
}

// Rotate3 rotates v by q, using the algebraically expanded sandwich
// product q v q* rather than an intermediate rotation matrix.
func (q Quat[T]) Rotate3(v Vec3[T]) Vec3[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	wx2, wy2, wz2 := q.W*x2, q.W*y2, q.W*z2
	xx2, xy2, xz2 := q.X*x2, q.X*y2, q.X*z2
	yy2, yz2 := q.Y*y2, q.Y*z2
	zz2 := q.Z * z2

	return Vec3[T]{
		X: v.X*(1-yy2-zz2) + v.Y*(xy2-wz2) + v.Z*(xz2+wy2),
		Y: v.X*(xy2+wz2) + v.Y*(1-xx2-zz2) + v.Z*(yz2-wx2),
		Z: v.X*(xz2-wy2) + v.Y*(yz2+wx2) + v.Z*(1-xx2-yy2),
	}
}

// Rotate4 rotates the XYZ part of v by q and passes W through.
func (q Quat[T]) Rotate4(v Vec4[T]) Vec4[T] {
	r := q.Rotate3(Vec3[T]{X: v.X, Y: v.Y, Z: v.Z})
	return Vec4[T]{X: r.X, Y: r.Y, Z: r.Z, W: v.W}
}

// Compare orders quaternions lexicographically by X, then Y, then Z,
// then W. This is a storage order for sorted containers, not a
// rotational ordering.
func (q Quat[T]) Compare(r Quat[T]) int {
	if c := cmp.Compare(q.X, r.X); c != 0 {
		return c
	}
	if c := cmp.Compare(q.Y, r.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(q.Z, r.Z); c != 0 {
		return c
	}
	return cmp.Compare(q.W, r.W)
}

// String formats q as "<X, Y, Z, W>".
func (q Quat[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", q.X, q.Y, q.Z, q.W)
}
