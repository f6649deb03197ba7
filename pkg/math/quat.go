package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians. A non-unit axis
// yields a non-unit quaternion; callers normalize downstream.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// Length returns the quaternion magnitude.
func (q Quat) Length() float32 {
	return float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
}

// Normalize returns a normalized quaternion.
// A quaternion with near-zero magnitude normalizes to the identity.
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Mul multiplies two quaternions using the Hamilton product.
// Not commutative: q.Mul(p) applies p first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Conjugate returns the quaternion with the vector part negated.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the inverse rotation, conjugate(q) / |q|^2.
// For a unit quaternion this equals the conjugate. A zero quaternion
// inverts to the identity.
func (q Quat) Inverse() Quat {
	lenSq := q.Dot(q)
	if lenSq == 0 {
		return QuatIdentity()
	}
	c := q.Conjugate()
	return Quat{X: c.X / lenSq, Y: c.Y / lenSq, Z: c.Z / lenSq, W: c.W / lenSq}
}

// Rotate rotates vector p by the quaternion, equivalent to the vector
// part of q * (p, 0) * conjugate(q) but without forming the products.
func (q Quat) Rotate(p Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(p).Scale(2)
	return p.Add(t.Scale(q.W)).Add(qv.Cross(t))
}

// ToEuler converts the quaternion to yaw, pitch and roll in degrees.
// The arcsine argument is clamped so gimbal lock yields exactly +-90
// degrees of pitch.
func (q Quat) ToEuler() (yaw, pitch, roll float32) {
	sinr := 2 * (q.W*q.X + q.Y*q.Z)
	cosr := 1 - 2*(q.X*q.X+q.Y*q.Y)
	roll = Degrees(float32(math.Atan2(float64(sinr), float64(cosr))))

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if sinp >= 1 {
		pitch = 90
	} else if sinp <= -1 {
		pitch = -90
	} else {
		pitch = Degrees(float32(math.Asin(float64(sinp))))
	}

	siny := 2 * (q.W*q.Z + q.X*q.Y)
	cosy := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	yaw = Degrees(float32(math.Atan2(float64(siny), float64(cosy))))

	return yaw, pitch, roll
}
