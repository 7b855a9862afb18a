package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// The axis is normalized here; angle is in radians. A zero axis yields
// the identity.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	axis = axis.Normalize()
	if axis == (Vec3{}) {
		return QuatIdentity()
	}
	halfAngle := angle / 2
	s := math.Sin(halfAngle)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(halfAngle),
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length < 1e-12 {
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

// Mul multiplies two quaternions (combines rotations).
// The result applies other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	q = q.Normalize()

	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw), 0,
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw), 0,
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// Euler returns the rotation as XYZ Euler angles in radians, the order
// DCC tools use when importing per-object rotations.
func (q Quat) Euler() Vec3 {
	q = q.Normalize()

	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	x := math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	var y float64
	if math.Abs(sinp) >= 1 {
		y = math.Copysign(math.Pi/2, sinp)
	} else {
		y = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	z := math.Atan2(sinyCosp, cosyCosp)

	return Vec3{x, y, z}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
