package growth

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// OrientationSampler draws fork orientations around a segment direction.
type OrientationSampler struct {
	rng   Random
	sigma float64 // degrees
}

// NewOrientationSampler returns a sampler drawing bend angles with the given
// standard deviation in degrees.
func NewOrientationSampler(rng Random, sigmaDeg float64) OrientationSampler {
	return OrientationSampler{rng: rng, sigma: sigmaDeg}
}

// Sample returns two rotations that bend direction by the same random angle
// (mean meanAngleDeg) toward opposite sides: b is a rolled half a turn
// further around direction than a. direction must be non-zero.
func (s OrientationSampler) Sample(direction math.Vec3, meanAngleDeg float64) (a, b math.Quat) {
	axis := perpendicular(direction)

	bendDeg := s.rng.Normal(meanAngleDeg, s.sigma)
	bend := math.QuatFromAxisAngle(axis, math.Radians(bendDeg))

	roll := s.rng.Uniform(0, gomath.Pi)
	a = math.QuatFromAxisAngle(direction, roll).Mul(bend)
	b = math.QuatFromAxisAngle(direction, roll+gomath.Pi).Mul(bend)
	return a, b
}

// perpendicular returns an axis orthogonal to v. The helper vector is v with
// Y and Z swapped; when that is parallel to v the axis falls back to the
// longer of v×Y and v×Z.
func perpendicular(v math.Vec3) math.Vec3 {
	const eps = 1e-9

	axis := v.Cross(v.SwapYZ())
	if axis.Length() > eps*v.Length()*v.Length() {
		return axis
	}

	ay := v.Cross(math.Vec3{Y: 1})
	az := v.Cross(math.Vec3{Z: 1})
	if ay.Length() >= az.Length() {
		return ay
	}
	return az
}
