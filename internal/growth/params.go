package growth

import "github.com/Faultbox/lowpoly-tree/internal/validation"

// MaxDepth bounds the recursion; a tree has at most 2^(MaxDepth-1) tips.
const MaxDepth = 20

// Params is one generation request as seen by the planner. Every field is
// bounded on both sides so non-finite values are rejected.
type Params struct {
	// InitialRadius is the stem radius at the root vertex.
	InitialRadius float64 `yaml:"initial_radius" validate:"gt=0,lte=10"`
	// RadiusFactor scales the radius after every segment.
	RadiusFactor float64 `yaml:"radius_factor" validate:"gt=0,lte=1"`
	// Depth is the number of segments along every lineage.
	Depth int `yaml:"depth" validate:"min=1,max=20"`
	// SectionLength is the nominal length of the first rotated segment.
	SectionLength float64 `yaml:"section_length" validate:"gte=0.05,lte=10"`
	// LengthFactor scales the nominal segment length per step.
	LengthFactor float64 `yaml:"length_factor" validate:"gt=0,lte=1"`
}

// DefaultParams returns the parameters of a medium-sized tree.
func DefaultParams() Params {
	return Params{
		InitialRadius: 1.0,
		RadiusFactor:  0.8,
		Depth:         10,
		SectionLength: 2.0,
		LengthFactor:  0.9,
	}
}

// Validate reports the first out-of-range parameter.
func (p Params) Validate() error {
	return validation.Struct(p)
}
