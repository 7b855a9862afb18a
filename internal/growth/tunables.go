package growth

import "github.com/Faultbox/lowpoly-tree/internal/validation"

// Tunables shape the depth curves and the per-fork randomness.
// A Tunables value is never mutated after it is handed to a Planner.
type Tunables struct {
	// Bend angle curve, degrees.
	MaxAngle   float64 `yaml:"max_angle" validate:"gte=0,lte=180"`
	StartAngle float64 `yaml:"start_angle" validate:"gte=0,ltefield=MaxAngle"`
	AngleK     float64 `yaml:"angle_k" validate:"gte=0,lte=10"`

	// Branch probability curve.
	MaxBranchProb   float64 `yaml:"max_branch_prob" validate:"gte=0,lte=1"`
	StartBranchProb float64 `yaml:"start_branch_prob" validate:"gte=0,ltefield=MaxBranchProb"`
	BranchK         float64 `yaml:"branch_k" validate:"gte=0,lte=10"`

	// Segment length randomization.
	ScaleSigma        float64 `yaml:"scale_sigma" validate:"gte=0,lte=1"`
	MinLengthFraction float64 `yaml:"min_length_fraction" validate:"gte=0,lte=1"`

	// BranchSigma is the standard deviation of the bend angle draw, degrees.
	BranchSigma float64 `yaml:"branch_sigma" validate:"gte=0,lte=90"`
	// VerticalStep is the length of the trunk's first, straight-up segment.
	VerticalStep float64 `yaml:"vertical_step" validate:"gt=0,lte=10"`
}

// DefaultTunables returns the stock curve constants.
func DefaultTunables() Tunables {
	return Tunables{
		MaxAngle:          35.0,
		StartAngle:        7.0,
		AngleK:            0.3,
		MaxBranchProb:     0.9,
		StartBranchProb:   0.2,
		BranchK:           0.8,
		ScaleSigma:        0.3,
		MinLengthFraction: 0.2,
		BranchSigma:       1.4,
		VerticalStep:      1.0,
	}
}

// Validate reports the first out-of-range tunable.
func (t Tunables) Validate() error {
	return validation.Struct(t)
}
