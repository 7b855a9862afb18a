package growth

import "math"

// Curves evaluates the depth-dependent growth targets. steps counts the
// segments already grown along the current lineage, starting at 0.
type Curves struct {
	Tunables      Tunables
	SectionLength float64
	LengthFactor  float64
}

// AngleFor returns the mean bend angle in degrees. It rises from StartAngle
// toward MaxAngle.
func (c Curves) AngleFor(steps int) float64 {
	t := c.Tunables
	return t.MaxAngle - (t.MaxAngle-t.StartAngle)*math.Exp(-float64(steps)*t.AngleK)
}

// BranchProbabilityFor returns the chance of forking after the given step.
// It rises from StartBranchProb toward MaxBranchProb.
func (c Curves) BranchProbabilityFor(steps int) float64 {
	t := c.Tunables
	return t.MaxBranchProb - (t.MaxBranchProb-t.StartBranchProb)*math.Exp(-float64(steps)*t.BranchK)
}

// NominalLength is the unrandomized segment length for a step.
func (c Curves) NominalLength(steps int) float64 {
	return c.SectionLength * math.Pow(c.LengthFactor, float64(steps))
}

// LengthFor draws a segment length around NominalLength, floored at
// SectionLength*MinLengthFraction.
func (c Curves) LengthFor(rng Random, steps int) float64 {
	nominal := c.NominalLength(steps)
	l := math.Abs(rng.Normal(nominal, c.Tunables.ScaleSigma*nominal))
	return math.Max(l, c.SectionLength*c.Tunables.MinLengthFraction)
}

// ShouldBranch draws one uniform value against BranchProbabilityFor.
func (c Curves) ShouldBranch(rng Random, steps int) bool {
	return rng.Uniform(0, 1) < c.BranchProbabilityFor(steps)
}
