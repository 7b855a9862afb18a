package growth

import (
	"testing"

	"github.com/Faultbox/lowpoly-tree/internal/random"
	"github.com/Faultbox/lowpoly-tree/internal/skeleton"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// scriptedRandom returns fixed draws: Uniform yields lo+u*(hi-lo), Normal
// yields mean+offset*stddev and Choice yields choice%n.
type scriptedRandom struct {
	u      float64
	offset float64
	choice int
	calls  int
}

func (r *scriptedRandom) Uniform(lo, hi float64) float64 {
	r.calls++
	return lo + r.u*(hi-lo)
}

func (r *scriptedRandom) Normal(mean, stddev float64) float64 {
	r.calls++
	return mean + r.offset*stddev
}

func (r *scriptedRandom) Choice(n int) int {
	r.calls++
	return r.choice % n
}

// forbiddenRandom fails the test on any draw.
type forbiddenRandom struct{ t *testing.T }

func (r forbiddenRandom) Uniform(lo, hi float64) float64 {
	r.t.Fatal("unexpected Uniform draw")
	return 0
}

func (r forbiddenRandom) Normal(mean, stddev float64) float64 {
	r.t.Fatal("unexpected Normal draw")
	return 0
}

func (r forbiddenRandom) Choice(n int) int {
	r.t.Fatal("unexpected Choice draw")
	return 0
}

func tunablesWithBranchProb(p float64) Tunables {
	tu := DefaultTunables()
	tu.StartBranchProb = p
	tu.MaxBranchProb = p
	return tu
}

func growTree(t *testing.T, params Params, tunables Tunables, seed int64) (*skeleton.Mesh, Result) {
	t.Helper()
	mesh, root := skeleton.New(math.Vec3{})
	p, err := NewPlanner(mesh, random.New(seed), params, tunables)
	if err != nil {
		t.Fatalf("failed to create planner: %v", err)
	}
	return mesh, p.Grow(root)
}
