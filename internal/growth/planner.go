// Package growth grows the stem skeleton of a tree.
//
// A Planner extrudes one vertex per recursive step, decides whether to fork
// into two branches, and collects the terminal ("outer") vertices together
// with the radius assigned to every vertex it created. Geometry is written
// through the Mesh interface; all randomness comes from an injected Random.
package growth

import (
	"fmt"

	"github.com/Faultbox/lowpoly-tree/internal/skeleton"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// Mesh is the host geometry the planner grows into.
type Mesh interface {
	// Extrude creates a vertex connected to from and returns it.
	Extrude(from skeleton.VertexID) skeleton.VertexID
	Position(v skeleton.VertexID) math.Vec3
	SetPosition(v skeleton.VertexID, p math.Vec3)
}

// Random is the planner's source of randomness.
type Random interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
	Normal(mean, stddev float64) float64
	// Choice returns an index in [0, n).
	Choice(n int) int
}

// RadiusAssignment records the stem radius at one vertex.
type RadiusAssignment struct {
	Vertex skeleton.VertexID
	Radius float64
}

// Result is what a growth call hands back to its caller.
type Result struct {
	Outer []skeleton.VertexID
	Radii []RadiusAssignment
}

// Planner grows one tree. It is not safe for concurrent use; run one
// Planner per tree.
type Planner struct {
	mesh    Mesh
	rng     Random
	params  Params
	curves  Curves
	sampler OrientationSampler
	step    float64
}

// NewPlanner validates params and tunables and returns a planner bound to
// mesh and rng. Nothing is extruded until Grow is called.
func NewPlanner(mesh Mesh, rng Random, params Params, tunables Tunables) (*Planner, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := tunables.Validate(); err != nil {
		return nil, fmt.Errorf("growth tunables: %w", err)
	}
	return &Planner{
		mesh:   mesh,
		rng:    rng,
		params: params,
		curves: Curves{
			Tunables:      tunables,
			SectionLength: params.SectionLength,
			LengthFactor:  params.LengthFactor,
		},
		sampler: NewOrientationSampler(rng, tunables.BranchSigma),
		step:    tunables.VerticalStep,
	}, nil
}

// Curves returns the depth curves the planner evaluates.
func (p *Planner) Curves() Curves {
	return p.curves
}

// Grow grows a full skeleton from root. The root carries InitialRadius and
// the first extruded vertex InitialRadius*RadiusFactor.
func (p *Planner) Grow(root skeleton.VertexID) Result {
	return p.grow(state{
		vertex:      root,
		radii:       []RadiusAssignment{{Vertex: root, Radius: p.params.InitialRadius}},
		radius:      p.params.InitialRadius * p.params.RadiusFactor,
		depth:       p.params.Depth,
		orientation: math.QuatIdentity(),
	})
}

// state is the per-call growth state. radii is owned by the lineage that
// built it and is copied, never appended in place, by children.
type state struct {
	vertex      skeleton.VertexID
	radii       []RadiusAssignment
	radius      float64
	depth       int
	steps       int
	direction   math.Vec3 // previous segment; zero at the lineage root
	orientation math.Quat
}

func (p *Planner) grow(s state) Result {
	next := p.mesh.Extrude(s.vertex)
	origin := p.mesh.Position(s.vertex)

	var pos math.Vec3
	if s.direction == (math.Vec3{}) {
		pos = origin.Add(math.Vec3{Z: p.step})
	} else {
		seg := s.direction.Normalize().Scale(p.curves.LengthFor(p.rng, s.steps))
		pos = origin.Add(s.orientation.Rotate(seg))
	}
	p.mesh.SetPosition(next, pos)
	direction := pos.Sub(origin)

	radii := make([]RadiusAssignment, len(s.radii), len(s.radii)+1)
	copy(radii, s.radii)
	radii = append(radii, RadiusAssignment{Vertex: next, Radius: s.radius})

	if s.depth <= 1 {
		return Result{Outer: []skeleton.VertexID{next}, Radii: radii}
	}

	child := state{
		vertex:    next,
		radii:     radii,
		radius:    s.radius * p.params.RadiusFactor,
		depth:     s.depth - 1,
		steps:     s.steps + 1,
		direction: direction,
	}

	if p.curves.ShouldBranch(p.rng, s.steps) {
		a, b := p.sampler.Sample(direction, p.curves.AngleFor(s.steps))
		first, second := child, child
		first.orientation = a
		second.orientation = b
		return merge(p.grow(first), p.grow(second))
	}

	a, b := p.sampler.Sample(direction, p.curves.AngleFor(s.steps)/2)
	child.orientation = a
	if p.rng.Choice(2) == 1 {
		child.orientation = b
	}
	return p.grow(child)
}

// merge joins the results of two sibling lineages. Both radius lists start
// with the same ancestry; second contributes only vertices first lacks, in
// its own order.
func merge(first, second Result) Result {
	outer := make([]skeleton.VertexID, 0, len(first.Outer)+len(second.Outer))
	outer = append(outer, first.Outer...)
	outer = append(outer, second.Outer...)

	seen := make(map[skeleton.VertexID]struct{}, len(first.Radii))
	radii := make([]RadiusAssignment, 0, len(first.Radii)+len(second.Radii))
	for _, ra := range first.Radii {
		seen[ra.Vertex] = struct{}{}
		radii = append(radii, ra)
	}
	for _, ra := range second.Radii {
		if _, ok := seen[ra.Vertex]; ok {
			continue
		}
		radii = append(radii, ra)
	}
	return Result{Outer: outer, Radii: radii}
}
