// Package tree assembles complete trees: a grown stem skeleton with skin
// radii and a group of leaves at its tips.
package tree

import (
	"github.com/google/uuid"

	"github.com/Faultbox/lowpoly-tree/internal/foliage"
	"github.com/Faultbox/lowpoly-tree/internal/growth"
	"github.com/Faultbox/lowpoly-tree/internal/skeleton"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// Group names used for every generated tree.
const (
	TreeGroup   = "Tree"
	StemGroup   = "Stem"
	LeavesGroup = "Leaves"
)

// Stem is the stem group: the skeleton in local space plus its material.
type Stem struct {
	Name     string
	Mesh     *skeleton.Mesh
	Material string
	// Outer are the branch tips, in growth order.
	Outer []skeleton.VertexID
	// Radii are the skin radii, one per vertex.
	Radii []growth.RadiusAssignment
}

// Leaves is the leaves group.
type Leaves struct {
	Name   string
	Leaves []foliage.Leaf
}

// Tree is one generated tree.
type Tree struct {
	ID      uuid.UUID
	Name    string
	Request Request
	// World places the stem's local coordinates in the scene. Leaf
	// positions are already in world space.
	World  math.Mat4
	Stem   Stem
	Leaves Leaves
}

// Stats summarizes a tree's shape.
type Stats struct {
	Vertices    int             `yaml:"vertices"`
	Edges       int             `yaml:"edges"`
	Tips        int             `yaml:"tips"`
	Leaves      int             `yaml:"leaves"`
	Height      float64         `yaml:"height"`
	CrownSpread float64         `yaml:"crown_spread"`
	Bounds      skeleton.Bounds `yaml:"bounds"`
}

// Stats computes the tree's statistics in local space. CrownSpread is the
// largest ground-plane distance of a tip from the trunk base.
func (t *Tree) Stats() Stats {
	mesh := t.Stem.Mesh
	bounds := mesh.Bounds()
	base := mesh.Position(0)

	var spread float64
	for _, tip := range t.Stem.Outer {
		if d := mesh.Position(tip).XY().Distance(base.XY()); d > spread {
			spread = d
		}
	}

	return Stats{
		Vertices:    mesh.Len(),
		Edges:       len(mesh.Edges()),
		Tips:        len(t.Stem.Outer),
		Leaves:      len(t.Leaves.Leaves),
		Height:      bounds.Max.Z - base.Z,
		CrownSpread: spread,
		Bounds:      bounds,
	}
}
