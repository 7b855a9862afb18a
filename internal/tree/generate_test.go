package tree

import (
	"context"
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/lowpoly-tree/internal/foliage"
	"github.com/Faultbox/lowpoly-tree/internal/validation"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

func testRequest(seed int64) Request {
	req := DefaultRequest()
	req.Seed = seed
	req.Params.Depth = 6
	req.StemMaterial = "bark"
	req.Materials = []string{"bark", "leaf_green", "leaf_light"}
	return req
}

func TestGenerateRejectsInvalidRequest(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Request)
		field  string
	}{
		{"zero depth", func(r *Request) { r.Params.Depth = 0 }, "depth"},
		{"radius factor above one", func(r *Request) { r.Params.RadiusFactor = 1.5 }, "radius_factor"},
		{"negative step", func(r *Request) { r.Tunables.VerticalStep = -1 }, "vertical_step"},
		{"unknown geometry", func(r *Request) { r.Leaves.Geometry = foliage.Geometry("cone") }, "geometry"},
		{"infinite section length", func(r *Request) { r.Params.SectionLength = gomath.Inf(1) }, "section_length"},
		{"infinite leaf size", func(r *Request) { r.Leaves.Size = gomath.Inf(1) }, "size"},
		{"infinite origin", func(r *Request) { r.Origin.Y = gomath.Inf(-1) }, "origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest(1)
			tt.modify(&req)

			tr, err := Generate(req)
			if tr != nil {
				t.Error("expected no tree for invalid request")
			}
			if !errors.Is(err, validation.ErrInvalidParams) {
				t.Fatalf("expected ErrInvalidParams, got %v", err)
			}
			var pe *validation.ParamError
			if errors.As(err, &pe) && pe.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, pe.Field)
			}
		})
	}
}

func TestGenerateStructure(t *testing.T) {
	tr, err := Generate(testRequest(3))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if tr.Name != TreeGroup || tr.Stem.Name != StemGroup || tr.Leaves.Name != LeavesGroup {
		t.Errorf("unexpected group names %q/%q/%q", tr.Name, tr.Stem.Name, tr.Leaves.Name)
	}
	if tr.Stem.Material != "bark" {
		t.Errorf("expected stem material bark, got %q", tr.Stem.Material)
	}
	if len(tr.Leaves.Leaves) != len(tr.Stem.Outer) {
		t.Errorf("expected one leaf per tip: %d leaves, %d tips", len(tr.Leaves.Leaves), len(tr.Stem.Outer))
	}
	if len(tr.Stem.Radii) != tr.Stem.Mesh.Len() {
		t.Errorf("expected one radius per vertex: %d radii, %d vertices", len(tr.Stem.Radii), tr.Stem.Mesh.Len())
	}

	for _, ra := range tr.Stem.Radii {
		if got := tr.Stem.Mesh.Radius(ra.Vertex); got != ra.Radius {
			t.Errorf("vertex %d: mesh radius %f, assigned %f", ra.Vertex, got, ra.Radius)
		}
		if ra.Radius <= 0 {
			t.Errorf("vertex %d: non-positive radius %f", ra.Vertex, ra.Radius)
		}
	}

	for _, leaf := range tr.Leaves.Leaves {
		if leaf.Material != "leaf_green" && leaf.Material != "leaf_light" {
			t.Errorf("%s: unexpected material %q", leaf.Name, leaf.Material)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(testRequest(42))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(testRequest(42))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if a.ID == b.ID {
		t.Error("expected distinct tree IDs")
	}
	assertSameShape(t, a, b)
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a, _ := Generate(testRequest(1))
	b, _ := Generate(testRequest(2))

	if a.Stem.Mesh.Len() == b.Stem.Mesh.Len() {
		same := true
		for i, v := range a.Stem.Mesh.Vertices() {
			if v.Position != b.Stem.Mesh.Vertices()[i].Position {
				same = false
				break
			}
		}
		if same {
			t.Error("expected different seeds to grow different trees")
		}
	}
}

func TestGenerateOrigin(t *testing.T) {
	origin := math.Vec3{X: 10, Y: -4, Z: 2}

	base, err := Generate(testRequest(5))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	req := testRequest(5)
	req.Origin = origin
	moved, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if got := moved.World.TransformVec3(moved.Stem.Mesh.Position(0)); got != origin {
		t.Errorf("expected trunk base at %v, got %v", origin, got)
	}
	for i, leaf := range moved.Leaves.Leaves {
		want := base.Leaves.Leaves[i].Position.Add(origin)
		if leaf.Position.Distance(want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", leaf.Name, want, leaf.Position)
		}
	}
}

func TestStats(t *testing.T) {
	tr, err := Generate(testRequest(9))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	s := tr.Stats()

	if s.Vertices != tr.Stem.Mesh.Len() {
		t.Errorf("expected %d vertices, got %d", tr.Stem.Mesh.Len(), s.Vertices)
	}
	if s.Edges != s.Vertices-1 {
		t.Errorf("expected %d edges in a tree skeleton, got %d", s.Vertices-1, s.Edges)
	}
	if s.Tips != s.Leaves {
		t.Errorf("expected tips == leaves, got %d and %d", s.Tips, s.Leaves)
	}
	if s.Height <= 0 {
		t.Errorf("expected positive height, got %f", s.Height)
	}
	if s.CrownSpread < 0 {
		t.Errorf("expected non-negative crown spread, got %f", s.CrownSpread)
	}
}

func TestGenerateBatch(t *testing.T) {
	req := testRequest(100)

	trees, err := GenerateBatch(context.Background(), req, 5, 3)
	if err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}
	if len(trees) != 5 {
		t.Fatalf("expected 5 trees, got %d", len(trees))
	}

	for i, tr := range trees {
		if tr.Request.Seed != req.Seed+int64(i) {
			t.Errorf("tree %d: expected seed %d, got %d", i, req.Seed+int64(i), tr.Request.Seed)
		}
		single, err := Generate(tr.Request)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		assertSameShape(t, single, tr)
	}
}

func TestGenerateBatchErrors(t *testing.T) {
	if _, err := GenerateBatch(context.Background(), testRequest(0), 0, 1); err == nil {
		t.Error("expected error for zero count")
	}

	bad := testRequest(0)
	bad.Params.Depth = 50
	if _, err := GenerateBatch(context.Background(), bad, 2, 1); !errors.Is(err, validation.ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := GenerateBatch(ctx, testRequest(0), 3, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func assertSameShape(t *testing.T, a, b *Tree) {
	t.Helper()

	va, vb := a.Stem.Mesh.Vertices(), b.Stem.Mesh.Vertices()
	if len(va) != len(vb) {
		t.Fatalf("vertex count differs: %d vs %d", len(va), len(vb))
	}
	for i := range va {
		if va[i] != vb[i] {
			t.Errorf("vertex %d differs: %+v vs %+v", i, va[i], vb[i])
		}
	}

	la, lb := a.Leaves.Leaves, b.Leaves.Leaves
	if len(la) != len(lb) {
		t.Fatalf("leaf count differs: %d vs %d", len(la), len(lb))
	}
	for i := range la {
		if la[i] != lb[i] {
			t.Errorf("leaf %d differs: %+v vs %+v", i, la[i], lb[i])
		}
	}
}
