package tree

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/lowpoly-tree/internal/foliage"
	"github.com/Faultbox/lowpoly-tree/internal/growth"
	"github.com/Faultbox/lowpoly-tree/internal/logger"
	"github.com/Faultbox/lowpoly-tree/internal/random"
	"github.com/Faultbox/lowpoly-tree/internal/skeleton"
	"github.com/Faultbox/lowpoly-tree/internal/validation"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// Request is one tree generation request.
type Request struct {
	Seed     int64
	Params   growth.Params
	Tunables growth.Tunables
	Leaves   foliage.Options
	// StemMaterial is assigned to the stem group.
	StemMaterial string
	// Materials are the available material names; leaf materials are
	// picked from those matching Leaves.MaterialPrefix.
	Materials []string
	// Origin is where the trunk base is placed.
	Origin math.Vec3
}

// DefaultRequest returns a request for a default tree with seed 0.
func DefaultRequest() Request {
	return Request{
		Params:   growth.DefaultParams(),
		Tunables: growth.DefaultTunables(),
		Leaves:   foliage.DefaultOptions(),
	}
}

// Validate checks every parameter of the request.
func (r Request) Validate() error {
	if err := r.Params.Validate(); err != nil {
		return err
	}
	if err := r.Tunables.Validate(); err != nil {
		return fmt.Errorf("growth tunables: %w", err)
	}
	if err := r.Leaves.Validate(); err != nil {
		return fmt.Errorf("leaves: %w", err)
	}
	return validation.Finite("origin", r.Origin.X, r.Origin.Y, r.Origin.Z)
}

// Generate grows one tree. Invalid requests are rejected before any
// geometry is created.
func Generate(req Request) (*Tree, error) {
	if err := req.Validate(); err != nil {
		logger.Debug("rejected tree request", zap.Error(err))
		return nil, err
	}

	rng := random.New(req.Seed)
	mesh, root := skeleton.New(math.Vec3{})

	planner, err := growth.NewPlanner(mesh, rng, req.Params, req.Tunables)
	if err != nil {
		return nil, err
	}
	res := planner.Grow(root)

	for _, ra := range res.Radii {
		mesh.SetRadius(ra.Vertex, ra.Radius)
	}

	placer, err := foliage.NewPlacer(rng, req.Leaves, req.Materials, req.Tunables.BranchSigma)
	if err != nil {
		return nil, err
	}
	if len(placer.Materials()) == 0 && len(req.Materials) > 0 {
		logger.Warn("no leaf material matches prefix",
			zap.String("prefix", req.Leaves.MaterialPrefix),
			zap.Strings("materials", req.Materials),
		)
	}
	tips := make([]math.Vec3, len(res.Outer))
	for i, v := range res.Outer {
		tips[i] = mesh.Position(v)
	}
	world := math.TranslateVec3(req.Origin)

	t := &Tree{
		ID:      uuid.New(),
		Name:    TreeGroup,
		Request: req,
		World:   world,
		Stem: Stem{
			Name:     StemGroup,
			Mesh:     mesh,
			Material: req.StemMaterial,
			Outer:    res.Outer,
			Radii:    res.Radii,
		},
		Leaves: Leaves{
			Name:   LeavesGroup,
			Leaves: placer.Place(world, tips),
		},
	}

	logger.Info("tree generated",
		zap.String("id", t.ID.String()),
		zap.Int64("seed", req.Seed),
		zap.Int("depth", req.Params.Depth),
		zap.Int("vertices", mesh.Len()),
		zap.Int("tips", len(res.Outer)),
		zap.Int("leaves", len(t.Leaves.Leaves)),
		zap.Int("leaf_materials", len(placer.Materials())),
	)
	return t, nil
}

// GenerateBatch grows count trees with seeds req.Seed, req.Seed+1, ...
// using up to workers goroutines. Each tree equals what Generate returns
// for its seed. The first error cancels trees not yet started.
func GenerateBatch(ctx context.Context, req Request, count, workers int) ([]*Tree, error) {
	if count < 1 {
		return nil, fmt.Errorf("batch count must be at least 1 (got %d)", count)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	trees := make([]*Tree, count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		r := req
		r.Seed = req.Seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := Generate(r)
			if err != nil {
				return fmt.Errorf("tree %d (seed %d): %w", i, r.Seed, err)
			}
			trees[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("batch generated", zap.Int("count", count), zap.Int("workers", workers))
	return trees, nil
}
