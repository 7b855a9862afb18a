// Package foliage places leaf proxies at the tips of a grown skeleton.
package foliage

import (
	"fmt"
	"strings"

	"github.com/Faultbox/lowpoly-tree/internal/growth"
	"github.com/Faultbox/lowpoly-tree/internal/validation"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// Options controls leaf size, look and tilt.
type Options struct {
	// Size is the base edge length (cube) or radius (ico-sphere).
	Size float64 `yaml:"size" validate:"gte=0,lte=10"`
	// SizeDeviation is the allowed random size deviation in percent.
	SizeDeviation float64 `yaml:"size_deviation" validate:"gte=0,lt=100"`
	// Geometry is the proxy mesh for every leaf.
	Geometry Geometry `yaml:"geometry" validate:"oneof=ico_sphere cube"`
	// MaterialPrefix selects leaf materials by name prefix.
	MaterialPrefix string `yaml:"material_prefix"`
	// MaxTilt bounds the random tilt away from +Z, degrees.
	MaxTilt float64 `yaml:"max_tilt" validate:"gte=0,lte=180"`
}

// DefaultOptions returns the stock leaf options.
func DefaultOptions() Options {
	return Options{
		Size:           0.5,
		SizeDeviation:  10,
		Geometry:       GeometryIcoSphere,
		MaterialPrefix: "leaf_",
		MaxTilt:        45,
	}
}

// Validate reports the first out-of-range option.
func (o Options) Validate() error {
	return validation.Struct(o)
}

// Leaf is one placed leaf proxy.
type Leaf struct {
	Name     string
	Position math.Vec3
	Size     float64
	Rotation math.Quat
	// Material is empty when no material matched the prefix.
	Material string
	Geometry Geometry
}

// Transform returns the leaf's model matrix: scale, then rotate, then
// translate to Position.
func (l Leaf) Transform() math.Mat4 {
	return math.TranslateVec3(l.Position).
		Mul(l.Rotation.ToMat4()).
		Mul(math.Scale(l.Size, l.Size, l.Size))
}

// Placer places leaves. It draws from the same random stream as the
// skeleton so a seed fixes the whole tree.
type Placer struct {
	opts      Options
	rng       growth.Random
	sampler   growth.OrientationSampler
	materials []string
}

// NewPlacer validates opts and keeps the materials whose name starts with
// opts.MaterialPrefix. sigmaDeg is the tilt angle's standard deviation.
func NewPlacer(rng growth.Random, opts Options, materials []string, sigmaDeg float64) (*Placer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Placer{
		opts:      opts,
		rng:       rng,
		sampler:   growth.NewOrientationSampler(rng, sigmaDeg),
		materials: MatchMaterials(materials, opts.MaterialPrefix),
	}, nil
}

// Materials returns the leaf materials the placer chooses from.
func (p *Placer) Materials() []string {
	return p.materials
}

// Place puts one leaf on every point, transformed into world space.
func (p *Placer) Place(world math.Mat4, points []math.Vec3) []Leaf {
	leaves := make([]Leaf, 0, len(points))
	deviation := p.opts.Size * p.opts.SizeDeviation / 100

	for i, pt := range points {
		leaf := Leaf{
			Name:     leafName(i),
			Position: world.TransformVec3(pt),
			Size:     p.rng.Uniform(p.opts.Size-deviation, p.opts.Size+deviation),
			Geometry: p.opts.Geometry,
		}
		if len(p.materials) > 0 {
			leaf.Material = p.materials[p.rng.Choice(len(p.materials))]
		}
		tilt := p.rng.Uniform(0, p.opts.MaxTilt)
		leaf.Rotation, _ = p.sampler.Sample(math.Up, tilt)
		leaves = append(leaves, leaf)
	}
	return leaves
}

// MatchMaterials returns the names starting with prefix, in order.
func MatchMaterials(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}

func leafName(i int) string {
	if i == 0 {
		return "Leaf"
	}
	return fmt.Sprintf("Leaf.%03d", i)
}
