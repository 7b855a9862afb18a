package skeleton

import (
	gomath "math"

	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3 `yaml:"min"`
	Max math.Vec3 `yaml:"max"`
}

// EmptyBounds returns an inverted box that any point extends.
func EmptyBounds() Bounds {
	inf := gomath.Inf(1)
	return Bounds{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend grows b to include p.
func (b *Bounds) Extend(p math.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Size returns the box extents.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Bounds returns the bounding box of all vertices.
func (m *Mesh) Bounds() Bounds {
	b := EmptyBounds()
	for _, v := range m.vertices {
		b.Extend(v.Position)
	}
	return b
}
