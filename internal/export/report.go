package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/lowpoly-tree/internal/growth"
	"github.com/Faultbox/lowpoly-tree/internal/tree"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// Report is the YAML summary of one tree.
type Report struct {
	ID           string         `yaml:"id"`
	Seed         int64          `yaml:"seed"`
	Params       growth.Params  `yaml:"params"`
	StemMaterial string         `yaml:"stem_material,omitempty"`
	Stats        tree.Stats     `yaml:"stats"`
	Groups       []GroupReport  `yaml:"groups"`
	Leaves       []LeafReport   `yaml:"leaves"`
	Radii        []RadiusReport `yaml:"radii"`
}

// GroupReport is one node of the Tree > Stem/Leaves hierarchy. Objects
// names the OBJ objects the group holds.
type GroupReport struct {
	Name     string        `yaml:"name"`
	Objects  []string      `yaml:"objects,omitempty"`
	Children []GroupReport `yaml:"children,omitempty"`
}

// LeafReport describes one leaf in world space. Rotation is XYZ Euler
// angles in degrees.
type LeafReport struct {
	Name     string    `yaml:"name"`
	Position math.Vec3 `yaml:"position"`
	Size     float64   `yaml:"size"`
	Rotation math.Vec3 `yaml:"rotation"`
	Material string    `yaml:"material,omitempty"`
	Geometry string    `yaml:"geometry"`
}

// RadiusReport is the skin radius of one stem vertex.
type RadiusReport struct {
	Vertex int     `yaml:"vertex"`
	Radius float64 `yaml:"radius"`
}

// NewReport summarizes t.
func NewReport(t *tree.Tree) Report {
	r := Report{
		ID:           t.ID.String(),
		Seed:         t.Request.Seed,
		Params:       t.Request.Params,
		StemMaterial: t.Stem.Material,
		Stats:        t.Stats(),
		Groups:       []GroupReport{groups(t)},
		Leaves:       make([]LeafReport, 0, len(t.Leaves.Leaves)),
		Radii:        make([]RadiusReport, 0, len(t.Stem.Radii)),
	}

	for _, l := range t.Leaves.Leaves {
		e := l.Rotation.Euler()
		r.Leaves = append(r.Leaves, LeafReport{
			Name:     l.Name,
			Position: l.Position,
			Size:     l.Size,
			Rotation: math.Vec3{X: math.Degrees(e.X), Y: math.Degrees(e.Y), Z: math.Degrees(e.Z)},
			Material: l.Material,
			Geometry: string(l.Geometry),
		})
	}
	for _, ra := range t.Stem.Radii {
		r.Radii = append(r.Radii, RadiusReport{Vertex: int(ra.Vertex), Radius: ra.Radius})
	}
	return r
}

func groups(t *tree.Tree) GroupReport {
	leaves := make([]string, len(t.Leaves.Leaves))
	for i, l := range t.Leaves.Leaves {
		leaves[i] = l.Name
	}
	return GroupReport{
		Name: t.Name,
		Children: []GroupReport{
			{Name: t.Stem.Name, Objects: []string{t.Stem.Name}},
			{Name: t.Leaves.Name, Objects: leaves},
		},
	}
}

// WriteReport writes one YAML document per tree.
func WriteReport(w io.Writer, trees ...*tree.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, t := range trees {
		if err := enc.Encode(NewReport(t)); err != nil {
			return err
		}
	}
	return enc.Close()
}
