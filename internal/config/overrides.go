package config

import "github.com/Faultbox/lowpoly-tree/internal/foliage"

// Overrides are command-line values that take priority over the config
// file. Nil fields are left alone.
type Overrides struct {
	ConfigPath string
	Debug      bool

	Seed          *int64
	Depth         *int
	InitialRadius *float64
	RadiusFactor  *float64
	SectionLength *float64
	LengthFactor  *float64

	LeafSize      *float64
	LeafDeviation *float64
	LeafGeometry  *string

	Output  *string
	Format  *string
	Count   *int
	Workers *int
}

// applyOverrides applies CLI overrides to the config.
func applyOverrides(cfg *Config, ov Overrides) {
	if ov.Debug {
		cfg.Logging.Level = "debug"
	}

	setInt64(&cfg.Tree.Seed, ov.Seed)
	setInt(&cfg.Tree.Depth, ov.Depth)
	setFloat(&cfg.Tree.InitialRadius, ov.InitialRadius)
	setFloat(&cfg.Tree.RadiusFactor, ov.RadiusFactor)
	setFloat(&cfg.Tree.SectionLength, ov.SectionLength)
	setFloat(&cfg.Tree.LengthFactor, ov.LengthFactor)

	setFloat(&cfg.Leaves.Size, ov.LeafSize)
	setFloat(&cfg.Leaves.SizeDeviation, ov.LeafDeviation)
	if ov.LeafGeometry != nil {
		cfg.Leaves.Geometry = foliage.Geometry(*ov.LeafGeometry)
	}

	setString(&cfg.Output.Path, ov.Output)
	setString(&cfg.Output.Format, ov.Format)
	setInt(&cfg.Output.Count, ov.Count)
	setInt(&cfg.Output.Workers, ov.Workers)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setInt64(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
