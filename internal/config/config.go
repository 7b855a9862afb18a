// Package config handles generator configuration loading and management.
package config

import (
	"github.com/Faultbox/lowpoly-tree/internal/foliage"
	"github.com/Faultbox/lowpoly-tree/internal/growth"
	"github.com/Faultbox/lowpoly-tree/internal/tree"
	"github.com/Faultbox/lowpoly-tree/internal/validation"
	"github.com/Faultbox/lowpoly-tree/pkg/math"
)

// Config holds all generator settings.
type Config struct {
	Tree    TreeConfig      `yaml:"tree"`
	Growth  growth.Tunables `yaml:"growth"`
	Leaves  foliage.Options `yaml:"leaves"`
	Output  OutputConfig    `yaml:"output"`
	Logging LoggingConfig   `yaml:"logging"`
}

// TreeConfig holds the per-request tree parameters.
type TreeConfig struct {
	Seed          int64 `yaml:"seed"`
	growth.Params `yaml:",inline"`
	StemMaterial  string    `yaml:"stem_material"`
	Materials     []string  `yaml:"materials"` // Available material names
	Origin        math.Vec3 `yaml:"origin"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Path    string `yaml:"path"` // "-" writes to stdout
	Format  string `yaml:"format" validate:"oneof=obj yaml"`
	Count   int    `yaml:"count" validate:"min=1"`   // Trees per run
	Workers int    `yaml:"workers" validate:"min=1"` // Concurrent generators for batches
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Tree: TreeConfig{
			Seed:         0,
			Params:       growth.DefaultParams(),
			StemMaterial: "bark",
			Materials:    []string{"bark", "leaf_green", "leaf_light"},
		},
		Growth: growth.DefaultTunables(),
		Leaves: foliage.DefaultOptions(),
		Output: OutputConfig{
			Path:    "tree.obj",
			Format:  "obj",
			Count:   1,
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks every setting, including the tree request the config
// describes.
func (c *Config) Validate() error {
	if err := c.Request().Validate(); err != nil {
		return err
	}
	if err := validation.Struct(c.Output); err != nil {
		return err
	}
	return validation.Struct(c.Logging)
}

// Request builds the generation request described by the config.
func (c *Config) Request() tree.Request {
	return tree.Request{
		Seed:         c.Tree.Seed,
		Params:       c.Tree.Params,
		Tunables:     c.Growth,
		Leaves:       c.Leaves,
		StemMaterial: c.Tree.StemMaterial,
		Materials:    append([]string(nil), c.Tree.Materials...),
		Origin:       c.Tree.Origin,
	}
}
