package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Faultbox/lowpoly-tree/internal/config"
	"github.com/Faultbox/lowpoly-tree/internal/export"
	"github.com/Faultbox/lowpoly-tree/internal/logger"
	"github.com/Faultbox/lowpoly-tree/internal/tree"
)

// generateFlags mirrors the config values the generate command can
// override. Only flags the user set are applied.
type generateFlags struct {
	seed          int64
	depth         int
	initialRadius float64
	radiusFactor  float64
	sectionLength float64
	lengthFactor  float64
	leafSize      float64
	leafDeviation float64
	leafGeometry  string
	output        string
	format        string
	count         int
	workers       int
}

func newGenerateCmd(root *rootOpts) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Grow trees and write them to a file",
		Long: `Grow one or more trees and write them as OBJ or a YAML report.

Flags override the config file. With --count N the seeds seed, seed+1, ...
seed+N-1 are grown concurrently and written to the same output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root, f.overrides(cmd.Flags()))
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runGenerate(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	d := config.Default()
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", d.Tree.Seed, "random seed")
	cmd.Flags().IntVarP(&f.depth, "depth", "d", d.Tree.Depth, "segments per lineage (1-20)")
	cmd.Flags().Float64Var(&f.initialRadius, "initial-radius", d.Tree.InitialRadius, "stem radius at the root")
	cmd.Flags().Float64Var(&f.radiusFactor, "radius-factor", d.Tree.RadiusFactor, "radius multiplier per segment (0-1]")
	cmd.Flags().Float64Var(&f.sectionLength, "section-length", d.Tree.SectionLength, "nominal length of the first rotated segment")
	cmd.Flags().Float64Var(&f.lengthFactor, "length-factor", d.Tree.LengthFactor, "length multiplier per segment (0-1]")
	cmd.Flags().Float64Var(&f.leafSize, "leaf-size", d.Leaves.Size, "base leaf size")
	cmd.Flags().Float64Var(&f.leafDeviation, "leaf-deviation", d.Leaves.SizeDeviation, "leaf size deviation in percent")
	cmd.Flags().StringVar(&f.leafGeometry, "leaf-geometry", string(d.Leaves.Geometry), "leaf proxy: ico_sphere, cube")
	cmd.Flags().StringVarP(&f.output, "out", "o", d.Output.Path, `output file, "-" for stdout`)
	cmd.Flags().StringVarP(&f.format, "format", "f", d.Output.Format, "output format: obj, yaml")
	cmd.Flags().IntVarP(&f.count, "count", "n", d.Output.Count, "number of trees")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", d.Output.Workers, "concurrent generators")

	return cmd
}

// overrides returns the flags the user actually set.
func (f *generateFlags) overrides(flags *pflag.FlagSet) config.Overrides {
	var ov config.Overrides
	if flags.Changed("seed") {
		ov.Seed = &f.seed
	}
	if flags.Changed("depth") {
		ov.Depth = &f.depth
	}
	if flags.Changed("initial-radius") {
		ov.InitialRadius = &f.initialRadius
	}
	if flags.Changed("radius-factor") {
		ov.RadiusFactor = &f.radiusFactor
	}
	if flags.Changed("section-length") {
		ov.SectionLength = &f.sectionLength
	}
	if flags.Changed("length-factor") {
		ov.LengthFactor = &f.lengthFactor
	}
	if flags.Changed("leaf-size") {
		ov.LeafSize = &f.leafSize
	}
	if flags.Changed("leaf-deviation") {
		ov.LeafDeviation = &f.leafDeviation
	}
	if flags.Changed("leaf-geometry") {
		ov.LeafGeometry = &f.leafGeometry
	}
	if flags.Changed("out") {
		ov.Output = &f.output
	}
	if flags.Changed("format") {
		ov.Format = &f.format
	}
	if flags.Changed("count") {
		ov.Count = &f.count
	}
	if flags.Changed("workers") {
		ov.Workers = &f.workers
	}
	return ov
}

func runGenerate(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	start := time.Now()

	trees, err := tree.GenerateBatch(ctx, cfg.Request(), cfg.Output.Count, cfg.Output.Workers)
	if err != nil {
		return err
	}

	format := export.Format(cfg.Output.Format)
	if cfg.Output.Path == "-" {
		return export.Write(stdout, format, trees...)
	}
	if err := writeFile(cfg.Output.Path, format, trees); err != nil {
		logger.Error("export failed", zap.String("path", cfg.Output.Path), zap.Error(err))
		return err
	}

	logger.Sugar.Infof("wrote %d tree(s) to %s as %s in %s",
		len(trees), cfg.Output.Path, cfg.Output.Format, time.Since(start).Round(time.Millisecond))
	return nil
}

func writeFile(path string, format export.Format, trees []*tree.Tree) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := export.Write(file, format, trees...); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
