// Package cli implements the treegen command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Faultbox/lowpoly-tree/internal/config"
	"github.com/Faultbox/lowpoly-tree/internal/logger"
)

// rootOpts holds the flags shared by every command.
type rootOpts struct {
	configPath string // explicit config file; empty searches the defaults
	verbose    bool   // force debug logging
}

// NewRootCommand builds the treegen command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:           "treegen",
		Short:         "treegen grows low-poly trees",
		Long:          `treegen grows randomized low-poly tree skeletons with leaves and writes them as Wavefront OBJ or a YAML report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./treegen.yaml, then the user config dir)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}

// Execute runs the CLI with the given arguments.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// loadConfig loads the effective config and points the logger at it.
func loadConfig(opts *rootOpts, ov config.Overrides) (*config.Config, error) {
	ov.ConfigPath = opts.configPath
	ov.Debug = opts.verbose

	cfg, err := config.Load(ov)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}
