package main

import (
	"fmt"

	"github.com/katalvlaran/skyroute/builder"
	"github.com/katalvlaran/skyroute/config"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "skyroute",
		Short:         "Shortest-route planner with an animated flight simulation.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(); err != nil {
				return err
			}
			v, err := config.NewViper(a.cfgFile)
			if err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			a.cfg = cfg

			observability.InitializeLogger(cfg.Logger)
			observability.GetLogger().Debug("configuration loaded", zap.String("version", Version))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./skyroute.yaml)")

	rootCmd.AddCommand(newNodesCmd(a))
	rootCmd.AddCommand(newRouteCmd(a))
	rootCmd.AddCommand(newFlyCmd(a))

	return rootCmd
}

// graph builds the configured network.
func (a *app) graph() (*core.Graph, error) {
	g, err := builder.FromConfig(a.cfg.Graph)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}

	return g, nil
}
