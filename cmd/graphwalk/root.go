package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/config"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd builds the command tree with flags defaulting to cfg, which
// already carries the .env and GRAPHWALK_* overrides.
func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "graphwalk",
		Short: "Step through graph searches one visit at a time",
		Long: `graphwalk visualizes BFS, priority BFS, DFS and greedy best-first search
over a YAML/HCL scene or a generated shape. Each step pops one vertex from
the frontier, visits it and queues its unvisited neighbors.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene file (.yaml, .yml or .hcl)")
	flags.StringVar(&cfg.Shape, "shape", cfg.Shape, "generated shape when no scene is given: "+strings.Join(builder.Shapes(), "|"))
	flags.IntVar(&cfg.Size, "size", cfg.Size, "shape size (grid: side length)")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the random shape")
	flags.StringVarP(&cfg.Algorithm, "algorithm", "a", cfg.Algorithm, "initial algorithm: bfs|priority|dfs|best-first")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console|json")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "also write logs to this file")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address, e.g. :9090")
	flags.StringVar(&cfg.MetricsPath, "metrics-path", cfg.MetricsPath, "HTTP path for metrics")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "canvas width in cells")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "canvas height in cells")

	root.AddCommand(newRunCmd(cfg), newPlayCmd(cfg), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the graphwalk version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "graphwalk %s\n", version)
		},
	}
}
