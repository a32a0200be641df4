package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphwalk/config"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/logging"
	"github.com/katalvlaran/graphwalk/traversal"
)

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var showCanvas bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run a search headless, printing the frontier after every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logging.Options{
				Format: cfg.LogFormat,
				Level:  cfg.LogLevel,
				File:   cfg.LogFile,
			})
			if err != nil {
				return err
			}
			return play(cmd.OutOrStdout(), *cfg, log, showCanvas)
		},
	}
	cmd.Flags().IntVar(&cfg.Steps, "steps", cfg.Steps, "stop after this many steps (0: until finished)")
	cmd.Flags().StringVar(&cfg.MetricsOut, "metrics-out", cfg.MetricsOut, "write metrics in text format to this file at the end")
	cmd.Flags().BoolVar(&showCanvas, "canvas", false, "print the board after the last step")

	return cmd
}

// play initializes a session and steps it to completion or to cfg.Steps.
func play(w io.Writer, cfg config.Config, log *zap.Logger, showCanvas bool) error {
	s, err := newSession(cfg, log)
	if err != nil {
		return err
	}
	defer s.close()
	s.serveMetrics(cfg.MetricsAddr, cfg.MetricsPath)

	st := s.stepper
	st.Initialize()
	g := st.Graph()
	fmt.Fprintf(w, "%s · %s · %s\n", s.title, st.Algorithm().Title(), st.Status())

	for n := 1; st.State() == traversal.Searching; n++ {
		if cfg.Steps > 0 && n > cfg.Steps {
			break
		}
		res := st.Step()
		line := fmt.Sprintf("%3d %-12s %-10s | %s", n, res.Outcome, g.Name(res.Vertex), st.Status())
		if res.Continued != core.NoVertex {
			line += fmt.Sprintf(" (continue at %s)", g.Name(res.Continued))
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "%s: visited %s\n", st.State(), strings.Join(g.Names(st.Visited()), ", "))
	if showCanvas {
		fmt.Fprintln(w, s.board.Canvas(cfg.Width, cfg.Height))
	}
	if cfg.MetricsOut != "" {
		if err := s.metrics.WriteFile(cfg.MetricsOut); err != nil {
			return err
		}
		s.log.Info("metrics written", zap.String("path", cfg.MetricsOut))
	}

	return nil
}
