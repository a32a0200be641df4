package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphwalk/config"
	"github.com/katalvlaran/graphwalk/logging"
	"github.com/katalvlaran/graphwalk/scene"
	"github.com/katalvlaran/graphwalk/tui"
)

func newRunCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive board (click or space to step)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				log, err := logging.New(logging.Options{Format: cfg.LogFormat, Level: cfg.LogLevel, File: cfg.LogFile})
				if err != nil {
					return err
				}
				log.Info("output is not a terminal; running headless")
				return play(out, *cfg, log, true)
			}
			return runInteractive(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload names and priorities when the scene file changes")
	cmd.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "scene reload debounce")

	return cmd
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runInteractive drives the session from a bubbletea program. Logs go to
// the in-app pane (and the log file) instead of the terminal.
func runInteractive(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ring := logging.NewRing(logging.DefaultRingSize)
	log, err := logging.New(logging.Options{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Quiet:  true,
		Sink:   ring,
	})
	if err != nil {
		return err
	}

	s, err := newSession(cfg, log)
	if err != nil {
		return err
	}
	defer s.close()
	s.serveMetrics(cfg.MetricsAddr, cfg.MetricsPath)
	s.stepper.Initialize()

	model := tui.New(s.stepper, s.board,
		tui.WithTitle(s.title),
		tui.WithRing(ring),
		tui.WithLogger(s.log),
		tui.WithCanvasSize(cfg.Width, cfg.Height),
	)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if cfg.Watch {
		path, err := filepath.Abs(cfg.Scene)
		if err != nil {
			return err
		}
		w, err := scene.NewWatcher(path, func(def *scene.Definition, err error) {
			p.Send(tui.ReloadMsg{Def: def, Err: err})
		}, scene.WithDebounce(cfg.Debounce), scene.WithWatchLogger(s.log))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if cerr := w.Close(); cerr != nil {
				s.log.Warn("watcher close", zap.Error(cerr))
			}
		}()
	}

	_, err = p.Run()

	return err
}
