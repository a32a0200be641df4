package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/config"
	"github.com/katalvlaran/graphwalk/core"
	"github.com/katalvlaran/graphwalk/metrics"
	"github.com/katalvlaran/graphwalk/render"
	"github.com/katalvlaran/graphwalk/scene"
	"github.com/katalvlaran/graphwalk/traversal"
)

// session is one wired-up run: graph, stepper and its observers.
type session struct {
	id      string
	title   string
	log     *zap.Logger
	stepper *traversal.Stepper
	board   *render.Board
	metrics *metrics.Collector
	server  *http.Server
}

// newSession loads the graph named by cfg and wires the stepper to a board
// and a metrics collector.
func newSession(cfg config.Config, log *zap.Logger) (*session, error) {
	s := &session{id: uuid.NewString()}
	s.log = log.With(zap.String("session", s.id))

	g, opts, offset, title, err := loadGraph(cfg)
	if err != nil {
		return nil, err
	}
	s.title = title
	s.board = render.NewBoard(offset)
	s.metrics = metrics.NewCollector(cfg.MetricsAddr != "")

	opts = append(opts,
		traversal.WithAlgorithm(cfg.AlgorithmValue()),
		traversal.WithObserver(s.board),
		traversal.WithObserver(s.metrics),
		traversal.WithLogger(s.log),
	)
	s.stepper, err = traversal.New(g, opts...)
	if err != nil {
		return nil, err
	}
	s.log.Info("session created",
		zap.String("graph", title),
		zap.Int("vertices", g.Len()),
		zap.Stringer("algorithm", s.stepper.Algorithm()),
	)

	return s, nil
}

// loadGraph builds the scene file when one is configured, else the shape.
// Shapes start at their first vertex and aim for their last one.
func loadGraph(cfg config.Config) (*core.Graph, []traversal.Option, core.Position, string, error) {
	if cfg.Scene != "" {
		def, err := scene.Load(cfg.Scene)
		if err != nil {
			return nil, nil, core.Position{}, "", err
		}
		sc, err := scene.Build(def)
		if err != nil {
			return nil, nil, core.Position{}, "", err
		}
		offset := render.DefaultLabelOffset
		if sc.HasLabelOffset {
			offset = sc.LabelOffset
		}
		title := sc.Name
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(cfg.Scene), filepath.Ext(cfg.Scene))
		}
		return sc.Graph, sc.Options(), offset, title, nil
	}

	ctor, err := builder.Shape(cfg.Shape, cfg.Size)
	if err != nil {
		return nil, nil, core.Position{}, "", err
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithLetterIDs(),
		builder.WithSeed(cfg.Seed),
	}, ctor)
	if err != nil {
		return nil, nil, core.Position{}, "", err
	}
	opts := []traversal.Option{
		traversal.WithStart(0),
		traversal.WithGoal(core.VertexID(g.Len() - 1)),
	}

	return g, opts, render.DefaultLabelOffset, fmt.Sprintf("%s(%d)", cfg.Shape, cfg.Size), nil
}

// serveMetrics exposes the collector on addr until close.
func (s *session) serveMetrics(addr, path string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle(path, s.metrics.Handler())
	s.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("metrics server stopped", zap.Error(err))
		}
	}()
	s.log.Info("serving metrics", zap.String("addr", addr), zap.String("path", path))
}

// close stops the metrics server and flushes the logger.
func (s *session) close() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			s.log.Warn("metrics server shutdown", zap.Error(err))
		}
	}
	_ = s.log.Sync()
}
