package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathadventure/internal/app"
	"github.com/abhisek/mathadventure/internal/config"
	"github.com/abhisek/mathadventure/internal/feedback"
	"github.com/abhisek/mathadventure/internal/logging"
	"github.com/abhisek/mathadventure/internal/metrics"
	"github.com/abhisek/mathadventure/internal/problemgen"
)

// deps bundles the dependencies shared by every command.
type deps struct {
	cfg       *config.App
	logger    zerolog.Logger
	logCloser io.Closer
	registry  *prometheus.Registry
	collector *metrics.Collector
	generator *problemgen.Generator
}

func (r *deps) Close() error {
	return r.logCloser.Close()
}

// newDeps loads configuration, applies flag overrides and builds the
// logger, metrics collector and problem generator.
func newDeps(cmd *cobra.Command) (*deps, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.Metrics.Addr, _ = cmd.Flags().GetString("metrics-addr")
	}

	logger, closer, err := logging.New(cfg.Log, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	genOpts := []problemgen.Option{
		problemgen.WithObserver(collector),
		problemgen.WithLogger(logger),
	}
	if cfg.Game.Seed != 0 {
		genOpts = append(genOpts, problemgen.WithSeed(cfg.Game.Seed))
	}

	return &deps{
		cfg:       cfg,
		logger:    logger,
		logCloser: closer,
		registry:  reg,
		collector: collector,
		generator: problemgen.New(problemgen.DefaultConfig(), genOpts...),
	}, nil
}

// runApp launches the TUI. A non-empty tierArg, or MATHADVENTURE_TIER,
// skips level select.
func runApp(cmd *cobra.Command, tierArg string) error {
	rt, err := newDeps(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if tierArg == "" {
		tierArg = rt.cfg.Game.Tier
	}
	var startTier *problemgen.Tier
	if tierArg != "" {
		tier, err := problemgen.ParseTier(tierArg)
		if err != nil {
			return err
		}
		startTier = &tier
	}

	ctx, cancel := context.WithCancel(cmdContext(cmd))
	defer cancel()
	ctx = logging.IntoContext(ctx, rt.logger)

	if addr := rt.cfg.Metrics.Addr; addr != "" {
		go func() {
			if err := metrics.Serve(ctx, addr, rt.registry, rt.logger); err != nil {
				rt.logger.Error().Err(err).Msg("metrics endpoint stopped")
			}
		}()
	}

	logging.FromContext(ctx).Info().
		Uint64("seed", rt.cfg.Game.Seed).
		Int("round_length", rt.cfg.Game.RoundLength).
		Msg("starting game")

	return app.Run(app.Options{
		Generator:     rt.generator,
		Picker:        feedback.NewPicker(nil),
		Recorder:      rt.collector,
		Logger:        rt.logger,
		FeedbackDelay: rt.cfg.Game.FeedbackDelay,
		RoundLength:   rt.cfg.Game.RoundLength,
		StartTier:     startTier,
	})
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
