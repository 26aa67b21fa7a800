package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"term_harvester/internal/config"
	"term_harvester/internal/extract"
	"term_harvester/internal/glossary"
	"term_harvester/internal/oai"
	"term_harvester/internal/parser"
	"term_harvester/internal/publisher"
	"term_harvester/internal/report"
	"term_harvester/internal/service"
	"term_harvester/internal/state"
)

func newRunCmd() *cobra.Command {
	var (
		from         string
		until        string
		full         bool
		endpoints    []string
		minFrequency int
		output       string
		watch        time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one harvest-and-extract cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if minFrequency > 0 {
				cfg.Extract.MinFrequency = minFrequency
			}
			if output != "" {
				cfg.Report.Output = output
			}

			logger := setupLogger(cfg.LogLevel)

			svc, reporter, cleanup, err := buildService(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := service.RunOptions{
				From:      from,
				Until:     until,
				Full:      full,
				Endpoints: endpoints,
			}

			if watch > 0 {
				return watchLoop(ctx, svc, reporter, opts, watch, logger)
			}

			result, err := svc.Run(ctx, opts)
			if result != nil && result.Report != nil {
				reporter.WriteSummary(os.Stdout, result.Report)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "override the start date (YYYY-MM-DD) for every endpoint")
	cmd.Flags().StringVar(&until, "until", "", "end date (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&full, "full", false, "ignore watermarks and re-harvest everything")
	cmd.Flags().StringSliceVar(&endpoints, "endpoints", nil, "limit the run to these endpoint keys")
	cmd.Flags().IntVar(&minFrequency, "min-frequency", 0, "minimum document frequency for statistical terms")
	cmd.Flags().StringVar(&output, "output", "", "report output path")
	cmd.Flags().DurationVar(&watch, "watch", 0, "re-run continuously at this interval")

	return cmd
}

// buildService wires every pipeline component from configuration. The
// returned cleanup closes whatever was opened.
func buildService(cfg *config.Config, logger *slog.Logger) (*service.HarvestService, *report.Reporter, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	store, err := buildStateStore(cfg, logger, &closers)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	gloss, err := glossary.Load(cfg.Glossary.Path)
	if err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("load glossary: %w", err)
	}
	logger.Info("glossary loaded", "terms", gloss.Len(), "path", cfg.Glossary.Path)

	var pub service.Publisher
	if cfg.Publish.URL != "" {
		rabbit, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.Publish.URL,
			Exchange:   cfg.Publish.Exchange,
			RoutingKey: cfg.Publish.RoutingKey,
			QueueName:  cfg.Publish.QueueName,
		}, logger)
		if err != nil {
			cleanup()
			return nil, nil, nil, fmt.Errorf("connect publisher: %w", err)
		}
		closers = append(closers, func() { rabbit.Close() })
		pub = rabbit
	}

	clients := make([]service.ProtocolClient, 0, len(cfg.Endpoints))
	for _, ep := range cfg.Endpoints {
		clients = append(clients, oai.New(oai.Config{
			Endpoint:       ep.Key,
			BaseURL:        ep.BaseURL,
			RequestDelay:   cfg.Harvest.RequestDelay,
			Timeout:        cfg.Harvest.Timeout,
			MaxRetries:     cfg.Harvest.Retry.MaxRetries,
			InitialBackoff: cfg.Harvest.Retry.InitialBackoff,
			MaxBackoff:     cfg.Harvest.Retry.MaxBackoff,
		}, logger))
	}

	recordParser := parser.New(parser.NewDiacriticDetector(), logger)
	extractor := extract.New(extract.Config{
		MinFrequency: cfg.Extract.MinFrequency,
		SampleLimit:  cfg.Extract.SampleLimit,
		Workers:      cfg.Extract.Workers,
	}, logger)
	reporter := report.New(logger)

	svc := service.NewHarvestService(
		clients,
		recordParser,
		store,
		extractor,
		gloss,
		reporter,
		pub,
		logger,
		service.Config{
			DefaultFromDate: cfg.Harvest.DefaultFromDate,
			ReportPath:      cfg.Report.Output,
		},
	)

	return svc, reporter, cleanup, nil
}

func buildStateStore(cfg *config.Config, logger *slog.Logger, closers *[]func()) (service.WatermarkStore, error) {
	switch cfg.State.Backend {
	case "postgres":
		db, err := sqlx.Connect("postgres", cfg.State.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		*closers = append(*closers, func() { db.Close() })
		logger.Info("using postgres watermark store")
		return state.NewPostgresStore(db), nil
	case "file":
		logger.Info("using file watermark store", "path", cfg.State.Path)
		return state.NewFileStore(cfg.State.Path), nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}
}

// watchLoop re-runs the pipeline at a fixed interval until interrupted.
// Partial and failed runs are logged, not fatal, so a flaky endpoint does
// not take the loop down.
func watchLoop(ctx context.Context, svc *service.HarvestService, reporter *report.Reporter, opts service.RunOptions, interval time.Duration, logger *slog.Logger) error {
	logger.Info("watch mode", "interval", interval)

	runOnce := func() {
		result, err := svc.Run(ctx, opts)
		if err != nil && !errors.Is(err, service.ErrPartialRun) {
			logger.Error("run failed", "error", err)
			return
		}
		if result != nil && result.Report != nil {
			reporter.WriteSummary(os.Stdout, result.Report)
		}
	}

	runOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-ticker.C:
			runOnce()
		}
	}
}
