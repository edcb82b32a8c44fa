package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/gyaneshwarpardhi/loginsight/internal/api"
	"github.com/gyaneshwarpardhi/loginsight/internal/config"
	"github.com/gyaneshwarpardhi/loginsight/internal/dashboard"
	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
	"github.com/gyaneshwarpardhi/loginsight/internal/engine"
	"github.com/gyaneshwarpardhi/loginsight/internal/metrics"
	"github.com/gyaneshwarpardhi/loginsight/internal/store"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	cfgPath := flag.String("config", "configs/dashboard.yaml", "Path to dashboard YAML config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env", "err", err)
	}

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Load dataset ─────────────────────────────────────────────────────────
	ds, err := loadDataset(ctx, cfg.Dataset)
	if err != nil {
		slog.Error(dataset.LoadFailedMessage, "source", cfg.Dataset.Source, "err", err)
		os.Exit(1)
	}
	stats := ds.Stats()
	metrics.DatasetRows.Set(float64(stats.Rows))
	metrics.DatasetRowsDropped.Set(float64(stats.DroppedRows))
	slog.Info("dataset loaded",
		"source", ds.Source(),
		"rows", stats.Rows,
		"dropped", stats.DroppedRows,
		"programs", len(ds.Programs()),
		"fingerprint", ds.Fingerprint(),
	)
	builder := dashboard.NewBuilder(ds)

	// ── Snapshot store + exporter ────────────────────────────────────────────
	var (
		st  store.Store
		exp *engine.Exporter
	)
	s, err := store.Open(cfg.Store.Driver, cfg.Store.DSN, cfg.Store.Schema)
	switch {
	case errors.Is(err, store.ErrDisabled):
		slog.Info("snapshot store disabled")
	case err != nil:
		slog.Error("failed to open snapshot store", "driver", cfg.Store.Driver, "err", err)
		os.Exit(1)
	default:
		initCtx, initCancel := context.WithTimeout(ctx, 12*time.Second)
		err := s.Init(initCtx)
		initCancel()
		if err != nil {
			slog.Error("failed to initialise snapshot store", "driver", cfg.Store.Driver, "err", err)
			os.Exit(1)
		}
		defer s.Close()
		st = s
		exp = engine.NewExporter(ctx, builder, st, cfg.Export)
		slog.Info("snapshot store ready", "driver", cfg.Store.Driver, "workers", cfg.Export.Workers)
	}

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.Config) {
		if newCfg.Dataset != cfg.Dataset {
			slog.Warn("dataset settings changed; restart to load the new dataset")
		}
		slog.Info("dashboard defaults reloaded",
			"top_programs", newCfg.Dashboard.TopPrograms,
			"top_professors", newCfg.Dashboard.TopProfessors,
			"top_heatmap", newCfg.Dashboard.TopHeatmap,
		)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		slog.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
	} else {
		defer stopWatch()
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.New(builder, loader, exp, st)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	if exp != nil {
		exp.Shutdown()
	}
	cancel()
	slog.Info("goodbye")
}

// loadDataset reads the configured export once. Unmapped month names are
// counted and logged once per name.
func loadDataset(ctx context.Context, conf config.DatasetConf) (*dataset.Dataset, error) {
	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		return nil, err
	}
	src, err := dataset.ParseSource(ctx, conf.Source, dataset.S3Options{
		Region:   conf.S3.Region,
		Endpoint: conf.S3.Endpoint,
	})
	if err != nil {
		return nil, err
	}

	var warned sync.Map
	return dataset.Load(ctx, src, dataset.PrepareOptions{
		Location: loc,
		OnUnmappedMonth: func(name string) {
			metrics.UnmappedMonths.WithLabelValues(name).Inc()
			if _, seen := warned.LoadOrStore(name, true); !seen {
				slog.Warn("month name has no translation, keeping it as is", "month", name)
			}
		},
	})
}
