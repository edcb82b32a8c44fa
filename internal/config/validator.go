package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks the config for:
//   - Required fields
//   - Top-N defaults inside [1, max_top_n]
//   - A loadable timezone and a known store driver
func Validate(cfg *Config) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string

	if cfg.Dataset.Source == "" {
		errs = append(errs, "dataset.source is required")
	}
	if _, err := time.LoadLocation(cfg.Dataset.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("dataset.timezone %q: %v", cfg.Dataset.Timezone, err))
	}

	d := cfg.Dashboard
	if d.MaxTopN < 1 {
		errs = append(errs, fmt.Sprintf("dashboard.max_top_n must be positive, got %d", d.MaxTopN))
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"top_programs", d.TopPrograms},
		{"top_programs_platform", d.TopProgramsPlatform},
		{"top_professors", d.TopProfessors},
		{"top_heatmap", d.TopHeatmap},
	} {
		if f.v < 1 || f.v > d.MaxTopN {
			errs = append(errs, fmt.Sprintf("dashboard.%s must be between 1 and %d, got %d", f.name, d.MaxTopN, f.v))
		}
	}

	if cfg.Export.Workers < 1 {
		errs = append(errs, "export.workers must be positive")
	}
	if cfg.Export.QueueDepth < 1 {
		errs = append(errs, "export.queue_depth must be positive")
	}
	if cfg.Export.TimeoutMs < 1 {
		errs = append(errs, "export.timeout_ms must be positive")
	}

	switch cfg.Store.Driver {
	case "":
	case "postgres", "sqlite":
		if cfg.Store.DSN == "" {
			errs = append(errs, fmt.Sprintf("store.dsn is required for driver %s", cfg.Store.Driver))
		}
	default:
		errs = append(errs, fmt.Sprintf("store.driver %q is not one of postgres, sqlite", cfg.Store.Driver))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
