// Package engine runs snapshot exports on a bounded worker pool.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gyaneshwarpardhi/loginsight/internal/config"
	"github.com/gyaneshwarpardhi/loginsight/internal/dashboard"
	"github.com/gyaneshwarpardhi/loginsight/internal/metrics"
	"github.com/gyaneshwarpardhi/loginsight/internal/store"
)

var ErrQueueFull = errors.New("export queue full")

// ExportResult is the outcome of one snapshot export.
type ExportResult struct {
	SnapshotID string    `json:"snapshot_id"`
	CreatedAt  time.Time `json:"created_at"`
	DurationMs int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	err        error
}

// Exporter builds dashboard bundles and writes them to a store.
type Exporter struct {
	builder *dashboard.Builder
	store   store.Store
	pool    *workerPool[*exportWork]
	conf    config.ExportConf
}

type exportWork struct {
	id      string
	params  dashboard.Params
	resultC chan *ExportResult
}

// NewExporter starts conf.Workers goroutines that share a queue of
// conf.QueueDepth jobs.
func NewExporter(ctx context.Context, b *dashboard.Builder, s store.Store, conf config.ExportConf) *Exporter {
	e := &Exporter{builder: b, store: s, conf: conf}
	e.pool = newWorkerPool(
		ctx,
		conf.Workers,
		conf.QueueDepth,
		func(ctx context.Context, w *exportWork) error {
			res := e.export(ctx, w)
			if w.resultC != nil {
				w.resultC <- res
			}
			if res.err != nil {
				return fmt.Errorf("snapshot %s: %w", w.id, res.err)
			}
			return nil
		},
	)
	return e
}

// ExportSync exports a snapshot and waits for it to be stored. A failed
// export returns both the result and the error that caused it.
func (e *Exporter) ExportSync(ctx context.Context, p dashboard.Params) (*ExportResult, error) {
	w := &exportWork{id: uuid.NewString(), params: p, resultC: make(chan *ExportResult, 1)}
	if !e.pool.Submit(w) {
		metrics.SnapshotsDropped.Inc()
		return nil, fmt.Errorf("%w (capacity %d)", ErrQueueFull, e.pool.QueueCap())
	}
	metrics.SnapshotsEnqueued.Inc()

	timeout := time.Duration(e.conf.TimeoutMs) * time.Millisecond
	select {
	case res := <-w.resultC:
		return res, res.err
	case <-time.After(timeout):
		return nil, fmt.Errorf("snapshot export timeout after %v", timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ExportAsync enqueues an export and returns the id the snapshot will be
// stored under. ok is false when the queue is full.
func (e *Exporter) ExportAsync(p dashboard.Params) (id string, ok bool) {
	w := &exportWork{id: uuid.NewString(), params: p}
	if !e.pool.Submit(w) {
		metrics.SnapshotsDropped.Inc()
		return "", false
	}
	metrics.SnapshotsEnqueued.Inc()
	return w.id, true
}

// QueueUtilization returns queue used / capacity (0-1).
func (e *Exporter) QueueUtilization() float64 {
	if e.pool.QueueCap() == 0 {
		return 0
	}
	return float64(e.pool.QueueLen()) / float64(e.pool.QueueCap())
}

func (e *Exporter) export(ctx context.Context, w *exportWork) *ExportResult {
	start := time.Now()
	res := &ExportResult{SnapshotID: w.id, CreatedAt: start.UTC()}

	err := e.save(ctx, w, res.CreatedAt)
	res.DurationMs = time.Since(start).Milliseconds()
	if err != nil {
		res.Error = err.Error()
		res.err = err
		metrics.SnapshotExports.WithLabelValues("error").Inc()
		return res
	}
	metrics.SnapshotExports.WithLabelValues("success").Inc()
	slog.Info("snapshot exported", "snapshot_id", w.id, "duration_ms", res.DurationMs)
	return res
}

func (e *Exporter) save(ctx context.Context, w *exportWork, at time.Time) error {
	bundle, err := e.builder.Bundle(w.params)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return e.store.Save(ctx, &store.Snapshot{
		ID:          w.id,
		Fingerprint: e.builder.Dataset().Fingerprint(),
		Selection:   w.params.Selection,
		CreatedAt:   at,
		Payload:     payload,
	})
}

// Shutdown drains the pool gracefully.
func (e *Exporter) Shutdown() {
	e.pool.Drain()
}
