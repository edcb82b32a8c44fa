package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/loginsight/internal/config"
	"github.com/gyaneshwarpardhi/loginsight/internal/dashboard"
	"github.com/gyaneshwarpardhi/loginsight/internal/dataset"
	"github.com/gyaneshwarpardhi/loginsight/internal/engine"
	"github.com/gyaneshwarpardhi/loginsight/internal/metrics"
	"github.com/gyaneshwarpardhi/loginsight/internal/store"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	builder  *dashboard.Builder
	loader   *config.Loader
	exporter *engine.Exporter // nil when snapshots are disabled
	store    store.Store      // nil when snapshots are disabled
	mux      *http.ServeMux
}

// New creates an HTTP handler and registers all routes. exp and st may be
// nil, in which case the snapshot routes answer 503.
func New(b *dashboard.Builder, loader *config.Loader, exp *engine.Exporter, st store.Store) http.Handler {
	h := &Handler{builder: b, loader: loader, exporter: exp, store: st, mux: http.NewServeMux()}

	h.mux.HandleFunc("GET /v1/dataset", h.getDataset)
	h.mux.HandleFunc("GET /v1/views/overview", h.overview)
	h.mux.HandleFunc("GET /v1/views/platform", h.platform)
	h.mux.HandleFunc("GET /v1/views/programs/{program}", h.program)
	h.mux.HandleFunc("GET /v1/aggregations/{name}", h.aggregation)
	h.mux.HandleFunc("POST /v1/snapshots", h.createSnapshot)
	h.mux.HandleFunc("GET /v1/snapshots/{id}", h.getSnapshot)
	h.mux.HandleFunc("GET /v1/config", h.getConfig)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return wrap(h.mux, loader.Config().HTTP.CORSOrigins)
}

// GET /v1/dataset: what was loaded and which filter values exist.
func (h *Handler) getDataset(w http.ResponseWriter, r *http.Request) {
	ds := h.builder.Dataset()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"source":           ds.Source(),
		"fingerprint":      ds.Fingerprint(),
		"loaded_at":        ds.LoadedAt(),
		"stats":            ds.Stats(),
		"months":           ds.Months(),
		"programs":         ds.Programs(),
		"canonical_months": dataset.CanonicalMonths,
	})
}

// GET /v1/views/overview
func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	p, err := h.parseParams(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.builder.Overview(p))
}

// GET /v1/views/platform
func (h *Handler) platform(w http.ResponseWriter, r *http.Request) {
	p, err := h.parseParams(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.builder.Platform(p))
}

// GET /v1/views/programs/{program}: 404 for a program not in the dataset.
func (h *Handler) program(w http.ResponseWriter, r *http.Request) {
	p, err := h.parseParams(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	v, err := h.builder.Program(r.PathValue("program"), p)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// GET /v1/aggregations/{name}
func (h *Handler) aggregation(w http.ResponseWriter, r *http.Request) {
	p, err := h.parseParams(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	name := r.PathValue("name")
	out, err := h.builder.Aggregate(name, p)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":      name,
		"selection": p.Selection,
		"result":    out,
	})
}

// POST /v1/snapshots: export the views for the query's selection.
// With ?async=true the export is queued and 202 is returned.
func (h *Handler) createSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.exporter == nil {
		writeErr(w, r, store.ErrDisabled)
		return
	}
	p, err := h.parseParams(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	for _, prog := range p.Selection.Programs {
		if !h.builder.Dataset().HasProgram(prog) {
			writeErr(w, r, fmt.Errorf("%w: %q", dashboard.ErrUnknownProgram, prog))
			return
		}
	}

	if async, _ := strconv.ParseBool(r.URL.Query().Get("async")); async {
		id, ok := h.exporter.ExportAsync(p)
		if !ok {
			writeErr(w, r, engine.ErrQueueFull)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]interface{}{
			"snapshot_id": id,
			"queued":      true,
		})
		return
	}

	res, err := h.exporter.ExportSync(r.Context(), p)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// GET /v1/snapshots/{id}
func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeErr(w, r, store.ErrDisabled)
		return
	}
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		writeErr(w, r, fmt.Errorf("%w: %s", store.ErrNotFound, id))
		return
	}
	snap, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// GET /v1/config: current configuration, store settings excluded.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.loader.Config())
}

// POST /v1/config/reload: hot-reload the dashboard defaults from disk.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded":  true,
		"dashboard": cfg.Dashboard,
	})
}

// GET /healthz: always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz: 503 if the export queue is >80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	var util float64
	if h.exporter != nil {
		util = h.exporter.QueueUtilization()
	}
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
		"events":            len(h.builder.Dataset().Events()),
	})
}

