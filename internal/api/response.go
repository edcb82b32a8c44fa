package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gyaneshwarpardhi/loginsight/internal/dashboard"
	"github.com/gyaneshwarpardhi/loginsight/internal/engine"
	"github.com/gyaneshwarpardhi/loginsight/internal/store"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID(r.Context())})
}

// writeErr picks the status code from the error chain.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrInvalidParam):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrUnknownProgram),
		errors.Is(err, dashboard.ErrUnknownAggregation),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrQueueFull):
		return http.StatusTooManyRequests
	case errors.Is(err, store.ErrDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
