// Package store persists exported dashboard snapshots.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gyaneshwarpardhi/loginsight/internal/analytics"
)

var (
	ErrNotFound = errors.New("snapshot not found")
	ErrDisabled = errors.New("snapshot store disabled")
)

// Snapshot is a frozen copy of the dashboard views for one selection.
type Snapshot struct {
	ID          string              `json:"id"`
	Fingerprint string              `json:"fingerprint"`
	Selection   analytics.Selection `json:"selection"`
	CreatedAt   time.Time           `json:"created_at"`
	Payload     json.RawMessage     `json:"payload"`
}

// Store saves and reads snapshots.
type Store interface {
	Init(ctx context.Context) error
	Save(ctx context.Context, s *Snapshot) error
	Get(ctx context.Context, id string) (*Snapshot, error)
	Close() error
}

// Open connects to the configured driver. An empty driver returns
// ErrDisabled so callers can run without persistence.
func Open(driver, dsn, schema string) (Store, error) {
	var (
		s   *sqlStore
		err error
	)
	switch driver {
	case "":
		return nil, ErrDisabled
	case "postgres":
		s, err = openPostgres(dsn, schema)
	case "sqlite":
		s, err = openSQLite(dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
