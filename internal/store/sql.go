package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var validSchema = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func sanitizeSchema(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("db schema is required")
	}
	if !validSchema.MatchString(value) {
		return "", fmt.Errorf("invalid schema name: %s", value)
	}
	return value, nil
}

// dialect holds the statements that differ between drivers.
type dialect struct {
	ddl    []string
	insert string
	get    string
}

func postgresDialect(schema string) dialect {
	return dialect{
		ddl: []string{
			fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema),
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.snapshots (
				id          UUID PRIMARY KEY,
				fingerprint TEXT NOT NULL,
				selection   JSONB NOT NULL,
				payload     JSONB NOT NULL,
				created_at  TIMESTAMPTZ NOT NULL
			)`, schema),
		},
		insert: fmt.Sprintf(`INSERT INTO %s.snapshots (id, fingerprint, selection, payload, created_at)
			VALUES ($1, $2, $3, $4, $5)`, schema),
		get: fmt.Sprintf(`SELECT id, fingerprint, selection, payload, created_at
			FROM %s.snapshots WHERE id = $1`, schema),
	}
}

var sqliteDialect = dialect{
	ddl: []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id          TEXT PRIMARY KEY,
			fingerprint TEXT NOT NULL,
			selection   TEXT NOT NULL,
			payload     TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL
		)`,
	},
	insert: `INSERT INTO snapshots (id, fingerprint, selection, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
	get:    `SELECT id, fingerprint, selection, payload, created_at FROM snapshots WHERE id = ?`,
}

// sqlStore implements Store over database/sql.
type sqlStore struct {
	db *sql.DB
	d  dialect
}

func openPostgres(dsn, schema string) (*sqlStore, error) {
	schema, err := sanitizeSchema(schema)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return &sqlStore{db: db, d: postgresDialect(schema)}, nil
}

func openSQLite(path string) (*sqlStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &sqlStore{db: db, d: sqliteDialect}, nil
}

// Init checks connectivity and creates the snapshot table.
func (s *sqlStore) Init(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	for _, stmt := range s.d.ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *sqlStore) Save(ctx context.Context, snap *Snapshot) error {
	selection, err := json.Marshal(snap.Selection)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	_, err = s.db.ExecContext(ctx, s.d.insert,
		snap.ID,
		snap.Fingerprint,
		string(selection),
		string(snap.Payload),
		snap.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot %s: %w", snap.ID, err)
	}
	return nil
}

func (s *sqlStore) Get(ctx context.Context, id string) (*Snapshot, error) {
	var (
		snap      Snapshot
		selection string
		payload   string
	)
	err := s.db.QueryRowContext(ctx, s.d.get, id).Scan(&snap.ID, &snap.Fingerprint, &selection, &payload, &snap.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(selection), &snap.Selection); err != nil {
		return nil, fmt.Errorf("decode selection: %w", err)
	}
	snap.Payload = json.RawMessage(payload)
	return &snap, nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
