package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
)

// Config defines configurations to connect one Postgres database.
// The service talks to two of these: the primary transactional store
// and the contacts store.
type Config struct {
	DSN                string `mapstructure:"dsn"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
}

// PGStore implements the read-only repository over the primary store.
type PGStore struct {
	db *sqlx.DB
}

// ContactsStore implements the lookup surface over the contacts store.
type ContactsStore struct {
	db *sqlx.DB
}

func open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	d, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database: %w", err)
	}

	if cfg.MaxOpenConnections > 0 {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	// Recycle connections aggressively; every operation is a short
	// independent read and stale connections are not worth keeping.
	d.SetConnMaxLifetime(2 * time.Minute)
	d.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return d, nil
}

// New connects to the primary store and returns a new PGStore.
func New(ctx context.Context, cfg Config) (*PGStore, error) {
	d, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PGStore{db: d}, nil
}

// NewContacts connects to the contacts store.
func NewContacts(ctx context.Context, cfg Config) (*ContactsStore, error) {
	d, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &ContactsStore{db: d}, nil
}

func (ps *PGStore) Close() {
	ps.db.Close()
}

func (cs *ContactsStore) Close() {
	cs.db.Close()
}

// Ping checks connectivity by executing a simple query.
func (ps *PGStore) Ping(ctx context.Context) error {
	return ping(ctx, ps.db)
}

func (cs *ContactsStore) Ping(ctx context.Context) error {
	return ping(ctx, cs.db)
}

func ping(ctx context.Context, db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	if err := db.QueryRowxContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
