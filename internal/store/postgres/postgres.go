// Package postgres implements the store.Store interface backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/openlend/loanledger/internal/model"
	"github.com/openlend/loanledger/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStore implements store.Store backed by a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

// Compile-time check that PostgresStore implements store.Store.
var _ store.Store = (*PostgresStore)(nil)

// New opens a connection to the PostgreSQL database at the given URL,
// configures the connection pool, and runs any pending migrations.
func New(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) CreateAsset(ctx context.Context, asset *model.AssetRecord) error {
	return queryCreateAsset(ctx, s.db, asset)
}

func (s *PostgresStore) GetAsset(ctx context.Context, id string) (*model.AssetRecord, error) {
	return queryGetAsset(ctx, s.db, id)
}

func (s *PostgresStore) GetAssetByRef(ctx context.Context, externalRef string) (*model.AssetRecord, error) {
	return queryGetAssetByRef(ctx, s.db, externalRef)
}

func (s *PostgresStore) ListAssets(ctx context.Context, filter model.AssetFilter) ([]*model.AssetRecord, int, error) {
	return queryListAssets(ctx, s.db, filter)
}

func (s *PostgresStore) UpdateAsset(ctx context.Context, asset *model.AssetRecord) error {
	return queryUpdateAsset(ctx, s.db, asset)
}

func (s *PostgresStore) AppendTransfer(ctx context.Context, transfer *model.TransferEvent) error {
	return queryAppendTransfer(ctx, s.db, transfer)
}

func (s *PostgresStore) GetTransfers(ctx context.Context, assetID string) ([]*model.TransferEvent, error) {
	return queryGetTransfers(ctx, s.db, assetID)
}

func (s *PostgresStore) NextSequence(ctx context.Context, assetID string) (int64, error) {
	return queryNextSequence(ctx, s.db, assetID)
}

func (s *PostgresStore) AddOriginator(ctx context.Context, originator *model.Originator) error {
	return queryAddOriginator(ctx, s.db, originator)
}

func (s *PostgresStore) RemoveOriginator(ctx context.Context, identity string) error {
	return queryRemoveOriginator(ctx, s.db, identity)
}

func (s *PostgresStore) IsOriginator(ctx context.Context, identity string) (bool, error) {
	return queryIsOriginator(ctx, s.db, identity)
}

func (s *PostgresStore) ListOriginators(ctx context.Context) ([]*model.Originator, error) {
	return queryListOriginators(ctx, s.db)
}

func (s *PostgresStore) RecordEvent(ctx context.Context, event *model.Event) error {
	return queryRecordEvent(ctx, s.db, event)
}

func (s *PostgresStore) GetEvents(ctx context.Context, assetID string) ([]*model.Event, error) {
	return queryGetEvents(ctx, s.db, assetID)
}

// RunInTransaction begins a database transaction, creates a txStore that
// delegates to it, calls fn, and commits on success or rolls back on error.
func (s *PostgresStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txS := &txStore{tx: tx}
	if err := fn(txS); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// txStore implements store.Store using a *sql.Tx.
type txStore struct {
	tx *sql.Tx
}

// Compile-time check that txStore implements store.Store.
var _ store.Store = (*txStore)(nil)

func (s *txStore) CreateAsset(ctx context.Context, asset *model.AssetRecord) error {
	return queryCreateAsset(ctx, s.tx, asset)
}

func (s *txStore) GetAsset(ctx context.Context, id string) (*model.AssetRecord, error) {
	return queryGetAsset(ctx, s.tx, id)
}

func (s *txStore) GetAssetByRef(ctx context.Context, externalRef string) (*model.AssetRecord, error) {
	return queryGetAssetByRef(ctx, s.tx, externalRef)
}

func (s *txStore) ListAssets(ctx context.Context, filter model.AssetFilter) ([]*model.AssetRecord, int, error) {
	return queryListAssets(ctx, s.tx, filter)
}

func (s *txStore) UpdateAsset(ctx context.Context, asset *model.AssetRecord) error {
	return queryUpdateAsset(ctx, s.tx, asset)
}

func (s *txStore) AppendTransfer(ctx context.Context, transfer *model.TransferEvent) error {
	return queryAppendTransfer(ctx, s.tx, transfer)
}

func (s *txStore) GetTransfers(ctx context.Context, assetID string) ([]*model.TransferEvent, error) {
	return queryGetTransfers(ctx, s.tx, assetID)
}

func (s *txStore) NextSequence(ctx context.Context, assetID string) (int64, error) {
	return queryNextSequence(ctx, s.tx, assetID)
}

func (s *txStore) AddOriginator(ctx context.Context, originator *model.Originator) error {
	return queryAddOriginator(ctx, s.tx, originator)
}

func (s *txStore) RemoveOriginator(ctx context.Context, identity string) error {
	return queryRemoveOriginator(ctx, s.tx, identity)
}

func (s *txStore) IsOriginator(ctx context.Context, identity string) (bool, error) {
	return queryIsOriginator(ctx, s.tx, identity)
}

func (s *txStore) ListOriginators(ctx context.Context) ([]*model.Originator, error) {
	return queryListOriginators(ctx, s.tx)
}

func (s *txStore) RecordEvent(ctx context.Context, event *model.Event) error {
	return queryRecordEvent(ctx, s.tx, event)
}

func (s *txStore) GetEvents(ctx context.Context, assetID string) ([]*model.Event, error) {
	return queryGetEvents(ctx, s.tx, assetID)
}

// RunInTransaction on a txStore reuses the existing transaction (no nesting).
func (s *txStore) RunInTransaction(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(s)
}

// Close is a no-op for a transaction store; the parent store owns the connection.
func (s *txStore) Close() error {
	return nil
}
