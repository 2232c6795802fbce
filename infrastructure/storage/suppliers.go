// Package storage persists registered supplier offers in a local sqlite
// database and serves them back as candidate records for matching.
package storage

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.SupplierStore = (*SupplierStore)(nil)

var validate = validator.New()

const suppliersTable = "suppliers"

const schema = `
CREATE TABLE IF NOT EXISTS suppliers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    material TEXT NOT NULL,
    purity REAL NOT NULL,
    delivery_rating REAL NOT NULL,
    min_order REAL NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_suppliers_material ON suppliers (material);
`

// SupplierStore is a sqlite-backed ports.SupplierStore.
type SupplierStore struct {
	db     *sqlx.DB
	logger zerolog.Logger
}

// Open connects to the sqlite database at path, creating the file when it
// does not exist. Use ":memory:" for an ephemeral store.
func Open(path string, logger zerolog.Logger) (*SupplierStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open supplier db %s: %w", path, err)
	}
	return &SupplierStore{
		db:     db,
		logger: logger.With().Str("component", "supplier_store").Logger(),
	}, nil
}

// Init creates the suppliers schema if it does not already exist.
func (s *SupplierStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initialize supplier schema: %w", err)
	}
	s.logger.Info().Msg("supplier schema ready")
	return nil
}

// Add validates and registers a new supplier, returning its assigned ID.
func (s *SupplierStore) Add(ctx context.Context, supplier domain.Supplier) (int64, error) {
	if err := validate.Struct(supplier); err != nil {
		return 0, fmt.Errorf("supplier validation failed: %w", err)
	}

	ib := sqlbuilder.SQLite.NewInsertBuilder()
	ib.InsertInto(suppliersTable).
		Cols("name", "material", "purity", "delivery_rating", "min_order").
		Values(supplier.Name, supplier.Material, supplier.Purity, supplier.DeliveryRating, supplier.MinOrder)

	query, args := ib.Build()
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert supplier: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("supplier insert id: %w", err)
	}

	s.logger.Info().Int64("supplier_id", id).Str("material", supplier.Material).Msg("supplier added")
	return id, nil
}

// FindByMaterial returns all suppliers registered for the given material,
// newest first. Material comparison is case-insensitive.
func (s *SupplierStore) FindByMaterial(ctx context.Context, material string) ([]domain.Supplier, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("id", "name", "material", "purity", "delivery_rating", "min_order", "created_at").
		From(suppliersTable).
		Where(sb.Equal("material COLLATE NOCASE", material)).
		OrderBy("created_at").Desc()

	query, args := sb.Build()
	var suppliers []domain.Supplier
	if err := s.db.SelectContext(ctx, &suppliers, query, args...); err != nil {
		return nil, fmt.Errorf("query suppliers for %q: %w", material, err)
	}
	return suppliers, nil
}

// Candidates returns the suppliers for a material converted to candidate
// records, ready for the engine to rank.
func (s *SupplierStore) Candidates(ctx context.Context, material string) ([]domain.Record, error) {
	suppliers, err := s.FindByMaterial(ctx, material)
	if err != nil {
		return nil, err
	}
	records := make([]domain.Record, len(suppliers))
	for i, supplier := range suppliers {
		records[i] = supplier.AsRecord()
	}
	return records, nil
}

// Close releases the database handle.
func (s *SupplierStore) Close() error { return s.db.Close() }
