package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariefcatur/inventory-api/internal/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepo reads product documents kept as JSONB, one row per document:
//
//	CREATE TABLE "Products" (id text PRIMARY KEY, doc jsonb NOT NULL);
type ProductRepo struct {
	DB    *pgxpool.Pool
	table string
}

// NewProductRepo binds the repo to the table named after the collection.
func NewProductRepo(db *pgxpool.Pool, collection string) *ProductRepo {
	return &ProductRepo{DB: db, table: pgx.Identifier{collection}.Sanitize()}
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	var doc []byte
	err := r.DB.QueryRow(ctx, `SELECT doc FROM `+r.table+` WHERE id=$1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Product{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Product{}, catalog.Unavailable("postgres find", err)
	}
	return catalog.DecodeDocument(doc)
}

// ListAll reports transport failures as unavailable. Scan and decode failures mean a
// row does not hold a product document and are returned as plain errors, the same as
// FindByID does for an undecodable doc.
func (r *ProductRepo) ListAll(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT doc FROM `+r.table)
	if err != nil {
		return nil, catalog.Unavailable("postgres list", err)
	}
	defer rows.Close()

	out := make([]catalog.Product, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("postgres scan product: %w", err)
		}
		p, err := catalog.DecodeDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, catalog.Unavailable("postgres list", err)
	}
	return out, nil
}

func (r *ProductRepo) Ping(ctx context.Context) error {
	if err := r.DB.Ping(ctx); err != nil {
		return catalog.Unavailable("postgres ping", err)
	}
	return nil
}
