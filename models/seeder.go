package models

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Seeder prepares a Postgres data source with the seed dataset.
// Rows that already exist are left untouched.
type Seeder struct {
	db *sql.DB
}

func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedResult counts the rows inserted by a Seed call.
type SeedResult struct {
	Users      int64
	Categories int64
	Products   int64
}

func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return res, fmt.Errorf("create schema: %w", err)
	}

	for _, u := range SeedUsers() {
		n, err := execCount(ctx, tx,
			`INSERT INTO users (id, name, sex) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, string(u.Sex))
		if err != nil {
			return res, fmt.Errorf("insert user %d: %w", u.ID, err)
		}
		res.Users += n
	}
	for _, c := range SeedCategories() {
		n, err := execCount(ctx, tx,
			`INSERT INTO categories (id, title, icon, owner_id) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Title, c.Icon, c.OwnerID)
		if err != nil {
			return res, fmt.Errorf("insert category %d: %w", c.ID, err)
		}
		res.Categories += n
	}
	for _, p := range SeedProducts() {
		n, err := execCount(ctx, tx,
			`INSERT INTO products (id, name, category_id) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.CategoryID)
		if err != nil {
			return res, fmt.Errorf("insert product %d: %w", p.ID, err)
		}
		res.Products += n
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

func execCount(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, error) {
	r, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return r.RowsAffected()
}
