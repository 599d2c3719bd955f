// Package store is the persistence gateway: every SQL statement the server
// issues goes through a Gateway with positional placeholders and bound
// arguments. Handlers never touch gorm's model API, only raw statements.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNoFields is returned by UpdateBuilder.Build when no column was set.
	ErrNoFields = errors.New("no fields to update")
)

// Gateway executes parameterized statements against the relational store.
type Gateway struct {
	db *gorm.DB
}

// New wraps an open gorm handle.
func New(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// DB exposes the underlying handle, used only by bootstrap and tests.
func (g *Gateway) DB() *gorm.DB {
	return g.db
}

// Select runs a query and scans all rows into dest, which must be a pointer
// to a slice. A query matching nothing leaves dest empty and returns nil.
func (g *Gateway) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return g.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error
}

// Get runs a query expected to match at most one row and scans it into dest.
// The bool reports whether a row was found; a miss is not an error.
func (g *Gateway) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	result := g.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exec runs an INSERT/UPDATE/DELETE and returns the affected row count.
func (g *Gateway) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result := g.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Count runs a COUNT(*) style query and returns the single integer result.
func (g *Gateway) Count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Raw(query, args...).Scan(&n).Error
	return n, err
}

// InTx runs fn inside a transaction. Every multi-statement sequence that must
// be atomic (cascading deletes, duplicate-check-then-insert) goes through
// here; fn returning an error rolls the whole sequence back.
func (g *Gateway) InTx(ctx context.Context, fn func(tx *Gateway) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gateway{db: tx})
	})
}
