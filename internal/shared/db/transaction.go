// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// TransactionManager runs units of work inside a gorm transaction. The
// transaction travels in the context so repositories pick it up through
// GetTxFromContext without knowing about it.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction commits when fn returns nil and rolls back otherwise.
// Nested calls reuse the outer transaction.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the transaction from context if available,
// otherwise defaultDB bound to ctx.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
