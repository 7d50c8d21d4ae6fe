package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type txKey struct{}

// Transaction wraps a GORM transaction with commit/rollback semantics.
type Transaction struct {
	tx       *gorm.DB
	finished bool
}

// NewTransaction starts a new database transaction. When ctx already carries
// one from InTransaction, the returned Transaction joins it and leaves commit
// and rollback to its owner.
func NewTransaction(ctx context.Context, db Database) (*Transaction, error) {
	if outer, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return &Transaction{tx: outer.WithContext(ctx), finished: true}, nil
	}
	tx := db.Session(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return &Transaction{tx: tx}, nil
}

// Session returns the transaction session for executing queries.
func (t *Transaction) Session() *gorm.DB {
	return t.tx
}

// Commit commits the transaction. Calling it after completion is a no-op.
func (t *Transaction) Commit() error {
	if t.finished {
		return nil
	}
	t.finished = true
	if err := t.tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the transaction if not already finished.
func (t *Transaction) Rollback() error {
	if t.finished {
		return nil
	}
	t.finished = true
	if err := t.tx.Rollback().Error; err != nil {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// WithTransaction executes fn within a transaction, committing on success or
// rolling back on error.
func WithTransaction(ctx context.Context, db Database, fn func(tx *gorm.DB) error) error {
	_, err := WithTransactionResult(ctx, db, func(tx *gorm.DB) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}

// WithTransactionResult executes fn within a transaction and returns its
// result once committed.
func WithTransactionResult[T any](ctx context.Context, db Database, fn func(tx *gorm.DB) (T, error)) (T, error) {
	var zero T

	txn, err := NewTransaction(ctx, db)
	if err != nil {
		return zero, err
	}
	defer func() { _ = txn.Rollback() }()

	result, err := fn(txn.Session())
	if err != nil {
		return zero, err
	}
	if err := txn.Commit(); err != nil {
		return zero, err
	}
	return result, nil
}

// InTransaction runs fn in a transaction carried by the context passed to fn.
// Sessions, repositories and transactions opened with that context join it.
// Nested calls reuse the outer transaction.
func (d Database) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return WithTransaction(ctx, d, func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
