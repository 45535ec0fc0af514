package repositories

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor opens the unit of work a service call runs in. Repository calls
// made with the context handed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn)
}

func (t *gormTransactor) WithinReadOnlyTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn, &sql.TxOptions{ReadOnly: true})
}

func (t *gormTransactor) run(ctx context.Context, fn func(ctx context.Context) error, opts ...*sql.TxOptions) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	}, opts...)
}

// conn returns the transaction bound to ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// inTx runs fn in the transaction bound to ctx, opening one when there is none.
func inTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(tx.WithContext(ctx))
	}
	return db.WithContext(ctx).Transaction(fn)
}
