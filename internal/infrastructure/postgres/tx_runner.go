package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Colaboradores-api/internal/domain/repository"
)

// txBeginner lo cumplen *pgxpool.Pool y pgx.Tx (este último con savepoints).
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db txBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db txBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con un DocumentStore atado a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(store *DocumentStore) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storeError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDocumentStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storeError("commit transaction", err)
	}
	return nil
}

// InTx ejecuta fn en una transacción. Sin soporte transaccional en el Querier, fn
// recibe el mismo store.
func (s *DocumentStore) InTx(ctx context.Context, fn func(store repository.DocumentStore) error) error {
	b, ok := s.q.(txBeginner)
	if !ok {
		return fn(s)
	}
	return NewTxRunner(b).Run(ctx, func(tx *DocumentStore) error { return fn(tx) })
}
