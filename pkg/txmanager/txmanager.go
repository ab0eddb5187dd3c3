// Package txmanager runs functions inside SERIALIZABLE transactions over the
// instrumented database wrapper, retrying on serialization failures.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/jtmanningm/ezbiz-booking/pkg/dbmetrics"
)

// ErrTxFailed is returned when a transaction cannot be completed.
var ErrTxFailed = errors.New("txmanager: transaction failed")

// Postgres class 40 (transaction rollback) codes that warrant a retry.
const (
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

// maxRetries bounds retry attempts after serialization failures.
const maxRetries = 3

// TransactionManager opens serializable transactions on an instrumented DB.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a TransactionManager.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. The transaction
// is carried through the context, so any repository call made with that
// context participates in it. Serialization failures are retried up to
// maxRetries times; any error from fn rolls the transaction back.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("%w: begin: %v", ErrTxFailed, err)
		}

		txCtx := dbmetrics.WithTx(ctx, tx)

		if err := fn(txCtx); err != nil {
			_ = tx.Rollback()
			if isSerializationFailure(err) && attempt < maxRetries {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if isSerializationFailure(err) && attempt < maxRetries {
				lastErr = err
				continue
			}
			return fmt.Errorf("%w: commit: %v", ErrTxFailed, err)
		}

		return nil
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTxFailed, lastErr)
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode ||
			string(pqErr.Code) == deadlockDetectedCode
	}
	return false
}
