package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/migrations"
)

// maxTxAttempts bounds how many times a transaction is run when it fails
// with a [Retryable] error.
const maxTxAttempts = 3

// DB wraps a *sql.DB with the dialect-specific pieces the repository needs.
type DB struct {
	*sql.DB

	// dialect selects the migration set; one of the migrations.Dialect* values.
	dialect string

	// builder renders squirrel queries with the dialect's placeholders.
	builder sq.StatementBuilderType

	// lockRows adds SELECT ... FOR UPDATE inside transactions. SQLite has
	// no row locks; its writer lock already serializes transactions.
	lockRows bool

	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// inTx runs fn inside a transaction and commits it. The transaction is
// rolled back if fn fails. Retryable failures restart fn from scratch.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.inTx").
			Int("attempt", attempt).
			Msg("retrying transaction")
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Join(ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
