package transaction

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Step is one unit of work inside a transaction.
type Step func(ctx context.Context, tx *sqlx.Tx) error

// Runner executes steps so that either all of them commit or none do.
type Runner interface {
	RunAtomically(ctx context.Context, steps ...Step) error
}

type runnerImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Runner {
	return &runnerImpl{
		db:   db,
		otel: otel,
	}
}

// RunAtomically runs steps in order on one write transaction. The first failing step stops the
// run and its error is returned as is. The transaction is rolled back on every path that does
// not reach Commit, panics included.
func (r *runnerImpl) RunAtomically(ctx context.Context, steps ...Step) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".RunAtomically")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("transaction.steps", len(steps))

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false

	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}
	}()

	for idx, step := range steps {
		if err = step(ctx, tx); err != nil {
			log.Error().Err(err).Int("step", idx+1).Int("steps", len(steps)).Msg("transaction step failed, rolling back")

			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	committed = true

	return nil
}
