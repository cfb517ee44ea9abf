package transaction_test

import (
	"context"
	"errors"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	"frontdesk/shared/transaction"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T) (transaction.Runner, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return transaction.New(conn, mocks.NewOtel()), mock
}

func execStep(query string) transaction.Step {
	return func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query)

		return err
	}
}

func TestRunAtomically_CommitsWhenEveryStepSucceeds(t *testing.T) {
	runner, mock := newRunner(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := runner.RunAtomically(context.Background(),
		execStep("INSERT INTO bookings (guest_id) VALUES (7)"),
		execStep("UPDATE rooms SET status = 'booked'"),
	)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAtomically_StopsAtFirstFailure(t *testing.T) {
	runner, mock := newRunner(t)

	triggerErr := errors.New("pq: Room is already booked for the selected dates")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnError(triggerErr)
	mock.ExpectRollback()

	secondRan := false

	err := runner.RunAtomically(context.Background(),
		execStep("INSERT INTO bookings (guest_id) VALUES (9)"),
		func(_ context.Context, _ *sqlx.Tx) error {
			secondRan = true

			return nil
		},
	)

	require.ErrorIs(t, err, triggerErr)
	assert.False(t, secondRan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAtomically_RollsBackOnPanic(t *testing.T) {
	runner, mock := newRunner(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = runner.RunAtomically(context.Background(), func(_ context.Context, _ *sqlx.Tx) error {
			panic("step exploded")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAtomically_BeginFails(t *testing.T) {
	runner, mock := newRunner(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false

	err := runner.RunAtomically(context.Background(), func(_ context.Context, _ *sqlx.Tx) error {
		called = true

		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAtomically_CommitFails(t *testing.T) {
	runner, mock := newRunner(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	err := runner.RunAtomically(context.Background(), execStep("UPDATE rooms SET status = 'booked'"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}
