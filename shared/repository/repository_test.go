package repository_test

import (
	"context"
	"errors"
	"frontdesk/infras/otel/mocks"
	"frontdesk/infras/postgres"
	"frontdesk/shared/dto"
	"frontdesk/shared/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stay struct {
	ID        int64   `db:"stay_id"    insert:"-"`
	GuestID   int64   `db:"guest_id"`
	Amount    float64 `db:"amount"`
	Cost      float64 `db:"cost"       insert:"-"`
	GuestName string  `db:"guest_name" table:"guests" column:"full_name"`
}

func (stay) JoinClause() string {
	return "JOIN guests ON guests.guest_id = stays.guest_id"
}

func newStayRepository(t *testing.T) (repository.Repository[stay], *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[stay]("stay", "stays", "stay_id", conn, mocks.NewOtel()), sqlxDB, mock
}

func byStayID(id int64) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "stay_id", Value: id, Operator: dto.FilterOperatorEq, Table: "stays"},
		},
	}
}

func TestRepository_InsertColumnsSkipDatabaseFilledFields(t *testing.T) {
	repo, _, _ := newStayRepository(t)

	assert.Equal(t, []string{"guest_id", "amount"}, repo.InsertColumns)
}

func TestRepository_InsertReturning(t *testing.T) {
	repo, _, mock := newStayRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stays (guest_id, amount) VALUES ($1, $2) RETURNING stay_id")).
		WithArgs(7, 150.0).
		WillReturnRows(sqlmock.NewRows([]string{"stay_id"}).AddRow(11))

	id, err := repo.InsertReturning(context.Background(), stay{GuestID: 7, Amount: 150, Cost: 99})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertReturningTx_Error(t *testing.T) {
	repo, db, mock := newStayRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO stays").WillReturnError(errors.New("pq: Room is already booked"))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	_, err = repo.InsertReturningTx(context.Background(), tx, stay{GuestID: 9})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Room is already booked")
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithJoin(t *testing.T) {
	repo, _, mock := newStayRepository(t)

	query := regexp.QuoteMeta("SELECT stays.stay_id, stays.guest_id, stays.amount, stays.cost, guests.full_name AS guest_name FROM stays JOIN guests ON guests.guest_id = stays.guest_id")

	mock.ExpectPrepare(query).
		ExpectQuery().
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"stay_id", "guest_id", "amount", "cost", "guest_name"}).
			AddRow(11, 7, 150.0, 30.0, "Ayu Lestari"))

	got, err := repo.Get(context.Background(), byStayID(11))

	require.NoError(t, err)
	assert.Equal(t, stay{ID: 11, GuestID: 7, Amount: 150, Cost: 30, GuestName: "Ayu Lestari"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNoRows(t *testing.T) {
	repo, _, mock := newStayRepository(t)

	mock.ExpectPrepare("SELECT (.+) FROM stays").
		ExpectQuery().
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"stay_id"}))

	got, err := repo.Get(context.Background(), byStayID(404))

	require.NoError(t, err)
	assert.Zero(t, got.ID)
}

func TestRepository_GetAllRequiresFilter(t *testing.T) {
	repo, _, _ := newStayRepository(t)

	_, err := repo.GetAll(context.Background(), dto.FilterGroup{})

	assert.Error(t, err)
}

func TestRepository_Update(t *testing.T) {
	repo, _, mock := newStayRepository(t)

	mock.ExpectExec(`UPDATE stays SET amount = \$1, guest_id = \$2\s+WHERE \(stays\.stay_id = \$3\)`).
		WithArgs(200.0, 8, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), map[string]any{"guest_id": 8, "amount": 200.0}, byStayID(11))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateRequiresFilter(t *testing.T) {
	repo, _, _ := newStayRepository(t)

	err := repo.Update(context.Background(), map[string]any{"amount": 1}, dto.FilterGroup{})

	assert.Error(t, err)
}

func TestRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "row removed", affected: 1},
		{name: "nothing matched", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newStayRepository(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stays")).
				WithArgs(3).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.Delete(context.Background(), byStayID(3))

			require.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetAllOrdersByPrimaryColumn(t *testing.T) {
	repo, _, mock := newStayRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("WHERE (stays.stay_id = $1) ORDER BY stays.stay_id")).
		ExpectQuery().
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"stay_id", "amount"}).AddRow(11, 150.0))

	got, err := repo.GetAll(context.Background(), byStayID(11), "stay_id", "amount")

	require.NoError(t, err)
	assert.Equal(t, []stay{{ID: 11, Amount: 150}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteRequiresFilter(t *testing.T) {
	repo, _, _ := newStayRepository(t)

	_, err := repo.Delete(context.Background(), dto.FilterGroup{})

	assert.ErrorIs(t, err, repository.ErrRequiredFilter)
}
