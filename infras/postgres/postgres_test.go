package postgres_test

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/postgres"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnection_CloseSharedHandleOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	mock.ExpectClose()

	assert.NoError(t, conn.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnection_CloseBoth(t *testing.T) {
	readDB, readMock, err := sqlmock.New()
	require.NoError(t, err)

	writeDB, writeMock, err := sqlmock.New()
	require.NoError(t, err)

	conn := &postgres.Connection{Read: sqlx.NewDb(readDB, "postgres"), Write: sqlx.NewDb(writeDB, "postgres")}

	readMock.ExpectClose()
	writeMock.ExpectClose()

	assert.NoError(t, conn.Close())
	assert.NoError(t, readMock.ExpectationsWereMet())
	assert.NoError(t, writeMock.ExpectationsWereMet())
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name   string
		pg     config.Postgres
		prefix string
		want   string
	}{
		{
			name:   "credentials are escaped",
			pg:     config.Postgres{Host: "db", Port: "5432", Username: "frontdesk", Password: "p@ss/word", Name: "hotel", SSLMode: "disable"},
			prefix: "test_",
			want:   "postgres://frontdesk:p%40ss%2Fword@db:5432/test_hotel?sslmode=disable",
		},
		{
			name: "timezone is forwarded",
			pg:   config.Postgres{Host: "db", Port: "5432", Name: "hotel", SSLMode: "require", Timezone: "Asia/Jakarta"},
			want: "postgres://db:5432/hotel?sslmode=require&timezone=Asia%2FJakarta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postgres.DSN(tt.pg, tt.prefix))
		})
	}
}

func TestConnection_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	mock.ExpectPing()

	assert.NoError(t, conn.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
