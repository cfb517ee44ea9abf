package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

const gridQuery = `
	SELECT r.room_id, r.room_number, r.status, rt.name AS type_name, rt.base_price,
	       COALESCE(v.total_bookings, 0) AS historical_bookings
	FROM rooms r
	JOIN room_types rt ON rt.type_id = r.type_id
	LEFT JOIN room_occupancy v ON v.room_number = r.room_number
	ORDER BY r.room_number`

type Room interface {
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Grid(ctx context.Context) ([]model.GridRoom, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Grid(ctx context.Context) ([]model.GridRoom, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Grid")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, gridQuery)

	rooms := []model.GridRoom{}

	if err := r.db.Read.SelectContext(ctx, &rooms, gridQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to get room grid: %w", err)
	}

	return rooms, nil
}
