package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/report/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"

	"github.com/jmoiron/sqlx"
)

// Report reads the aggregate views and functions the schema defines. Everything runs on the read
// connection.
type Report interface {
	Dashboard(ctx context.Context) (model.Dashboard, error)
	Analytics(ctx context.Context) (model.Analytics, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func selectAll[T any](ctx context.Context, ot otel.Otel, db *sqlx.DB, name, query string) ([]T, error) {
	ctx, scope := ot.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report."+name)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []T{}

	if err := db.SelectContext(ctx, &rows, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return rows, nil
}

func (r *repositoryImpl) Dashboard(ctx context.Context) (res model.Dashboard, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Dashboard")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, totalsQuery)

	if err = r.db.Read.GetContext(ctx, &res.Totals, totalsQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to read dashboard totals: %w", err)
	}

	res.RecentBookings, err = selectAll[model.RecentBooking](ctx, r.otel, r.db.Read, "recent_bookings", recentBookingsQuery)
	if err != nil {
		return res, err
	}

	return res, nil
}

func (r *repositoryImpl) Analytics(ctx context.Context) (res model.Analytics, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Analytics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if res.Occupancy, err = selectAll[model.Occupancy](ctx, r.otel, r.db.Read, "occupancy", occupancyQuery); err != nil {
		return res, err
	}

	if res.ShiftOverlaps, err = selectAll[model.ShiftOverlap](ctx, r.otel, r.db.Read, "shift_overlap", shiftOverlapQuery); err != nil {
		return res, err
	}

	if res.Packages, err = selectAll[model.Package](ctx, r.otel, r.db.Read, "packages", packagesQuery); err != nil {
		return res, err
	}

	if res.VIPGuests, err = selectAll[model.VIPGuest](ctx, r.otel, r.db.Read, "vip_guests", vipGuestsQuery); err != nil {
		return res, err
	}

	if res.TopServices, err = selectAll[model.ServiceRevenue](ctx, r.otel, r.db.Read, "top_services", topServicesQuery); err != nil {
		return res, err
	}

	if res.UnusedRooms, err = selectAll[model.UnusedRoomType](ctx, r.otel, r.db.Read, "unused_room_types", unusedRoomTypesQuery); err != nil {
		return res, err
	}

	if res.ServiceSummary, err = selectAll[model.ServiceSummary](ctx, r.otel, r.db.Read, "service_summary", serviceSummaryQuery); err != nil {
		return res, err
	}

	return res, nil
}
