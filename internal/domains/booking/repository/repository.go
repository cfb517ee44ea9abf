package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
	"iter"
	"time"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertReturningTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) (int64, error)
	GetDetail(ctx context.Context, id int64) (model.BookingDetail, error)
	CompleteTx(ctx context.Context, sqltx *sqlx.Tx, id int64) error
	Available(ctx context.Context, checkIn, checkOut time.Time, roomTypeID int64) iter.Seq2[model.AvailableRoom, error]
}

type ServiceOrder interface {
	InsertReturningTx(ctx context.Context, sqltx *sqlx.Tx, model model.ServiceOrder) (int64, error)
	GetByBooking(ctx context.Context, bookingID int64) ([]model.ServiceOrder, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	details   gRepo.Repository[model.BookingDetail]
	procedure gRepo.Procedure
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		procedure:  gRepo.NewProcedure(otel),
		db:         db,
		otel:       otel,
	}
}

// GetDetail returns a zero detail when the booking does not exist.
func (r *repositoryImpl) GetDetail(ctx context.Context, id int64) (model.BookingDetail, error) {
	return r.details.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// CompleteTx runs complete_booking. The procedure owns both status updates.
func (r *repositoryImpl) CompleteTx(ctx context.Context, sqltx *sqlx.Tx, id int64) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CompleteTx")
	defer scope.End()

	if _, err := r.procedure.CallTx(ctx, sqltx, model.ProcedureCompleteBooking, id); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to complete booking %d: %w", id, err)
	}

	return nil
}

// Available streams check_availability from the read pool. Dates are sent as YYYY-MM-DD.
func (r *repositoryImpl) Available(ctx context.Context, checkIn, checkOut time.Time, roomTypeID int64) iter.Seq2[model.AvailableRoom, error] {
	return gRepo.SelectFunc[model.AvailableRoom](
		ctx,
		r.otel,
		r.db.Read,
		model.FunctionCheckAvailability,
		checkIn.Format(constant.DateOnlyFormat),
		checkOut.Format(constant.DateOnlyFormat),
		roomTypeID,
	)
}

type serviceOrderImpl struct {
	gRepo.Repository[model.ServiceOrder]
}

func NewServiceOrder(db *postgres.Connection, otel otel.Otel) ServiceOrder {
	return &serviceOrderImpl{
		Repository: gRepo.NewRepository[model.ServiceOrder](model.ServiceOrderEntityName, model.ServiceOrderTableName, model.FieldOrderID, db, otel),
	}
}

func (r *serviceOrderImpl) GetByBooking(ctx context.Context, bookingID int64) ([]model.ServiceOrder, error) {
	return r.GetAll(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.ServiceOrderTableName)) //nolint:wrapcheck
}
