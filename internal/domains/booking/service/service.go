package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/event"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/transaction"
	"iter"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Booking drives the booking lifecycle. Every business rule (double booking, service pricing,
// checkout) is enforced by the database; this layer only sequences statements and classifies
// what the database rejects.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	AddService(ctx context.Context, bookingID int64, req dto.AddServiceRequest) (dto.AddServiceResponse, error)
	Checkout(ctx context.Context, bookingID int64) (dto.CheckoutResponse, error)
	CheckAvailability(ctx context.Context, checkIn, checkOut time.Time, roomTypeID int64) (iter.Seq2[model.AvailableRoom, error], error)
	Get(ctx context.Context, bookingID int64) (dto.BookingDetailResponse, error)
	Invoice(ctx context.Context, bookingID int64) (dto.InvoiceResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	orders    repository.ServiceOrder
	roomRepo  roomRepo.Room
	tx        transaction.Runner
	publisher event.Publisher
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	orders repository.ServiceOrder,
	roomRepo roomRepo.Room,
	tx transaction.Runner,
	publisher event.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		orders:    orders,
		roomRepo:  roomRepo,
		tx:        tx,
		publisher: publisher,
		otel:      otel,
	}
}

// Create inserts the booking and marks its room booked in one transaction. The insert fires
// prevent_double_booking, so an overlapping stay comes back as ErrBookingConflict and the room
// update never runs.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel()
	if err != nil {
		return res, err
	}

	var bookingID int64

	err = s.tx.RunAtomically(ctx,
		func(ctx context.Context, sqltx *sqlx.Tx) error {
			id, err := s.repo.InsertReturningTx(ctx, sqltx, booking)
			if err != nil {
				return err //nolint:wrapcheck
			}

			bookingID = id

			return nil
		},
		func(ctx context.Context, sqltx *sqlx.Tx) error {
			return s.roomRepo.UpdateTx( //nolint:wrapcheck
				ctx,
				sqltx,
				map[string]any{roomModel.FieldStatus: constant.RoomStatusBooked},
				shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName),
			)
		},
	)
	if err != nil {
		err = failure.Classify(err)
		log.Error().Err(err).Int64("guestID", booking.GuestID).Int64("roomID", booking.RoomID).Msg("failed to create booking")

		return res, err
	}

	res.BookingID = bookingID

	s.publisher.Publish(ctx, dto.BookingEvent{
		BookingID: bookingID,
		GuestID:   booking.GuestID,
		RoomID:    booking.RoomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Event:     constant.EventBookingCreated,
	})

	return res, nil
}

// AddService inserts the order without a cost; before_service_order_insert prices it. Whatever
// the database rejects is reported as ErrServiceOrderRejected.
func (s *serviceImpl) AddService(ctx context.Context, bookingID int64, req dto.AddServiceRequest) (res dto.AddServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AddService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Quantity < 1 {
		return res, failure.BadRequestFromString("quantity must be at least 1") //nolint:wrapcheck
	}

	order := req.ToModel(bookingID)

	err = s.tx.RunAtomically(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		id, err := s.orders.InsertReturningTx(ctx, sqltx, order)
		if err != nil {
			return err //nolint:wrapcheck
		}

		res.OrderID = id

		return nil
	})
	if err != nil {
		err = failure.Reject(failure.ErrServiceOrderRejected, err)
		log.Error().Err(err).Int64("bookingID", bookingID).Int64("serviceID", req.ServiceID).Msg("failed to add service order")

		return dto.AddServiceResponse{}, err
	}

	s.publisher.Publish(ctx, dto.BookingEvent{
		BookingID: bookingID,
		OrderID:   res.OrderID,
		Event:     constant.EventBookingServiceAdded,
	})

	return res, nil
}

// Checkout delegates entirely to complete_booking. A booking that is not active, including one
// already checked out, fails with ErrCheckoutFailed.
func (s *serviceImpl) Checkout(ctx context.Context, bookingID int64) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Checkout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.tx.RunAtomically(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		return s.repo.CompleteTx(ctx, sqltx, bookingID) //nolint:wrapcheck
	})
	if err != nil {
		err = failure.Reject(failure.ErrCheckoutFailed, err)
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to checkout booking")

		return res, err
	}

	res.BookingID = bookingID
	res.Status = constant.BookingStatusCompleted

	s.publisher.Publish(ctx, dto.BookingEvent{
		BookingID: bookingID,
		Event:     constant.EventBookingCheckedOut,
	})

	return res, nil
}

// CheckAvailability validates the range and returns a lazy sequence over check_availability.
// Ranging over it twice queries twice.
func (s *serviceImpl) CheckAvailability(ctx context.Context, checkIn, checkOut time.Time, roomTypeID int64) (iter.Seq2[model.AvailableRoom, error], error) {
	if !checkIn.Before(checkOut) {
		return nil, failure.BadRequestFromString("check_in must be before check_out") //nolint:wrapcheck
	}

	if roomTypeID <= 0 {
		return nil, failure.BadRequestFromString("room_type_id must be a positive integer") //nolint:wrapcheck
	}

	rooms := s.repo.Available(ctx, checkIn, checkOut, roomTypeID)

	return func(yield func(model.AvailableRoom, error) bool) {
		for room, err := range rooms {
			if err != nil {
				yield(room, failure.Classify(err))

				return
			}

			if !yield(room, nil) {
				return
			}
		}
	}, nil
}

func (s *serviceImpl) detail(ctx context.Context, bookingID int64) (model.BookingDetail, []model.ServiceOrder, error) {
	detail, err := s.repo.GetDetail(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to get booking")

		return detail, nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == 0 {
		return detail, nil, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	orders, err := s.orders.GetByBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Int64("bookingID", bookingID).Msg("failed to get service orders")

		return detail, nil, fmt.Errorf("failed to get service orders: %w", err)
	}

	return detail, orders, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID int64) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, orders, err := s.detail(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(detail, orders)

	return res, nil
}

func (s *serviceImpl) Invoice(ctx context.Context, bookingID int64) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Invoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, orders, err := s.detail(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(detail, orders)

	return res, nil
}
