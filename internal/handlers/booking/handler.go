package booking

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Get("/{id}/invoice", handler.GetInvoice)
		routerGroup.Post("/{id}/services", handler.AddService)
		routerGroup.Post("/{id}/checkout", handler.Checkout)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Books a room for a guest and marks the room booked. Overlapping stays are rejected with 409.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// CheckAvailability lists the rooms of a type that are free for a stay.
// @Summary Check room availability
// @Description Rooms of the given type with no active booking overlapping the stay.
// @Tags Booking
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param room_type_id query integer true "Room type ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := request.URL.Query()
	roomTypeID, _ := strconv.ParseInt(query.Get(constant.RequestParamRoomTypeID), 10, 64)

	req := dto.AvailabilityQuery{
		CheckIn:    query.Get(constant.RequestParamCheckIn),
		CheckOut:   query.Get(constant.RequestParamCheckOut),
		RoomTypeID: roomTypeID,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	checkIn, checkOut, err := dto.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	rooms, err := handler.service.CheckAvailability(ctx, checkIn, checkOut, req.RoomTypeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	res := dto.AvailabilityResponse{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Rooms:    []model.AvailableRoom{},
	}

	for room, err := range rooms {
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to read available rooms")

			response.WithError(writer, err)

			return
		}

		res.Rooms = append(res.Rooms, room)
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBooking retrieves a booking with its guest, room and ordered services.
// @Summary Get a booking by ID
// @Description Booking details joined with guest, room and service orders.
// @Tags Booking
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingDetailResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetInvoice builds the invoice of a booking.
// @Summary Get a booking invoice
// @Description Room charge, service lines and the final total. Service costs are the ones the database priced.
// @Tags Booking
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Invoice"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/invoice [get]
// @Security BearerAuth
func (handler *Handler) GetInvoice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoice")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Invoice(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddService orders a service for an active booking.
// @Summary Add a service order
// @Description The order is priced by the database. Orders on inactive bookings are rejected with 422.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param request body dto.AddServiceRequest true "Add Service Request"
// @Success 201 {object} response.Data[dto.AddServiceResponse] "Service order created successfully"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/services [post]
// @Security BearerAuth
func (handler *Handler) AddService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddService")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.AddServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.AddService(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add service order")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Service order added successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// Checkout completes a booking and frees its room.
// @Summary Checkout a booking
// @Description Runs complete_booking. Checking out a booking that is not active fails with 409.
// @Tags Booking
// @Produce json
// @Param id path integer true "Booking ID"
// @Success 200 {object} response.Data[dto.CheckoutResponse] "Booking checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Checkout(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to checkout booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Booking checked out successfully by user " + user)

	response.WithJSON(writer, http.StatusOK, res)
}
