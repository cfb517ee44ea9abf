package dto

import (
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"time"
)

type CreateBookingRequest struct {
	GuestID     int64   `json:"guest_id"     validate:"required,gt=0"`
	RoomID      int64   `json:"room_id"      validate:"required,gt=0"`
	CheckIn     string  `json:"check_in"     validate:"required,date"`
	CheckOut    string  `json:"check_out"    validate:"required,date"`
	TotalAmount float64 `json:"total_amount" validate:"gte=0"`
}

// ToModel parses the stay dates and rejects a stay that does not end after it starts.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, checkOut, err := ParseStay(c.CheckIn, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		GuestID:     c.GuestID,
		RoomID:      c.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: c.TotalAmount,
	}, nil
}

type CreateBookingResponse struct {
	BookingID int64 `json:"booking_id"`
}

type AddServiceRequest struct {
	ServiceID int64 `json:"service_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"required,gte=1"`
}

func (a *AddServiceRequest) ToModel(bookingID int64) model.ServiceOrder {
	return model.ServiceOrder{
		BookingID: bookingID,
		ServiceID: a.ServiceID,
		Quantity:  a.Quantity,
	}
}

type AddServiceResponse struct {
	OrderID int64 `json:"order_id"`
}

type CheckoutResponse struct {
	BookingID int64  `json:"booking_id"`
	Status    string `json:"booking_status"`
}

type AvailabilityQuery struct {
	CheckIn    string `json:"check_in"     validate:"required,date"`
	CheckOut   string `json:"check_out"    validate:"required,date"`
	RoomTypeID int64  `json:"room_type_id" validate:"required,gt=0"`
}

type AvailabilityResponse struct {
	CheckIn  string                `json:"check_in"`
	CheckOut string                `json:"check_out"`
	Rooms    []model.AvailableRoom `json:"rooms"`
}

type ServiceLine struct {
	OrderID        int64   `json:"order_id"`
	ServiceID      int64   `json:"service_id"`
	ServiceName    string  `json:"service_name"`
	Quantity       int     `json:"quantity"`
	TotalOrderCost float64 `json:"total_order_cost"`
}

func (s *ServiceLine) FromModel(order model.ServiceOrder) {
	s.OrderID = order.OrderID
	s.ServiceID = order.ServiceID
	s.ServiceName = order.ServiceName
	s.Quantity = order.Quantity
	s.TotalOrderCost = order.TotalOrderCost
}

func serviceLines(orders []model.ServiceOrder) []ServiceLine {
	lines := make([]ServiceLine, len(orders))
	for idx, order := range orders {
		lines[idx].FromModel(order)
	}

	return lines
}

type BookingDetailResponse struct {
	BookingID   int64         `json:"booking_id"`
	GuestID     int64         `json:"guest_id"`
	GuestName   string        `json:"guest_name"`
	RoomID      int64         `json:"room_id"`
	RoomNumber  string        `json:"room_number"`
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	TotalAmount float64       `json:"total_amount"`
	Status      string        `json:"booking_status"`
	Services    []ServiceLine `json:"services"`
}

func (r *BookingDetailResponse) FromModel(detail model.BookingDetail, orders []model.ServiceOrder) {
	r.BookingID = detail.ID
	r.GuestID = detail.GuestID
	r.GuestName = detail.GuestName
	r.RoomID = detail.RoomID
	r.RoomNumber = detail.RoomNumber
	r.CheckIn = detail.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = detail.CheckOut.Format(constant.DateOnlyFormat)
	r.TotalAmount = detail.TotalAmount
	r.Status = detail.Status
	r.Services = serviceLines(orders)
}

type InvoiceResponse struct {
	BookingID    int64         `json:"booking_id"`
	GuestName    string        `json:"guest_name"`
	GuestPhone   string        `json:"guest_phone"`
	GuestEmail   string        `json:"guest_email"`
	RoomNumber   string        `json:"room_number"`
	CheckIn      string        `json:"check_in"`
	CheckOut     string        `json:"check_out"`
	TotalAmount  float64       `json:"total_amount"`
	ServiceTotal float64       `json:"service_total"`
	FinalTotal   float64       `json:"final_total"`
	Services     []ServiceLine `json:"services"`
}

// FromModel sums the stored order costs; nothing is priced here.
func (r *InvoiceResponse) FromModel(detail model.BookingDetail, orders []model.ServiceOrder) {
	r.BookingID = detail.ID
	r.GuestName = detail.GuestName
	r.GuestPhone = detail.GuestPhone.String
	r.GuestEmail = detail.GuestEmail.String
	r.RoomNumber = detail.RoomNumber
	r.CheckIn = detail.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = detail.CheckOut.Format(constant.DateOnlyFormat)
	r.TotalAmount = detail.TotalAmount
	r.Services = serviceLines(orders)

	r.ServiceTotal = 0
	for _, order := range orders {
		r.ServiceTotal += order.TotalOrderCost
	}

	r.FinalTotal = r.TotalAmount + r.ServiceTotal
}

// BookingEvent is the payload published for every committed lifecycle change. OccurredAt is
// stamped on publish in the hotel timezone.
type BookingEvent struct {
	BookingID  int64  `json:"booking_id"`
	RoomID     int64  `json:"room_id,omitempty"`
	GuestID    int64  `json:"guest_id,omitempty"`
	OrderID    int64  `json:"order_id,omitempty"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	Event      string `json:"event"`
	OccurredAt string `json:"occurred_at"`
}

// ParseStay parses both dates and requires checkIn to be strictly before checkOut.
func ParseStay(checkIn, checkOut string) (start, end time.Time, err error) {
	start, err = shared.ParseDate(constant.RequestParamCheckIn, checkIn)
	if err != nil {
		return start, end, err //nolint:wrapcheck
	}

	end, err = shared.ParseDate(constant.RequestParamCheckOut, checkOut)
	if err != nil {
		return start, end, err //nolint:wrapcheck
	}

	if !start.Before(end) {
		return start, end, failure.BadRequestFromString("check_in must be before check_out") //nolint:wrapcheck
	}

	return start, end, nil
}
