package model

import (
	"database/sql"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "booking_id"
	FieldGuestID     = "guest_id"
	FieldRoomID      = "room_id"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldTotalAmount = "total_amount"
	FieldStatus      = "booking_status"

	ProcedureCompleteBooking  = "complete_booking"
	FunctionCheckAvailability = "check_availability"
)

// Booking is the writable row. The key and the status are filled by the database.
type Booking struct {
	ID          int64     `db:"booking_id"     insert:"-"`
	GuestID     int64     `db:"guest_id"`
	RoomID      int64     `db:"room_id"`
	CheckIn     time.Time `db:"check_in"`
	CheckOut    time.Time `db:"check_out"`
	TotalAmount float64   `db:"total_amount"`
	Status      string    `db:"booking_status" insert:"-"`
}

// BookingDetail is a booking joined with its guest and room.
type BookingDetail struct {
	Booking
	GuestName  string         `db:"guest_name"  table:"guests" column:"full_name"`
	GuestPhone sql.NullString `db:"guest_phone" table:"guests" column:"phone"`
	GuestEmail sql.NullString `db:"guest_email" table:"guests" column:"email"`
	RoomNumber string         `db:"room_number" table:"rooms"`
}

func (BookingDetail) JoinClause() string {
	return "JOIN guests ON guests.guest_id = bookings.guest_id JOIN rooms ON rooms.room_id = bookings.room_id"
}

// AvailableRoom is one row of check_availability.
type AvailableRoom struct {
	RoomID     int64   `db:"room_id"     json:"room_id"`
	RoomNumber string  `db:"room_number" json:"room_number"`
	TypeName   string  `db:"type_name"   json:"type_name"`
	BasePrice  float64 `db:"base_price"  json:"base_price"`
}
