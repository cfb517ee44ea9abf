package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "room_id"
	FieldRoomNumber = "room_number"
	FieldTypeID     = "type_id"
	FieldStatus     = "status"
)

type Room struct {
	ID         int64  `db:"room_id"     insert:"-"`
	RoomNumber string `db:"room_number"`
	TypeID     int64  `db:"type_id"`
	Status     string `db:"status"`
}

// GridRoom is a room with its type and the number of bookings it has ever had.
type GridRoom struct {
	RoomID             int64   `db:"room_id"`
	RoomNumber         string  `db:"room_number"`
	Status             string  `db:"status"`
	TypeName           string  `db:"type_name"`
	BasePrice          float64 `db:"base_price"`
	HistoricalBookings int64   `db:"historical_bookings"`
}
