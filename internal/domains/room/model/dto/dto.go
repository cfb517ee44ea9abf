package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/constant"
)

type GridRoomResponse struct {
	RoomID             int64   `json:"room_id"`
	RoomNumber         string  `json:"room_number"`
	Status             string  `json:"status"`
	TypeName           string  `json:"type_name"`
	BasePrice          float64 `json:"base_price"`
	HistoricalBookings int64   `json:"historical_bookings"`
}

type GridResponse struct {
	Rooms     []GridRoomResponse `json:"rooms"`
	Available int                `json:"available"`
	Booked    int                `json:"booked"`
	InRepair  int                `json:"maintenance"`
}

func (r *GridResponse) FromModels(rooms []model.GridRoom) {
	r.Rooms = make([]GridRoomResponse, len(rooms))

	for idx, room := range rooms {
		r.Rooms[idx] = GridRoomResponse(room)

		switch room.Status {
		case constant.RoomStatusAvailable:
			r.Available++
		case constant.RoomStatusBooked:
			r.Booked++
		case constant.RoomStatusMaintenance:
			r.InRepair++
		}
	}
}
