package model

import "time"

// Totals are the headline figures of the dashboard. Revenue is room charges plus service orders.
type Totals struct {
	GuestCount     int64   `db:"guest_count"`
	TotalRevenue   float64 `db:"total_revenue"`
	AvailableRooms int64   `db:"available_rooms"`
}

type RecentBooking struct {
	BookingID   int64     `db:"booking_id"`
	GuestName   string    `db:"full_name"`
	CheckIn     time.Time `db:"check_in"`
	Status      string    `db:"booking_status"`
	TotalAmount float64   `db:"total_amount"`
}

type Dashboard struct {
	Totals
	RecentBookings []RecentBooking
}

type Occupancy struct {
	RoomNumber    string `db:"room_number"`
	TypeName      string `db:"type_name"`
	TotalBookings int64  `db:"total_bookings"`
}

type ShiftOverlap struct {
	EmployeeOne string `db:"employee_one"`
	EmployeeTwo string `db:"employee_two"`
	ShiftTime   string `db:"shift_time"`
}

type Package struct {
	RoomType     string  `db:"room_type"`
	ServiceName  string  `db:"service_name"`
	PackagePrice float64 `db:"package_price"`
}

type VIPGuest struct {
	FullName   string  `db:"full_name"`
	TotalSpent float64 `db:"total_lifetime_spent"`
	Level      string  `db:"vip_status"`
}

type ServiceRevenue struct {
	ServiceName  string  `db:"service_name"`
	TotalRevenue float64 `db:"total_revenue"`
}

type UnusedRoomType struct {
	Name      string  `db:"name"`
	BasePrice float64 `db:"base_price"`
}

type ServiceSummary struct {
	BookingID       int64  `db:"booking_id"`
	GuestName       string `db:"full_name"`
	ServicesOrdered string `db:"services_ordered"`
}

type Analytics struct {
	Occupancy      []Occupancy
	ShiftOverlaps  []ShiftOverlap
	Packages       []Package
	VIPGuests      []VIPGuest
	TopServices    []ServiceRevenue
	UnusedRooms    []UnusedRoomType
	ServiceSummary []ServiceSummary
}
