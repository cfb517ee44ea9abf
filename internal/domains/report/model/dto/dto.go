package dto

import (
	"frontdesk/internal/domains/report/model"
	"frontdesk/shared/constant"
)

type RecentBookingResponse struct {
	BookingID   int64   `json:"booking_id"`
	GuestName   string  `json:"guest_name"`
	CheckIn     string  `json:"check_in"`
	Status      string  `json:"booking_status"`
	TotalAmount float64 `json:"total_amount"`
}

type DashboardResponse struct {
	GuestCount     int64                   `json:"guest_count"`
	TotalRevenue   float64                 `json:"total_revenue"`
	AvailableRooms int64                   `json:"available_rooms"`
	RecentBookings []RecentBookingResponse `json:"recent_bookings"`
}

func (r *DashboardResponse) FromModel(dashboard model.Dashboard) {
	r.GuestCount = dashboard.GuestCount
	r.TotalRevenue = dashboard.TotalRevenue
	r.AvailableRooms = dashboard.AvailableRooms
	r.RecentBookings = make([]RecentBookingResponse, len(dashboard.RecentBookings))

	for idx, booking := range dashboard.RecentBookings {
		r.RecentBookings[idx] = RecentBookingResponse{
			BookingID:   booking.BookingID,
			GuestName:   booking.GuestName,
			CheckIn:     booking.CheckIn.Format(constant.DateOnlyFormat),
			Status:      booking.Status,
			TotalAmount: booking.TotalAmount,
		}
	}
}

type OccupancyResponse struct {
	RoomNumber    string `json:"room_number"`
	TypeName      string `json:"type_name"`
	TotalBookings int64  `json:"total_bookings"`
}

type ShiftOverlapResponse struct {
	EmployeeOne string `json:"employee_one"`
	EmployeeTwo string `json:"employee_two"`
	ShiftTime   string `json:"shift_time"`
}

type PackageResponse struct {
	RoomType     string  `json:"room_type"`
	ServiceName  string  `json:"service_name"`
	PackagePrice float64 `json:"package_price"`
}

type VIPGuestResponse struct {
	FullName   string  `json:"full_name"`
	TotalSpent float64 `json:"total_lifetime_spent"`
	Level      string  `json:"vip_status"`
}

type ServiceRevenueResponse struct {
	ServiceName  string  `json:"service_name"`
	TotalRevenue float64 `json:"total_revenue"`
}

type UnusedRoomTypeResponse struct {
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
}

type ServiceSummaryResponse struct {
	BookingID       int64  `json:"booking_id"`
	GuestName       string `json:"guest_name"`
	ServicesOrdered string `json:"services_ordered"`
}

type AnalyticsResponse struct {
	Occupancy       []OccupancyResponse      `json:"occupancy"`
	ShiftOverlaps   []ShiftOverlapResponse   `json:"shift_overlaps"`
	Packages        []PackageResponse        `json:"packages"`
	VIPGuests       []VIPGuestResponse       `json:"vip_guests"`
	TopServices     []ServiceRevenueResponse `json:"top_services"`
	UnusedRoomTypes []UnusedRoomTypeResponse `json:"unused_room_types"`
	ServiceSummary  []ServiceSummaryResponse `json:"service_summary"`
}

func convert[From, To any](rows []From, fn func(From) To) []To {
	out := make([]To, len(rows))

	for idx, row := range rows {
		out[idx] = fn(row)
	}

	return out
}

func (r *AnalyticsResponse) FromModel(analytics model.Analytics) {
	r.Occupancy = convert(analytics.Occupancy, func(row model.Occupancy) OccupancyResponse {
		return OccupancyResponse(row)
	})
	r.ShiftOverlaps = convert(analytics.ShiftOverlaps, func(row model.ShiftOverlap) ShiftOverlapResponse {
		return ShiftOverlapResponse(row)
	})
	r.Packages = convert(analytics.Packages, func(row model.Package) PackageResponse {
		return PackageResponse(row)
	})
	r.VIPGuests = convert(analytics.VIPGuests, func(row model.VIPGuest) VIPGuestResponse {
		return VIPGuestResponse(row)
	})
	r.TopServices = convert(analytics.TopServices, func(row model.ServiceRevenue) ServiceRevenueResponse {
		return ServiceRevenueResponse(row)
	})
	r.UnusedRoomTypes = convert(analytics.UnusedRooms, func(row model.UnusedRoomType) UnusedRoomTypeResponse {
		return UnusedRoomTypeResponse(row)
	})
	r.ServiceSummary = convert(analytics.ServiceSummary, func(row model.ServiceSummary) ServiceSummaryResponse {
		return ServiceSummaryResponse(row)
	})
}
