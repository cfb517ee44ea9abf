package report_test

import (
	"errors"
	"frontdesk/infras/otel/mocks"
	reportMocks "frontdesk/internal/domains/report/mocks"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/handlers/report"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*reportMocks.MockReportService, http.Handler) {
	t.Helper()

	svc := reportMocks.NewMockReportService(gomock.NewController(t))
	handler := report.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetDashboard(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Dashboard(gomock.Any()).Return(dto.DashboardResponse{
		GuestCount:     3,
		TotalRevenue:   1245.5,
		AvailableRooms: 8,
		RecentBookings: []dto.RecentBookingResponse{},
	}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"guest_count":3,"total_revenue":1245.5,"available_rooms":8,"recent_bookings":[]}}`, recorder.Body.String())
}

func TestHandler_GetAnalytics(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Analytics(gomock.Any()).Return(dto.AnalyticsResponse{
			VIPGuests: []dto.VIPGuestResponse{{FullName: "Jane", TotalSpent: 5200, Level: "Platinum"}},
		}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reports", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"vip_status":"Platinum"`)
	})

	t.Run("failure", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Analytics(gomock.Any()).Return(dto.AnalyticsResponse{}, errors.New("failed to get analytics report"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reports", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
