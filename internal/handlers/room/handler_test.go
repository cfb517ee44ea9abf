package room_test

import (
	"errors"
	"frontdesk/infras/otel/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/handlers/room"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetGrid(t *testing.T) {
	tests := []struct {
		name     string
		grid     dto.GridResponse
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "grid",
			grid: dto.GridResponse{
				Rooms: []dto.GridRoomResponse{
					{RoomID: 12, RoomNumber: "112", Status: "booked", TypeName: "Deluxe", BasePrice: 150, HistoricalBookings: 3},
				},
				Booked: 1,
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"rooms":[{"room_id":12,"room_number":"112","status":"booked","type_name":"Deluxe","base_price":150,"historical_bookings":3}],"available":0,"booked":1,"maintenance":0}}`,
		},
		{
			name:     "repository failure",
			err:      errors.New("failed to get room grid"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed to get room grid"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := roomMocks.NewMockRoomService(gomock.NewController(t))
			svc.EXPECT().Grid(gomock.Any()).Return(tt.grid, tt.err)

			handler := room.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/rooms/grid", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}
