package service_test

import (
	"context"
	"errors"
	"frontdesk/infras/otel/mocks"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/shared"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGuestService_Delete(t *testing.T) {
	filter := shared.FilterByID(int64(7), "guest_id", "guests")
	fkErr := &pq.Error{
		Code:    constant.PqErrorCodeFkViolation,
		Message: `update or delete on table "guests" violates foreign key constraint "bookings_guest_id_fkey" on table "bookings"`,
	}

	tests := []struct {
		name        string
		setupMock   func(*guestMocks.MockGuest, *cacheMocks.MockRedisCache)
		wantErr     error
		wantCode    int
		wantMessage string
	}{
		{
			name: "deleted",
			setupMock: func(repo *guestMocks.MockGuest, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Delete(gomock.Any(), filter).Return(int64(1), nil)
				cache.EXPECT().Clear(gomock.Any(), constant.CacheKeyDashboard+constant.Asterix).Return(nil)
				cache.EXPECT().Clear(gomock.Any(), constant.CacheKeyReport+constant.Asterix).Return(nil)
			},
		},
		{
			name: "cache failure does not fail the delete",
			setupMock: func(repo *guestMocks.MockGuest, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().Delete(gomock.Any(), filter).Return(int64(1), nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(2)
			},
		},
		{
			name: "unknown guest",
			setupMock: func(repo *guestMocks.MockGuest, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Delete(gomock.Any(), filter).Return(int64(0), nil)
			},
			wantCode:    http.StatusNotFound,
			wantMessage: "guest not found",
		},
		{
			name: "guest with bookings",
			setupMock: func(repo *guestMocks.MockGuest, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Delete(gomock.Any(), filter).Return(int64(0), fkErr)
			},
			wantErr:     failure.ErrForeignKeyViolation,
			wantCode:    http.StatusBadRequest,
			wantMessage: "cannot delete guest with existing booking records",
		},
		{
			name: "database failure",
			setupMock: func(repo *guestMocks.MockGuest, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().Delete(gomock.Any(), filter).Return(int64(0), errors.New("connection refused"))
			},
			wantErr:     failure.ErrPersistence,
			wantCode:    http.StatusInternalServerError,
			wantMessage: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := guestMocks.NewMockGuest(ctrl)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(repo, cache)

			err := service.New(repo, cache, mocks.NewOtel()).Delete(context.Background(), 7)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantMessage, failure.GetMessage(err))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
