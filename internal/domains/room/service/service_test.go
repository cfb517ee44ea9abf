package service_test

import (
	"context"
	"errors"
	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomService_Grid(t *testing.T) {
	rooms := []model.GridRoom{
		{RoomID: 1, RoomNumber: "101", Status: constant.RoomStatusAvailable, TypeName: "Single", BasePrice: 80},
		{RoomID: 2, RoomNumber: "102", Status: constant.RoomStatusBooked, TypeName: "Single", BasePrice: 80, HistoricalBookings: 2},
		{RoomID: 3, RoomNumber: "201", Status: constant.RoomStatusMaintenance, TypeName: "Suite", BasePrice: 400},
		{RoomID: 4, RoomNumber: "202", Status: constant.RoomStatusAvailable, TypeName: "Suite", BasePrice: 400, HistoricalBookings: 5},
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 5

	t.Run("cache miss counts statuses and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)
		saved := make(chan struct{})

		cache.EXPECT().Get(gomock.Any(), constant.CacheKeyRoomGrid, gomock.Any()).Return(errors.New("redis: nil"))
		repo.EXPECT().Grid(gomock.Any()).Return(rooms, nil)
		cache.EXPECT().
			Save(gomock.Any(), constant.CacheKeyRoomGrid, gomock.Any(), 5).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return nil
			})

		grid, err := service.New(repo, cfg, cache, mocks.NewOtel()).Grid(context.Background())
		require.NoError(t, err)

		assert.Len(t, grid.Rooms, 4)
		assert.Equal(t, 2, grid.Available)
		assert.Equal(t, 1, grid.Booked)
		assert.Equal(t, 1, grid.InRepair)
		assert.Equal(t, int64(5), grid.Rooms[3].HistoricalBookings)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("grid was not cached")
		}
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)

		cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyRoomGrid, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				value.(*dto.GridResponse).Booked = 7

				return nil
			})

		grid, err := service.New(repo, cfg, cache, mocks.NewOtel()).Grid(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, grid.Booked)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		repo.EXPECT().Grid(gomock.Any()).Return(nil, errors.New("relation \"room_occupancy\" does not exist"))

		_, err := service.New(repo, cfg, cache, mocks.NewOtel()).Grid(context.Background())
		assert.ErrorContains(t, err, "failed to get room grid")
	})
}
