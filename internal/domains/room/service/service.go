package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
)

type Room interface {
	Grid(ctx context.Context) (dto.GridResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Grid is served from cache until a booking or checkout clears it.
func (s *serviceImpl) Grid(ctx context.Context) (res dto.GridResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Grid")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, constant.CacheKeyRoomGrid, s.cfg.Cache.TTL, func(ctx context.Context) (dto.GridResponse, error) {
		rooms, err := s.repo.Grid(ctx)
		if err != nil {
			return dto.GridResponse{}, fmt.Errorf("failed to get room grid: %w", err)
		}

		var grid dto.GridResponse
		grid.FromModels(rooms)

		scope.SetAttribute("rooms", len(rooms))

		return grid, nil
	})
}
