package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Report=MockReportService

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/repository"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Analytics(ctx context.Context) (dto.AnalyticsResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Dashboard and Analytics are cached until a lifecycle event or a guest deletion clears them.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, constant.CacheKeyDashboard, s.cfg.Cache.TTL, func(ctx context.Context) (dto.DashboardResponse, error) {
		dashboard, err := s.repo.Dashboard(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to get dashboard")

			return dto.DashboardResponse{}, fmt.Errorf("failed to get dashboard: %w", err)
		}

		var view dto.DashboardResponse
		view.FromModel(dashboard)

		return view, nil
	})
}

func (s *serviceImpl) Analytics(ctx context.Context) (res dto.AnalyticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Analytics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, constant.CacheKeyReport, s.cfg.Cache.TTL, func(ctx context.Context) (dto.AnalyticsResponse, error) {
		analytics, err := s.repo.Analytics(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to get analytics report")

			return dto.AnalyticsResponse{}, fmt.Errorf("failed to get analytics report: %w", err)
		}

		var view dto.AnalyticsResponse
		view.FromModel(analytics)

		return view, nil
	})
}
