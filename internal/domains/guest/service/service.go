package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guest=MockGuestService

import (
	"context"
	"errors"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Guest interface {
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Guest
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

// Delete removes a guest. log_guest_deletion records the audit entry, and a guest that still has
// bookings is refused by the foreign key.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if errors.Is(failure.Classify(err), failure.ErrForeignKeyViolation) {
			err = failure.RejectWithMessage(failure.ErrForeignKeyViolation, err, "cannot delete guest with existing booking records")
		} else {
			err = failure.Classify(err)
		}

		log.Error().Err(err).Int64("guestID", id).Msg("failed to delete guest")

		return err
	}

	if affected == 0 {
		return failure.NotFound("guest not found") //nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDashboard)
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyReport)

	return nil
}
