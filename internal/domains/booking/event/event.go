package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const publishTimeout = 10 * time.Second

// Publisher runs the side effects of a committed lifecycle change. None of them can fail the
// request that triggered it.
type Publisher interface {
	Publish(ctx context.Context, event dto.BookingEvent)
	Wait()
	Close() error
}

type publisherImpl struct {
	cfg     *config.Config
	cache   cache.RedisCache
	kafka   kafka.Client
	otel    otel.Otel
	pending sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

func New(cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

// Publish returns immediately. Wait blocks until every accepted event has been handled. Events
// published after Close are dropped.
func (p *publisherImpl) Publish(ctx context.Context, event dto.BookingEvent) {
	if event.OccurredAt == "" {
		event.OccurredAt = timezone.Format(time.Now(), constant.DateFormat)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		log.Warn().Str("event", event.Event).Int64("bookingID", event.BookingID).Msg("publisher closed, dropping booking event")

		return
	}

	p.pending.Add(1)

	go func() {
		defer p.pending.Done()

		p.handle(context.WithoutCancel(ctx), event)
	}()
}

func (p *publisherImpl) Wait() {
	p.pending.Wait()
}

// Close stops accepting events, drains pending ones, then flushes the broker writers. Only the
// first call does any work.
func (p *publisherImpl) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}

	p.closed = true
	p.mu.Unlock()

	p.Wait()

	return p.kafka.Close()
}

func (p *publisherImpl) handle(ctx context.Context, event dto.BookingEvent) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+event.Event)
	defer scope.End()

	scope.SetAttribute("booking_id", event.BookingID)

	shared.InvalidateCaches(ctx, p.cache, constant.CacheKeyDashboard)
	shared.InvalidateCaches(ctx, p.cache, constant.CacheKeyReport)
	shared.InvalidateCaches(ctx, p.cache, constant.CacheKeyRoomGrid)

	if !p.cfg.Kafka.Enable {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	message := kafka.Message{
		Key:   strconv.FormatInt(event.BookingID, 10),
		Event: event.Event,
		Value: event,
	}

	if err := p.kafka.SendMessages(ctx, p.cfg.Kafka.Topics.Booking, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", event.Event).Int64("bookingID", event.BookingID).Msg("failed to publish booking event")
	}
}
