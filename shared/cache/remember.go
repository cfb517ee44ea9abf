package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Remember serves key from the cache, or calls load and stores its result for ttl seconds. The
// store runs in the background and a failed store only logs, so redis never fails a read.
func Remember[T any](ctx context.Context, cache RedisCache, key string, ttl int, load func(context.Context) (T, error)) (T, error) {
	var cached T

	if err := cache.Get(ctx, key, &cached); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return cached, nil
	}

	fresh, err := load(ctx)
	if err != nil {
		return fresh, err
	}

	go func(ctx context.Context) {
		if err := cache.Save(ctx, key, fresh, ttl); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save to cache")
		}
	}(context.WithoutCancel(ctx))

	return fresh, nil
}
