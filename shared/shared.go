package shared

import (
	"context"
	"fmt"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseID parses a positive integer path or query parameter.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// ParseDate parses a YYYY-MM-DD value as a calendar date.
func ParseDate(field, value string) (time.Time, error) {
	date, err := time.ParseInLocation(constant.DateOnlyFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}

	return date, nil
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	key := []string{prefix}

	for _, part := range parts {
		key = append(key, fmt.Sprint(part))
	}

	return strings.Join(key, ":")
}

// InvalidateCaches removes every key under prefix. Failures are logged only; a stale read model
// expires with its TTL.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
