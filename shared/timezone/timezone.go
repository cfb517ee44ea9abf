// Package timezone resolves the hotel's local clock from APP_TIMEZONE (an IANA name such as
// "Asia/Jakarta"). Token lifetimes and event timestamps are taken from it.
package timezone

import (
	"frontdesk/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	once        sync.Once
)

// load reads only APP_TIMEZONE. It uses config.Load rather than the validated singleton so that
// packages formatting times never depend on unrelated settings being present.
func load() {
	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read timezone setting, falling back to UTC")

		appLocation = time.UTC

		return
	}

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// GetLocation returns the hotel timezone, loading it on first use.
func GetLocation() *time.Location {
	once.Do(load)

	return appLocation
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Format renders t in the hotel timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
