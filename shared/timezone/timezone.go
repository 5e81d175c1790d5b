package timezone

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"mindwell/config"
)

// DefaultZone is the fallback identifier used whenever a raw timezone string
// cannot be resolved. It must always be loadable.
const DefaultZone = "America/Chicago"

var appLocation *time.Location

func init() {
	cfg := config.Get()

	// DefaultZone covers user-supplied timezone strings; an unset server
	// config means the application runs in UTC.
	if strings.TrimSpace(cfg.App.Timezone) == "" {
		appLocation = time.UTC

		return
	}

	zone := Normalize(cfg.App.Timezone)

	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load application timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("configured", cfg.App.Timezone).
		Str("zone", zone).
		Msg("Application timezone initialized")
}

// Normalize resolves an arbitrary timezone string to a valid IANA identifier.
// Already-canonical identifiers pass through unchanged; anything else is
// matched against the ordered alias table, first exactly and then by substring
// containment in either direction. Unresolvable input degrades to DefaultZone
// with a diagnostic log entry - resolution never fails the caller.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		log.Debug().Msg("empty timezone string, using default zone")

		return DefaultZone
	}

	if isCanonical(trimmed) {
		return trimmed
	}

	key := strings.ToLower(trimmed)

	for _, a := range aliases {
		if a.key == key {
			return a.zone
		}
	}

	// Verbose labels like "Eastern Standard Time (EST)" contain an alias key,
	// and truncated ones are contained by it. First list entry wins.
	for _, a := range aliases {
		if strings.Contains(key, a.key) || strings.Contains(a.key, key) {
			return a.zone
		}
	}

	log.Debug().Str("timezone", raw).Msg("unrecognized timezone string, using default zone")

	return DefaultZone
}

// isCanonical reports whether s is already a canonical IANA identifier.
// Region/city identifiers carry a slash; bare abbreviations such as "EST" are
// deliberately excluded even though tzdata ships legacy entries for some of
// them, so they resolve through the alias table and keep DST behavior.
func isCanonical(s string) bool {
	if s == "UTC" {
		return true
	}

	if !strings.Contains(s, "/") {
		return false
	}

	_, err := time.LoadLocation(s)

	return err == nil
}

// Location resolves a raw timezone string to a *time.Location. Because
// Normalize only ever returns loadable identifiers this cannot fail; the UTC
// return is a safety net for a broken tzdata install.
func Location(raw string) *time.Location {
	loc, err := time.LoadLocation(Normalize(raw))
	if err != nil {
		log.Error().Err(err).Str("timezone", raw).Msg("failed to load normalized zone")

		return time.UTC
	}

	return loc
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	if appLocation == nil {
		return time.Now().UTC()
	}

	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.UTC()
	}

	return t.In(appLocation)
}

// GetLocation returns the application timezone location.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// AppFormat formats a time in the application timezone.
func AppFormat(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
