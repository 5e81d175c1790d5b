package timezone

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
)

// Reference layouts used across the portal. Handlers and DTOs must not invent
// their own variants.
const (
	LayoutDate         = "2006-01-02"
	LayoutClock        = "15:04"
	LayoutLocal        = "2006-01-02T15:04"
	LayoutLocalSeconds = "2006-01-02T15:04:05"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
	localRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2})?$`)
)

// NowIn returns the current instant rendered in the given zone. The zone
// string is normalized first, like everywhere else in this package.
func NowIn(zone string) time.Time {
	return time.Now().In(Location(zone))
}

// StartOfDay returns midnight of the current day in the given zone.
func StartOfDay(zone string) time.Time {
	loc := Location(zone)
	now := time.Now().In(loc)

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// FromUTC parses an ISO-8601 UTC timestamp and reprojects it into the given
// zone. Malformed input fails with ErrInvalidTimestamp; no epoch substitute.
func FromUTC(value, zone string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an ISO-8601 instant", ErrInvalidTimestamp, value)
	}

	return t.In(Location(zone)), nil
}

// CreateDateTime combines a wall-clock date ("2006-01-02") and time ("15:04")
// with an explicit zone into an absolute instant. Both strings are shape
// validated before parsing; out-of-range field values surface through the
// same typed error with the parser's detail attached.
func CreateDateTime(dateStr, clockStr, zone string) (time.Time, error) {
	if !dateRe.MatchString(dateStr) {
		return time.Time{}, fmt.Errorf("%w: date %q does not match %s", ErrInvalidDateTimeFormat, dateStr, LayoutDate)
	}

	if !clockRe.MatchString(clockStr) {
		return time.Time{}, fmt.Errorf("%w: time %q does not match %s", ErrInvalidDateTimeFormat, clockStr, LayoutClock)
	}

	t, err := time.ParseInLocation(LayoutLocal, dateStr+"T"+clockStr, Location(zone))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %s: %v", ErrInvalidDateTimeFormat, dateStr, clockStr, err)
	}

	return t, nil
}

// LocalToUTC parses a local wall-clock string ("2006-01-02T15:04", seconds
// optional) in the given zone and reprojects it to UTC. Instants within an
// hour of a DST transition are logged as an advisory but still convert using
// Go's standard resolution for ambiguous and nonexistent local times - the
// result stays deterministic either way.
func LocalToUTC(value, zone string) (time.Time, error) {
	if !localRe.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %q does not match %s", ErrInvalidDateTimeFormat, value, LayoutLocal)
	}

	layout := LayoutLocal
	if len(value) == len(LayoutLocalSeconds) {
		layout = LayoutLocalSeconds
	}

	loc := Location(zone)

	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDateTimeFormat, value, err)
	}

	if NearTransition(t, loc) {
		log.Warn().
			Str("local", value).
			Str("zone", loc.String()).
			Msg("local time is within an hour of a DST transition")
	}

	return t.UTC(), nil
}

// NearTransition reports whether the UTC offset in loc changes within an hour
// on either side of t. Exported for telemetry; conversion results never
// depend on it.
func NearTransition(t time.Time, loc *time.Location) bool {
	_, before := t.Add(-time.Hour).In(loc).Zone()
	_, at := t.In(loc).Zone()
	_, after := t.Add(time.Hour).In(loc).Zone()

	return before != at || at != after
}

// Format renders an instant in the given zone using a Go reference layout.
func Format(t time.Time, zone, layout string) string {
	return t.In(Location(zone)).Format(layout)
}

// DisplayName builds a human-friendly label for a zone, combining its short
// name with the current signed UTC offset, e.g. "Chicago (-05:00)". Zones
// without a friendly alias fall back to their identifier's city segment, or
// the raw identifier itself.
func DisplayName(zone string) string {
	id := Normalize(zone)

	name, ok := friendlyNames[id]
	if !ok {
		name = cityFromID(id)
	}

	offset := time.Now().In(Location(id)).Format("-07:00")

	return fmt.Sprintf("%s (%s)", name, offset)
}

func cityFromID(id string) string {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '/' {
			id = id[i+1:]

			break
		}
	}

	out := []byte(id)
	for i, c := range out {
		if c == '_' {
			out[i] = ' '
		}
	}

	return string(out)
}
