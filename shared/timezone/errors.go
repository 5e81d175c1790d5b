package timezone

import "errors"

// Parsing failures are typed so callers can render "time unavailable" instead
// of a fabricated instant. Resolution failures never produce errors; they
// degrade to DefaultZone (see Normalize).
var (
	// ErrInvalidTimestamp marks a string that does not parse as an ISO-8601
	// UTC instant.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrInvalidDateTimeFormat marks a local date, clock or date-time string
	// that fails shape validation or carries out-of-range field values.
	ErrInvalidDateTimeFormat = errors.New("invalid date/time format")
)
