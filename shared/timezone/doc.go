// Package timezone resolves arbitrary timezone labels to canonical IANA
// identifiers and converts appointment times between a patient's wall clock
// and the UTC instants stored in the database.
//
// Resolution never fails: display names, abbreviations and garbled legacy
// profile values degrade to DefaultZone with a diagnostic log entry, so the
// portal can always render some time. Timestamp parsing is the opposite - a
// malformed date or time string fails with a typed error (ErrInvalidTimestamp,
// ErrInvalidDateTimeFormat) that callers must handle explicitly. Fabricating a
// wrong absolute time is worse than visibly failing, so the two failure
// classes are kept separate on purpose.
//
// Layouts follow Go reference-time conventions throughout:
//
//	2006-01-02       date
//	15:04            clock time
//	2006-01-02T15:04 local date-time (optional :05 seconds)
//	3:04 PM          12-hour display time
//
// Everything here is a pure function over its inputs plus the immutable alias
// table; the package is safe for concurrent use without locking.
package timezone
