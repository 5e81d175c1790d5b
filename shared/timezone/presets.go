package timezone

import "time"

// Preset names a fixed appointment display format. Handlers pick a preset
// instead of passing layouts around, which keeps every screen rendering
// appointment times the same way.
type Preset string

const (
	PresetDate     Preset = "date"      // Mar 15, 2024
	PresetTime     Preset = "time"      // 2:30 PM
	PresetLongDate Preset = "long_date" // Friday, March 15, 2024
	PresetDateTime Preset = "date_time" // Mar 15, 2024 2:30 PM
)

var presetLayouts = map[Preset]string{
	PresetDate:     "Jan 2, 2006",
	PresetTime:     "3:04 PM",
	PresetLongDate: "Monday, January 2, 2006",
	PresetDateTime: "Jan 2, 2006 3:04 PM",
}

// FormatAppointment renders a UTC-stored appointment instant in the patient's
// preferred zone using a named preset. Unknown presets render as date-time.
func FormatAppointment(utc time.Time, zone string, preset Preset) string {
	layout, ok := presetLayouts[preset]
	if !ok {
		layout = presetLayouts[PresetDateTime]
	}

	return Format(utc, zone, layout)
}

// FormatAppointmentISO is FormatAppointment for timestamps still in their
// stored ISO-8601 string form. Malformed input fails with ErrInvalidTimestamp
// so callers can show "time unavailable" rather than a wrong time.
func FormatAppointmentISO(value, zone string, preset Preset) (string, error) {
	t, err := FromUTC(value, zone)
	if err != nil {
		return "", err
	}

	return FormatAppointment(t, zone, preset), nil
}
