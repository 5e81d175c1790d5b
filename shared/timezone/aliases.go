package timezone

// alias maps a lower-cased, trimmed human label to its IANA identifier.
type alias struct {
	key  string
	zone string
}

// aliases is scanned in order and the first match wins, for exact lookups and
// for the substring pass alike. More specific keys sit above shorter ones so
// "central standard time" never falls through to "central". The list is fixed
// at compile time and must not be mutated.
var aliases = []alias{
	// Windows/.NET style display names seen in legacy profile rows.
	{"eastern time (us & canada)", "America/New_York"},
	{"central time (us & canada)", "America/Chicago"},
	{"mountain time (us & canada)", "America/Denver"},
	{"pacific time (us & canada)", "America/Los_Angeles"},

	{"eastern standard time", "America/New_York"},
	{"eastern daylight time", "America/New_York"},
	{"central standard time", "America/Chicago"},
	{"central daylight time", "America/Chicago"},
	{"mountain standard time", "America/Denver"},
	{"mountain daylight time", "America/Denver"},
	{"pacific standard time", "America/Los_Angeles"},
	{"pacific daylight time", "America/Los_Angeles"},
	{"alaska standard time", "America/Anchorage"},
	{"hawaii standard time", "Pacific/Honolulu"},
	{"atlantic standard time", "America/Halifax"},

	{"eastern time", "America/New_York"},
	{"central time", "America/Chicago"},
	{"mountain time", "America/Denver"},
	{"pacific time", "America/Los_Angeles"},

	// Abbreviations. "est" and friends are resolved here rather than through
	// tzdata's legacy fixed-offset zones so that DST still applies.
	{"est", "America/New_York"},
	{"edt", "America/New_York"},
	{"cst", "America/Chicago"},
	{"cdt", "America/Chicago"},
	{"mst", "America/Denver"},
	{"mdt", "America/Denver"},
	{"pst", "America/Los_Angeles"},
	{"pdt", "America/Los_Angeles"},
	{"akst", "America/Anchorage"},
	{"akdt", "America/Anchorage"},
	{"hst", "Pacific/Honolulu"},
	{"ast", "America/Halifax"},

	{"arizona", "America/Phoenix"},
	{"alaska", "America/Anchorage"},
	{"hawaii", "Pacific/Honolulu"},
	{"eastern", "America/New_York"},
	{"central", "America/Chicago"},
	{"mountain", "America/Denver"},
	{"pacific", "America/Los_Angeles"},

	{"greenwich mean time", "UTC"},
	{"coordinated universal time", "UTC"},
	{"gmt", "UTC"},
	{"utc", "UTC"},
}

// friendlyNames backs DisplayName for zones whose city segment reads poorly
// on its own. Everything else derives its label from the identifier.
var friendlyNames = map[string]string{
	"UTC":                 "UTC",
	"America/New_York":    "New York",
	"America/Chicago":     "Chicago",
	"America/Denver":      "Denver",
	"America/Phoenix":     "Phoenix",
	"America/Los_Angeles": "Los Angeles",
	"America/Anchorage":   "Anchorage",
	"Pacific/Honolulu":    "Honolulu",
	"America/Halifax":     "Halifax",
}
