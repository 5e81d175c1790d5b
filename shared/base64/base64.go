package base64

import "strings"

// GetContentType extracts the MIME type from a data URI, e.g.
// "data:image/png;base64,..." yields "image/png". Returns an empty
// string when the input is not a base64 data URI.
func GetContentType(file string) string {
	rest, ok := strings.CutPrefix(file, "data:")
	if !ok {
		return ""
	}

	contentType, _, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return ""
	}

	return contentType
}
