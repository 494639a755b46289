package domain

import (
	"strings"
	"time"
)

// feedDateLayouts are the RFC-822-style formats RSS feeds use for pubDate
// elements, e.g. "Tue, 10 Oct 2023 08:00:00 +0000". The second variant covers
// feeds that emit the day of month without zero padding.
var feedDateLayouts = []string{
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// normalizedDateLayout is the canonical date shape in records and run metadata.
const normalizedDateLayout = "2006-01-02 15:04:05"

// NormalizeDate reformats a feed-native pubDate string as
// "YYYY-MM-DD HH:MM:SS". The output keeps the clock fields of the parsed
// offset; the offset itself is consumed during parsing and not retained.
// On parse failure the raw input is returned verbatim with ok=false so callers
// can count the degradation, and they must not assume the result is parseable.
func NormalizeDate(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range feedDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(normalizedDateLayout), true
		}
	}
	return raw, false
}
