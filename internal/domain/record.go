package domain

import "errors"

// FeedEntry is one article from a syndication feed, reduced to the plain-text
// fields the pipeline consumes. Every field may be empty; the fetcher makes no
// promise beyond HTML entities being resolved, so consumers trim before use.
type FeedEntry struct {
	Title       string
	Description string
	Link        string
	Published   string // raw pubDate string, e.g. "Tue, 10 Oct 2023 08:00:00 +0000"
	SourceURL   string
}

// Record is the assembled output for one disaster-relevant article. Field
// names mirror the JSON shape downstream consumers already parse.
type Record struct {
	Title            string   `json:"title"`
	Date             string   `json:"date"` // normalized "YYYY-MM-DD HH:MM:SS", or the raw pubDate on parse failure
	Description      string   `json:"description"`
	Link             string   `json:"link"`
	Locations        []string `json:"locations"` // never empty; ["Unknown"] when nothing matched
	Source           string   `json:"source"`
	DisasterKeywords []string `json:"disaster_keywords"`
}

// RunMetadata describes one complete scrape pass.
type RunMetadata struct {
	Timestamp             string   `json:"timestamp"`
	Feeds                 []string `json:"feeds"`
	TotalLocations        int      `json:"total_locations"`
	TotalDisasterArticles int      `json:"total_disaster_articles"`
}

// Envelope is the structured output shape: run metadata wrapped around the
// ordered record sequence.
type Envelope struct {
	Metadata RunMetadata `json:"metadata"`
	Articles []Record    `json:"disaster_articles"`
}

// NewEnvelope wraps the collected records of one run. The timestamp comes from
// the package clock so tests can freeze it via SetClock.
func NewEnvelope(records []Record, feeds []string, gazetteerSize int) Envelope {
	if records == nil {
		records = []Record{}
	}
	return Envelope{
		Metadata: RunMetadata{
			Timestamp:             clock.Now().Format(normalizedDateLayout),
			Feeds:                 feeds,
			TotalLocations:        gazetteerSize,
			TotalDisasterArticles: len(records),
		},
		Articles: records,
	}
}

// Skip classification for record assembly. The pipeline logs and counts these
// instead of failing the run; tests assert on which degraded path was taken.
var (
	// ErrMissingTitle marks an entry with no usable title field.
	ErrMissingTitle = errors.New("feed entry has no title")

	// ErrNotRelevant marks an entry that matched no disaster keywords while
	// the relevant-only policy is active.
	ErrNotRelevant = errors.New("entry matched no disaster keywords")
)
