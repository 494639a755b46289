package domain

import "strings"

// DefaultVocabulary is the stock disaster term list. Order matters: matched
// keywords are reported in declaration order.
var DefaultVocabulary = []string{
	// Natural disasters.
	"earthquake", "seismic", "tremor",
	"tsunami", "tidal wave",
	"hurricane", "cyclone", "typhoon", "storm", "tropical storm",
	"tornado", "twister",
	"flood", "flooding", "river overflow",
	"landslide", "mudslide", "debris flow",
	"volcanic eruption", "lava flow", "ash cloud",
	"wildfire", "bushfire", "forest fire",
	"avalanche", "snow slide",
	"drought", "water scarcity",
	"heatwave", "extreme heat",
	"blizzard", "snowstorm", "ice storm",

	// Disaster response terms.
	"emergency", "state of emergency",
	"rescue", "evacuation", "displacement",
	"relief efforts", "humanitarian aid",
	"damage assessment",
	"warning", "alert", "advisory",

	// Severity indicators.
	"widespread damage", "destruction", "casualties",
	"missing persons", "search and rescue",
}

// Classification is the outcome of keyword screening for one entry.
type Classification struct {
	Relevant bool
	Keywords []string // matched vocabulary entries, in vocabulary order, deduplicated
}

// Classifier screens free text against a fixed keyword vocabulary. Matching is
// case-insensitive substring containment with no word-boundary enforcement:
// "storm" matches inside "rainstorm". That over-matches occasionally, which is
// the accepted trade-off for a vocabulary that includes multi-word phrases.
type Classifier struct {
	vocabulary []string
}

// NewClassifier builds a Classifier over the given vocabulary. Entries are
// trimmed and lower-cased; empty and duplicate entries are dropped, keeping
// first occurrence order. Pass DefaultVocabulary for the stock term list.
func NewClassifier(vocabulary []string) *Classifier {
	seen := make(map[string]struct{}, len(vocabulary))
	terms := make([]string, 0, len(vocabulary))
	for _, v := range vocabulary {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		terms = append(terms, v)
	}
	return &Classifier{vocabulary: terms}
}

// Classify reports whether text mentions any vocabulary keyword and which.
// An entry is disaster-relevant iff at least one keyword matches.
func (c *Classifier) Classify(text string) Classification {
	lower := strings.ToLower(text)
	matched := make([]string, 0, 4)
	for _, keyword := range c.vocabulary {
		if strings.Contains(lower, keyword) {
			matched = append(matched, keyword)
		}
	}
	return Classification{Relevant: len(matched) > 0, Keywords: matched}
}
