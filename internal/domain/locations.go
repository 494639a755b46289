package domain

import (
	"context"
	"sort"
)

// UnknownLocation is the fixed placeholder emitted when no gazetteer match is
// found. Downstream consumers branch on this literal, so an empty match set is
// always represented as ["Unknown"], never as an empty list.
const UnknownLocation = "Unknown"

// EntityExtractor pulls candidate place-like entities out of free text.
// Implementations wrap an external NLP model; they are best-effort and must
// not be trusted for precision. Entities come back lower-cased.
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, text string) ([]string, error)
}

// LocationMatcher resolves one candidate entity against reference place data.
// Match returns the canonical gazetteer entry and true on a hit.
type LocationMatcher interface {
	Match(candidate string) (string, bool)
}

// ResolveLocations intersects extracted candidates with the gazetteer through
// the given matcher. A non-empty intersection is returned sorted so output is
// reproducible; an empty one yields the UnknownLocation sentinel.
func ResolveLocations(candidates []string, matcher LocationMatcher) []string {
	matched := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if name, ok := matcher.Match(candidate); ok {
			matched[name] = struct{}{}
		}
	}
	if len(matched) == 0 {
		return []string{UnknownLocation}
	}
	locations := make([]string, 0, len(matched))
	for name := range matched {
		locations = append(locations, name)
	}
	sort.Strings(locations)
	return locations
}
