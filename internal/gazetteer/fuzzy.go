package gazetteer

import "github.com/lithammer/fuzzysearch/fuzzy"

// FuzzyMatcher tolerates small spelling variation when resolving candidates:
// "odissa" can still match "odisha". An exact hit always wins; otherwise the
// gazetteer entry with the smallest Levenshtein distance within maxDistance is
// chosen, ties breaking toward the lexicographically smallest entry so results
// stay deterministic. This is an opt-in resolution strategy, not a change to
// exact-match behavior.
type FuzzyMatcher struct {
	gazetteer   *Gazetteer
	maxDistance int
}

// NewFuzzyMatcher wraps a gazetteer with distance-bounded matching.
// maxDistance is the largest tolerated edit distance; 0 behaves like exact
// matching.
func NewFuzzyMatcher(g *Gazetteer, maxDistance int) *FuzzyMatcher {
	return &FuzzyMatcher{gazetteer: g, maxDistance: maxDistance}
}

// Match implements domain.LocationMatcher. It returns the canonical gazetteer
// entry, which for an approximate hit differs from the candidate.
func (m *FuzzyMatcher) Match(candidate string) (string, bool) {
	name := normalize(candidate)
	if name == "" {
		return "", false
	}
	if _, ok := m.gazetteer.entries[name]; ok {
		return name, true
	}

	// Scanning the whole set is O(n) per candidate. Candidate counts per
	// entry are small (a handful of NER hits), so this stays cheap enough
	// without an index.
	best := ""
	bestDistance := m.maxDistance + 1
	for entry := range m.gazetteer.entries {
		d := fuzzy.LevenshteinDistance(name, entry)
		if d < bestDistance || (d == bestDistance && best != "" && entry < best) {
			best = entry
			bestDistance = d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
