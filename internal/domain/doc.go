// Package domain models disaster-news extraction from syndication feeds.
//
// # Data Source
//
// Entries originate from public RSS/Atom news feeds. The fetcher adapter
// reduces each item to plain text (title, description, link, raw pubDate,
// feed URL) before it reaches this package; HTML markup is already stripped.
//
// # Feed Conventions
//
// Date format:
//
//	RFC-822 style as mandated for RSS pubDate: "Tue, 10 Oct 2023 08:00:00 +0000".
//	Normalization emits "YYYY-MM-DD HH:MM:SS" using the clock fields of the
//	parsed offset; the offset is consumed, not retained. Feeds that use named
//	zones ("GMT") or nonstandard shapes fail parsing, and the raw string is
//	carried through unchanged. See [NormalizeDate].
//
// Relevance:
//
//	An entry is disaster-relevant iff the combined "title description" text
//	contains at least one vocabulary keyword, matched case-insensitively as a
//	plain substring. There is no word-boundary enforcement: "storm" matches
//	inside "rainstorm". Matched keywords are reported in vocabulary order,
//	each at most once. See [Classifier].
//
// Locations:
//
//	An external NLP model (behind [EntityExtractor]) proposes geo-political
//	entities (GPE: cities, regions, countries) found in the text. Candidates
//	are intersected with a gazetteer of known place names; the survivors form
//	the record's location list. When nothing survives, the single sentinel
//	"Unknown" is emitted instead of an empty list, because downstream
//	consumers branch on that literal.
//
// # Known Precision Gaps
//
// The gazetteer folds city, region, and country names into one flat set with
// no provenance, so "georgia" the country and "Georgia" the US state are the
// same entry. Keyword matching over-matches substrings. Both are deliberate
// simplifications inherited from the data set and kept for output
// compatibility; neither is a bug to silently fix.
package domain
