// Package gazetteer builds the reference set of known place names that
// extracted entities are resolved against.
package gazetteer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Gazetteer is an immutable, case-normalized set of place names. It is built
// once per run and safe for concurrent reads thereafter.
type Gazetteer struct {
	entries map[string]struct{}
}

// Build folds the configured columns of a header+rows table into one
// normalized name set. Columns absent from the header are skipped, as are rows
// with an empty value in a given column. Which column a name came from is not
// retained: city, region, and country names share one flat set. That loses
// provenance but keeps membership checks O(1); see the domain package doc for
// why the gap is kept.
func Build(header []string, rows [][]string, columns []string) *Gazetteer {
	entries := make(map[string]struct{})
	for _, column := range columns {
		idx := columnIndex(header, column)
		if idx < 0 {
			continue
		}
		for _, row := range rows {
			if idx >= len(row) {
				continue
			}
			name := normalize(row[idx])
			if name == "" {
				continue
			}
			entries[name] = struct{}{}
		}
	}
	return &Gazetteer{entries: entries}
}

// LoadCSV builds a Gazetteer from a CSV file with a header row. On any read
// error the returned gazetteer is empty but usable, and the error is reported
// so the caller can log the degradation; location resolution then always
// yields the sentinel.
func LoadCSV(path string, columns []string) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return empty(), fmt.Errorf("open gazetteer %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return empty(), fmt.Errorf("read gazetteer %s: %w", path, err)
	}
	if len(rows) == 0 {
		return empty(), nil
	}
	return Build(rows[0], rows[1:], columns), nil
}

func empty() *Gazetteer {
	return &Gazetteer{entries: make(map[string]struct{})}
}

// Contains reports exact, case-normalized set membership.
func (g *Gazetteer) Contains(candidate string) bool {
	_, ok := g.entries[normalize(candidate)]
	return ok
}

// Len returns the number of distinct place names.
func (g *Gazetteer) Len() int {
	return len(g.entries)
}

// Match implements domain.LocationMatcher with exact membership. The returned
// name is the normalized form, which for exact matching is the entry itself.
func (g *Gazetteer) Match(candidate string) (string, bool) {
	name := normalize(candidate)
	if _, ok := g.entries[name]; ok {
		return name, true
	}
	return "", false
}

func columnIndex(header []string, column string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			return i
		}
	}
	return -1
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
