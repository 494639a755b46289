package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setMatcher resolves candidates against a plain string set, the way the real
// gazetteer does for exact matches.
type setMatcher map[string]struct{}

func newSetMatcher(names ...string) setMatcher {
	m := make(setMatcher, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func (m setMatcher) Match(candidate string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(candidate))
	_, ok := m[name]
	return name, ok
}

func TestResolveLocations(t *testing.T) {
	gaz := newSetMatcher("odisha", "chennai", "india", "tokyo")

	t.Run("intersection members, sorted", func(t *testing.T) {
		result := ResolveLocations([]string{"tokyo", "odisha", "atlantis"}, gaz)
		assert.Equal(t, []string{"odisha", "tokyo"}, result)
	})

	t.Run("no match yields sentinel", func(t *testing.T) {
		result := ResolveLocations([]string{"atlantis", "mordor"}, gaz)
		assert.Equal(t, []string{UnknownLocation}, result)
	})

	t.Run("no candidates yields sentinel", func(t *testing.T) {
		assert.Equal(t, []string{UnknownLocation}, ResolveLocations(nil, gaz))
		assert.Equal(t, []string{UnknownLocation}, ResolveLocations([]string{}, gaz))
	})

	t.Run("empty gazetteer always yields sentinel", func(t *testing.T) {
		empty := newSetMatcher()
		result := ResolveLocations([]string{"odisha", "tokyo"}, empty)
		assert.Equal(t, []string{UnknownLocation}, result)
	})

	t.Run("duplicate candidates collapse", func(t *testing.T) {
		result := ResolveLocations([]string{"india", "India", " india "}, gaz)
		assert.Equal(t, []string{"india"}, result)
	})

	t.Run("sentinel iff intersection empty", func(t *testing.T) {
		for _, candidates := range [][]string{
			{"odisha"},
			{"atlantis"},
			{"odisha", "atlantis"},
			{},
		} {
			result := ResolveLocations(candidates, gaz)
			anyMatch := false
			for _, c := range candidates {
				if _, ok := gaz.Match(c); ok {
					anyMatch = true
				}
			}
			if anyMatch {
				assert.NotContains(t, result, UnknownLocation)
			} else {
				assert.Equal(t, []string{UnknownLocation}, result)
			}
		}
	})
}
