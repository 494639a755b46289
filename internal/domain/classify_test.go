package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultVocabulary)

	t.Run("relevant text", func(t *testing.T) {
		result := c.Classify("A flood hit the region")
		assert.True(t, result.Relevant)
		assert.Contains(t, result.Keywords, "flood")
	})

	t.Run("irrelevant text", func(t *testing.T) {
		result := c.Classify("Local bakery wins award")
		assert.False(t, result.Relevant)
		assert.Empty(t, result.Keywords)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		result := c.Classify("EARTHQUAKE Strikes Overnight")
		assert.True(t, result.Relevant)
		assert.Contains(t, result.Keywords, "earthquake")
	})

	t.Run("substring containment, no word boundary", func(t *testing.T) {
		result := c.Classify("A rainstorm passed through")
		assert.True(t, result.Relevant)
		assert.Contains(t, result.Keywords, "storm")
	})

	t.Run("keywords in vocabulary order, not text order", func(t *testing.T) {
		result := c.Classify("Evacuation ordered after the cyclone made landfall")
		require.True(t, result.Relevant)
		assert.Equal(t, []string{"cyclone", "evacuation"}, result.Keywords)
	})

	t.Run("repeated keyword reported once", func(t *testing.T) {
		result := c.Classify("flood after flood after flood")
		assert.Equal(t, []string{"flood"}, result.Keywords)
	})

	t.Run("multi-word phrase", func(t *testing.T) {
		result := c.Classify("Governor declared a state of emergency on Monday")
		assert.Contains(t, result.Keywords, "state of emergency")
		assert.Contains(t, result.Keywords, "emergency")
	})

	t.Run("relevance iff any keyword matched", func(t *testing.T) {
		for _, text := range []string{"", "quarterly earnings call", "tsunami warning issued", "wildfire near the coast"} {
			result := c.Classify(text)
			assert.Equal(t, len(result.Keywords) > 0, result.Relevant, "text: %q", text)
		}
	})
}

func TestNewClassifier(t *testing.T) {
	t.Run("normalizes and deduplicates vocabulary", func(t *testing.T) {
		c := NewClassifier([]string{" Flood ", "flood", "", "CYCLONE"})
		result := c.Classify("flood and cyclone")
		assert.Equal(t, []string{"flood", "cyclone"}, result.Keywords)
	})

	t.Run("custom vocabulary is independent", func(t *testing.T) {
		c := NewClassifier([]string{"strike", "protest"})
		assert.False(t, c.Classify("a flood hit the region").Relevant)
		assert.True(t, c.Classify("workers went on strike").Relevant)
	})

	t.Run("empty vocabulary matches nothing", func(t *testing.T) {
		c := NewClassifier(nil)
		result := c.Classify("earthquake tsunami flood")
		assert.False(t, result.Relevant)
		assert.Empty(t, result.Keywords)
	})
}

// Classification is idempotent: repeated calls on the same text agree.
func TestClassify_Idempotent(t *testing.T) {
	c := NewClassifier(DefaultVocabulary)
	first := c.Classify("Cyclone hits Odisha, officials began evacuation")
	second := c.Classify("Cyclone hits Odisha, officials began evacuation")
	assert.Equal(t, first, second)
}
