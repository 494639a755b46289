package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC))
	SetClock(fake)
	t.Cleanup(func() { SetClock(nil) })

	records := []Record{
		{Title: "Cyclone hits Odisha", Locations: []string{"odisha"}},
		{Title: "Flood in Chennai", Locations: []string{"chennai"}},
	}
	feeds := []string{"https://example.com/a.rss", "https://example.com/b.rss"}

	env := NewEnvelope(records, feeds, 23570)

	assert.Equal(t, "2024-04-26 15:10:00", env.Metadata.Timestamp)
	assert.Equal(t, feeds, env.Metadata.Feeds)
	assert.Equal(t, 23570, env.Metadata.TotalLocations)
	assert.Equal(t, 2, env.Metadata.TotalDisasterArticles)
	assert.Equal(t, records, env.Articles)
}

func TestNewEnvelope_EmptyRun(t *testing.T) {
	env := NewEnvelope(nil, []string{"https://example.com/a.rss"}, 0)

	assert.Equal(t, 0, env.Metadata.TotalDisasterArticles)
	require.NotNil(t, env.Articles, "articles must serialize as [], not null")

	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"disaster_articles":[]`)
}

func TestRecord_JSONShape(t *testing.T) {
	rec := Record{
		Title:            "Cyclone hits Odisha",
		Date:             "2023-10-10 08:00:00",
		Description:      "Officials began evacuation in Odisha state",
		Link:             "https://example.com/story",
		Locations:        []string{"odisha"},
		Source:           "https://example.com/feed.rss",
		DisasterKeywords: []string{"cyclone", "evacuation"},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"title", "date", "description", "link", "locations", "source", "disaster_keywords"} {
		assert.Contains(t, decoded, key)
	}
}
