package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	rec := domain.Record{
		Title:            "Cyclone hits Odisha coast",
		Date:             "2023-10-10 08:00:00",
		Link:             "https://example.com/cyclone",
		Locations:        []string{"odisha"},
		Source:           "https://example.com/feed",
		DisasterKeywords: []string{"cyclone", "evacuation"},
	}
	meta := domain.RunMetadata{Timestamp: "2024-04-26 15:10:00"}

	msg, err := serializeToMessage(rec, meta)
	require.NoError(t, err)

	assert.Equal(t, []byte("https://example.com/cyclone"), msg.Key)
	assert.Contains(t, string(msg.Value), `"disaster_keywords":["cyclone","evacuation"]`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "source", msg.Headers[0].Key)
	assert.Equal(t, []byte("https://example.com/feed"), msg.Headers[0].Value)
	assert.Equal(t, "run_timestamp", msg.Headers[1].Key)
	assert.Equal(t, []byte("2024-04-26 15:10:00"), msg.Headers[1].Value)
}
