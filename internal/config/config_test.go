package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Feeds)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, time.Duration(0), cfg.FetchInterval)
	assert.Equal(t, "world-cities.csv", cfg.GazetteerFile)
	assert.Equal(t, []string{"name", "subcountry", "country"}, cfg.GazetteerColumns)
	assert.Equal(t, 0, cfg.FuzzyMaxDistance)
	assert.Empty(t, cfg.Keywords)
	assert.True(t, cfg.RelevantOnly)
	assert.Equal(t, "ollama", cfg.AIType)
	assert.Equal(t, "127.0.0.1:11434", cfg.AIBaseURL)
	assert.Equal(t, "llama3", cfg.AIModel)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.Equal(t, 1000, cfg.NERCacheSize)
	assert.Empty(t, cfg.CSVOutput)
	assert.Equal(t, "disaster_news.json", cfg.JSONOutput)
	assert.False(t, cfg.KafkaEnabled())
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("FEEDS", "https://a.example/rss,https://b.example/rss")
	t.Setenv("FETCH_TIMEOUT", "30s")
	t.Setenv("FETCH_INTERVAL", "10m")
	t.Setenv("GAZETTEER_FILE", "states.csv")
	t.Setenv("GAZETTEER_COLUMNS", "City,State")
	t.Setenv("FUZZY_MAX_DISTANCE", "2")
	t.Setenv("RELEVANT_ONLY", "false")
	t.Setenv("AI_MODEL", "mistral")
	t.Setenv("CSV_OUTPUT", "scraped-rss.csv")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_TOPIC", "news-records")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example/rss", "https://b.example/rss"}, cfg.Feeds)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 10*time.Minute, cfg.FetchInterval)
	assert.Equal(t, "states.csv", cfg.GazetteerFile)
	assert.Equal(t, []string{"City", "State"}, cfg.GazetteerColumns)
	assert.Equal(t, 2, cfg.FuzzyMaxDistance)
	assert.False(t, cfg.RelevantOnly)
	assert.Equal(t, "mistral", cfg.AIModel)
	assert.Equal(t, "scraped-rss.csv", cfg.CSVOutput)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "news-records", cfg.KafkaTopic)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch_timeout")
}

func TestLoad_NegativeFuzzyDistance(t *testing.T) {
	t.Setenv("FUZZY_MAX_DISTANCE", "-1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuzzy_max_distance")
}

func TestLoad_UnknownAIType(t *testing.T) {
	t.Setenv("AI_TYPE", "spacy")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai_type")
}

func TestLoad_OpenAIRequiresKey(t *testing.T) {
	t.Setenv("AI_TYPE", "openai")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ai_key")
}

func TestLoad_OpenAIWithKey(t *testing.T) {
	t.Setenv("AI_TYPE", "openai")
	t.Setenv("AI_KEY", "sk-test")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.AIType)
}

func TestLoad_NoSinkConfigured(t *testing.T) {
	t.Setenv("JSON_OUTPUT", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one")
}

func TestLoad_KafkaWithoutTopic(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("KAFKA_TOPIC", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka_topic")
}

func TestLoad_InvalidNERCacheSize(t *testing.T) {
	t.Setenv("NER_CACHE_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ner_cache_size")
}
