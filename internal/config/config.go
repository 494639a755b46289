// Package config loads service settings from HCL files, environment
// variables, and defaults (later sources win), and validates them.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

// Supported entity extraction backends.
const (
	AITypeOllama = "ollama"
	AITypeOpenAI = "openai"
)

// Config holds all service settings.
type Config struct {
	// Feed ingestion.
	Feeds         []string      `hcl:"feeds" env:"FEEDS"`
	FetchTimeout  time.Duration `hcl:"fetch_timeout" env:"FETCH_TIMEOUT" default:"10s"`
	FetchInterval time.Duration `hcl:"fetch_interval" env:"FETCH_INTERVAL" default:"0"` // 0 = one-shot batch run

	// Gazetteer reference data.
	GazetteerFile    string   `hcl:"gazetteer_file" env:"GAZETTEER_FILE" default:"world-cities.csv"`
	GazetteerColumns []string `hcl:"gazetteer_columns" env:"GAZETTEER_COLUMNS" default:"name,subcountry,country"`
	FuzzyMaxDistance int      `hcl:"fuzzy_max_distance" env:"FUZZY_MAX_DISTANCE" default:"0"` // 0 = exact matching only

	// Relevance classification.
	Keywords     []string `hcl:"keywords" env:"KEYWORDS"` // empty = stock disaster vocabulary
	RelevantOnly bool     `hcl:"relevant_only" env:"RELEVANT_ONLY" default:"true"`

	// Entity extraction model.
	AIType       string        `hcl:"ai_type" env:"AI_TYPE" default:"ollama"`
	AIBaseURL    string        `hcl:"ai_base_url" env:"AI_BASE_URL" default:"127.0.0.1:11434"`
	AIKey        string        `hcl:"ai_key" env:"AI_KEY"`
	AIModel      string        `hcl:"ai_model" env:"AI_MODEL" default:"llama3"`
	AITimeout    time.Duration `hcl:"ai_timeout" env:"AI_TIMEOUT" default:"30s"`
	NERCacheSize int           `hcl:"ner_cache_size" env:"NER_CACHE_SIZE" default:"1000"`

	// Output sinks.
	CSVOutput    string   `hcl:"csv_output" env:"CSV_OUTPUT"`
	JSONOutput   string   `hcl:"json_output" env:"JSON_OUTPUT" default:"disaster_news.json"`
	KafkaBrokers []string `hcl:"kafka_brokers" env:"KAFKA_BROKERS"`
	KafkaTopic   string   `hcl:"kafka_topic" env:"KAFKA_TOPIC" default:"disaster-news-records"`

	// Service plumbing.
	HTTPAddr        string        `hcl:"http_addr" env:"HTTP_ADDR" default:":8080"`
	LogLevel        string        `hcl:"log_level" env:"LOG_LEVEL" default:"info"`
	LogFormat       string        `hcl:"log_format" env:"LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `hcl:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// KafkaEnabled reports whether records should also be published to Kafka.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration and validates it.
func Load() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		// Flags are left to the commands; parsing them here would choke on
		// anything aconfig does not know, test binary flags included.
		SkipFlags: true,
		Files:     []string{"./config.hcl", "$HOME/.config/disaster-news-etl/config.hcl"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.FetchTimeout <= 0 {
		return errors.New("fetch_timeout must be positive")
	}
	if c.FetchInterval < 0 {
		return errors.New("fetch_interval must not be negative")
	}
	if c.FuzzyMaxDistance < 0 {
		return errors.New("fuzzy_max_distance must not be negative")
	}
	if c.NERCacheSize <= 0 {
		return errors.New("ner_cache_size must be positive")
	}

	switch c.AIType {
	case AITypeOllama:
		if c.AIBaseURL == "" {
			return errors.New("ai_base_url is required when ai_type is \"ollama\"")
		}
	case AITypeOpenAI:
		if c.AIKey == "" {
			return errors.New("ai_key is required when ai_type is \"openai\"")
		}
	default:
		return fmt.Errorf("unknown ai_type %q (want \"ollama\" or \"openai\")", c.AIType)
	}

	if c.CSVOutput == "" && c.JSONOutput == "" && !c.KafkaEnabled() {
		return errors.New("at least one of csv_output, json_output, or kafka_brokers must be set")
	}
	if c.KafkaEnabled() && c.KafkaTopic == "" {
		return errors.New("kafka_topic is required when kafka_brokers is set")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	return nil
}
