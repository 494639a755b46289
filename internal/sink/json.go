package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
)

// JSONSink writes the full envelope, run metadata included, as one indented
// JSON document. It implements pipeline.Sink.
type JSONSink struct {
	path string
}

func NewJSONSink(path string) *JSONSink {
	return &JSONSink{path: path}
}

func (s *JSONSink) Name() string {
	return "json"
}

func (s *JSONSink) Write(_ context.Context, env domain.Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize envelope: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write json output: %w", err)
	}
	return nil
}
