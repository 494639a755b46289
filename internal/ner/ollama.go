package ner

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ollama/ollama/api"
)

// OllamaExtractor implements domain.EntityExtractor against a local Ollama
// server. The mutex serializes requests: a single local model handles one
// generation at a time anyway, and serializing avoids queue timeouts.
type OllamaExtractor struct {
	client  *api.Client
	model   string
	timeout time.Duration
	mu      sync.Mutex
}

// NewOllamaExtractor creates an extractor talking to host (host:port, no
// scheme) using the given model.
func NewOllamaExtractor(host, model string, timeout time.Duration) *OllamaExtractor {
	c := api.NewClient(&url.URL{
		Scheme: "http",
		Host:   host,
		Path:   "/",
	}, &http.Client{})

	return &OllamaExtractor{
		client:  c,
		model:   model,
		timeout: timeout,
	}
}

// ExtractEntities asks the model for the GPE entities in text. Empty text
// yields no candidates without a model call.
func (o *OllamaExtractor) ExtractEntities(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req := &api.GenerateRequest{
		Model:  o.model,
		System: systemPrompt,
		Prompt: text,
	}

	var sb strings.Builder
	err := o.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama generate: %w", err)
	}

	return parseEntities(sb.String())
}
