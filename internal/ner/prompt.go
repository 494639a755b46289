// Package ner adapts external language models into the pipeline's
// entity-extraction boundary (domain.EntityExtractor).
package ner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// systemPrompt configures the model as a GPE tagger. Responses are expected
// to be a bare JSON array of entity strings; parseEntities tolerates prose
// and markdown fences around it anyway.
const systemPrompt = `You are a named-entity recognizer for English news text. ` +
	`Extract every geo-political entity (GPE) mentioned in the user's text: cities, states, regions, and countries. ` +
	`Respond with only a JSON array of the entity strings exactly as they appear, for example ["Odisha","India"]. ` +
	`Respond with [] when there are none. Do not include any other text.`

// parseEntities pulls the JSON array out of a model response and normalizes
// the entities to unique lower-case strings. Model output is untrusted: the
// array is located positionally so surrounding chatter or code fences do not
// break extraction.
func parseEntities(response string) ([]string, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in model response %q", truncate(response, 120))
	}

	var raw []string
	if err := json.Unmarshal([]byte(response[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}

	entities := lo.FilterMap(raw, func(e string, _ int) (string, bool) {
		e = strings.ToLower(strings.TrimSpace(e))
		return e, e != ""
	})
	return lo.Uniq(entities), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
