package ner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntities(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected []string
	}{
		{"bare array", `["Odisha","India"]`, []string{"odisha", "india"}},
		{"empty array", `[]`, []string{}},
		{"prose around array", `Sure! Here are the entities: ["Tokyo"] Hope that helps.`, []string{"tokyo"}},
		{"markdown fence", "```json\n[\"Chennai\", \"Tamil Nadu\"]\n```", []string{"chennai", "tamil nadu"}},
		{"duplicates collapse", `["India", "india", " INDIA "]`, []string{"india"}},
		{"blank entries dropped", `["", "  ", "Paris"]`, []string{"paris"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, err := parseEntities(tt.response)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, entities)
		})
	}
}

func TestParseEntities_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no array at all", "There are no locations in this text."},
		{"unterminated array", `["Odisha"`},
		{"array of objects", `[{"name":"Odisha"}]`},
		{"empty response", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseEntities(tt.response)
			assert.Error(t, err)
		})
	}
}
