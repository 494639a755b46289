// Package sink writes pipeline runs to local output files.
package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
)

// csvHeader matches the flat record shape, one column per field.
var csvHeader = []string{
	"title", "date", "description", "link", "locations", "source", "disaster_keywords",
}

// CSVSink writes records as a flat CSV file, overwriting any previous run.
// It implements pipeline.Sink.
type CSVSink struct {
	path string
}

func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

func (s *CSVSink) Name() string {
	return "csv"
}

// Write flattens the envelope's records into rows. List-valued fields are
// joined with ", " so the file stays one row per article.
func (s *CSVSink) Write(_ context.Context, env domain.Envelope) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create csv output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range env.Articles {
		row := []string{
			rec.Title,
			rec.Date,
			rec.Description,
			rec.Link,
			strings.Join(rec.Locations, ", "),
			rec.Source,
			strings.Join(rec.DisasterKeywords, ", "),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}
