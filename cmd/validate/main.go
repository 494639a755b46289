// Command validate performs integrity checks across the pipeline's two file
// outputs: the JSON envelope and the flat CSV. It verifies record counts,
// metadata consistency, field shapes, and that both outputs describe the same
// articles.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -json disaster_news.json \
//	  -csv disaster_news.csv
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	jsonPath := flag.String("json", "", "path to the JSON envelope output")
	csvPath := flag.String("csv", "", "path to the CSV output")
	flag.Parse()

	if *jsonPath == "" || *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*jsonPath, *csvPath); code != 0 {
		os.Exit(code)
	}
}

func run(jsonPath, csvPath string) int {
	fmt.Println("=== Disaster News Output Validation ===")
	fmt.Println()

	env, err := loadEnvelope(jsonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load JSON envelope: %v\n", err)
		return 1
	}

	rows, err := loadCSV(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV output: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateMetadata(env),
		validateRecords(env),
		validateCrossOutput(env, rows),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d JSON, %d CSV rows\n", len(env.Articles), len(rows))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadEnvelope(path string) (domain.Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Envelope{}, err
	}
	var env domain.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.Envelope{}, err
	}
	return env, nil
}

// csvRow is a parsed CSV row with field values keyed by header name.
type csvRow struct {
	lineNum int
	fields  map[string]string
}

func loadCSV(path string) ([]csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no header row in %s", path)
	}

	header := all[0]
	rows := make([]csvRow, 0, len(all)-1)
	for i, row := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(row) {
				fields[h] = row[j]
			}
		}
		rows = append(rows, csvRow{lineNum: i + 2, fields: fields})
	}
	return rows, nil
}

// validateMetadata checks the envelope's run metadata for internal
// consistency.

func validateMetadata(env domain.Envelope) *phase {
	p := &phase{name: "Phase 1: Run Metadata"}

	if env.Metadata.Timestamp == "" {
		p.errorf("metadata.timestamp is empty")
	} else if _, err := time.Parse("2006-01-02 15:04:05", env.Metadata.Timestamp); err != nil {
		p.errorf("metadata.timestamp %q is not in YYYY-MM-DD HH:MM:SS form", env.Metadata.Timestamp)
	}

	if len(env.Metadata.Feeds) == 0 {
		p.errorf("metadata.feeds is empty")
	}
	if env.Metadata.TotalDisasterArticles != len(env.Articles) {
		p.errorf("metadata.total_disaster_articles is %d but envelope holds %d articles",
			env.Metadata.TotalDisasterArticles, len(env.Articles))
	}
	if env.Metadata.TotalLocations < 0 {
		p.errorf("metadata.total_locations is negative")
	}
	return p
}

// validateRecords checks each article's field shapes.

func validateRecords(env domain.Envelope) *phase {
	p := &phase{name: "Phase 2: Record Shapes"}

	for i, rec := range env.Articles {
		if rec.Title == "" {
			p.errorf("article %d: title is empty", i)
		}
		if rec.Title != strings.TrimSpace(rec.Title) {
			p.errorf("article %d: title %q has surrounding whitespace", i, rec.Title)
		}
		if len(rec.Locations) == 0 {
			p.errorf("article %d: locations is empty (expected at least the %q sentinel)", i, domain.UnknownLocation)
		}
		for _, loc := range rec.Locations {
			if loc == domain.UnknownLocation && len(rec.Locations) > 1 {
				p.errorf("article %d: %q sentinel mixed with resolved locations %v", i, domain.UnknownLocation, rec.Locations)
			}
		}
		if rec.Source == "" {
			p.errorf("article %d: source feed is empty", i)
		}
	}
	return p
}

// validateCrossOutput checks that the CSV rows describe the same articles as
// the JSON envelope.

func validateCrossOutput(env domain.Envelope, rows []csvRow) *phase {
	p := &phase{name: "Phase 3: Cross-Output Consistency"}

	if len(rows) != len(env.Articles) {
		p.errorf("JSON holds %d articles, CSV holds %d rows", len(env.Articles), len(rows))
		return p
	}

	byLink := make(map[string]*csvRow, len(rows))
	for i := range rows {
		byLink[rows[i].fields["link"]] = &rows[i]
	}

	for i := range env.Articles {
		rec := &env.Articles[i]
		row, ok := byLink[rec.Link]
		if !ok {
			p.errorf("article %d: link %q not found in CSV", i, rec.Link)
			continue
		}
		if row.fields["title"] != rec.Title {
			p.errorf("link %s: title mismatch: json=%q csv=%q", rec.Link, rec.Title, row.fields["title"])
		}
		if row.fields["date"] != rec.Date {
			p.errorf("link %s: date mismatch: json=%q csv=%q", rec.Link, rec.Date, row.fields["date"])
		}
		if got := row.fields["locations"]; got != strings.Join(rec.Locations, ", ") {
			p.errorf("link %s: locations mismatch: json=%v csv=%q", rec.Link, rec.Locations, got)
		}
		if got := row.fields["disaster_keywords"]; got != strings.Join(rec.DisasterKeywords, ", ") {
			p.errorf("link %s: keywords mismatch: json=%v csv=%q", rec.Link, rec.DisasterKeywords, got)
		}
	}
	return p
}
