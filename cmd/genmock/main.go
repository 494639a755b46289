// Command genmock generates mock fixtures for local runs and test suites: an
// RSS feed file with a mix of disaster and non-disaster articles, and a small
// gazetteer CSV covering the places those articles mention. It uses the
// actual domain classifier so the fixture's relevant/irrelevant split matches
// real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -feed-out data/mock/feed.xml \
//	  -cities-out data/mock/world-cities.csv
package main

import (
	"encoding/csv"
	"encoding/xml"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
)

type mockArticle struct {
	title       string
	description string
	link        string
	pubDate     string
	place       string // city name the article mentions, "" for none
}

var articles = []mockArticle{
	{
		title:       "Cyclone makes landfall on Odisha coast",
		description: "Mass evacuation underway as the storm intensifies near Odisha.",
		link:        "https://news.example.com/cyclone-odisha",
		pubDate:     "Tue, 10 Oct 2023 08:00:00 +0000",
		place:       "Odisha",
	},
	{
		title:       "Flood warning issued for low-lying districts of Chennai",
		description: "Heavy rainfall has submerged roads across Chennai.",
		link:        "https://news.example.com/flood-chennai",
		pubDate:     "Wed, 11 Oct 2023 09:30:00 +0000",
		place:       "Chennai",
	},
	{
		title:       "Earthquake of magnitude 6.1 shakes Kathmandu",
		description: "Rescue teams deployed after buildings collapsed.",
		link:        "https://news.example.com/earthquake-kathmandu",
		pubDate:     "Thu, 12 Oct 2023 04:15:00 +0000",
		place:       "Kathmandu",
	},
	{
		title:       "Wildfire spreads toward suburbs, relief camps set up",
		description: "Emergency crews battle the blaze for a third day.",
		link:        "https://news.example.com/wildfire",
		pubDate:     "Fri, 13 Oct 2023 18:45:00 +0000",
	},
	{
		title:       "Local bakery wins regional award",
		description: "The family-run shop took the top prize this year.",
		link:        "https://news.example.com/bakery",
		pubDate:     "Fri, 13 Oct 2023 12:00:00 +0000",
	},
	{
		title:       "Stock markets close higher for the week",
		description: "Investors reacted to the latest central bank minutes.",
		link:        "https://news.example.com/markets",
		pubDate:     "published last friday", // unparseable on purpose
	},
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	feedOut := flag.String("feed-out", "", "output path for the mock RSS feed XML")
	citiesOut := flag.String("cities-out", "", "output path for the mock gazetteer CSV")
	flag.Parse()

	if *feedOut == "" || *citiesOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -feed-out, -cities-out")
	}

	if err := writeFeed(*feedOut); err != nil {
		return fmt.Errorf("writing feed fixture: %w", err)
	}
	log.Printf("wrote feed fixture: %s", *feedOut)

	if err := writeCities(*citiesOut); err != nil {
		return fmt.Errorf("writing gazetteer fixture: %w", err)
	}
	log.Printf("wrote gazetteer fixture: %s", *citiesOut)

	printStats()
	return nil
}

func writeFeed(path string) error {
	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Mock Disaster Wire",
			Description: "Generated fixture feed",
			Items:       make([]rssItem, 0, len(articles)),
		},
	}
	for _, a := range articles {
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       a.title,
			Description: a.description,
			Link:        a.link,
			PubDate:     a.pubDate,
		})
	}

	data, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return err
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func writeCities(path string) error {
	rows := [][]string{
		{"name", "country", "subcountry", "geonameid"},
		{"Odisha", "India", "Odisha", "1261029"},
		{"Chennai", "India", "Tamil Nadu", "1264527"},
		{"Kathmandu", "Nepal", "Central Region", "1283240"},
		{"Springfield", "United States", "Illinois", "4250542"},
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// printStats classifies the fixture articles the same way the pipeline does
// so test assertions can be updated from the output.
func printStats() {
	classifier := domain.NewClassifier(domain.DefaultVocabulary)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total articles: %d\n", len(articles))

	var relevant, withPlace, badDates int
	for _, a := range articles {
		c := classifier.Classify(a.title + " " + a.description)
		if c.Relevant {
			relevant++
			fmt.Printf("  relevant: %q keywords=%v\n", a.title, c.Keywords)
		}
		if a.place != "" {
			withPlace++
		}
		if _, ok := domain.NormalizeDate(a.pubDate); !ok {
			badDates++
		}
	}

	fmt.Printf("Relevant: %d\n", relevant)
	fmt.Printf("With known place: %d\n", withPlace)
	fmt.Printf("Unparseable dates: %d\n", badDates)
}
