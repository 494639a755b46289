// Package rss fetches and parses syndication feeds into domain entries.
package rss

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
)

// tagRe strips HTML markup that feeds embed in titles and descriptions.
var tagRe = regexp.MustCompile(`<[^>]*>`)

// Source fetches one feed URL. It implements pipeline.EntrySource.
type Source struct {
	url    string
	client *http.Client
}

// NewSource creates a feed source with a per-request timeout.
func NewSource(url string, timeout time.Duration) *Source {
	return &Source{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the feed URL this source was built for.
func (s *Source) URL() string {
	return s.url
}

// Fetch retrieves and parses the feed, reducing each item to the plain-text
// fields the pipeline consumes. The raw pubDate string passes through
// untouched: date normalization is the assembler's concern, and it needs the
// original to fall back to.
func (s *Source) Fetch(ctx context.Context) ([]domain.FeedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned status %d", s.url, resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	return lo.Map(feed.Items, func(item *gofeed.Item, _ int) domain.FeedEntry {
		return domain.FeedEntry{
			Title:       stripTags(item.Title),
			Description: stripTags(item.Description),
			Link:        strings.TrimSpace(item.Link),
			Published:   item.Published,
			SourceURL:   s.url,
		}
	}), nil
}

func stripTags(s string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(s, ""))
}
