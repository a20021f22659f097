package types

import (
	"context"
	"time"
)

// Article is one entry extracted from a feed. Articles are created by the
// fetch stage and never mutated afterwards.
type Article struct {
	Title       string
	Description string
	Link        string

	// Published is the raw date string from the feed; PublishedAt is the
	// parsed form when the feed carried a parseable date.
	Published   string
	PublishedAt *time.Time

	// Source is the URL of the feed the article was parsed from.
	Source string
}

// PublishedLabel returns a human-readable publication label, preferring the
// raw feed string and falling back to the parsed timestamp.
func (a *Article) PublishedLabel() string {
	if a.Published != "" {
		return a.Published
	}
	if a.PublishedAt != nil {
		return a.PublishedAt.Format(time.RFC1123Z)
	}
	return "unknown date"
}

// MatchResult pairs an article with the keywords that matched it. Keywords
// holds at least one entry, in keyword-list order, with no duplicates.
type MatchResult struct {
	Article  Article
	Keywords []string
}

// FetchStats accounts for one fetch pass over the feed list.
type FetchStats struct {
	FeedsProcessed int
	FeedsFailed    int
	Articles       int
}

// Target receives match results one at a time after the fetch stage has
// joined. Targets are independent: a failing target never suppresses output
// to the others. Close flushes whatever the target buffered during the run.
type Target interface {
	Name() string
	Publish(ctx context.Context, match *MatchResult) error
	Close() error
}
