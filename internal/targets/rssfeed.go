package targets

import (
	"context"
	"os"
	"strings"
	"time"

	"feedscan/internal/types"

	"github.com/gorilla/feeds"
)

// FeedTarget republishes the matched articles as an RSS document, so the
// report can itself be subscribed to. Items are buffered during the run and
// rendered on Close.
type FeedTarget struct {
	path string
	file *os.File
	feed *feeds.Feed
}

func NewFeedTarget(path string) (*FeedTarget, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, types.NewReportError(path, err)
	}

	return &FeedTarget{
		path: path,
		file: f,
		feed: &feeds.Feed{
			Title:       "feedscan matches",
			Link:        &feeds.Link{Href: ""},
			Description: "Articles matching the configured keywords",
			Created:     time.Now(),
		},
	}, nil
}

func (t *FeedTarget) Name() string {
	return "rss-report"
}

func (t *FeedTarget) Publish(ctx context.Context, match *types.MatchResult) error {
	created := time.Time{}
	if match.Article.PublishedAt != nil {
		created = *match.Article.PublishedAt
	}

	t.feed.Items = append(t.feed.Items, &feeds.Item{
		Title:       match.Article.Title,
		Link:        &feeds.Link{Href: match.Article.Link},
		Description: match.Article.Description,
		Source:      &feeds.Link{Href: match.Article.Source},
		Created:     created,
		Content:     "Matched keywords: " + strings.Join(match.Keywords, ", "),
	})
	return nil
}

func (t *FeedTarget) Close() error {
	if err := t.feed.WriteRss(t.file); err != nil {
		_ = t.file.Close()
		return types.NewReportError(t.path, err)
	}
	if err := t.file.Close(); err != nil {
		return types.NewReportError(t.path, err)
	}
	return nil
}
