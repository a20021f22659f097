package rss

import (
	"html"
	"strings"

	"feedscan/internal/types"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

func convertArticle(feedItem *gofeed.Item, sourceURL string) types.Article {
	published := feedItem.Published
	publishedAt := feedItem.PublishedParsed
	if publishedAt == nil {
		publishedAt = feedItem.UpdatedParsed
	}
	if published == "" {
		published = feedItem.Updated
	}

	description := feedItem.Description
	if description == "" && feedItem.Content != "" {
		description = feedItem.Content
	}

	return types.Article{
		Title:       strings.TrimSpace(feedItem.Title),
		Description: stripHTML(description),
		Link:        feedItem.Link,
		Published:   published,
		PublishedAt: publishedAt,
		Source:      sourceURL,
	}
}

var htmlStripper = bluemonday.StrictPolicy()

// stripHTML removes HTML tags and decodes entities from text
func stripHTML(s string) string {
	s = htmlStripper.Sanitize(s)
	s = html.UnescapeString(s)
	s = strings.TrimSpace(s)

	// Limit length to avoid extremely long descriptions
	if len(s) > 500 {
		s = s[:497] + "..."
	}

	return s
}
