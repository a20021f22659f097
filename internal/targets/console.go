package targets

import (
	"context"
	"fmt"
	"io"
	"strings"

	"feedscan/internal/types"
)

// ConsoleTarget prints matches in the tool's long-standing console shape:
//
//	[keyword] Title (published)
//	link
type ConsoleTarget struct {
	w io.Writer
}

func NewConsoleTarget(w io.Writer) *ConsoleTarget {
	return &ConsoleTarget{w: w}
}

func (t *ConsoleTarget) Name() string {
	return "console"
}

func (t *ConsoleTarget) Publish(ctx context.Context, match *types.MatchResult) error {
	_, err := fmt.Fprintf(t.w, "[%s] %s (%s)\n%s\n\n",
		strings.Join(match.Keywords, ", "),
		match.Article.Title,
		match.Article.PublishedLabel(),
		match.Article.Link,
	)
	if err != nil {
		return fmt.Errorf("console write failed: %w", err)
	}
	return nil
}

func (t *ConsoleTarget) Close() error {
	return nil
}
