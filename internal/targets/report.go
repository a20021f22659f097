package targets

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"feedscan/internal/types"
)

// ReportTarget appends one pipe-delimited line per match to the report file.
// The file is opened fresh (truncated) per run.
type ReportTarget struct {
	path string
	file *os.File
	w    *bufio.Writer
}

func NewReportTarget(path string) (*ReportTarget, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, types.NewReportError(path, err)
	}

	return &ReportTarget{
		path: path,
		file: f,
		w:    bufio.NewWriter(f),
	}, nil
}

func (t *ReportTarget) Name() string {
	return "report"
}

func (t *ReportTarget) Publish(ctx context.Context, match *types.MatchResult) error {
	_, err := fmt.Fprintf(t.w, "%s | %s | %s | %s\n",
		match.Article.Title,
		match.Article.PublishedLabel(),
		match.Article.Link,
		strings.Join(match.Keywords, ", "),
	)
	if err != nil {
		return types.NewReportError(t.path, err)
	}
	return nil
}

func (t *ReportTarget) Close() error {
	if err := t.w.Flush(); err != nil {
		_ = t.file.Close()
		return types.NewReportError(t.path, err)
	}
	if err := t.file.Close(); err != nil {
		return types.NewReportError(t.path, err)
	}
	return nil
}
