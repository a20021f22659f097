package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"feedscan/internal/types"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves and parses a batch of feeds concurrently. A single
// Fetcher is safe for repeated FetchAll calls; it keeps no per-run state
// beyond the shared HTTP client's connection pool.
type Fetcher struct {
	client        *http.Client
	parser        *gofeed.Parser
	maxConcurrent int
	maxItems      int
	userAgent     string
}

type Options struct {
	Timeout       time.Duration
	MaxConcurrent int
	MaxItems      int
	UserAgent     string
}

func NewFetcher(opts Options) *Fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = 10
	}

	return &Fetcher{
		client:        &http.Client{Timeout: opts.Timeout},
		parser:        gofeed.NewParser(),
		maxConcurrent: opts.MaxConcurrent,
		maxItems:      opts.MaxItems,
		userAgent:     opts.UserAgent,
	}
}

type feedResult struct {
	url      string
	articles []types.Article
	err      error
}

// FetchAll fans out over the feed URLs, bounded by max_concurrent, and joins
// once every feed has either produced articles or failed. Per-feed failures
// are logged as warnings and contribute zero articles; they never abort the
// batch. Cross-feed article order is arrival order; within a feed, document
// order is preserved.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) ([]types.Article, types.FetchStats) {
	stats := types.FetchStats{FeedsProcessed: len(urls)}
	if len(urls) == 0 {
		return nil, stats
	}

	slog.Info("Fetching feeds", "count", len(urls), "max_concurrent", f.maxConcurrent)

	resultChan := make(chan feedResult, len(urls))
	sem := make(chan struct{}, f.maxConcurrent)

	var wg sync.WaitGroup
	for _, url := range urls {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			articles, err := f.fetchFeed(ctx, u)
			resultChan <- feedResult{url: u, articles: articles, err: err}
		}(url)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var articles []types.Article
	for result := range resultChan {
		if result.err != nil {
			stats.FeedsFailed++
			slog.Warn("Feed unavailable", "url", result.url, "error", result.err)
			continue
		}
		slog.Debug("Feed retrieved", "url", result.url, "articles", len(result.articles))
		articles = append(articles, result.articles...)
	}

	stats.Articles = len(articles)
	return articles, stats
}

// fetchFeed performs one GET and parses the body as RSS/Atom. Both transport
// and parse failures come back as FeedError so the collector can count them.
func (f *Fetcher) fetchFeed(ctx context.Context, url string) ([]types.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, types.NewFeedError(url, types.StageFetch, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, types.NewFeedError(url, types.StageFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, types.NewFeedError(url, types.StageFetch, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, types.NewFeedError(url, types.StageParse, err)
	}

	limit := len(feed.Items)
	if f.maxItems > 0 && f.maxItems < limit {
		limit = f.maxItems
	}

	articles := make([]types.Article, 0, limit)
	for i := 0; i < limit; i++ {
		articles = append(articles, convertArticle(feed.Items[i], url))
	}

	return articles, nil
}
