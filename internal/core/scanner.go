package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"feedscan/internal/config"
	"feedscan/internal/processors/filters"
	"feedscan/internal/sources"
	"feedscan/internal/sources/rss"
	"feedscan/internal/targets"
	"feedscan/internal/types"
	"feedscan/internal/utils"
)

// Scanner executes one full scan: load the feed and keyword lists, fetch all
// feeds concurrently, match articles against the keywords, and publish the
// matches to the configured targets. A Scanner holds no state across runs.
type Scanner struct {
	cfg     *config.Config
	fetcher *rss.Fetcher
	stdout  io.Writer
}

func NewScanner(cfg *config.Config, stdout io.Writer) *Scanner {
	return &Scanner{
		cfg: cfg,
		fetcher: rss.NewFetcher(rss.Options{
			Timeout:       cfg.FetchTimeout(),
			MaxConcurrent: cfg.Fetch.MaxConcurrent,
			MaxItems:      cfg.Fetch.MaxItems,
			UserAgent:     cfg.Fetch.UserAgent,
		}),
		stdout: stdout,
	}
}

// Run performs a single scan pass. Unreadable input lists abort before any
// fetch; per-feed failures are isolated inside the fetch stage; a report sink
// failure is surfaced only after the console output has completed, so the two
// sinks never suppress each other.
func (s *Scanner) Run(ctx context.Context) error {
	start := time.Now()

	feedURLs, err := sources.LoadFeedList(s.cfg.Inputs.FeedsPath, s.cfg.Inputs.FeedsFormat)
	if err != nil {
		return err
	}

	keywords, err := sources.LoadKeywords(s.cfg.Inputs.KeywordsPath)
	if err != nil {
		return err
	}

	slog.Info("Scan starting", "feeds", len(feedURLs), "keywords", len(keywords))

	articles, stats := s.fetcher.FetchAll(ctx, feedURLs)

	matcher := filters.NewMatcher(keywords, s.cfg.Match.IncludeDescription)
	matches := matcher.FilterAll(articles)

	sinkErrs := s.publish(ctx, matches)

	slog.Info("Scan complete",
		"feeds_processed", stats.FeedsProcessed,
		"feeds_failed", stats.FeedsFailed,
		"articles", stats.Articles,
		"matches", len(matches),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return errors.Join(sinkErrs...)
}

// publish writes every match to every target, sequentially. A target that
// fails is dropped from the remaining matches but the other targets keep
// receiving them; its error is collected and returned after the pass.
func (s *Scanner) publish(ctx context.Context, matches []types.MatchResult) []error {
	var sinkErrs []error

	active := s.buildTargets(&sinkErrs)
	all := active

	for i := range matches {
		match := &matches[i]
		failed := map[string]bool{}

		for _, target := range active {
			if err := target.Publish(ctx, match); err != nil {
				slog.Error("Target publish failed", "target", target.Name(), "error", err)
				sinkErrs = append(sinkErrs, err)
				failed[target.Name()] = true
			}
		}

		if len(failed) > 0 {
			active = utils.FilterArray(active, func(t types.Target) bool {
				return !failed[t.Name()]
			})
		}
	}

	for _, target := range all {
		if err := target.Close(); err != nil {
			slog.Error("Target close failed", "target", target.Name(), "error", err)
			sinkErrs = append(sinkErrs, err)
		}
	}

	return sinkErrs
}

// buildTargets assembles the run's sinks. A report sink that cannot be opened
// is recorded as an error but does not stop the console target from running.
func (s *Scanner) buildTargets(sinkErrs *[]error) []types.Target {
	var active []types.Target

	if s.cfg.Report.Console {
		active = append(active, targets.NewConsoleTarget(s.stdout))
	}

	var report types.Target
	var err error
	switch s.cfg.Report.Format {
	case config.ReportFormatRSS:
		report, err = targets.NewFeedTarget(s.cfg.Report.Path)
	default:
		report, err = targets.NewReportTarget(s.cfg.Report.Path)
	}
	if err != nil {
		slog.Error("Report sink unavailable", "path", s.cfg.Report.Path, "error", err)
		*sinkErrs = append(*sinkErrs, err)
	} else {
		active = append(active, report)
	}

	return active
}
