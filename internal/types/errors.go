package types

import (
	"errors"
	"fmt"
)

// SourceListError marks a feed-list or keyword-list file that could not be
// read. It is fatal: no fetch is attempted when either input is unreadable.
type SourceListError struct {
	Path string
	Err  error
}

func (e *SourceListError) Error() string {
	return fmt.Sprintf("source list %s: %v", e.Path, e.Err)
}

func (e *SourceListError) Unwrap() error {
	return e.Err
}

func NewSourceListError(path string, err error) *SourceListError {
	return &SourceListError{Path: path, Err: err}
}

func IsSourceList(err error) bool {
	var e *SourceListError
	return errors.As(err, &e)
}

// FeedError stages.
const (
	StageFetch = "fetch"
	StageParse = "parse"
)

// FeedError marks a single feed that failed to fetch or parse. Feed errors
// never abort the run; the fetch stage logs them and moves on.
type FeedError struct {
	URL   string
	Stage string
	Err   error
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("feed %s: %s failed: %v", e.URL, e.Stage, e.Err)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

func NewFeedError(url, stage string, err error) *FeedError {
	return &FeedError{URL: url, Stage: stage, Err: err}
}

func IsFeedError(err error) bool {
	var e *FeedError
	return errors.As(err, &e)
}

// ReportError marks a report sink that could not be opened or written. It is
// surfaced to the operator after the run; the console output is unaffected.
type ReportError struct {
	Path string
	Err  error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report %s: %v", e.Path, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(path string, err error) *ReportError {
	return &ReportError{Path: path, Err: err}
}

func IsReportError(err error) bool {
	var e *ReportError
	return errors.As(err, &e)
}
