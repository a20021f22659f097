package targets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"feedscan/internal/types"
)

func sampleMatch() *types.MatchResult {
	published := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	return &types.MatchResult{
		Article: types.Article{
			Title:       "New Security Patch Released",
			Description: "Details & analysis",
			Link:        "http://a.example/security-patch",
			Published:   "Mon, 02 Jan 2006 15:04:05 GMT",
			PublishedAt: &published,
			Source:      "http://a.example/rss",
		},
		Keywords: []string{"security", "patch"},
	}
}

func TestConsoleTarget(t *testing.T) {
	var buf strings.Builder
	target := NewConsoleTarget(&buf)

	if err := target.Publish(context.Background(), sampleMatch()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := target.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	got := buf.String()
	want := "[security, patch] New Security Patch Released (Mon, 02 Jan 2006 15:04:05 GMT)\nhttp://a.example/security-patch\n\n"
	if got != want {
		t.Errorf("console output = %q, want %q", got, want)
	}
}

func TestReportTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resultat.txt")

	target, err := NewReportTarget(path)
	if err != nil {
		t.Fatalf("NewReportTarget() error = %v", err)
	}
	if err := target.Publish(context.Background(), sampleMatch()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := target.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	want := "New Security Patch Released | Mon, 02 Jan 2006 15:04:05 GMT | http://a.example/security-patch | security, patch\n"
	if string(data) != want {
		t.Errorf("report = %q, want %q", string(data), want)
	}
}

func TestReportTargetTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resultat.txt")
	if err := os.WriteFile(path, []byte("stale result from a previous run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	target, err := NewReportTarget(path)
	if err != nil {
		t.Fatalf("NewReportTarget() error = %v", err)
	}
	if err := target.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("report not truncated, still contains %q", string(data))
	}
}

func TestReportTargetUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "resultat.txt")

	_, err := NewReportTarget(path)
	if err == nil {
		t.Fatal("NewReportTarget() expected error for unwritable path")
	}
	if !types.IsReportError(err) {
		t.Errorf("error = %T, want *types.ReportError", err)
	}
}

func TestFeedTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resultat.xml")

	target, err := NewFeedTarget(path)
	if err != nil {
		t.Fatalf("NewFeedTarget() error = %v", err)
	}
	if err := target.Publish(context.Background(), sampleMatch()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := target.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read feed report: %v", err)
	}

	out := string(data)
	for _, fragment := range []string{
		"<rss", "New Security Patch Released", "http://a.example/security-patch",
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("feed report missing %q:\n%s", fragment, out)
		}
	}
}
