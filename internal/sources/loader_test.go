package sources

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"feedscan/internal/config"
	"feedscan/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFeedListLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain list",
			content: "http://a.example/rss\nhttp://b.example/rss\n",
			want:    []string{"http://a.example/rss", "http://b.example/rss"},
		},
		{
			name:    "blank lines and whitespace skipped",
			content: "  http://a.example/rss  \n\n\t\nhttp://b.example/rss",
			want:    []string{"http://a.example/rss", "http://b.example/rss"},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "only blank lines",
			content: "\n   \n\t\n",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "feeds.txt", tt.content)

			got, err := LoadFeedList(path, config.FeedsFormatLines)
			if err != nil {
				t.Fatalf("LoadFeedList() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadFeedList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFeedListMissing(t *testing.T) {
	_, err := LoadFeedList(filepath.Join(t.TempDir(), "missing.txt"), config.FeedsFormatLines)
	if err == nil {
		t.Fatal("LoadFeedList() expected error for missing file")
	}
	if !types.IsSourceList(err) {
		t.Errorf("LoadFeedList() error = %T, want *types.SourceListError", err)
	}
}

func TestLoadKeywords(t *testing.T) {
	path := writeFile(t, "keywords.txt", "security\n  AI  \n\ncloud\n")

	got, err := LoadKeywords(path)
	if err != nil {
		t.Fatalf("LoadKeywords() error = %v", err)
	}

	want := []string{"security", "AI", "cloud"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadKeywords() = %v, want %v", got, want)
	}
}

func TestLoadKeywordsMissing(t *testing.T) {
	_, err := LoadKeywords(filepath.Join(t.TempDir(), "missing.txt"))
	if !types.IsSourceList(err) {
		t.Errorf("LoadKeywords() error = %v, want *types.SourceListError", err)
	}
}
