package sources

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"feedscan/internal/config"
	"feedscan/internal/types"
)

// LoadFeedList reads the feed-list file in the given format and returns the
// feed URLs in document order.
func LoadFeedList(path, format string) ([]string, error) {
	switch format {
	case config.FeedsFormatOPML:
		return loadOPMLFile(path)
	default:
		return loadLines(path)
	}
}

// LoadKeywords reads the keyword file, one keyword per line. Blank lines and
// surrounding whitespace are dropped; casing is preserved, the matcher folds
// it later.
func LoadKeywords(path string) ([]string, error) {
	return loadLines(path)
}

// loadLines reads a line-oriented list, trimming whitespace and skipping
// blank lines.
func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.NewSourceListError(path, err)
	}
	defer func() { _ = f.Close() }()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, types.NewSourceListError(path, fmt.Errorf("failed to read list: %w", err))
	}

	return entries, nil
}
