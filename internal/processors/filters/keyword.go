package filters

import (
	"strings"

	"feedscan/internal/types"

	"golang.org/x/text/cases"
)

// Matcher tests articles against a fixed keyword list. Matching is plain
// substring containment after Unicode case folding, so "cat" matches
// "category" and "AI" matches "ai". The keyword set is fixed for the whole
// run.
type Matcher struct {
	keywords           []keyword
	includeDescription bool
}

type keyword struct {
	raw    string
	folded string
}

// NewMatcher builds a matcher from the keyword list, preserving list order.
// Blank keywords are dropped. When includeDescription is set, the article
// description is searched in addition to the title.
func NewMatcher(keywords []string, includeDescription bool) *Matcher {
	m := &Matcher{includeDescription: includeDescription}
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		m.keywords = append(m.keywords, keyword{raw: kw, folded: fold(kw)})
	}
	return m
}

// Match returns the keywords contained in the article, in keyword-list order,
// or nil when nothing matches.
func (m *Matcher) Match(article *types.Article) []string {
	if len(m.keywords) == 0 {
		return nil
	}

	haystack := fold(article.Title)
	if m.includeDescription && article.Description != "" {
		haystack += " " + fold(article.Description)
	}

	var matched []string
	for _, kw := range m.keywords {
		if strings.Contains(haystack, kw.folded) {
			matched = append(matched, kw.raw)
		}
	}

	return matched
}

// FilterAll runs the matcher over the article sequence, preserving its order.
// Each matching article yields exactly one result, however many keywords hit.
func (m *Matcher) FilterAll(articles []types.Article) []types.MatchResult {
	var results []types.MatchResult
	for _, article := range articles {
		if matched := m.Match(&article); len(matched) > 0 {
			results = append(results, types.MatchResult{Article: article, Keywords: matched})
		}
	}
	return results
}

func fold(s string) string {
	return cases.Fold().String(s)
}
