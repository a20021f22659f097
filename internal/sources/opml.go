package sources

import (
	"encoding/xml"
	"fmt"
	"os"

	"feedscan/internal/types"
)

type opml struct {
	XMLName xml.Name `xml:"opml"`
	Body    opmlBody `xml:"body"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlOutline struct {
	Title    string        `xml:"title,attr"`
	Text     string        `xml:"text,attr"`
	Type     string        `xml:"type,attr"`
	XMLURL   string        `xml:"xmlUrl,attr"`
	Outlines []opmlOutline `xml:"outline"`
}

// ParseOPML extracts feed URLs from an OPML outline document, flattening
// nested outlines in document order.
func ParseOPML(data []byte) ([]string, error) {
	var doc opml
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OPML: %w", err)
	}

	var urls []string
	extractURLs(&urls, doc.Body.Outlines)

	return urls, nil
}

func extractURLs(result *[]string, outlines []opmlOutline) {
	for _, outline := range outlines {
		if outline.XMLURL != "" {
			*result = append(*result, outline.XMLURL)
		}

		if len(outline.Outlines) > 0 {
			extractURLs(result, outline.Outlines)
		}
	}
}

func loadOPMLFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewSourceListError(path, err)
	}

	urls, err := ParseOPML(data)
	if err != nil {
		return nil, types.NewSourceListError(path, err)
	}

	return urls, nil
}
