package flashscore

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is a fetched and parsed HTML page. URL is the page's own address
// and the base every relative link on it resolves against; Raw keeps the
// markup source for the pattern-based breadcrumb match.
type Page struct {
	URL      string
	Document *goquery.Document
	Raw      string
}

// NewPage parses raw markup into a Page anchored at the given URL.
func NewPage(pageURL, raw string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return &Page{URL: pageURL, Document: doc, Raw: raw}, nil
}

// TournamentRef is an instruction to visit one tournament page, tagged
// with the region it was discovered under. Consumed exactly once per
// run, never persisted.
type TournamentRef struct {
	URL    string
	Region string
}

// ImageRef is one harvested image candidate: the resolved asset URL and
// the display text paired with it.
type ImageRef struct {
	URL         string
	DisplayName string
}
