package flashscore

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HarvestLinks returns the ordered absolute URLs of every element
// matching the selector. Relative hrefs are resolved against the page's
// own URL, not the crawl root: tournament pages sit at a different path
// depth than the region pages that link to them. Elements without an
// href are skipped.
func HarvestLinks(p *Page, selector string) []string {
	var links []string
	p.Document.Find(selector).Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		if abs := resolveURL(p.URL, href); abs != "" {
			links = append(links, abs)
		}
	})
	return links
}

// HarvestImages returns the ordered (src, alt) pairs of every element
// matching the selector, src resolved against the page's own URL.
// Elements missing either attribute are skipped; that is a normal
// outcome, not an error.
func HarvestImages(p *Page, selector string) []ImageRef {
	var images []ImageRef
	p.Document.Find(selector).Each(func(_ int, s *goquery.Selection) {
		src, hasSrc := s.Attr("src")
		alt, hasAlt := s.Attr("alt")
		if !hasSrc || src == "" || !hasAlt || strings.TrimSpace(alt) == "" {
			return
		}
		abs := resolveURL(p.URL, src)
		if abs == "" {
			return
		}
		images = append(images, ImageRef{URL: abs, DisplayName: alt})
	})
	return images
}

// resolveURL resolves ref against base, returning "" when either side
// does not parse.
func resolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	refURL, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(refURL).String()
}
