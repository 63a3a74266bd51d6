package flashscore

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"logoscraper/pkg/logger"
	"logoscraper/pkg/names"
)

// regionStrategy is one extraction heuristic. It returns ok=false when
// the heuristic does not apply to the page, which hands over to the
// next strategy in line.
type regionStrategy func(p *Page, rootURLs []string) (string, bool)

// regionStrategies, in priority order. The first hit wins.
var regionStrategies = []regionStrategy{
	breadcrumbPatternMatch,
	spanSiblingWalk,
	firstBreadcrumbText,
	rootURLPathName,
}

var titleCaser = cases.Title(language.English)

// ExtractRegionName derives the region display name from a fetched page.
// It never returns an empty string and never fails: when every strategy
// comes up empty it logs a diagnostic and returns the UnknownRegion
// sentinel. Every candidate is passed through the folder sanitizer.
func ExtractRegionName(p *Page, rootURLs []string, log logger.Logger) string {
	if log == nil {
		log = logger.GetLogger()
	}
	if p == nil || p.Document == nil {
		log.WarnWithFields("region extraction skipped, no parsed page", nil)
		return UnknownRegion
	}

	for _, strategy := range regionStrategies {
		if name, ok := strategy(p, rootURLs); ok {
			return names.SanitizeFolderName(name)
		}
	}

	log.WarnWithFields("no region name found, using sentinel", map[string]interface{}{
		"url": p.URL,
	})
	return UnknownRegion
}

// breadcrumbPatternMatch looks for a breadcrumb anchor immediately
// following a closing span tag in the raw markup.
func breadcrumbPatternMatch(p *Page, _ []string) (string, bool) {
	match := breadcrumbAfterSpan.FindStringSubmatch(p.Raw)
	if match == nil {
		return "", false
	}
	name := strings.TrimSpace(match[1])
	return name, name != ""
}

// spanSiblingWalk inspects the next sibling of every span element and
// takes the first one that is a breadcrumb anchor. The anchor has to
// follow the span directly; only whitespace and comments may sit
// between them.
func spanSiblingWalk(p *Page, _ []string) (string, bool) {
	var name string
	p.Document.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		next := s.Next()
		if len(s.Nodes) == 0 || len(next.Nodes) == 0 {
			return true
		}
		if !next.Is("a") || !next.HasClass(breadcrumbLinkClass) {
			return true
		}
		if !immediatelyFollows(s.Nodes[0], next.Nodes[0]) {
			return true
		}
		if text := strings.TrimSpace(next.Text()); text != "" {
			name = text
			return false
		}
		return true
	})
	return name, name != ""
}

// immediatelyFollows reports whether next is the first sibling after
// prev, ignoring whitespace-only text nodes and comments. goquery's
// Next() skips intervening text nodes entirely, which is too lenient
// for breadcrumb detection.
func immediatelyFollows(prev, next *html.Node) bool {
	for sib := prev.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib == next {
			return true
		}
		if sib.Type == html.TextNode && strings.TrimSpace(sib.Data) == "" {
			continue
		}
		if sib.Type == html.CommentNode {
			continue
		}
		return false
	}
	return false
}

// firstBreadcrumbText takes the first breadcrumb anchor anywhere in the
// document with non-empty trimmed text.
func firstBreadcrumbText(p *Page, _ []string) (string, bool) {
	var name string
	p.Document.Find(BreadcrumbLinkSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			name = text
			return false
		}
		return true
	})
	return name, name != ""
}

// rootURLPathName derives a name from a configured root URL that
// appears verbatim in the markup: the final path segment with hyphens
// turned into spaces, title-cased.
func rootURLPathName(p *Page, rootURLs []string) (string, bool) {
	for _, root := range rootURLs {
		if !strings.Contains(p.Raw, root) {
			continue
		}
		segments := strings.Split(strings.TrimRight(root, "/"), "/")
		last := segments[len(segments)-1]
		if last == "" {
			continue
		}
		return titleCaser.String(strings.ReplaceAll(last, "-", " ")), true
	}
	return "", false
}
