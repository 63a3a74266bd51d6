package scraper

import (
	"io"

	"logoscraper/pkg/flashscore"
)

// SiteClient is the page and asset source the pipeline crawls. The
// concrete implementation is flashscore.Client; the interface exists so
// tests can substitute a canned site.
type SiteClient interface {
	GetPage(url string) (*flashscore.Page, error)
	FetchAsset(url string) (io.ReadCloser, error)
}
