package flashscore

import "regexp"

const (
	// TournamentLinkSelector matches the left-menu tournament links on a
	// region page.
	TournamentLinkSelector = "a.leftMenu__href"

	// LogoImageSelector matches the heading logo on a tournament page.
	LogoImageSelector = "img.heading__logo.heading__logo--1"

	// BreadcrumbLinkSelector matches any breadcrumb anchor.
	BreadcrumbLinkSelector = "a.breadcrumb__link"

	// breadcrumbLinkClass is the class marking a breadcrumb anchor.
	breadcrumbLinkClass = "breadcrumb__link"

	// UnknownRegion is the sentinel returned when no extraction strategy
	// yields a region name.
	UnknownRegion = "Unknown-Region"
)

// breadcrumbAfterSpan captures the text of a breadcrumb anchor that
// immediately follows a closing span tag in the raw markup.
var breadcrumbAfterSpan = regexp.MustCompile(`</span>\s*<a\s+class="breadcrumb__link"\s+href="[^"]+">([^<]+)</a>`)
