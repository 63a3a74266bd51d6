// Package flashscore talks to the flashscore site: it fetches pages
// with a browser-like header set, extracts the region name from the
// navigation breadcrumb and harvests tournament links and logo image
// candidates via CSS selectors.
package flashscore
