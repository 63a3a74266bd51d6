// Package ui prints the crawl's line-per-event console output. Every
// helper issues a single unbuffered write so a supervising process can
// stream progress live.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Out is where the progress lines go. Swappable for tests.
var Out io.Writer = os.Stdout

// PrintBanner prints the startup line.
func PrintBanner() {
	fmt.Fprintln(Out, "Flashscore...")
}

// PrintRegionHeader prints the region line that precedes its downloads.
func PrintRegionHeader(region string, tournamentCount int) {
	fmt.Fprintf(Out, "\n%s (%d tournaments)\n", region, tournamentCount)
}

// PrintDownloaded prints one successful download, with the original
// (non-normalized) display name.
func PrintDownloaded(displayName string) {
	fmt.Fprintf(Out, "+ %s\n", displayName)
}

// PrintDownloadError prints one failed download with a truncated cause.
func PrintDownloadError(displayName, truncatedErr string) {
	fmt.Fprintf(Out, "! Error with %s: %s...\n", displayName, truncatedErr)
}

// PrintScrapeError prints a root-page level failure.
func PrintScrapeError(url string, err error) {
	fmt.Fprintf(Out, "Error scraping %s: %v\n", url, err)
}

// PrintTournamentError prints a tournament-page level failure with a
// truncated cause.
func PrintTournamentError(truncatedErr string) {
	fmt.Fprintf(Out, "Error processing tournament: %s...\n", truncatedErr)
}

// PrintSummary prints the aggregate counts for the whole run.
func PrintSummary(downloaded, skipped, errors int) {
	fmt.Fprintf(Out, "\nTotal: %d done, %d skip, %d error\n", downloaded, skipped, errors)
}

// PrintComplete prints the trailing completion line.
func PrintComplete() {
	fmt.Fprintln(Out, "\nComplete!")
}
