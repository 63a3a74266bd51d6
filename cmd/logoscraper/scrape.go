package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"logoscraper/pkg/config"
	"logoscraper/pkg/logger"
	"logoscraper/pkg/scraper"
)

var (
	// Scrape command flags
	outputDir      string
	concurrent     int
	rateLimit      int
	requestTimeout int
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape [root-url...]",
	Short: "Crawl region pages and download tournament logos",
	Long: `Crawl one or more flashscore region pages and download the logo of
every tournament they list.

Root URLs can be given as arguments. When none are given, the roots
from the configuration file (or the built-in defaults) are used.

Each region gets its own folder under the output directory. Logo
filenames are derived from the tournament name: lowercased, with
whitespace collapsed to single hyphens. A logo whose file already
exists is skipped without a network request.`,
	Example: `  # Crawl the default region pages
  logoscraper scrape

  # Crawl specific region pages into a custom directory
  logoscraper scrape https://www.flashscore.com/football/africa/ --output ./logos

  # Download up to 5 logos at a time, 30 requests per minute
  logoscraper scrape --concurrent 5 --rate-limit 30`,
	Args: cobra.ArbitraryArgs,
	Run:  runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for logos (default: ./output)")
	scrapeCmd.Flags().IntVar(&concurrent, "concurrent", 0, "number of concurrent downloads (default: 1, sequential)")
	scrapeCmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "requests per minute, 0 disables rate limiting")
	scrapeCmd.Flags().IntVar(&requestTimeout, "timeout", 0, "HTTP request timeout in seconds (default: 30)")
}

func runScrape(cmd *cobra.Command, args []string) {
	// Build flags map from command line
	flags := make(map[string]interface{})
	if outputDir != "" {
		flags["output"] = outputDir
	}
	if concurrent > 0 {
		flags["concurrent"] = concurrent
	}
	if cmd.Flags().Changed("rate-limit") {
		flags["rate-limit"] = rateLimit
	}
	if requestTimeout > 0 {
		flags["request-timeout"] = time.Duration(requestTimeout) * time.Second
	}
	if logLevel != "info" {
		flags["log-level"] = logLevel
	}
	if len(args) > 0 {
		flags["roots"] = args
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.WithField("version", version).Info("Logoscraper starting")

	s, err := scraper.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize scraper: %v\n", err)
		os.Exit(1)
	}

	snapshot := s.Run()

	logger.GetLogger().InfoWithFields("Run finished", map[string]interface{}{
		"downloaded":           snapshot.Downloaded,
		"skipped_not_eligible": snapshot.SkippedNotEligible,
		"skipped_existing":     snapshot.SkippedExisting,
		"errors":               snapshot.Errors,
	})
}
