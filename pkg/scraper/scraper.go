// Package scraper drives the two-level crawl: each configured root page
// yields a region and its tournament links, each tournament page yields
// logo image candidates, and every candidate is pushed through the
// download pipeline. No unit-of-work failure is fatal: every error is
// folded into the run statistics and the crawl moves on.
package scraper

import (
	"sync"
	"time"

	"logoscraper/internal/downloader"
	"logoscraper/pkg/assets"
	"logoscraper/pkg/config"
	apperrors "logoscraper/pkg/errors"
	"logoscraper/pkg/flashscore"
	"logoscraper/pkg/logger"
	"logoscraper/pkg/ratelimit"
	"logoscraper/pkg/stats"
	"logoscraper/pkg/storage"
	"logoscraper/pkg/ui"
)

// errTruncateLen bounds the single-line console diagnostics.
const errTruncateLen = 50

// Scraper orchestrates the logo crawl.
type Scraper struct {
	client      SiteClient
	storage     *storage.Manager
	filter      *assets.Filter
	rateLimiter ratelimit.Limiter
	stats       *stats.Run
	config      *config.Config
	logger      logger.Logger
}

// New creates a Scraper from configuration, ensuring the output root
// exists.
func New(cfg *config.Config) (*Scraper, error) {
	log := logger.GetLogger()

	client := flashscore.NewClient(cfg.HTTP.UserAgent, cfg.HTTP.RequestTimeout, log)

	return newWithClient(cfg, client, log)
}

// NewWithClient creates a Scraper with a caller-provided site client.
func NewWithClient(cfg *config.Config, client SiteClient) (*Scraper, error) {
	return newWithClient(cfg, client, logger.GetLogger())
}

func newWithClient(cfg *config.Config, client SiteClient, log logger.Logger) (*Scraper, error) {
	storageManager, err := storage.NewManager(cfg.Output.BaseDirectory)
	if err != nil {
		return nil, err
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = ratelimit.NewTokenBucket(cfg.RateLimit.RequestsPerMinute, time.Minute)
	} else {
		limiter = ratelimit.NewUnlimited()
	}

	return &Scraper{
		client:      client,
		storage:     storageManager,
		filter:      assets.NewFilter(cfg.Download.AssetExtension),
		rateLimiter: limiter,
		stats:       stats.New(),
		config:      cfg,
		logger:      log,
	}, nil
}

// Run crawls every configured root page and returns the final counters.
// It never fails: every page or download failure is converted into an
// error-count increment plus a diagnostic line.
func (s *Scraper) Run() stats.Snapshot {
	ui.PrintBanner()

	s.logger.InfoWithFields("crawl starting", map[string]interface{}{
		"roots":      len(s.config.Sources.RootURLs),
		"output_dir": s.storage.BaseDir(),
		"workers":    s.config.Download.ConcurrentDownloads,
	})

	for _, rootURL := range s.config.Sources.RootURLs {
		s.processRoot(rootURL)
	}

	snap := s.stats.Snapshot()
	ui.PrintSummary(snap.Downloaded, snap.SkippedNotEligible, snap.Errors)
	ui.PrintComplete()

	s.logger.InfoWithFields("crawl finished", map[string]interface{}{
		"downloaded":       snap.Downloaded,
		"skipped_not_png":  snap.SkippedNotEligible,
		"skipped_existing": snap.SkippedExisting,
		"errors":           snap.Errors,
		"regions":          len(snap.Regions),
	})

	return snap
}

// processRoot handles one region page: region extraction, tournament
// harvesting and the download of every tournament's logo candidates.
// The region header is printed before any of the region's jobs are
// queued, so headers never interleave with another region's output.
func (s *Scraper) processRoot(rootURL string) {
	page, err := s.client.GetPage(rootURL)
	if err != nil {
		ui.PrintScrapeError(rootURL, err)
		s.stats.AddError()
		s.logger.WithError(err).WithField("url", rootURL).Error("failed to fetch root page")
		return
	}

	region := flashscore.ExtractRegionName(page, s.config.Sources.RootURLs, s.logger)

	links := flashscore.HarvestLinks(page, flashscore.TournamentLinkSelector)
	tournaments := make([]flashscore.TournamentRef, 0, len(links))
	for _, link := range links {
		tournaments = append(tournaments, flashscore.TournamentRef{URL: link, Region: region})
	}

	s.stats.SetTournamentCount(region, len(tournaments))

	if len(tournaments) == 0 {
		s.logger.DebugWithFields("no tournaments found", map[string]interface{}{
			"url":    rootURL,
			"region": region,
		})
		return
	}

	ui.PrintRegionHeader(region, len(tournaments))

	pool := downloader.NewWorkerPool(
		s.config.Download.ConcurrentDownloads,
		s.client,
		s.storage,
		s.filter,
		s.rateLimiter,
		s.logger,
	)
	pool.Start()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.processResults(pool.Results())
	}()

	for _, tournament := range tournaments {
		s.processTournament(pool, tournament)
	}

	// Drain this region before moving to the next root.
	pool.Stop()
	wg.Wait()
}

// processTournament fetches one tournament page and queues its logo
// candidates. A fetch failure is recorded and the crawl continues with
// the next tournament.
func (s *Scraper) processTournament(pool *downloader.WorkerPool, tournament flashscore.TournamentRef) {
	page, err := s.client.GetPage(tournament.URL)
	if err != nil {
		ui.PrintTournamentError(apperrors.Truncate(err, errTruncateLen))
		s.stats.AddError()
		s.logger.WithError(err).WithField("url", tournament.URL).Error("failed to fetch tournament page")
		return
	}

	for _, image := range flashscore.HarvestImages(page, flashscore.LogoImageSelector) {
		job := downloader.Job{
			URL:          image.URL,
			DisplayName:  image.DisplayName,
			RegionFolder: tournament.Region,
		}
		if err := pool.Submit(job); err != nil {
			s.logger.WithError(err).WithField("url", image.URL).Error("failed to queue download")
		}
	}
}

// processResults folds download results into the statistics and the
// console output.
func (s *Scraper) processResults(results <-chan downloader.Result) {
	for result := range results {
		switch result.Outcome {
		case downloader.OutcomeDownloaded:
			s.stats.AddDownloaded(result.Job.RegionFolder)
			ui.PrintDownloaded(result.Job.DisplayName)
		case downloader.OutcomeSkippedNotEligible:
			s.stats.AddSkippedNotEligible()
		case downloader.OutcomeSkippedExisting:
			// Cost-free skip: no network request was made and the file on
			// disk stays untouched. Not surfaced on the console.
			s.stats.AddSkippedExisting()
		case downloader.OutcomeFailed:
			s.stats.AddError()
			ui.PrintDownloadError(result.Job.DisplayName, apperrors.Truncate(result.Error, errTruncateLen))
		}
	}
}
