package downloader

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"logoscraper/pkg/logger"
	"logoscraper/pkg/names"
	"logoscraper/pkg/ratelimit"
)

// Outcome classifies what happened to a single download job.
type Outcome int

const (
	OutcomeDownloaded Outcome = iota
	OutcomeSkippedNotEligible
	OutcomeSkippedExisting
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDownloaded:
		return "downloaded"
	case OutcomeSkippedNotEligible:
		return "skipped_not_eligible"
	case OutcomeSkippedExisting:
		return "skipped_existing"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Job represents a single image download task.
type Job struct {
	URL          string
	DisplayName  string
	RegionFolder string // already sanitized
}

// Result represents the outcome of a download job.
type Result struct {
	Job      Job
	Outcome  Outcome
	Error    error
	Duration time.Duration
}

// AssetFetcher fetches a binary asset stream.
type AssetFetcher interface {
	FetchAsset(url string) (io.ReadCloser, error)
}

// AssetStorage persists assets and answers existence checks.
type AssetStorage interface {
	Exists(regionFolder, filename string) bool
	SaveAsset(r io.Reader, regionFolder, filename string) error
}

// AssetFilter classifies URLs against the download allow-list.
type AssetFilter interface {
	IsEligible(url string) bool
	Extension() string
}

// WorkerPool manages download workers. One worker keeps downloads
// strictly sequential in submit order; more workers trade that order
// for throughput.
type WorkerPool struct {
	numWorkers  int
	jobQueue    chan Job
	resultQueue chan Result
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	fetcher     AssetFetcher
	storage     AssetStorage
	filter      AssetFilter
	rateLimiter ratelimit.Limiter
	logger      logger.Logger
}

// NewWorkerPool creates a download worker pool.
func NewWorkerPool(
	numWorkers int,
	fetcher AssetFetcher,
	storage AssetStorage,
	filter AssetFilter,
	rateLimiter ratelimit.Limiter,
	log logger.Logger,
) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	if numWorkers < 1 {
		numWorkers = 1
	}
	if rateLimiter == nil {
		rateLimiter = ratelimit.NewUnlimited()
	}
	if log == nil {
		log = logger.GetLogger()
	}

	return &WorkerPool{
		numWorkers:  numWorkers,
		jobQueue:    make(chan Job, numWorkers*2),
		resultQueue: make(chan Result, numWorkers),
		ctx:         ctx,
		cancel:      cancel,
		fetcher:     fetcher,
		storage:     storage,
		filter:      filter,
		rateLimiter: rateLimiter,
		logger:      log,
	}
}

// Start initializes and starts all workers
func (wp *WorkerPool) Start() {
	wp.logger.DebugWithFields("starting worker pool", map[string]interface{}{
		"num_workers": wp.numWorkers,
	})

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Stop closes the job queue, waits for the remaining jobs to finish and
// closes the result queue.
func (wp *WorkerPool) Stop() {
	close(wp.jobQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
	wp.cancel()
}

// Submit adds a new download job to the queue
func (wp *WorkerPool) Submit(job Job) error {
	select {
	case wp.jobQueue <- job:
		return nil
	case <-wp.ctx.Done():
		return fmt.Errorf("worker pool is shutting down")
	}
}

// Results returns the result channel for consuming download results
func (wp *WorkerPool) Results() <-chan Result {
	return wp.resultQueue
}

// worker is the main worker routine
func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobQueue {
		result := wp.processJob(job, id)

		select {
		case wp.resultQueue <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

// TargetFilename derives the on-disk name for a display name: the
// normalized form with the filter extension appended when missing.
func TargetFilename(displayName, extension string) string {
	filename := names.NormalizeFileName(displayName)
	if !strings.HasSuffix(filename, extension) {
		filename += extension
	}
	return filename
}

// processJob handles a single download job. Every decision point short-
// circuits before the next cost is paid: the filter before any network
// call, the existence check before the GET.
func (wp *WorkerPool) processJob(job Job, workerID int) Result {
	start := time.Now()
	result := Result{Job: job}

	if !wp.filter.IsEligible(job.URL) {
		result.Outcome = OutcomeSkippedNotEligible
		result.Duration = time.Since(start)
		return result
	}

	filename := TargetFilename(job.DisplayName, wp.filter.Extension())

	if wp.storage.Exists(job.RegionFolder, filename) {
		wp.logger.DebugWithFields("asset already on disk", map[string]interface{}{
			"worker_id": workerID,
			"region":    job.RegionFolder,
			"file":      filename,
		})
		result.Outcome = OutcomeSkippedExisting
		result.Duration = time.Since(start)
		return result
	}

	if !wp.rateLimiter.Allow() {
		wp.rateLimiter.Wait()
	}

	body, err := wp.fetcher.FetchAsset(job.URL)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Error = err
		result.Duration = time.Since(start)

		wp.logger.ErrorWithFields("failed to download asset", map[string]interface{}{
			"worker_id": workerID,
			"url":       job.URL,
			"error":     err.Error(),
		})

		return result
	}
	defer body.Close()

	if err := wp.storage.SaveAsset(body, job.RegionFolder, filename); err != nil {
		result.Outcome = OutcomeFailed
		result.Error = err
		result.Duration = time.Since(start)

		wp.logger.ErrorWithFields("failed to save asset", map[string]interface{}{
			"worker_id": workerID,
			"region":    job.RegionFolder,
			"file":      filename,
			"error":     err.Error(),
		})

		return result
	}

	result.Outcome = OutcomeDownloaded
	result.Duration = time.Since(start)

	wp.logger.DebugWithFields("asset downloaded", map[string]interface{}{
		"worker_id": workerID,
		"region":    job.RegionFolder,
		"file":      filename,
		"duration":  result.Duration,
	})

	return result
}
