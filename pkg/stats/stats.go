// Package stats aggregates the bookkeeping for one crawl run. The
// aggregate is owned by the orchestrator and handed by reference to the
// download workers, so every update is serialized behind a mutex.
package stats

import "sync"

// RegionStats counts what one region contributed to the run.
type RegionStats struct {
	Images      int
	Tournaments int
}

// Run holds the counters for one crawl. Zero value unusable; use New.
// Nothing is persisted across runs: resumability comes from the on-disk
// existence check, not from these counters.
type Run struct {
	mu                 sync.Mutex
	downloaded         int
	skippedNotEligible int
	skippedExisting    int
	errors             int
	regions            map[string]*RegionStats
}

// New creates an empty run aggregate.
func New() *Run {
	return &Run{
		regions: make(map[string]*RegionStats),
	}
}

// Snapshot is a copy of the counters, safe to read without locking.
type Snapshot struct {
	Downloaded         int
	SkippedNotEligible int
	SkippedExisting    int
	Errors             int
	Regions            map[string]RegionStats
}

func (r *Run) region(name string) *RegionStats {
	rs, ok := r.regions[name]
	if !ok {
		rs = &RegionStats{}
		r.regions[name] = rs
	}
	return rs
}

// AddDownloaded records one successful download for a region.
func (r *Run) AddDownloaded(regionName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.downloaded++
	r.region(regionName).Images++
}

// AddSkippedNotEligible records one asset skipped by the type filter.
func (r *Run) AddSkippedNotEligible() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skippedNotEligible++
}

// AddSkippedExisting records one asset skipped because its file is
// already on disk. Kept separate from the filter skips: the printed
// summary only reports the latter, so re-runs stay byte-identical to
// the first run's output, but the existing count remains observable.
func (r *Run) AddSkippedExisting() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skippedExisting++
}

// AddError records one failed unit of work (page fetch or download).
func (r *Run) AddError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
}

// SetTournamentCount records the number of tournaments harvested for a
// region's root page.
func (r *Run) SetTournamentCount(regionName string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.region(regionName).Tournaments = count
}

// Snapshot returns a copy of the current counters.
func (r *Run) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	regions := make(map[string]RegionStats, len(r.regions))
	for name, rs := range r.regions {
		regions[name] = *rs
	}

	return Snapshot{
		Downloaded:         r.downloaded,
		SkippedNotEligible: r.skippedNotEligible,
		SkippedExisting:    r.skippedExisting,
		Errors:             r.errors,
		Regions:            regions,
	}
}
