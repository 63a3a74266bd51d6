package stats

import (
	"sync"
	"testing"
)

func TestRunCounters(t *testing.T) {
	run := New()

	run.SetTournamentCount("Africa", 3)
	run.AddDownloaded("Africa")
	run.AddDownloaded("Africa")
	run.AddDownloaded("Asia")
	run.AddSkippedNotEligible()
	run.AddSkippedExisting()
	run.AddError()

	snap := run.Snapshot()

	if snap.Downloaded != 3 {
		t.Errorf("Downloaded = %d, want 3", snap.Downloaded)
	}
	if snap.SkippedNotEligible != 1 {
		t.Errorf("SkippedNotEligible = %d, want 1", snap.SkippedNotEligible)
	}
	if snap.SkippedExisting != 1 {
		t.Errorf("SkippedExisting = %d, want 1", snap.SkippedExisting)
	}
	if snap.Errors != 1 {
		t.Errorf("Errors = %d, want 1", snap.Errors)
	}

	africa := snap.Regions["Africa"]
	if africa.Images != 2 || africa.Tournaments != 3 {
		t.Errorf("Africa = %+v, want {Images:2 Tournaments:3}", africa)
	}
	asia := snap.Regions["Asia"]
	if asia.Images != 1 || asia.Tournaments != 0 {
		t.Errorf("Asia = %+v, want {Images:1 Tournaments:0}", asia)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	run := New()
	run.AddDownloaded("Africa")

	snap := run.Snapshot()
	snap.Regions["Africa"] = RegionStats{Images: 99}
	run.AddDownloaded("Africa")

	if got := run.Snapshot().Regions["Africa"].Images; got != 2 {
		t.Errorf("Africa images = %d, want 2 (snapshot mutation leaked in)", got)
	}
}

func TestRunConcurrentUpdates(t *testing.T) {
	run := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run.AddDownloaded("Africa")
			run.AddSkippedNotEligible()
			run.AddError()
		}()
	}
	wg.Wait()

	snap := run.Snapshot()
	if snap.Downloaded != 50 || snap.SkippedNotEligible != 50 || snap.Errors != 50 {
		t.Errorf("Snapshot = %+v, want all counters at 50", snap)
	}
	if snap.Regions["Africa"].Images != 50 {
		t.Errorf("Africa images = %d, want 50", snap.Regions["Africa"].Images)
	}
}
