// File: /jobs/saveset_reconcile_job.go
package jobs

import (
	"fmt"
	"time"

	"wanderly-api/services"
)

// SaveSetReconcileJob periodically removes save records whose catalog trip
// has been deleted. The normal path cascades on delete; this sweep covers
// deletes the cascade could not reach.
type SaveSetReconcileJob struct {
	tripService *services.TripService
	ticker      *time.Ticker
	done        chan bool
}

func NewSaveSetReconcileJob(tripService *services.TripService, interval time.Duration) *SaveSetReconcileJob {
	return &SaveSetReconcileJob{
		tripService: tripService,
		ticker:      time.NewTicker(interval),
		done:        make(chan bool),
	}
}

// Start begins the reconciliation job
func (j *SaveSetReconcileJob) Start() {
	fmt.Println("Save-set reconciliation job started")

	go func() {
		// Run immediately on start
		j.reconcile()

		for {
			select {
			case <-j.ticker.C:
				j.reconcile()
			case <-j.done:
				fmt.Println("Save-set reconciliation job stopped")
				return
			}
		}
	}()
}

// Stop stops the reconciliation job
func (j *SaveSetReconcileJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *SaveSetReconcileJob) reconcile() {
	removed, err := j.tripService.RemoveOrphanedSaves()
	if err != nil {
		fmt.Printf("Error during save-set reconciliation: %v\n", err)
		return
	}

	if removed > 0 {
		fmt.Printf("Save-set reconciliation removed records for %d deleted trips\n", removed)
	}
}
