package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// StatusTracker owns the per-submission review status record and its
// timed auto-advancement.
type StatusTracker interface {
	// GetOrCreate returns the status record for a submission,
	// persisting a fresh Received record on first access.
	GetOrCreate(id string) (*models.StatusRecord, error)
	// ScheduleAdvances queues the three lifecycle advances for a newly
	// created submission.
	ScheduleAdvances(id string)
	// Advance moves the record one stage forward. Missing records and
	// terminal records are logged no-ops.
	Advance(id string)
}

type statusTracker struct {
	statusRepo repositories.StatusRepository
	scheduler  Scheduler
	interval   time.Duration
}

func NewStatusTracker(
	statusRepo repositories.StatusRepository,
	scheduler Scheduler,
	interval time.Duration,
) StatusTracker {
	return &statusTracker{
		statusRepo: statusRepo,
		scheduler:  scheduler,
		interval:   interval,
	}
}

// GetOrCreate implements StatusTracker.
func (t *statusTracker) GetOrCreate(id string) (*models.StatusRecord, error) {
	record, err := t.statusRepo.FindByID(id)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to load status for %s: %w", id, err)
	}

	fresh := newStatusRecord(id)
	if err := t.statusRepo.Set(id, fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}

// ScheduleAdvances implements StatusTracker. Each advance is an
// independent fire-and-forget task; failures never reach a client.
func (t *statusTracker) ScheduleAdvances(id string) {
	for i := 1; i <= 3; i++ {
		delay := time.Duration(i) * t.interval
		t.scheduler.Schedule(id, delay, func() {
			t.Advance(id)
		})
	}
}

// Advance implements StatusTracker.
func (t *statusTracker) Advance(id string) {
	record, err := t.statusRepo.FindByID(id)
	if err != nil {
		log.Printf("⚠️  Cannot advance status: submission %s not found\n", id)
		return
	}

	next, ok := record.Status.Next()
	if !ok {
		return
	}

	now := time.Now()
	record.Status = next
	record.LastUpdated = now
	record.History = append(record.History, models.StatusEvent{
		Status:    next,
		Timestamp: now,
	})

	if err := t.statusRepo.Set(id, *record); err != nil {
		log.Printf("❌ Failed to advance status for %s: %v\n", id, err)
		return
	}
	metrics.StatusAdvancesTotal.WithLabelValues(string(next)).Inc()
	log.Printf("📋 Status for %s updated to: %s\n", id, next)
}

// NewStatusRecord builds the initial Received record with a one-entry
// history.
func newStatusRecord(id string) models.StatusRecord {
	now := time.Now()
	return models.StatusRecord{
		SubmissionID: id,
		Status:       models.StatusReceived,
		LastUpdated:  now,
		History: []models.StatusEvent{
			{Status: models.StatusReceived, Timestamp: now},
		},
	}
}
