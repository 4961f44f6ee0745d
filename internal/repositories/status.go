package repositories

import (
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/docstore"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type StatusRepository interface {
	// Set inserts or replaces the status record for a submission.
	Set(id string, record models.StatusRecord) error
	FindByID(id string) (*models.StatusRecord, error)
}

type statusRepository struct {
	store *docstore.Store
}

func NewStatusRepository(store *docstore.Store) StatusRepository {
	return &statusRepository{store: store}
}

// Set implements StatusRepository.
func (r *statusRepository) Set(id string, record models.StatusRecord) error {
	record.SubmissionID = id
	err := r.store.Update(func(d *docstore.Data) error {
		d.Statuses[id] = record
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set status for %s: %w", id, err)
	}
	return nil
}

// FindByID implements StatusRepository.
func (r *statusRepository) FindByID(id string) (*models.StatusRecord, error) {
	var found *models.StatusRecord
	r.store.View(func(d *docstore.Data) {
		if rec, ok := d.Statuses[id]; ok {
			found = &rec
		}
	})
	if found == nil {
		return nil, fmt.Errorf("status for %s: %w", id, ErrNotFound)
	}
	return found, nil
}
