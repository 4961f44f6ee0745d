package repositories

import (
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/docstore"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type SubmissionRepository interface {
	Create(submission *models.Submission) error
	FindByID(id string) (*models.Submission, error)
	FindAll() ([]models.Submission, error)
}

type submissionRepository struct {
	store *docstore.Store
}

func NewSubmissionRepository(store *docstore.Store) SubmissionRepository {
	return &submissionRepository{store: store}
}

// Create implements SubmissionRepository.
func (r *submissionRepository) Create(submission *models.Submission) error {
	err := r.store.Update(func(d *docstore.Data) error {
		d.Submissions = append(d.Submissions, *submission)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// FindByID implements SubmissionRepository.
func (r *submissionRepository) FindByID(id string) (*models.Submission, error) {
	var found *models.Submission
	r.store.View(func(d *docstore.Data) {
		for i := range d.Submissions {
			if d.Submissions[i].ID == id {
				sub := d.Submissions[i]
				found = &sub
				return
			}
		}
	})
	if found == nil {
		return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	return found, nil
}

// FindAll implements SubmissionRepository.
func (r *submissionRepository) FindAll() ([]models.Submission, error) {
	var subs []models.Submission
	r.store.View(func(d *docstore.Data) {
		subs = make([]models.Submission, len(d.Submissions))
		copy(subs, d.Submissions)
	})
	return subs, nil
}
