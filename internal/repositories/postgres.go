package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// Postgres-backed implementations of the repository interfaces,
// selected with STORE_DRIVER=postgres. The flat-file docstore driver
// remains the default.

type pgSubmissionRepository struct {
	db *gorm.DB
}

func NewPgSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &pgSubmissionRepository{db: db}
}

// Create implements SubmissionRepository.
func (r *pgSubmissionRepository) Create(submission *models.Submission) error {
	if err := r.db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// FindByID implements SubmissionRepository.
func (r *pgSubmissionRepository) FindByID(id string) (*models.Submission, error) {
	var sub models.Submission
	if err := r.db.Where("id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("submission %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find submission: %w", err)
	}
	return &sub, nil
}

// FindAll implements SubmissionRepository.
func (r *pgSubmissionRepository) FindAll() ([]models.Submission, error) {
	var subs []models.Submission
	if err := r.db.Order("date ASC").Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

type pgStatusRepository struct {
	db *gorm.DB
}

func NewPgStatusRepository(db *gorm.DB) StatusRepository {
	return &pgStatusRepository{db: db}
}

// Set implements StatusRepository.
func (r *pgStatusRepository) Set(id string, record models.StatusRecord) error {
	record.SubmissionID = id
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "submission_id"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to set status for %s: %w", id, err)
	}
	return nil
}

// FindByID implements StatusRepository.
func (r *pgStatusRepository) FindByID(id string) (*models.StatusRecord, error) {
	var rec models.StatusRecord
	if err := r.db.Where("submission_id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("status for %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find status: %w", err)
	}
	return &rec, nil
}

type pgRankingRepository struct {
	db *gorm.DB
}

func NewPgRankingRepository(db *gorm.DB) RankingRepository {
	return &pgRankingRepository{db: db}
}

// Create implements RankingRepository.
func (r *pgRankingRepository) Create(entry *models.RankingEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ranking entry: %w", err)
	}
	return nil
}

// FindByID implements RankingRepository.
func (r *pgRankingRepository) FindByID(id string) (*models.RankingEntry, error) {
	var entry models.RankingEntry
	if err := r.db.Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ranking entry %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find ranking entry: %w", err)
	}
	return &entry, nil
}

// FindAllByScoreDesc implements RankingRepository.
func (r *pgRankingRepository) FindAllByScoreDesc() ([]models.RankingEntry, error) {
	var entries []models.RankingEntry
	if err := r.db.Order("score DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list rankings: %w", err)
	}
	return entries, nil
}
