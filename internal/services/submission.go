package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// ErrMissingRequiredFields is returned by Submit when name, email or
// phone is absent. Handlers map it to a 400 response.
var ErrMissingRequiredFields = errors.New("name, email and phone are required")

// SubmissionService orchestrates submission intake and on-demand
// analysis.
type SubmissionService interface {
	// Submit validates and persists a new submission together with its
	// initial status record and ranking entry, schedules the status
	// advances, and returns the generated id.
	Submit(submission *models.Submission) (string, error)
	// Analyze builds the full analysis report for a submission,
	// backfilling its ranking entry when absent.
	Analyze(id string) (*models.AnalysisReport, error)
}

type submissionService struct {
	submissionRepo repositories.SubmissionRepository
	rankingRepo    repositories.RankingRepository
	tracker        StatusTracker
}

func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	rankingRepo repositories.RankingRepository,
	tracker StatusTracker,
) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		rankingRepo:    rankingRepo,
		tracker:        tracker,
	}
}

// Submit implements SubmissionService.
func (s *submissionService) Submit(submission *models.Submission) (string, error) {
	if submission.Name == "" || submission.Email == "" || submission.Phone == "" {
		return "", ErrMissingRequiredFields
	}

	submission.ID = uuid.New().String()
	submission.Date = time.Now()

	if err := s.submissionRepo.Create(submission); err != nil {
		return "", err
	}

	if _, err := s.tracker.GetOrCreate(submission.ID); err != nil {
		return "", err
	}

	// The ranking entry carries the engine score from the start, so the
	// analyze endpoint never has to race a placeholder.
	entry := models.RankingEntry{
		ID:    submission.ID,
		Name:  submission.Name,
		Score: ScoreSubmission(submission),
		Date:  submission.Date,
	}
	if err := s.rankingRepo.Create(&entry); err != nil {
		return "", err
	}

	s.tracker.ScheduleAdvances(submission.ID)

	return submission.ID, nil
}

// Analyze implements SubmissionService.
func (s *submissionService) Analyze(id string) (*models.AnalysisReport, error) {
	submission, err := s.submissionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	entry, err := s.rankingRepo.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		entry = &models.RankingEntry{
			ID:    id,
			Name:  submission.Name,
			Score: ScoreSubmission(submission),
			Date:  time.Now(),
		}
		if err := s.rankingRepo.Create(entry); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load ranking entry: %w", err)
	}

	all, err := s.rankingRepo.FindAllByScoreDesc()
	if err != nil {
		return nil, err
	}

	position := -1
	for i := range all {
		if all[i].ID == id {
			position = i
			break
		}
	}

	percentile := 50
	if position != -1 && len(all) > 0 {
		percentile = int(math.Round((1 - float64(position)/float64(len(all))) * 100))
	}

	analysis := AnalyzeSubmission(submission, entry.Score)

	report := &models.AnalysisReport{
		ID:           id,
		Score:        entry.Score,
		Percentile:   percentile,
		Position:     position + 1,
		TotalResumes: len(all),
		Strengths:    analysis.Strengths,
		Improvements: analysis.Improvements,
		Suggestions:  analysis.Suggestions,
		AnalyzedAt:   time.Now(),
	}
	if position == -1 {
		report.Position = 1
	}
	return report, nil
}
