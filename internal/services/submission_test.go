package services

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/docstore"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type submissionFixture struct {
	service        SubmissionService
	submissionRepo repositories.SubmissionRepository
	rankingRepo    repositories.RankingRepository
	scheduler      *fakeScheduler
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()

	store, err := docstore.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	submissionRepo := repositories.NewSubmissionRepository(store)
	statusRepo := repositories.NewStatusRepository(store)
	rankingRepo := repositories.NewRankingRepository(store)
	scheduler := newFakeScheduler()
	tracker := NewStatusTracker(statusRepo, scheduler, 30*time.Second)

	return &submissionFixture{
		service:        NewSubmissionService(submissionRepo, rankingRepo, tracker),
		submissionRepo: submissionRepo,
		rankingRepo:    rankingRepo,
		scheduler:      scheduler,
	}
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	f := newSubmissionFixture(t)

	cases := []*models.Submission{
		{Email: "a@x.com", Phone: "1"},
		{Name: "A", Phone: "1"},
		{Name: "A", Email: "a@x.com"},
		{},
	}
	for _, sub := range cases {
		_, err := f.service.Submit(sub)
		assert.ErrorIs(t, err, ErrMissingRequiredFields)
	}
}

func TestSubmitPersistsAllRecords(t *testing.T) {
	f := newSubmissionFixture(t)

	sub := minimalSubmission()
	sub.Skills = "python, sql, react"

	id, err := f.service.Submit(sub)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := f.submissionRepo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Name)
	assert.False(t, stored.Date.IsZero())

	entry, err := f.rankingRepo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, ScoreSubmission(stored), entry.Score)
	assert.Equal(t, stored.Name, entry.Name)

	// Three status advances queued.
	assert.Len(t, f.scheduler.tasks[id], 3)
}

func TestAnalyzeUnknownSubmission(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.service.Analyze("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAnalyzeDoesNotDuplicateRankingEntries(t *testing.T) {
	f := newSubmissionFixture(t)

	id, err := f.service.Submit(minimalSubmission())
	require.NoError(t, err)

	_, err = f.service.Analyze(id)
	require.NoError(t, err)
	_, err = f.service.Analyze(id)
	require.NoError(t, err)

	all, err := f.rankingRepo.FindAllByScoreDesc()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAnalyzeBackfillsMissingRankingEntry(t *testing.T) {
	f := newSubmissionFixture(t)

	// A submission written without a ranking entry, as an older store
	// could contain.
	sub := minimalSubmission()
	sub.ID = "legacy-1"
	sub.Date = time.Now()
	require.NoError(t, f.submissionRepo.Create(sub))

	report, err := f.service.Analyze("legacy-1")
	require.NoError(t, err)
	assert.Equal(t, ScoreSubmission(sub), report.Score)

	entry, err := f.rankingRepo.FindByID("legacy-1")
	require.NoError(t, err)
	assert.Equal(t, report.Score, entry.Score)
}

func TestAnalyzePercentilesAndPositions(t *testing.T) {
	f := newSubmissionFixture(t)

	low := minimalSubmission()
	lowID, err := f.service.Submit(low)
	require.NoError(t, err)

	mid := minimalSubmission()
	mid.Education = strings.Repeat("e", 120)
	midID, err := f.service.Submit(mid)
	require.NoError(t, err)

	high := minimalSubmission()
	high.Education = strings.Repeat("e", 220)
	high.Experience = strings.Repeat("x", 320)
	high.Linkedin = "linkedin.com/in/a"
	highID, err := f.service.Submit(high)
	require.NoError(t, err)

	report, err := f.service.Analyze(highID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Position)
	assert.Equal(t, 100, report.Percentile)
	assert.Equal(t, 3, report.TotalResumes)

	report, err = f.service.Analyze(midID)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Position)
	assert.Equal(t, 67, report.Percentile)

	report, err = f.service.Analyze(lowID)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Position)
	assert.Equal(t, 33, report.Percentile)
}

func TestAnalyzeReportFeedbackLists(t *testing.T) {
	f := newSubmissionFixture(t)

	id, err := f.service.Submit(minimalSubmission())
	require.NoError(t, err)

	report, err := f.service.Analyze(id)
	require.NoError(t, err)

	assert.Empty(t, report.Strengths)
	assert.Contains(t, report.Suggestions, "Add your LinkedIn profile to enhance your online presence")
	assert.False(t, report.AnalyzedAt.IsZero())
}
