package services

import (
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

const maxScore = 100

// ScoreSubmission computes the deterministic completeness score for a
// submission, in [0,100]. Points reward presence and length of the
// form fields; all thresholds are strict.
func ScoreSubmission(sub *models.Submission) int {
	score := 0

	if sub.Name != "" {
		score += 5
	}
	if sub.Email != "" {
		score += 5
	}
	if sub.Phone != "" {
		score += 5
	}

	if sub.Education != "" {
		switch l := len(sub.Education); {
		case l > 200:
			score += 20
		case l > 100:
			score += 15
		case l > 50:
			score += 10
		default:
			score += 5
		}
	}

	if sub.Skills != "" {
		switch n := len(strings.Split(sub.Skills, ",")); {
		case n > 10:
			score += 20
		case n > 5:
			score += 15
		default:
			score += 10
		}
	}

	if sub.Experience != "" {
		switch l := len(sub.Experience); {
		case l > 300:
			score += 25
		case l > 150:
			score += 20
		case l > 50:
			score += 10
		default:
			score += 5
		}
	}

	if sub.Linkedin != "" {
		score += 10
	}

	if sub.ResumeFile != nil && *sub.ResumeFile != "" {
		score += 10
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
