package services

import (
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// Caps applied to the feedback lists after every rule has run, so
// earlier rules win when a list overflows.
const (
	maxStrengths    = 4
	maxImprovements = 3
	maxSuggestions  = 4
)

var technicalKeywords = []string{
	"programming", "javascript", "python", "java", "c++", "sql",
	"html", "css", "react", "node", "database", "aws", "cloud",
}

// AnalyzeSubmission runs the rule engine over a submission and its
// score and returns categorized feedback. Rules are independent; a
// submission can collect a strength and an improvement from the same
// field.
func AnalyzeSubmission(sub *models.Submission, score int) models.Analysis {
	strengths := []string{}
	improvements := []string{}
	suggestions := []string{}

	if sub.Education != "" {
		if len(sub.Education) > 100 {
			strengths = append(strengths, "Detailed education background")
		} else {
			improvements = append(improvements, "Consider providing more details about your education")
			suggestions = append(suggestions, "Include your degree, major, university name, and graduation date")
		}
	}

	if sub.Skills != "" {
		skills := strings.Split(sub.Skills, ",")
		for i := range skills {
			skills[i] = strings.TrimSpace(skills[i])
		}

		if len(skills) > 5 {
			strengths = append(strengths, "Good range of skills listed")
		} else {
			improvements = append(improvements, "Consider listing more skills")
			suggestions = append(suggestions, "Add both technical and soft skills relevant to your field")
		}

		if countTechnicalSkills(skills) > 2 {
			strengths = append(strengths, "Good technical skill representation")
		} else {
			suggestions = append(suggestions, "Include more technical skills if relevant to your field")
		}
	}

	if sub.Experience != "" {
		if len(sub.Experience) > 200 {
			strengths = append(strengths, "Detailed work experience section")
		} else {
			improvements = append(improvements, "Your work experience section could be more detailed")
			suggestions = append(suggestions, "Include specific achievements and responsibilities in your work experience")
		}

		if strings.ContainsAny(sub.Experience, "0123456789") {
			strengths = append(strengths, "Includes quantifiable achievements")
		} else {
			improvements = append(improvements, "Add quantifiable achievements to your experience")
			suggestions = append(suggestions, `Use numbers to showcase your impact (e.g., "Increased sales by 20%")`)
		}
	}

	if sub.Linkedin != "" {
		strengths = append(strengths, "Includes LinkedIn profile")
	} else {
		suggestions = append(suggestions, "Add your LinkedIn profile to enhance your online presence")
	}

	if score < 70 {
		improvements = append(improvements, "Overall resume completeness needs improvement")
		suggestions = append(suggestions, "Consider using a professional resume template")
	} else if score > 90 {
		strengths = append(strengths, "Excellent overall resume quality")
	}

	return models.Analysis{
		Strengths:    truncate(strengths, maxStrengths),
		Improvements: truncate(improvements, maxImprovements),
		Suggestions:  truncate(suggestions, maxSuggestions),
	}
}

func countTechnicalSkills(skills []string) int {
	count := 0
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, keyword := range technicalKeywords {
			if strings.Contains(lower, keyword) {
				count++
				break
			}
		}
	}
	return count
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
