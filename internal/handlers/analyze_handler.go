package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	submissionService services.SubmissionService
}

func NewAnalyzeHandler(submissionService services.SubmissionService) *AnalyzeHandler {
	return &AnalyzeHandler{submissionService: submissionService}
}

// HandleAnalyze handles GET /api/analyze/:id
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	report, err := h.submissionService.Analyze(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Submission not found",
			})
		}
		log.Printf("❌ Failed to analyze submission: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while analyzing resume",
		})
	}

	metrics.AnalysesTotal.Inc()

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}
