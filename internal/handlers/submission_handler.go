package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type SubmissionHandler struct {
	submissionRepo repositories.SubmissionRepository
}

func NewSubmissionHandler(submissionRepo repositories.SubmissionRepository) *SubmissionHandler {
	return &SubmissionHandler{submissionRepo: submissionRepo}
}

// HandleList handles GET /api/submissions
func (h *SubmissionHandler) HandleList(c *fiber.Ctx) error {
	submissions, err := h.submissionRepo.FindAll()
	if err != nil {
		log.Printf("❌ Failed to list submissions: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while retrieving submissions",
		})
	}

	summaries := make([]models.SubmissionSummary, 0, len(submissions))
	for i := range submissions {
		summaries = append(summaries, submissions[i].Summary())
	}

	return c.JSON(summaries)
}

// HandleGet handles GET /api/submissions/:id
func (h *SubmissionHandler) HandleGet(c *fiber.Ctx) error {
	submission, err := h.submissionRepo.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Submission not found",
			})
		}
		log.Printf("❌ Failed to load submission: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while retrieving submission",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    submission,
	})
}
