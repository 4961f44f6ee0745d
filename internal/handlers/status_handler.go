package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type StatusHandler struct {
	submissionRepo repositories.SubmissionRepository
	tracker        services.StatusTracker
}

func NewStatusHandler(
	submissionRepo repositories.SubmissionRepository,
	tracker services.StatusTracker,
) *StatusHandler {
	return &StatusHandler{
		submissionRepo: submissionRepo,
		tracker:        tracker,
	}
}

// HandleGetStatus handles GET /api/status/:id
func (h *StatusHandler) HandleGetStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	// The status record only exists for known submissions.
	if _, err := h.submissionRepo.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Submission not found with this ID",
			})
		}
		log.Printf("❌ Failed to load submission: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while retrieving status",
		})
	}

	record, err := h.tracker.GetOrCreate(id)
	if err != nil {
		log.Printf("❌ Failed to load status: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while retrieving status",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}
