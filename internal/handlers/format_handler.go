package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/repositories"
)

var validFormats = map[string]bool{
	"pdf":  true,
	"docx": true,
	"txt":  true,
	"json": true,
	"html": true,
}

type FormatHandler struct {
	submissionRepo repositories.SubmissionRepository
}

func NewFormatHandler(submissionRepo repositories.SubmissionRepository) *FormatHandler {
	return &FormatHandler{submissionRepo: submissionRepo}
}

// HandleFormat handles GET /api/format/:id/:format
//
// Export is simulated: the endpoint reports success without producing
// a file.
func (h *FormatHandler) HandleFormat(c *fiber.Ctx) error {
	id := c.Params("id")
	format := c.Params("format")

	if _, err := h.submissionRepo.FindByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Submission not found",
			})
		}
		log.Printf("❌ Failed to load submission: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while generating resume format",
		})
	}

	if !validFormats[format] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid format requested",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  fmt.Sprintf("Resume successfully generated in %s format. Download started.", strings.ToUpper(format)),
		"format":   format,
		"resumeId": id,
	})
}
