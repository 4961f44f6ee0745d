package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

const resumeMIMEType = "application/pdf"

type SubmitHandler struct {
	submissionService services.SubmissionService
	storageService    services.StorageService
	maxFileSize       int64
}

func NewSubmitHandler(
	submissionService services.SubmissionService,
	storageService services.StorageService,
	maxFileSize int64,
) *SubmitHandler {
	return &SubmitHandler{
		submissionService: submissionService,
		storageService:    storageService,
		maxFileSize:       maxFileSize,
	}
}

// HandleSubmit handles POST /api/submit
func (h *SubmitHandler) HandleSubmit(c *fiber.Ctx) error {
	submission := &models.Submission{
		Name:       c.FormValue("name"),
		Email:      c.FormValue("email"),
		Phone:      c.FormValue("phone"),
		Education:  c.FormValue("education"),
		Skills:     c.FormValue("skills"),
		Experience: c.FormValue("experience"),
		Linkedin:   c.FormValue("linkedin"),
	}

	// The resume attachment is optional; when present it must be a PDF
	// within the size limit, checked before anything is persisted.
	file, err := c.FormFile("resume")
	if err == nil && file != nil {
		if file.Header.Get("Content-Type") != resumeMIMEType {
			metrics.UploadRejectionsTotal.Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Only PDF files are allowed!",
			})
		}
		if file.Size > h.maxFileSize {
			metrics.UploadRejectionsTotal.Inc()
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		filename, err := h.storageService.SaveResume(file)
		if err != nil {
			log.Printf("❌ Failed to save resume file: %v\n", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Server error while submitting resume",
			})
		}
		submission.ResumeFile = &filename
	}

	id, err := h.submissionService.Submit(submission)
	if err != nil {
		if errors.Is(err, services.ErrMissingRequiredFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Missing required fields",
			})
		}
		log.Printf("❌ Failed to submit resume: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while submitting resume",
		})
	}

	metrics.SubmissionsTotal.Inc()

	return c.Status(fiber.StatusCreated).JSON(models.SubmitResponse{
		Success: true,
		Message: "Resume submitted successfully!",
		ID:      id,
	})
}
