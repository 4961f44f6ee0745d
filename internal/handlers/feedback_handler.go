package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type FeedbackHandler struct{}

func NewFeedbackHandler() *FeedbackHandler {
	return &FeedbackHandler{}
}

// HandleFeedback handles POST /api/feedback
//
// Feedback is acknowledged and logged only; there is no feedback
// collection yet. TODO: persist feedback once a collection exists.
func (h *FeedbackHandler) HandleFeedback(c *fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request payload",
		})
	}

	if req.ResumeID == "" || req.Rating == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Resume ID and rating are required",
		})
	}

	log.Printf("💬 Feedback received: resume=%s rating=%d comments=%q\n",
		req.ResumeID, req.Rating, req.Comments)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you for your feedback!",
	})
}
