package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type RankingHandler struct {
	rankingRepo repositories.RankingRepository
}

func NewRankingHandler(rankingRepo repositories.RankingRepository) *RankingHandler {
	return &RankingHandler{rankingRepo: rankingRepo}
}

// HandleGetRankings handles GET /api/rankings
func (h *RankingHandler) HandleGetRankings(c *fiber.Ctx) error {
	rankings, err := h.rankingRepo.FindAllByScoreDesc()
	if err != nil {
		log.Printf("❌ Failed to list rankings: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while retrieving rankings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rankings,
	})
}
