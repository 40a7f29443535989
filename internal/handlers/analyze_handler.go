package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shahsaaqib/AI-Resume-Screener/internal/models"
	"github.com/shahsaaqib/AI-Resume-Screener/internal/repositories"
	"github.com/shahsaaqib/AI-Resume-Screener/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// HandleAnalyze handles POST /analyze/:id. Both the cache-hit and the
// fresh-analysis path answer 200; only the message differs.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	analysis, cached, err := h.analyzer.Analyze(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrResumeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		case errors.Is(err, services.ErrTextTooShort):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Resume text is too short for analysis",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to analyze resume",
				"details": err.Error(),
			})
		}
	}

	message := "Resume analyzed successfully"
	if cached {
		message = "Resume already analyzed"
	}

	return c.Status(fiber.StatusOK).JSON(models.AnalyzeResponse{
		Message:  message,
		ID:       id.String(),
		Analysis: analysis,
	})
}
