package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shahsaaqib/AI-Resume-Screener/internal/models"
	"github.com/shahsaaqib/AI-Resume-Screener/internal/repositories"
	"github.com/shahsaaqib/AI-Resume-Screener/internal/services"
)

const detailTextLimit = 1500

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
}

func NewResumeHandler(resumeRepo repositories.ResumeRepository) *ResumeHandler {
	return &ResumeHandler{resumeRepo: resumeRepo}
}

// HandleList handles GET /resumes: newest first, stored analysis passed
// through as-is. The list is a lightweight summary view, so no read-time
// normalization happens here.
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	resumes, err := h.resumeRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch resumes",
			"details": err.Error(),
		})
	}

	summaries := make([]models.ResumeSummary, 0, len(resumes))
	for _, r := range resumes {
		var analysis any
		if len(r.Analysis) > 0 {
			if err := json.Unmarshal(r.Analysis, &analysis); err != nil {
				analysis = nil
			}
		}
		summaries = append(summaries, models.ResumeSummary{
			ID:        r.ID.String(),
			Filename:  r.Filename,
			CreatedAt: r.CreatedAt,
			Status:    string(r.Status),
			Analysis:  analysis,
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.ListResumesResponse{
		Count:   len(summaries),
		Resumes: summaries,
	})
}

// HandleDetail handles GET /resume/:id. The stored analysis goes through the
// read-time normalizer so older records holding a raw string or a raw_output
// wrapper still come back structured when possible.
func (h *ResumeHandler) HandleDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch resume details",
			"details": err.Error(),
		})
	}

	text := resume.Text
	if len([]rune(text)) > detailTextLimit {
		text = truncateRunes(text, detailTextLimit) + "..."
	}

	return c.Status(fiber.StatusOK).JSON(models.ResumeDetailResponse{
		ID:        resume.ID.String(),
		Filename:  resume.Filename,
		CreatedAt: resume.CreatedAt,
		Status:    string(resume.Status),
		Analysis:  services.NormalizeStoredAnalysis(resume.Analysis),
		Text:      text,
	})
}
