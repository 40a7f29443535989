package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/shahsaaqib/AI-Resume-Screener/internal/models"
	"github.com/shahsaaqib/AI-Resume-Screener/internal/repositories"
	"github.com/shahsaaqib/AI-Resume-Screener/internal/services"
)

const textPreviewLen = 300

type UploadHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewUploadHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload: one multipart PDF in, one pending
// resume record out. The uploaded bytes only ever live in a temp file for
// the duration of text extraction.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file := firstFormFile(c)
	if file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if !isPDF(file) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF files are accepted",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	tempPath, cleanup, err := h.storageService.SpoolTemp(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to process PDF",
			"details": err.Error(),
		})
	}
	defer cleanup()

	text, err := h.pdfParser.ExtractText(tempPath)
	if err != nil {
		if errors.Is(err, services.ErrExtractionEmpty) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Could not extract text from the uploaded PDF",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to process PDF",
			"details": err.Error(),
		})
	}

	resume := &models.Resume{
		ID:        uuid.New(),
		Filename:  file.Filename,
		Text:      text,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.resumeRepo.Create(resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to save resume record",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Message:     "Resume uploaded and processed successfully",
		ID:          resume.ID.String(),
		Filename:    resume.Filename,
		TextPreview: truncateRunes(text, textPreviewLen) + "...",
	})
}

// firstFormFile returns the first file of the multipart form regardless of
// its field name.
func firstFormFile(c *fiber.Ctx) *multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	for _, files := range form.File {
		if len(files) > 0 {
			return files[0]
		}
	}
	return nil
}

func isPDF(file *multipart.FileHeader) bool {
	if strings.ToLower(filepath.Ext(file.Filename)) == ".pdf" {
		return true
	}
	return file.Header.Get("Content-Type") == "application/pdf"
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
