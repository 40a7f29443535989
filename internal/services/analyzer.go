package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/shahsaaqib/AI-Resume-Screener/internal/models"
	"github.com/shahsaaqib/AI-Resume-Screener/internal/repositories"
)

// ErrTextTooShort means the extracted text is below the analyzable minimum.
var ErrTextTooShort = errors.New("resume text is too short for analysis")

const (
	minAnalyzableTextLen = 100
	analysisTemperature  = 0.3
)

type AnalyzerService interface {
	// Analyze runs the full pipeline for one resume and returns the analysis
	// plus whether it was served from cache.
	Analyze(ctx context.Context, id uuid.UUID) (any, bool, error)
}

type analyzerService struct {
	resumeRepo    repositories.ResumeRepository
	chatService   ChatService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(
	resumeRepo repositories.ResumeRepository,
	chatService ChatService,
) AnalyzerService {
	return &analyzerService{
		resumeRepo:    resumeRepo,
		chatService:   chatService,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze drives the status state machine:
//
//	pending ──start──> processing ──succeed──> analyzed
//	                   processing ──fault────> failed
//
// An analyzed resume short-circuits to its cached analysis without touching
// the LLM. A failed resume is re-entered exactly like a pending one.
func (a *analyzerService) Analyze(ctx context.Context, id uuid.UUID) (any, bool, error) {
	resume, err := a.resumeRepo.FindByID(id)
	if err != nil {
		return nil, false, err
	}

	if resume.Status == models.StatusAnalyzed && len(resume.Analysis) > 0 {
		var cached any
		if err := json.Unmarshal(resume.Analysis, &cached); err != nil {
			return nil, false, fmt.Errorf("failed to decode stored analysis: %w", err)
		}
		return cached, true, nil
	}

	if len(resume.Text) < minAnalyzableTextLen {
		return nil, false, ErrTextTooShort
	}

	// No compensating write here: until processing is entered, nothing has
	// mutated, and a refused transition means another call owns the record.
	if err := a.resumeRepo.UpdateStatus(id, models.StatusProcessing); err != nil {
		return nil, false, fmt.Errorf("failed to start analysis: %w", err)
	}

	log.Printf("🤖 Analyzing resume %s with LLM...\n", id)

	analysis, err := a.run(ctx, resume)
	if err != nil {
		a.markFailed(id)
		return nil, false, fmt.Errorf("failed to analyze resume: %w", err)
	}

	log.Printf("✅ Resume %s analyzed successfully\n", id)
	return analysis, false, nil
}

func (a *analyzerService) run(ctx context.Context, resume *models.Resume) (any, error) {
	prompt := a.promptBuilder.BuildResumeAnalysisPrompt(resume.Text)

	reply, err := a.chatService.Complete(ctx, AnalystSystemPrompt, prompt, analysisTemperature)
	if err != nil {
		return nil, err
	}

	// Presence of an analysis, not its validity, drives the analyzed status:
	// even unparseable prose is stored (as a raw_output wrapper).
	analysis := NormalizeLLMOutput(reply)

	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	if err := a.resumeRepo.SaveAnalysis(resume.ID, payload); err != nil {
		return nil, err
	}

	return analysis, nil
}

// markFailed is the compensating write on the failure path. Its own failure
// is only logged so the caller still sees the original error.
func (a *analyzerService) markFailed(id uuid.UUID) {
	if err := a.resumeRepo.UpdateStatus(id, models.StatusFailed); err != nil {
		log.Printf("⚠️  Failed to mark resume %s as failed: %v\n", id, err)
	}
}
