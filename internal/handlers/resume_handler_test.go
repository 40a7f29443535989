package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/shahsaaqib/AI-Resume-Screener/internal/models"
)

func newResumeApp(repo *fakeResumeRepo) *fiber.App {
	app := fiber.New()
	handler := NewResumeHandler(repo)
	app.Get("/resumes", handler.HandleList)
	app.Get("/resume/:id", handler.HandleDetail)
	return app
}

func TestListResumes(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// Newest first, as the repository orders them.
	repo := &fakeResumeRepo{resumes: []models.Resume{
		{
			ID:        uuid.New(),
			Filename:  "third.pdf",
			Status:    models.StatusAnalyzed,
			Analysis:  datatypes.JSON(`{"overall_score":82}`),
			CreatedAt: base.Add(2 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Filename:  "second.pdf",
			Status:    models.StatusFailed,
			CreatedAt: base.Add(time.Hour),
		},
		{
			ID:        uuid.New(),
			Filename:  "first.pdf",
			Status:    models.StatusPending,
			CreatedAt: base,
		},
	}}

	app := newResumeApp(repo)
	resp, err := app.Test(httptest.NewRequest("GET", "/resumes", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body models.ListResumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.Count != 3 {
		t.Errorf("Expected count 3, got %d", body.Count)
	}
	wantOrder := []string{"third.pdf", "second.pdf", "first.pdf"}
	for i, want := range wantOrder {
		if body.Resumes[i].Filename != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, body.Resumes[i].Filename)
		}
	}

	// Stored analysis is passed through untouched in the list view.
	analyzed := body.Resumes[0]
	obj, ok := analyzed.Analysis.(map[string]any)
	if !ok || obj["overall_score"] != float64(82) {
		t.Errorf("Expected stored analysis passthrough, got %v", analyzed.Analysis)
	}
	if body.Resumes[2].Analysis != nil {
		t.Errorf("Pending resume should expose null analysis, got %v", body.Resumes[2].Analysis)
	}
}

func TestDetailNotFound(t *testing.T) {
	app := newResumeApp(&fakeResumeRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/resume/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestDetailInvalidID(t *testing.T) {
	app := newResumeApp(&fakeResumeRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/resume/nope", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestDetailTruncatesLongText(t *testing.T) {
	id := uuid.New()
	repo := &fakeResumeRepo{resumes: []models.Resume{{
		ID:       id,
		Filename: "long.pdf",
		Text:     strings.Repeat("a", 2000),
		Status:   models.StatusPending,
	}}}

	app := newResumeApp(repo)
	resp, err := app.Test(httptest.NewRequest("GET", "/resume/"+id.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body models.ResumeDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasSuffix(body.Text, "...") {
		t.Error("Long text should carry an ellipsis suffix")
	}
	if got := len(body.Text); got != 1503 {
		t.Errorf("Expected 1500 chars plus ellipsis, got %d", got)
	}
}

func TestDetailShortTextUntouched(t *testing.T) {
	id := uuid.New()
	repo := &fakeResumeRepo{resumes: []models.Resume{{
		ID:     id,
		Text:   "short resume text",
		Status: models.StatusPending,
	}}}

	app := newResumeApp(repo)
	resp, err := app.Test(httptest.NewRequest("GET", "/resume/"+id.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var body models.ResumeDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Text != "short resume text" {
		t.Errorf("Short text should pass through unchanged, got %q", body.Text)
	}
}

func TestDetailNormalizesStoredAnalysis(t *testing.T) {
	id := uuid.New()
	repo := &fakeResumeRepo{resumes: []models.Resume{{
		ID:       id,
		Text:     "text",
		Status:   models.StatusAnalyzed,
		Analysis: datatypes.JSON(`{"raw_output":"Here is the result: {\"name\":\"Jane\",\"overall_score\":82}"}`),
	}}}

	app := newResumeApp(repo)
	resp, err := app.Test(httptest.NewRequest("GET", "/resume/"+id.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var body models.ResumeDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	obj, ok := body.Analysis.(map[string]any)
	if !ok {
		t.Fatalf("Expected structured analysis, got %T", body.Analysis)
	}
	if obj["name"] != "Jane" || obj["overall_score"] != float64(82) {
		t.Errorf("Expected re-extracted analysis, got %v", obj)
	}
}
