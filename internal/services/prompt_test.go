package services

import (
	"strings"
	"testing"
)

func TestBuildResumeAnalysisPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	resumeText := "Jane Doe, Software Engineer with ten years of Go experience."

	prompt := pb.BuildResumeAnalysisPrompt(resumeText)

	if !strings.Contains(prompt, resumeText) {
		t.Error("Prompt does not embed the resume text")
	}

	required := []string{
		"name",
		"top_skills",
		"years_of_experience",
		"education_summary",
		"professional_summary",
		"strengths",
		"weaknesses",
		"overall_score",
	}
	for _, field := range required {
		if !strings.Contains(prompt, field) {
			t.Errorf("Prompt is missing required field %q", field)
		}
	}

	// Same input, same prompt: the instruction must be deterministic.
	if prompt != pb.BuildResumeAnalysisPrompt(resumeText) {
		t.Error("Prompt is not deterministic")
	}
}
