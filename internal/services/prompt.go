package services

import "fmt"

// AnalystSystemPrompt frames the model for every analysis call.
const AnalystSystemPrompt = "You are a precise and structured HR resume analyst."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt embeds the full resume text and names every field
// the model must return.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert HR recruiter. Analyze the following resume text and provide a structured JSON response.
Include:
- name
- top_skills (array)
- years_of_experience
- education_summary
- professional_summary
- strengths
- weaknesses
- overall_score (0-100)

Resume Text:
%s
`, resumeText)
}
