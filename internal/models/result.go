package models

import "time"

type UploadResponse struct {
	Message     string `json:"message"`
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	TextPreview string `json:"textPreview"`
}

type AnalyzeResponse struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	Analysis any    `json:"analysis"`
}

// ResumeSummary is the list-view shape: no text, analysis passed through
// exactly as stored.
type ResumeSummary struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
	Analysis  any       `json:"analysis"`
}

type ListResumesResponse struct {
	Count   int             `json:"count"`
	Resumes []ResumeSummary `json:"resumes"`
}

type ResumeDetailResponse struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
	Analysis  any       `json:"analysis"`
	Text      string    `json:"text"`
}
