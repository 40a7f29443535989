package handlers

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/shahsaaqib/AI-Resume-Screener/internal/models"
	"github.com/shahsaaqib/AI-Resume-Screener/internal/repositories"
)

type fakeResumeRepo struct {
	resumes   []models.Resume
	created   []*models.Resume
	createErr error
	listErr   error
}

func (f *fakeResumeRepo) Create(r *models.Resume) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, r)
	return nil
}

func (f *fakeResumeRepo) FindByID(id uuid.UUID) (*models.Resume, error) {
	for i := range f.resumes {
		if f.resumes[i].ID == id {
			copied := f.resumes[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrResumeNotFound
}

// FindAll returns resumes in the order seeded, mirroring the repository's
// newest-first contract.
func (f *fakeResumeRepo) FindAll() ([]models.Resume, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.resumes, nil
}

func (f *fakeResumeRepo) UpdateStatus(id uuid.UUID, status models.ResumeStatus) error {
	return nil
}

func (f *fakeResumeRepo) SaveAnalysis(id uuid.UUID, analysis datatypes.JSON) error {
	return nil
}

type fakeStorageService struct {
	spoolErr      error
	cleanupCalled bool
}

func (f *fakeStorageService) EnsureUploadDir() error { return nil }

func (f *fakeStorageService) SpoolTemp(file *multipart.FileHeader) (string, func(), error) {
	if f.spoolErr != nil {
		return "", nil, f.spoolErr
	}
	return "/tmp/fake-resume.pdf", func() { f.cleanupCalled = true }, nil
}

type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(filepath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeAnalyzer struct {
	analysis any
	cached   bool
	err      error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, id uuid.UUID) (any, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return f.analysis, f.cached, nil
}
