package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
)

// StorageService spools uploads to a short-lived temp file so the PDF parser
// can read them from disk. Nothing is retained: the cleanup func removes the
// file and callers must run it on every exit path.
type StorageService interface {
	EnsureUploadDir() error
	SpoolTemp(file *multipart.FileHeader) (string, func(), error)
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

func (s *storageService) SpoolTemp(file *multipart.FileHeader) (string, func(), error) {
	src, err := file.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.uploadPath, "resume_*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	cleanup := func() { os.Remove(dst.Name()) }

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to save file: %w", err)
	}

	if err := dst.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to flush temp file: %w", err)
	}

	return dst.Name(), cleanup, nil
}
