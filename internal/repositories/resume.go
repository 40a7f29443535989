package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shahsaaqib/AI-Resume-Screener/internal/models"
)

var (
	ErrResumeNotFound    = errors.New("resume not found")
	ErrInvalidTransition = errors.New("illegal status transition")
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id uuid.UUID) (*models.Resume, error)
	FindAll() ([]models.Resume, error)
	UpdateStatus(id uuid.UUID, status models.ResumeStatus) error
	SaveAnalysis(id uuid.UUID, analysis datatypes.JSON) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

func (r *resumeRepository) FindByID(id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ?", id).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &resume, nil
}

func (r *resumeRepository) FindAll() ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// UpdateStatus writes the new status only when the current status is a legal
// predecessor, so e.g. processing can never overwrite analyzed. A write that
// matched no row is classified by re-reading the record: missing id means not
// found, anything else means the transition was refused.
func (r *resumeRepository) UpdateStatus(id uuid.UUID, status models.ResumeStatus) error {
	result := r.db.Model(&models.Resume{}).
		Where("id = ? AND status IN ?", id, models.TransitionSources(status)).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.FindByID(id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}

	return nil
}

// SaveAnalysis marks the resume analyzed and stores its analysis payload in
// one write, guarded the same way as UpdateStatus.
func (r *resumeRepository) SaveAnalysis(id uuid.UUID, analysis datatypes.JSON) error {
	result := r.db.Model(&models.Resume{}).
		Where("id = ? AND status IN ?", id, models.TransitionSources(models.StatusAnalyzed)).
		Updates(map[string]interface{}{
			"status":     models.StatusAnalyzed,
			"analysis":   analysis,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to save analysis: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.FindByID(id); err != nil {
			return err
		}
		return ErrInvalidTransition
	}

	return nil
}
