package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ResumeStatus string

const (
	StatusPending    ResumeStatus = "pending"
	StatusProcessing ResumeStatus = "processing"
	StatusAnalyzed   ResumeStatus = "analyzed"
	StatusFailed     ResumeStatus = "failed"
)

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step. The lifecycle only moves forward: pending → processing → analyzed or
// failed. A failed resume may re-enter processing; analyzed is terminal.
func (s ResumeStatus) CanTransitionTo(next ResumeStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusAnalyzed || next == StatusFailed
	case StatusFailed:
		return next == StatusProcessing
	default:
		return false
	}
}

// TransitionSources returns every status from which next may legally be
// reached. Used by the repository to guard status writes at the SQL level.
func TransitionSources(next ResumeStatus) []ResumeStatus {
	var sources []ResumeStatus
	for _, s := range []ResumeStatus{StatusPending, StatusProcessing, StatusAnalyzed, StatusFailed} {
		if s.CanTransitionTo(next) {
			sources = append(sources, s)
		}
	}
	return sources
}

// Resume holds one uploaded resume. Text is immutable after creation; only
// Status and Analysis mutate afterwards. Analysis is non-null iff the status
// is analyzed.
type Resume struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename  string         `gorm:"type:text" json:"filename"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Status    ResumeStatus   `gorm:"not null;default:'pending'" json:"status"`
	Analysis  datatypes.JSON `gorm:"type:jsonb" json:"analysis,omitempty"`
	CreatedAt time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
