package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending    ApplicationStatus = "pending"
	StatusProcessing ApplicationStatus = "processing"
	StatusEvaluated  ApplicationStatus = "evaluated"
	StatusFailed     ApplicationStatus = "failed"
)

// Application links a student's CV document to a job posting and carries the
// evaluation outcome once scored. Re-evaluating simply overwrites the
// result fields.
type Application struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentEmail string            `gorm:"type:text;not null;index" json:"student_email"`
	StudentName  string            `gorm:"type:text" json:"student_name"`
	JobID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"job_id"`
	CVDocumentID uuid.UUID         `gorm:"type:uuid;not null" json:"cv_document_id"`
	Status       ApplicationStatus `gorm:"not null;default:'pending'" json:"status"`

	// Combined score on the 0-100 scale.
	Score             *float64 `gorm:"type:decimal(5,2)" json:"score,omitempty"`
	Feedback          *string  `gorm:"type:text" json:"feedback,omitempty"`
	Strengths         *string  `gorm:"type:text" json:"strengths,omitempty"`
	Weaknesses        *string  `gorm:"type:text" json:"weaknesses,omitempty"`
	EligibilityReason *string  `gorm:"type:text" json:"eligibility_reason,omitempty"`

	// Quantitative sub-scores on the [0,1] scale, kept for diagnostics.
	FinalScore    *float64 `gorm:"type:decimal(4,3)" json:"final_score,omitempty"`
	SkillScore    *float64 `gorm:"type:decimal(4,3)" json:"skill_score,omitempty"`
	SemanticScore *float64 `gorm:"type:decimal(4,3)" json:"semantic_score,omitempty"`
	CourseScore   *float64 `gorm:"type:decimal(4,3)" json:"course_score,omitempty"`

	ErrorMessage *string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`

	Job        Job      `gorm:"foreignKey:JobID" json:"-"`
	CVDocument Document `gorm:"foreignKey:CVDocumentID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
