package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Company        string    `gorm:"type:text;not null" json:"company"`
	Location       string    `gorm:"type:text" json:"location"`
	JobType        string    `gorm:"type:text;default:'Full-time'" json:"job_type"`
	RecruiterEmail string    `gorm:"type:text;not null;index" json:"recruiter_email"`
	JDDocumentID   uuid.UUID `gorm:"type:uuid;not null" json:"jd_document_id"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	JDDocument Document `gorm:"foreignKey:JDDocumentID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}
