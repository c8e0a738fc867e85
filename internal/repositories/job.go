package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srishti-3/CV-Align/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindActive() ([]models.Job, error)
	Deactivate(id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Preload("JDDocument").Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job not found")
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindActive implements JobRepository.
func (r *jobRepository) FindActive() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find active jobs: %w", err)
	}

	return jobs, nil
}

// Deactivate implements JobRepository.
func (r *jobRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return fmt.Errorf("failed to deactivate job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("job not found")
	}

	return nil
}
