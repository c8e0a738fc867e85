package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srishti-3/CV-Align/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	FindByStudentAndJob(studentEmail string, jobID uuid.UUID) (*models.Application, error)
	FindByJob(jobID uuid.UUID) ([]models.Application, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error
	UpdateEvaluation(id uuid.UUID, data *ApplicationUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Application, error)
	FindUnscoredByJob(jobID uuid.UUID) ([]models.Application, error)
}

type ApplicationUpdateData struct {
	Score             *float64
	Feedback          *string
	Strengths         *string
	Weaknesses        *string
	EligibilityReason *string
	FinalScore        *float64
	SkillScore        *float64
	SemanticScore     *float64
	CourseScore       *float64
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("application not found")
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

func (r *applicationRepository) FindByStudentAndJob(studentEmail string, jobID uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.
		Where("student_email = ? AND job_id = ?", studentEmail, jobID).
		First(&app).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

func (r *applicationRepository) FindByJob(jobID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("job_id = ?", jobID).
		Order("score DESC NULLS LAST, created_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}

	return apps, nil
}

func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}

func (r *applicationRepository) UpdateEvaluation(id uuid.UUID, data *ApplicationUpdateData) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":      models.StatusEvaluated,
		"updated_at":  now,
		"reviewed_at": now,
	}

	if data.Score != nil {
		updates["score"] = *data.Score
	}
	if data.Feedback != nil {
		updates["feedback"] = *data.Feedback
	}
	if data.Strengths != nil {
		updates["strengths"] = *data.Strengths
	}
	if data.Weaknesses != nil {
		updates["weaknesses"] = *data.Weaknesses
	}
	if data.EligibilityReason != nil {
		updates["eligibility_reason"] = *data.EligibilityReason
	}
	if data.FinalScore != nil {
		updates["final_score"] = *data.FinalScore
	}
	if data.SkillScore != nil {
		updates["skill_score"] = *data.SkillScore
	}
	if data.SemanticScore != nil {
		updates["semantic_score"] = *data.SemanticScore
	}
	if data.CourseScore != nil {
		updates["course_score"] = *data.CourseScore
	}

	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update evaluation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}

func (r *applicationRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}

func (r *applicationRepository) FindPendingJobs(limit int) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("status = ?", models.StatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return apps, nil
}

func (r *applicationRepository) FindUnscoredByJob(jobID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Where("job_id = ? AND status IN ?", jobID, []models.ApplicationStatus{models.StatusPending, models.StatusFailed}).
		Order("created_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find unscored applications: %w", err)
	}

	return apps, nil
}
