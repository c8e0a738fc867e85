package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srishti-3/CV-Align/internal/models"
	"github.com/srishti-3/CV-Align/internal/repositories"
)

type ApplicationHandler struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
	docRepo repositories.DocumentRepository
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	docRepo repositories.DocumentRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo: appRepo,
		jobRepo: jobRepo,
		docRepo: docRepo,
	}
}

// HandleApply handles POST /applications
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	var req models.ApplyRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.StudentEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "student_email is required",
		})
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	cvDocID, err := uuid.Parse(req.CVDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid cv_document_id format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	if !job.IsActive {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Job is no longer accepting applications",
		})
	}

	if _, err := h.docRepo.FindByID(cvDocID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "CV document not found",
		})
	}

	// One application per student per job
	if _, err := h.appRepo.FindByStudentAndJob(req.StudentEmail, jobID); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Student has already applied to this job",
		})
	} else if err != gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing applications",
		})
	}

	application := &models.Application{
		ID:           uuid.New(),
		StudentEmail: req.StudentEmail,
		StudentName:  req.StudentName,
		JobID:        jobID,
		CVDocumentID: cvDocID,
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.appRepo.Create(application); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create application",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.EvaluateResponse{
		ID:     application.ID.String(),
		Status: string(application.Status),
	})
}

// HandleGetResult handles GET /applications/:id/result
func (h *ApplicationHandler) HandleGetResult(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	application, err := h.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	response := models.ResultResponse{
		ID:     application.ID.String(),
		Status: string(application.Status),
	}

	if application.Status == models.StatusEvaluated {
		response.Result = buildEvaluationData(application)
	}

	if application.Status == models.StatusFailed && application.ErrorMessage != nil {
		response.ErrorMessage = application.ErrorMessage
	}

	return c.JSON(response)
}

// HandleListByJob handles GET /jobs/:id/applications
func (h *ApplicationHandler) HandleListByJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	apps, err := h.appRepo.FindByJob(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(fiber.Map{
		"applications": apps,
	})
}

func buildEvaluationData(app *models.Application) *models.EvaluationData {
	data := &models.EvaluationData{}

	if app.Score != nil {
		data.Score = *app.Score
	}
	if app.Feedback != nil {
		data.Feedback = *app.Feedback
	}
	if app.Strengths != nil && *app.Strengths != "" {
		data.Strengths = strings.Split(*app.Strengths, "\n")
	}
	if app.Weaknesses != nil && *app.Weaknesses != "" {
		data.Weaknesses = strings.Split(*app.Weaknesses, "\n")
	}
	if app.EligibilityReason != nil {
		data.EligibilityReason = *app.EligibilityReason
	}
	if app.FinalScore != nil {
		data.FinalScore = *app.FinalScore
	}
	if app.SkillScore != nil {
		data.SkillScore = *app.SkillScore
	}
	if app.SemanticScore != nil {
		data.SemanticScore = *app.SemanticScore
	}
	if app.CourseScore != nil {
		data.CourseScore = *app.CourseScore
	}

	return data
}
