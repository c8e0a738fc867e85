package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/srishti-3/CV-Align/internal/models"
	"github.com/srishti-3/CV-Align/internal/repositories"
	"github.com/srishti-3/CV-Align/internal/services"
)

type EvaluateHandler struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
	worker  services.Worker
}

func NewEvaluateHandler(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	worker services.Worker,
) *EvaluateHandler {
	return &EvaluateHandler{
		appRepo: appRepo,
		jobRepo: jobRepo,
		worker:  worker,
	}
}

// HandleEvaluate handles POST /evaluate
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ApplicationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "application_id is required",
		})
	}

	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application_id format",
		})
	}

	application, err := h.appRepo.FindByID(appID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	if application.Status == models.StatusProcessing {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Application is already being evaluated",
		})
	}

	h.worker.EnqueueJob(application.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.EvaluateResponse{
		ID:     application.ID.String(),
		Status: string(models.StatusPending),
	})
}

// HandleEvaluateJob handles POST /jobs/:id/evaluate and enqueues every
// unscored application for the job.
func (h *EvaluateHandler) HandleEvaluateJob(c *fiber.Ctx) error {
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

	apps, err := h.appRepo.FindUnscoredByJob(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find applications",
		})
	}

	for _, app := range apps {
		h.worker.EnqueueJob(app.ID)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":  "Applications enqueued for evaluation",
		"enqueued": len(apps),
	})
}
