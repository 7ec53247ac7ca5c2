package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/middleware"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/application"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/pkg/response"
	ucapp "github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/application"
)

type ApplicationHandler struct {
	uc *ucapp.Service
}

type createApplicationRequest struct {
	UserID string `json:"userId"`
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

type updateApplicationRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc *ucapp.Service) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Patch("/:applicationId", h.UpdateStatus)
	r.Delete("/:applicationId", h.Delete)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.UserID == "" || req.JobID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId and jobId required", nil)
	}

	app, err := h.uc.Create(c.Context(), req.UserID, req.JobID, req.Status)
	if err != nil {
		return mapApplicationError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId required", nil)
	}

	apps, err := h.uc.List(c.Context(), userID, c.Query("status"))
	if err != nil {
		return mapApplicationError(err)
	}

	return c.JSON(fiber.Map{
		"total":        len(apps),
		"applications": apps,
	})
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	var req updateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.Status == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "status required", nil)
	}

	app, err := h.uc.UpdateStatus(c.Context(), c.Params("applicationId"), req.Status)
	if err != nil {
		return mapApplicationError(err)
	}

	return c.JSON(app)
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("applicationId")); err != nil {
		return mapApplicationError(err)
	}

	return c.JSON(fiber.Map{"message": "Application deleted"})
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, ucapp.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	case errors.Is(err, application.ErrUnknownStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application status", err)
	case errors.Is(err, application.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status transition", err)
	case errors.Is(err, ucapp.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
