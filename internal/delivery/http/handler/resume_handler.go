package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/middleware"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/pkg/response"
	ucresume "github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/resume"
)

type ResumeHandler struct {
	uc *ucresume.Service
}

type uploadResumeRequest struct {
	UserID     string `json:"userId"`
	ResumeText string `json:"resumeText"`
	FileName   string `json:"fileName"`
}

type deleteResumeRequest struct {
	UserID string `json:"userId"`
}

func NewResumeHandler(uc *ucresume.Service) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/upload", h.Upload)
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	r.Delete("/", h.Delete)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	return h.store(c, "Resume uploaded successfully")
}

func (h *ResumeHandler) Update(c fiber.Ctx) error {
	return h.store(c, "Resume updated successfully")
}

func (h *ResumeHandler) store(c fiber.Ctx, message string) error {
	var req uploadResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.UserID == "" || req.ResumeText == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId and resumeText required", nil)
	}

	rec, err := h.uc.Upload(c.Context(), req.UserID, req.ResumeText, req.FileName)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message":    message,
		"resumeData": rec,
	})
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId required", nil)
	}

	preview, rec, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ucresume.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"userId":            userID,
		"resumeText":        preview,
		"metadata":          rec,
		"fullTextAvailable": true,
	})
}

func (h *ResumeHandler) Delete(c fiber.Ctx) error {
	var req deleteResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId required", nil)
	}

	if err := h.uc.Delete(c.Context(), req.UserID); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Resume deleted"})
}
