package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/middleware"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/pkg/response"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/chat"
)

type ChatHandler struct {
	uc *chat.Service
}

type chatMessageRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type clearHistoryRequest struct {
	UserID string `json:"userId"`
}

func NewChatHandler(uc *chat.Service) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/message", h.Message)
	r.Get("/history", h.History)
	r.Delete("/history", h.ClearHistory)
}

func (h *ChatHandler) Message(c fiber.Ctx) error {
	var req chatMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.UserID == "" || req.Message == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId and message required", nil)
	}

	reply, history, err := h.uc.Message(c.Context(), req.UserID, req.Message)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message":             reply,
		"conversationHistory": history,
	})
}

func (h *ChatHandler) History(c fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId required", nil)
	}

	messages, count, err := h.uc.History(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"userId":       userID,
		"messageCount": count,
		"messages":     messages,
	})
}

func (h *ChatHandler) ClearHistory(c fiber.Ctx) error {
	var req clearHistoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId required", nil)
	}

	if err := h.uc.Clear(c.Context(), req.UserID); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Conversation cleared"})
}
