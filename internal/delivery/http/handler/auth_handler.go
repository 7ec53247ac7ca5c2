package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/middleware"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/pkg/response"
	ucauth "github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/auth"
)

type AuthHandler struct {
	uc *ucauth.Service
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc *ucauth.Service) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/profile", h.Profile)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	u, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucauth.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Email, password, and name required", err)
		case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
			return middleware.NewAppError(fiber.StatusConflict, "User already exists", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  u.ID,
		"email":   u.Email,
		"name":    u.Name,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}
	if req.Email == "" || req.Password == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Email and password required", nil)
	}

	u, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"userId":  u.ID,
		"email":   u.Email,
		"name":    u.Name,
	})
}

func (h *AuthHandler) Profile(c fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId required", nil)
	}

	u, err := h.uc.Profile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ucauth.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(u)
}
