package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/delivery/http/middleware"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/pkg/response"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/usecase/feed"
)

type JobsHandler struct {
	uc *feed.Service
}

func NewJobsHandler(uc *feed.Service) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/feed", h.Feed)
	r.Get("/search/query", h.Search)
	r.Get("/:jobId", h.Get)
}

func (h *JobsHandler) Feed(c fiber.Ctx) error {
	p := feed.Params{
		UserID:           c.Query("userId"),
		Title:            c.Query("title"),
		JobType:          c.Query("jobType"),
		WorkMode:         c.Query("workMode"),
		Location:         c.Query("location"),
		MatchScoreFilter: c.Query("matchScoreFilter"),
	}
	if p.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId required", nil)
	}

	result, err := h.uc.Feed(c.Context(), p)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(result)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	posting, err := h.uc.Get(c.Params("jobId"))
	if err != nil {
		if errors.Is(err, feed.ErrJobNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(posting)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	userID := c.Query("userId")
	query := c.Query("query")
	if userID == "" || query == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "userId and query required", nil)
	}

	jobs, err := h.uc.Search(c.Context(), userID, query)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"query": query,
		"total": len(jobs),
		"jobs":  jobs,
	})
}
