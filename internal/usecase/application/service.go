package application

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/application"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("application not found")
	ErrInternal     = errors.New("internal error")
)

type Service struct {
	store  store.Store
	logger *log.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

func NewService(st store.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: st, logger: logger, now: time.Now, newID: uuid.New}
}

// Create records a new application with a single-entry timeline and links it
// into the user's application list.
func (s *Service) Create(ctx context.Context, userID, jobID, status string) (application.Application, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(jobID) == "" {
		return application.Application{}, ErrInvalidInput
	}
	if status == "" {
		status = string(application.StatusApplied)
	}
	st, err := application.ParseStatus(status)
	if err != nil {
		return application.Application{}, err
	}

	app := application.New(s.newID(), userID, jobID, st, s.now().UTC())

	if err := s.store.Set(ctx, store.ApplicationKey(app.ID.String()), app, store.TTLDurable); err != nil {
		return application.Application{}, ErrInternal
	}

	// Read-modify-write on the id list; concurrent creates for the same user
	// can lose writes (last-write-wins at the store layer).
	listKey := store.UserApplicationsKey(userID)
	var ids []string
	if _, err := s.store.Get(ctx, listKey, &ids); err != nil {
		s.logger.Printf("[applications] list read failed user=%s: %v", userID, err)
	}
	ids = append(ids, app.ID.String())
	if err := s.store.Set(ctx, listKey, ids, store.TTLDurable); err != nil {
		return application.Application{}, ErrInternal
	}

	return app, nil
}

// List returns a user's applications, newest first, optionally filtered by
// status. Dangling ids in the list are skipped.
func (s *Service) List(ctx context.Context, userID, statusFilter string) ([]application.Application, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}

	var ids []string
	if _, err := s.store.Get(ctx, store.UserApplicationsKey(userID), &ids); err != nil {
		return nil, ErrInternal
	}

	apps := make([]application.Application, 0, len(ids))
	for _, id := range ids {
		var app application.Application
		found, err := s.store.Get(ctx, store.ApplicationKey(id), &app)
		if err != nil || !found {
			continue
		}
		if statusFilter != "" && string(app.Status) != statusFilter {
			continue
		}
		apps = append(apps, app)
	}

	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedAt.After(apps[j].AppliedAt)
	})

	return apps, nil
}

// UpdateStatus transitions an application, appending one timeline entry.
func (s *Service) UpdateStatus(ctx context.Context, appID, status string) (application.Application, error) {
	if strings.TrimSpace(appID) == "" || strings.TrimSpace(status) == "" {
		return application.Application{}, ErrInvalidInput
	}

	next, err := application.ParseStatus(status)
	if err != nil {
		return application.Application{}, err
	}

	var app application.Application
	found, err := s.store.Get(ctx, store.ApplicationKey(appID), &app)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !found {
		return application.Application{}, ErrNotFound
	}

	if err := app.Transition(next, s.now().UTC()); err != nil {
		return application.Application{}, err
	}

	if err := s.store.Set(ctx, store.ApplicationKey(appID), app, store.TTLDurable); err != nil {
		return application.Application{}, ErrInternal
	}

	return app, nil
}

func (s *Service) Delete(ctx context.Context, appID string) error {
	if strings.TrimSpace(appID) == "" {
		return ErrInvalidInput
	}
	return s.store.Delete(ctx, store.ApplicationKey(appID))
}
