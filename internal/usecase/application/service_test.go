package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/application"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
)

func newTestService(st store.Store) *Service {
	return NewService(st, nil)
}

func TestCreate_SeedsSingleTimelineEntry(t *testing.T) {
	svc := newTestService(store.NewMemory())

	app, err := svc.Create(context.Background(), "user-1", "job_1", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if app.Status != application.StatusApplied {
		t.Fatalf("expected default status applied, got %q", app.Status)
	}
	if len(app.Timeline) != 1 || app.Timeline[0].Status != application.StatusApplied {
		t.Fatalf("expected timeline seeded with initial status, got %+v", app.Timeline)
	}
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(store.NewMemory())

	if _, err := svc.Create(context.Background(), "user-1", "job_1", "ghosted"); !errors.Is(err, application.ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestUpdateStatus_AppendsEntryWithFreshTimestamp(t *testing.T) {
	st := store.NewMemory()
	svc := newTestService(st)
	ctx := context.Background()

	created := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	svc.now = func() time.Time { return created }

	app, err := svc.Create(ctx, "user-1", "job_1", "applied")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	svc.now = func() time.Time { return updated }
	got, err := svc.UpdateStatus(ctx, app.ID.String(), "interview")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(got.Timeline) != 2 {
		t.Fatalf("expected timeline of 2, got %d", len(got.Timeline))
	}
	if got.Timeline[1].Status != application.StatusInterview {
		t.Fatalf("expected second entry interview, got %q", got.Timeline[1].Status)
	}
	if !got.Timeline[1].Timestamp.Equal(updated) {
		t.Fatalf("expected fresh timestamp %v, got %v", updated, got.Timeline[1].Timestamp)
	}

	// The stored record reflects the transition.
	var stored application.Application
	found, _ := st.Get(ctx, store.ApplicationKey(app.ID.String()), &stored)
	if !found || stored.Status != application.StatusInterview {
		t.Fatalf("expected persisted status interview, found=%v got=%+v", found, stored)
	}
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	svc := newTestService(store.NewMemory())
	ctx := context.Background()

	app, _ := svc.Create(ctx, "user-1", "job_1", "applied")
	if _, err := svc.UpdateStatus(ctx, app.ID.String(), "offer"); !errors.Is(err, application.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(store.NewMemory())

	if _, err := svc.UpdateStatus(context.Background(), uuid.NewString(), "interview"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_NewestFirstWithStatusFilter(t *testing.T) {
	svc := newTestService(store.NewMemory())
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	for i, jobID := range []string{"job_1", "job_2", "job_3"} {
		at := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return at }
		if _, err := svc.Create(ctx, "user-1", jobID, "applied"); err != nil {
			t.Fatalf("create %s: %v", jobID, err)
		}
	}

	apps, err := svc.List(ctx, "user-1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 3 {
		t.Fatalf("expected 3 applications, got %d", len(apps))
	}
	if apps[0].JobID != "job_3" || apps[2].JobID != "job_1" {
		t.Fatalf("expected newest first, got %s..%s", apps[0].JobID, apps[2].JobID)
	}

	if _, err := svc.UpdateStatus(ctx, apps[0].ID.String(), "interview"); err != nil {
		t.Fatalf("update: %v", err)
	}
	filtered, err := svc.List(ctx, "user-1", "interview")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].JobID != "job_3" {
		t.Fatalf("unexpected filtered list: %+v", filtered)
	}
}

func TestDelete_RemovesRecord(t *testing.T) {
	st := store.NewMemory()
	svc := newTestService(st)
	ctx := context.Background()

	app, _ := svc.Create(ctx, "user-1", "job_1", "applied")
	if err := svc.Delete(ctx, app.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Dangling list entries are tolerated and skipped on read.
	apps, err := svc.List(ctx, "user-1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(apps))
	}
}
