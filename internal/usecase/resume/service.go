package resume

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/resume"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
)

// PreviewLimit bounds the resume text returned on retrieval.
const PreviewLimit = 5000

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resume not found")
	ErrInternal     = errors.New("internal error")
)

type Service struct {
	store store.Store

	now func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Upload stores a user's resume, overwriting any previous one. Raw text and
// metadata live under separate keys so the scoring pipeline can read text
// without deserializing metadata.
func (s *Service) Upload(ctx context.Context, userID, text, fileName string) (resume.Record, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(text) == "" {
		return resume.Record{}, ErrInvalidInput
	}

	rec := resume.NewRecord(userID, text, fileName, s.now().UTC())

	if err := s.store.Set(ctx, store.ResumeKey(userID), text, store.TTLDurable); err != nil {
		return resume.Record{}, ErrInternal
	}
	if err := s.store.Set(ctx, store.ResumeMetaKey(userID), rec, store.TTLDurable); err != nil {
		return resume.Record{}, ErrInternal
	}

	return rec, nil
}

// Get returns a bounded preview of the stored text plus metadata.
func (s *Service) Get(ctx context.Context, userID string) (string, resume.Record, error) {
	if strings.TrimSpace(userID) == "" {
		return "", resume.Record{}, ErrInvalidInput
	}

	var text string
	found, err := s.store.Get(ctx, store.ResumeKey(userID), &text)
	if err != nil {
		return "", resume.Record{}, ErrInternal
	}
	if !found {
		return "", resume.Record{}, ErrNotFound
	}

	var rec resume.Record
	if _, err := s.store.Get(ctx, store.ResumeMetaKey(userID), &rec); err != nil {
		return "", resume.Record{}, ErrInternal
	}

	preview := text
	if len(preview) > PreviewLimit {
		preview = preview[:PreviewLimit]
	}

	return preview, rec, nil
}

func (s *Service) Delete(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	if err := s.store.Delete(ctx, store.ResumeKey(userID)); err != nil {
		return ErrInternal
	}
	if err := s.store.Delete(ctx, store.ResumeMetaKey(userID)); err != nil {
		return ErrInternal
	}
	return nil
}
