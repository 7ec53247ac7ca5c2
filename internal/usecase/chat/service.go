package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/conversation"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/job"
	"github.com/anuja-awchar/ai-powered-job-tracker/internal/store"
)

const (
	historyReplyLimit  = 10
	historyBrowseLimit = 20
	noResumeContext    = "No resume uploaded"
)

var ErrInvalidInput = errors.New("invalid input")

type replier interface {
	Reply(ctx context.Context, userMessage string, jobsContext []job.Posting, resumeContext string) string
}

// Service owns the conversation record around the stateless assistant:
// it appends each exchange and enforces the rolling message cap.
type Service struct {
	assistant replier
	catalog   *job.Catalog
	store     store.Store
	logger    *log.Logger

	now func() time.Time
}

func NewService(assistant replier, catalog *job.Catalog, st store.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		assistant: assistant,
		catalog:   catalog,
		store:     st,
		logger:    logger,
		now:       time.Now,
	}
}

// Message generates a reply and appends both sides of the exchange to the
// user's conversation. Returns the reply and the most recent history slice.
func (s *Service) Message(ctx context.Context, userID, message string) (string, []conversation.Message, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(message) == "" {
		return "", nil, ErrInvalidInput
	}

	resumeText := noResumeContext
	var stored string
	if found, err := s.store.Get(ctx, store.ResumeKey(userID), &stored); err == nil && found {
		resumeText = stored
	}

	reply := s.assistant.Reply(ctx, message, s.catalog.All(), resumeText)

	conv := conversation.Conversation{UserID: userID}
	if _, err := s.store.Get(ctx, store.ConversationKey(userID), &conv.Messages); err != nil {
		s.logger.Printf("[chat] conversation read failed user=%s: %v", userID, err)
	}

	now := s.now().UTC()
	conv.Append(
		conversation.Message{Role: conversation.RoleUser, Content: message, Timestamp: now},
		conversation.Message{Role: conversation.RoleAssistant, Content: reply, Timestamp: now},
	)

	if err := s.store.Set(ctx, store.ConversationKey(userID), conv.Messages, store.TTLDay); err != nil {
		s.logger.Printf("[chat] conversation write failed user=%s: %v", userID, err)
	}

	return reply, conv.Tail(historyReplyLimit), nil
}

// History returns the most recent messages and the total stored count.
func (s *Service) History(ctx context.Context, userID string) ([]conversation.Message, int, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, 0, ErrInvalidInput
	}

	conv := conversation.Conversation{UserID: userID}
	if _, err := s.store.Get(ctx, store.ConversationKey(userID), &conv.Messages); err != nil {
		s.logger.Printf("[chat] conversation read failed user=%s: %v", userID, err)
	}

	return conv.Tail(historyBrowseLimit), len(conv.Messages), nil
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	return s.store.Delete(ctx, store.ConversationKey(userID))
}
