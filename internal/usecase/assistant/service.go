package assistant

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/job"
)

const (
	resumeContextLimit = 500
	jobsContextLimit   = 5

	// FallbackReply is returned whenever the upstream call fails; the caller
	// never sees an error.
	FallbackReply = "I encountered an error processing your request. Please try again."
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service produces natural-language replies for the job search assistant.
// It is stateless per call; the caller owns the conversation history.
type Service struct {
	generator contentGenerator
	logger    *log.Logger
}

func NewService(generator contentGenerator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{generator: generator, logger: logger}
}

// Reply answers a user message with resume and job context folded into a
// bounded prompt. On any failure it returns a fixed apology string.
func (s *Service) Reply(ctx context.Context, userMessage string, jobsContext []job.Posting, resumeContext string) string {
	raw, err := s.generator.GenerateContent(ctx, buildPrompt(userMessage, jobsContext, resumeContext))
	if err != nil {
		s.logger.Printf("[assistant] reply call failed: %v", err)
		return FallbackReply
	}
	return strings.TrimSpace(raw)
}

func buildPrompt(userMessage string, jobsContext []job.Posting, resumeContext string) string {
	if len(resumeContext) > resumeContextLimit {
		resumeContext = resumeContext[:resumeContextLimit]
	}
	if len(jobsContext) > jobsContextLimit {
		jobsContext = jobsContext[:jobsContextLimit]
	}

	jobsJSON, err := json.MarshalIndent(jobsContext, "", "  ")
	if err != nil {
		jobsJSON = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("You are a helpful job search assistant. Help users find jobs and answer questions about the job search process.\n\n")
	b.WriteString("Current User's Resume Summary:\n")
	b.WriteString(resumeContext)
	b.WriteString("\n\nAvailable Jobs Context:\n")
	b.Write(jobsJSON)
	b.WriteString("\n\nUser Question: " + userMessage + "\n\n")
	b.WriteString("Provide a helpful, concise response (2-3 sentences max). If referring to specific jobs, mention the title and company.")
	return b.String()
}
