package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anuja-awchar/ai-powered-job-tracker/internal/domain/job"
)

type mockGenerator struct {
	response string
	err      error
	prompt   string
}

func (m *mockGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestReply_ReturnsModelText(t *testing.T) {
	gen := &mockGenerator{response: "  Check out the Senior React Developer role at TechCorp.  "}
	svc := NewService(gen, nil)

	got := svc.Reply(context.Background(), "any react jobs?", nil, "resume text")
	if got != "Check out the Senior React Developer role at TechCorp." {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestReply_FailureReturnsFixedApology(t *testing.T) {
	gen := &mockGenerator{err: errors.New("unavailable")}
	svc := NewService(gen, nil)

	got := svc.Reply(context.Background(), "hello", nil, "resume")
	if got != FallbackReply {
		t.Fatalf("expected fallback reply, got %q", got)
	}
}

func TestReply_BoundsContext(t *testing.T) {
	gen := &mockGenerator{response: "ok"}
	svc := NewService(gen, nil)

	longResume := strings.Repeat("z", 2000)
	jobs := make([]job.Posting, 9)
	for i := range jobs {
		jobs[i] = job.Posting{ID: "job", Title: "T", Company: "C"}
	}

	svc.Reply(context.Background(), "question", jobs, longResume)

	if n := strings.Count(gen.prompt, "z"); n != resumeContextLimit {
		t.Fatalf("expected resume context truncated to %d chars, got %d", resumeContextLimit, n)
	}
	if n := strings.Count(gen.prompt, `"id": "job"`); n != jobsContextLimit {
		t.Fatalf("expected %d jobs in context, got %d", jobsContextLimit, n)
	}
	if !strings.Contains(gen.prompt, "User Question: question") {
		t.Fatalf("prompt missing literal user message")
	}
}
