package conversation

import (
	"strconv"
	"testing"
	"time"
)

func TestAppend_CapsAtMaxMessages(t *testing.T) {
	var c Conversation
	now := time.Now().UTC()

	for i := 0; i < 60; i++ {
		c.Append(Message{Role: RoleUser, Content: strconv.Itoa(i), Timestamp: now})
	}

	if len(c.Messages) != MaxMessages {
		t.Fatalf("expected %d messages, got %d", MaxMessages, len(c.Messages))
	}

	// Oldest entries are dropped first: 0..9 gone, 10 is now the head.
	if c.Messages[0].Content != "10" {
		t.Fatalf("expected oldest surviving message to be 10, got %q", c.Messages[0].Content)
	}
	if c.Messages[len(c.Messages)-1].Content != "59" {
		t.Fatalf("expected newest message to be 59, got %q", c.Messages[len(c.Messages)-1].Content)
	}
}

func TestAppend_PairwiseStaysWithinCap(t *testing.T) {
	var c Conversation
	now := time.Now().UTC()

	for i := 0; i < 100; i++ {
		c.Append(
			Message{Role: RoleUser, Content: "q", Timestamp: now},
			Message{Role: RoleAssistant, Content: "a", Timestamp: now},
		)
		if len(c.Messages) > MaxMessages {
			t.Fatalf("cap exceeded after %d exchanges: %d", i+1, len(c.Messages))
		}
	}
}

func TestTail(t *testing.T) {
	var c Conversation
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		c.Append(Message{Role: RoleUser, Content: strconv.Itoa(i), Timestamp: now})
	}

	tail := c.Tail(3)
	if len(tail) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(tail))
	}
	if tail[0].Content != "2" || tail[2].Content != "4" {
		t.Fatalf("unexpected tail contents: %q..%q", tail[0].Content, tail[2].Content)
	}

	if got := c.Tail(10); len(got) != 5 {
		t.Fatalf("expected full history when n exceeds length, got %d", len(got))
	}
	if got := c.Tail(0); len(got) != 0 {
		t.Fatalf("expected empty tail for n=0, got %d", len(got))
	}
}
