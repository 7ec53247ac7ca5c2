package conversation

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// MaxMessages caps the rolling history; the oldest entries are evicted
	// first once the cap is reached.
	MaxMessages = 50
)

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a per-user rolling message history.
type Conversation struct {
	UserID   string    `json:"userId"`
	Messages []Message `json:"messages"`
}

// Append adds messages, dropping the oldest entries beyond MaxMessages.
func (c *Conversation) Append(msgs ...Message) {
	c.Messages = append(c.Messages, msgs...)
	if over := len(c.Messages) - MaxMessages; over > 0 {
		c.Messages = append([]Message(nil), c.Messages[over:]...)
	}
}

// Tail returns the most recent n messages.
func (c *Conversation) Tail(n int) []Message {
	if n <= 0 || len(c.Messages) == 0 {
		return []Message{}
	}
	if len(c.Messages) <= n {
		return c.Messages
	}
	return c.Messages[len(c.Messages)-n:]
}
