package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

var (
	ErrUnknownStatus     = errors.New("unknown application status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// transitions is the allowed status graph. Rejection is reachable from every
// non-terminal state; rejected itself is terminal.
var transitions = map[Status][]Status{
	StatusApplied:   {StatusInterview, StatusRejected},
	StatusInterview: {StatusOffer, StatusRejected},
	StatusOffer:     {StatusRejected},
	StatusRejected:  {},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := transitions[st]; !ok {
		return "", ErrUnknownStatus
	}
	return st, nil
}

type TimelineEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Application tracks one user's pursuit of one job. The timeline always has
// at least one entry: the initial status recorded at creation.
type Application struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"userId"`
	JobID     string          `json:"jobId"`
	Status    Status          `json:"status"`
	AppliedAt time.Time       `json:"appliedAt"`
	Timeline  []TimelineEntry `json:"timeline"`
}

func New(id uuid.UUID, userID, jobID string, status Status, at time.Time) Application {
	return Application{
		ID:        id,
		UserID:    userID,
		JobID:     jobID,
		Status:    status,
		AppliedAt: at,
		Timeline:  []TimelineEntry{{Status: status, Timestamp: at}},
	}
}

// Transition moves the application to next, appending exactly one timeline
// entry. It rejects moves not present in the status graph.
func (a *Application) Transition(next Status, at time.Time) error {
	allowed, ok := transitions[a.Status]
	if !ok {
		return ErrUnknownStatus
	}
	for _, s := range allowed {
		if s == next {
			a.Status = next
			a.Timeline = append(a.Timeline, TimelineEntry{Status: next, Timestamp: at})
			return nil
		}
	}
	return ErrInvalidTransition
}
