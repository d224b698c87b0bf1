package models

import "time"

// SessionStatus is the lifecycle state of a journey bot session
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
)

// Valid reports whether s is one of the known statuses
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionActive, SessionPaused, SessionCompleted:
		return true
	}
	return false
}

// BotSession represents one interactive run of the journey bot for a
// (user, child) pair. AnsweredQuestions is a materialized count of the
// session's responses and never exceeds TotalQuestions.
type BotSession struct {
	ID                int64
	UserID            int64
	ChildID           int64
	TotalQuestions    int
	AnsweredQuestions int
	Status            SessionStatus
	SessionData       map[string]string
	StartedAt         time.Time
	CompletedAt       *time.Time
}

// BotResponse is one recorded answer to one catalog question within a
// session. Responses are immutable once written.
type BotResponse struct {
	ID          int64
	SessionID   int64
	UserID      int64
	ChildID     int64
	QuestionID  string
	Answer      int
	AnswerText  string
	RespondedAt time.Time
}
