package handlers

import (
	"time"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
)

// sessionPayload is the JSON shape for bot sessions
type sessionPayload struct {
	ID                int64      `json:"id"`
	ChildID           int64      `json:"child_id"`
	TotalQuestions    int        `json:"total_questions"`
	AnsweredQuestions int        `json:"answered_questions"`
	Status            string     `json:"status"`
	StartedAt         time.Time  `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

func newSessionPayload(s *models.BotSession) sessionPayload {
	return sessionPayload{
		ID:                s.ID,
		ChildID:           s.ChildID,
		TotalQuestions:    s.TotalQuestions,
		AnsweredQuestions: s.AnsweredQuestions,
		Status:            string(s.Status),
		StartedAt:         s.StartedAt,
		CompletedAt:       s.CompletedAt,
	}
}

// responsePayload is the JSON shape for recorded answers
type responsePayload struct {
	ID          int64     `json:"id"`
	SessionID   int64     `json:"session_id"`
	QuestionID  string    `json:"question_id"`
	Answer      int       `json:"answer"`
	AnswerText  string    `json:"answer_text"`
	RespondedAt time.Time `json:"responded_at"`
}

func newResponsePayload(r *models.BotResponse) responsePayload {
	return responsePayload{
		ID:          r.ID,
		SessionID:   r.SessionID,
		QuestionID:  r.QuestionID,
		Answer:      r.Answer,
		AnswerText:  r.AnswerText,
		RespondedAt: r.RespondedAt,
	}
}

// answerResult reports the outcome of an answer submission. The UI
// distinguishes "recorded" from "already answered" with these flags.
type answerResult struct {
	Recorded        bool             `json:"recorded"`
	AlreadyAnswered bool             `json:"already_answered"`
	Response        responsePayload  `json:"response"`
	Session         *sessionPayload  `json:"session,omitempty"`
	NewBadges       []awardedPayload `json:"new_badges,omitempty"`
}

// progressPayload is the JSON shape for week progress
type progressPayload struct {
	JourneyID        string           `json:"journey_id"`
	WeekID           string           `json:"week_id"`
	CompletedTopics  []string         `json:"completed_topics"`
	CompletedQuizzes []string         `json:"completed_quizzes"`
	Progress         float64          `json:"progress"`
	TotalItems       int              `json:"total_items"`
	StartedAt        *time.Time       `json:"started_at,omitempty"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	NewBadges        []awardedPayload `json:"new_badges,omitempty"`
}

func newProgressPayload(p *models.WeekProgress, totalItems int) progressPayload {
	payload := progressPayload{
		JourneyID:        p.JourneyID,
		WeekID:           p.WeekID,
		CompletedTopics:  p.CompletedTopics,
		CompletedQuizzes: p.CompletedQuizzes,
		Progress:         p.Progress,
		TotalItems:       totalItems,
		CompletedAt:      p.CompletedAt,
	}
	if p.ID != 0 {
		payload.StartedAt = &p.StartedAt
	}
	return payload
}

// awardedPayload is the JSON shape for earned badges, enriched with the
// catalog definition.
type awardedPayload struct {
	BadgeID     string    `json:"badge_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}

func newAwardedPayloads(awards []models.BadgeAward, cat catalog.Catalog) []awardedPayload {
	defs := make(map[string]catalog.BadgeDefinition)
	for _, def := range cat.Badges() {
		defs[def.ID] = def
	}

	payloads := make([]awardedPayload, 0, len(awards))
	for _, award := range awards {
		payload := awardedPayload{
			BadgeID:  award.BadgeID,
			EarnedAt: award.EarnedAt,
		}
		if def, ok := defs[award.BadgeID]; ok {
			payload.Name = def.Name
			payload.Description = def.Description
		}
		payloads = append(payloads, payload)
	}
	return payloads
}
