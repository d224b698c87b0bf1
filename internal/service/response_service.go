package service

import (
	"fmt"
	"log"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
)

// ResponseService records journey bot answers
type ResponseService struct {
	responseRepo *repository.ResponseRepository
	sessionRepo  *repository.SessionRepository
	catalog      catalog.Catalog
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo *repository.ResponseRepository, sessionRepo *repository.SessionRepository, cat catalog.Catalog) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		sessionRepo:  sessionRepo,
		catalog:      cat,
	}
}

// RecordAnswer stores one answer for a (session, question) pair.
//
// The first successful insert bumps the session's answered counter
// exactly once. A repeated submission returns the originally stored
// response together with ErrDuplicateAnswer, which callers treat as a
// warning rather than a failure.
func (s *ResponseService) RecordAnswer(sessionID, userID, childID int64, questionID string, answer int, answerText string) (*models.BotResponse, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil || session.UserID != userID || session.ChildID != childID {
		return nil, ErrNotFound
	}

	switch session.Status {
	case models.SessionCompleted:
		return nil, ErrSessionCompleted
	case models.SessionPaused:
		return nil, ErrSessionNotActive
	}

	question, ok := s.catalog.Question(questionID)
	if !ok {
		return nil, ErrNotFound
	}
	if !question.ValidOption(answer) {
		return nil, ErrInvalidAnswer
	}

	response, created, err := s.responseRepo.InsertResponse(sessionID, userID, childID, questionID, answer, answerText)
	if err != nil {
		return nil, err
	}

	if !created {
		return response, ErrDuplicateAnswer
	}

	moved, err := s.sessionRepo.IncrementAnswered(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to update answered counter: %w", err)
	}
	if !moved {
		// Counter already at total_questions; the hourly reconciliation
		// will settle any drift against the stored responses.
		if count, countErr := s.responseRepo.CountForSession(sessionID); countErr == nil {
			log.Printf("Warning: answered counter for session %d at capacity with %d responses stored", sessionID, count)
		} else {
			log.Printf("Warning: answered counter for session %d already at capacity", sessionID)
		}
	}

	// Remember the last answered question so clients can resume a
	// paused session where it left off. Advisory data only.
	session.SessionData["last_question_id"] = questionID
	if err := s.sessionRepo.SetSessionData(sessionID, session.SessionData); err != nil {
		log.Printf("Warning: failed to update session data for session %d: %v", sessionID, err)
	}

	return response, nil
}

// SessionResponses retrieves all answers recorded in a session
func (s *ResponseService) SessionResponses(sessionID, userID, childID int64) ([]models.BotResponse, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID || session.ChildID != childID {
		return nil, ErrNotFound
	}

	return s.responseRepo.GetSessionResponses(sessionID)
}
