package service

import (
	"fmt"
	"time"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
)

// SessionService manages the journey bot session lifecycle
type SessionService struct {
	sessionRepo *repository.SessionRepository
	userRepo    *repository.UserRepository
	childRepo   *repository.ChildRepository
	catalog     catalog.Catalog
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo *repository.SessionRepository, userRepo *repository.UserRepository, childRepo *repository.ChildRepository, cat catalog.Catalog) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		childRepo:   childRepo,
		catalog:     cat,
	}
}

// StartOrResume returns the open session for a (user, child) pair,
// flipping a paused session back to active, or creates a fresh one sized
// to the current question bank.
func (s *SessionService) StartOrResume(userID, childID int64) (*models.BotSession, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	child, err := s.childRepo.GetChildForUser(childID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up child: %w", err)
	}
	if child == nil {
		return nil, ErrNotFound
	}

	session, err := s.sessionRepo.GetOpenSession(userID, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up open session: %w", err)
	}

	if session == nil {
		return s.sessionRepo.CreateSession(userID, childID, s.catalog.QuestionCount())
	}

	if session.Status == models.SessionPaused {
		if err := s.sessionRepo.UpdateStatus(session.ID, models.SessionActive); err != nil {
			return nil, fmt.Errorf("failed to resume session: %w", err)
		}
		session.Status = models.SessionActive
	}

	return session, nil
}

// GetSession retrieves a session owned by the (user, child) pair
func (s *SessionService) GetSession(sessionID, userID, childID int64) (*models.BotSession, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID || session.ChildID != childID {
		return nil, ErrNotFound
	}
	return session, nil
}

// Pause moves an active session to paused. Pausing a paused session is a
// no-op; pausing a completed session is rejected.
func (s *SessionService) Pause(sessionID, userID, childID int64) (*models.BotSession, error) {
	session, err := s.GetSession(sessionID, userID, childID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case models.SessionCompleted:
		return nil, ErrSessionCompleted
	case models.SessionPaused:
		return session, nil
	}

	if err := s.sessionRepo.UpdateStatus(session.ID, models.SessionPaused); err != nil {
		return nil, fmt.Errorf("failed to pause session: %w", err)
	}
	session.Status = models.SessionPaused
	return session, nil
}

// Complete moves an active, fully answered session to completed and
// stamps completed_at. Completing an already completed session is a
// no-op. A paused session must be resumed first.
func (s *SessionService) Complete(sessionID, userID, childID int64) (*models.BotSession, error) {
	session, err := s.GetSession(sessionID, userID, childID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case models.SessionCompleted:
		return session, nil
	case models.SessionPaused:
		return nil, ErrSessionNotActive
	}

	if session.AnsweredQuestions < session.TotalQuestions {
		return nil, ErrIncompleteSession
	}

	if err := s.sessionRepo.MarkCompleted(session.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	return s.sessionRepo.GetSessionByID(session.ID)
}
