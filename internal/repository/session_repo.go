package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
)

// SessionRepository handles journey bot session database operations
type SessionRepository struct {
	db database.DBTX
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, user_id, child_id, total_questions, answered_questions,
	       status, session_data, started_at, completed_at`

// CreateSession creates a new active session for a (user, child) pair
func (r *SessionRepository) CreateSession(userID, childID int64, totalQuestions int) (*models.BotSession, error) {
	query := `
		INSERT INTO journey_bot_sessions (user_id, child_id, total_questions, answered_questions, status, session_data)
		VALUES (?, ?, ?, 0, ?, '{}')
	`

	id, err := r.db.ExecReturningID(query, userID, childID, totalQuestions, models.SessionActive)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return r.GetSessionByID(id)
}

// GetSessionByID retrieves a session by ID, returning nil when no row exists
func (r *SessionRepository) GetSessionByID(sessionID int64) (*models.BotSession, error) {
	query := "SELECT " + sessionColumns + " FROM journey_bot_sessions WHERE id = ?"
	return r.scanSession(r.db.QueryRow(query, sessionID))
}

// GetOpenSession retrieves the most recent active or paused session for a
// (user, child) pair, or nil when every session is completed.
func (r *SessionRepository) GetOpenSession(userID, childID int64) (*models.BotSession, error) {
	query := "SELECT " + sessionColumns + ` FROM journey_bot_sessions
		WHERE user_id = ? AND child_id = ? AND status != ?
		ORDER BY started_at DESC, id DESC
		LIMIT 1`
	return r.scanSession(r.db.QueryRow(query, userID, childID, models.SessionCompleted))
}

// UpdateStatus sets the session status
func (r *SessionRepository) UpdateStatus(sessionID int64, status models.SessionStatus) error {
	query := "UPDATE journey_bot_sessions SET status = ? WHERE id = ?"
	_, err := r.db.Exec(query, status, sessionID)
	return err
}

// MarkCompleted transitions a session to completed and stamps completed_at.
// The completed_at stamp is written only once.
func (r *SessionRepository) MarkCompleted(sessionID int64, completedAt time.Time) error {
	query := `
		UPDATE journey_bot_sessions
		SET status = ?, completed_at = COALESCE(completed_at, ?)
		WHERE id = ?
	`
	_, err := r.db.Exec(query, models.SessionCompleted, completedAt, sessionID)
	return err
}

// IncrementAnswered bumps answered_questions by one as a single atomic
// statement, refusing to exceed total_questions. Returns true when the
// counter moved.
func (r *SessionRepository) IncrementAnswered(sessionID int64) (bool, error) {
	query := `
		UPDATE journey_bot_sessions
		SET answered_questions = answered_questions + 1
		WHERE id = ? AND answered_questions < total_questions
	`

	result, err := r.db.Exec(query, sessionID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// SetSessionData replaces the session's opaque key-value bag
func (r *SessionRepository) SetSessionData(sessionID int64, data map[string]string) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode session data: %w", err)
	}

	query := "UPDATE journey_bot_sessions SET session_data = ? WHERE id = ?"
	_, err = r.db.Exec(query, string(encoded), sessionID)
	return err
}

// CountCompletedSessions returns how many sessions the (user, child)
// pair has completed.
func (r *SessionRepository) CountCompletedSessions(userID, childID int64) (int, error) {
	query := `
		SELECT COUNT(*) FROM journey_bot_sessions
		WHERE user_id = ? AND child_id = ? AND status = ?
	`

	var count int
	err := r.db.QueryRow(query, userID, childID, models.SessionCompleted).Scan(&count)
	return count, err
}

// CounterDrift describes a session whose answered_questions counter
// disagrees with the true response count.
type CounterDrift struct {
	SessionID     int64
	Answered      int
	ResponseCount int
}

// ListCounterDrift finds sessions whose materialized counter has drifted
// from COUNT(responses).
func (r *SessionRepository) ListCounterDrift() ([]CounterDrift, error) {
	query := `
		SELECT s.id, s.answered_questions, COUNT(r.id)
		FROM journey_bot_sessions s
		LEFT JOIN journey_bot_responses r ON r.session_id = s.id
		GROUP BY s.id, s.answered_questions
		HAVING s.answered_questions != COUNT(r.id)
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drifts []CounterDrift
	for rows.Next() {
		var d CounterDrift
		if err := rows.Scan(&d.SessionID, &d.Answered, &d.ResponseCount); err != nil {
			return nil, err
		}
		drifts = append(drifts, d)
	}

	return drifts, rows.Err()
}

// RepairCounter resets answered_questions to the given count, capped at
// total_questions.
func (r *SessionRepository) RepairCounter(sessionID int64, count int) error {
	query := `
		UPDATE journey_bot_sessions
		SET answered_questions = CASE WHEN ? > total_questions THEN total_questions ELSE ? END
		WHERE id = ?
	`
	_, err := r.db.Exec(query, count, count, sessionID)
	return err
}

func (r *SessionRepository) scanSession(row *sql.Row) (*models.BotSession, error) {
	session := &models.BotSession{}
	var completedAt sql.NullTime
	var sessionData string

	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.ChildID,
		&session.TotalQuestions,
		&session.AnsweredQuestions,
		&session.Status,
		&sessionData,
		&session.StartedAt,
		&completedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		session.CompletedAt = &completedAt.Time
	}

	session.SessionData = map[string]string{}
	if sessionData != "" {
		if err := json.Unmarshal([]byte(sessionData), &session.SessionData); err != nil {
			return nil, fmt.Errorf("failed to decode session data: %w", err)
		}
	}

	return session, nil
}
