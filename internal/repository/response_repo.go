package repository

import (
	"database/sql"
	"fmt"

	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
)

// ResponseRepository handles journey bot response database operations
type ResponseRepository struct {
	db database.DBTX
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db database.DBTX) *ResponseRepository {
	return &ResponseRepository{db: db}
}

const responseColumns = `id, session_id, user_id, child_id, question_id,
	       answer, answer_text, responded_at`

// InsertResponse records one answer for a (session, question) pair.
// The UNIQUE(session_id, question_id) constraint is the duplicate guard:
// when it fires, the previously stored response is returned with
// created == false and no new row is written.
func (r *ResponseRepository) InsertResponse(sessionID, userID, childID int64, questionID string, answer int, answerText string) (*models.BotResponse, bool, error) {
	query := `
		INSERT INTO journey_bot_responses (session_id, user_id, child_id, question_id, answer, answer_text)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, sessionID, userID, childID, questionID, answer, answerText)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			existing, getErr := r.GetBySessionAndQuestion(sessionID, questionID)
			if getErr != nil {
				return nil, false, getErr
			}
			if existing == nil {
				// Row vanished between the violation and the read;
				// surface the original constraint error.
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to insert response: %w", err)
	}

	created, err := r.getByID(id)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// GetBySessionAndQuestion retrieves the response for a (session, question)
// pair, returning nil when none exists.
func (r *ResponseRepository) GetBySessionAndQuestion(sessionID int64, questionID string) (*models.BotResponse, error) {
	query := "SELECT " + responseColumns + ` FROM journey_bot_responses
		WHERE session_id = ? AND question_id = ?`
	return r.scanResponse(r.db.QueryRow(query, sessionID, questionID))
}

// GetSessionResponses retrieves all responses for a session in answer order
func (r *ResponseRepository) GetSessionResponses(sessionID int64) ([]models.BotResponse, error) {
	query := "SELECT " + responseColumns + ` FROM journey_bot_responses
		WHERE session_id = ?
		ORDER BY responded_at ASC, id ASC`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []models.BotResponse
	for rows.Next() {
		var resp models.BotResponse
		err := rows.Scan(
			&resp.ID,
			&resp.SessionID,
			&resp.UserID,
			&resp.ChildID,
			&resp.QuestionID,
			&resp.Answer,
			&resp.AnswerText,
			&resp.RespondedAt,
		)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, rows.Err()
}

// CountForSession returns the true number of stored responses for a session
func (r *ResponseRepository) CountForSession(sessionID int64) (int, error) {
	query := "SELECT COUNT(*) FROM journey_bot_responses WHERE session_id = ?"

	var count int
	err := r.db.QueryRow(query, sessionID).Scan(&count)
	return count, err
}

func (r *ResponseRepository) getByID(id int64) (*models.BotResponse, error) {
	query := "SELECT " + responseColumns + " FROM journey_bot_responses WHERE id = ?"
	return r.scanResponse(r.db.QueryRow(query, id))
}

func (r *ResponseRepository) scanResponse(row *sql.Row) (*models.BotResponse, error) {
	resp := &models.BotResponse{}
	err := row.Scan(
		&resp.ID,
		&resp.SessionID,
		&resp.UserID,
		&resp.ChildID,
		&resp.QuestionID,
		&resp.Answer,
		&resp.AnswerText,
		&resp.RespondedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}
