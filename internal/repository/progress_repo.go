package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
)

// ProgressRepository handles journey progress database operations
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `id, user_id, child_id, journey_id, week_id,
	       completed_topics, completed_quizzes, progress, started_at, completed_at`

// EnsureRow creates the progress row for a (user, child, journey, week)
// tuple if it does not exist yet. A concurrent creation losing the
// UNIQUE(user_id, child_id, week_id) race is treated as success.
func (r *ProgressRepository) EnsureRow(userID, childID int64, journeyID, weekID string) error {
	query := `
		INSERT INTO user_journey_progress (user_id, child_id, journey_id, week_id, completed_topics, completed_quizzes, progress)
		VALUES (?, ?, ?, ?, '[]', '[]', 0)
	`

	_, err := r.db.Exec(query, userID, childID, journeyID, weekID)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to create progress row: %w", err)
	}
	return nil
}

// GetForWeek retrieves the progress row for a (user, child, week) tuple,
// returning nil when none exists.
func (r *ProgressRepository) GetForWeek(userID, childID int64, weekID string) (*models.WeekProgress, error) {
	query := "SELECT " + progressColumns + ` FROM user_journey_progress
		WHERE user_id = ? AND child_id = ? AND week_id = ?`
	return r.scanProgress(r.db.QueryRow(query, userID, childID, weekID))
}

// GetAllForPair retrieves every progress row for a (user, child) pair
func (r *ProgressRepository) GetAllForPair(userID, childID int64) ([]models.WeekProgress, error) {
	query := "SELECT " + progressColumns + ` FROM user_journey_progress
		WHERE user_id = ? AND child_id = ?
		ORDER BY started_at ASC, id ASC`

	rows, err := r.db.Query(query, userID, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.WeekProgress
	for rows.Next() {
		record, err := r.scanProgressRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// UpdateCompletion persists recomputed completion sets and percentage.
// The progress guard keeps the percentage monotonically non-decreasing,
// and completed_at is written at most once.
func (r *ProgressRepository) UpdateCompletion(id int64, topics, quizzes []string, progress float64, completedAt *time.Time) error {
	topicsJSON, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("failed to encode completed topics: %w", err)
	}
	quizzesJSON, err := json.Marshal(quizzes)
	if err != nil {
		return fmt.Errorf("failed to encode completed quizzes: %w", err)
	}

	query := `
		UPDATE user_journey_progress
		SET completed_topics = ?, completed_quizzes = ?, progress = ?,
		    completed_at = COALESCE(completed_at, ?)
		WHERE id = ? AND progress <= ?
	`

	_, err = r.db.Exec(query, string(topicsJSON), string(quizzesJSON), progress, completedAt, id, progress)
	return err
}

func (r *ProgressRepository) scanProgress(row *sql.Row) (*models.WeekProgress, error) {
	record, err := scanProgressFrom(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return record, err
}

func (r *ProgressRepository) scanProgressRows(rows *sql.Rows) (*models.WeekProgress, error) {
	return scanProgressFrom(rows.Scan)
}

func scanProgressFrom(scan func(dest ...interface{}) error) (*models.WeekProgress, error) {
	record := &models.WeekProgress{}
	var completedAt sql.NullTime
	var topicsJSON, quizzesJSON string

	err := scan(
		&record.ID,
		&record.UserID,
		&record.ChildID,
		&record.JourneyID,
		&record.WeekID,
		&topicsJSON,
		&quizzesJSON,
		&record.Progress,
		&record.StartedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		record.CompletedAt = &completedAt.Time
	}

	if err := json.Unmarshal([]byte(topicsJSON), &record.CompletedTopics); err != nil {
		return nil, fmt.Errorf("failed to decode completed topics: %w", err)
	}
	if err := json.Unmarshal([]byte(quizzesJSON), &record.CompletedQuizzes); err != nil {
		return nil, fmt.Errorf("failed to decode completed quizzes: %w", err)
	}

	return record, nil
}
