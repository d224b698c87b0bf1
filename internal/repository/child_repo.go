package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
)

// ChildRepository handles database operations for child profiles
type ChildRepository struct {
	db database.DBTX
}

// NewChildRepository creates a new child repository
func NewChildRepository(db database.DBTX) *ChildRepository {
	return &ChildRepository{db: db}
}

// CreateChild creates a new child profile for a user
func (r *ChildRepository) CreateChild(userID int64, name string, birthDate *time.Time) (*models.Child, error) {
	query := "INSERT INTO children (user_id, name, birth_date) VALUES (?, ?, ?)"
	id, err := r.db.ExecReturningID(query, userID, name, birthDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}

	return &models.Child{
		ID:        id,
		UserID:    userID,
		Name:      name,
		BirthDate: birthDate,
		CreatedAt: time.Now(),
	}, nil
}

// GetChildByID retrieves a child by ID, returning nil when no row exists
func (r *ChildRepository) GetChildByID(childID int64) (*models.Child, error) {
	query := "SELECT id, user_id, name, birth_date, created_at FROM children WHERE id = ?"
	return r.scanChild(r.db.QueryRow(query, childID))
}

// GetChildForUser retrieves a child only if it belongs to the given user.
// Returns nil when the child does not exist or is owned by someone else.
func (r *ChildRepository) GetChildForUser(childID, userID int64) (*models.Child, error) {
	query := "SELECT id, user_id, name, birth_date, created_at FROM children WHERE id = ? AND user_id = ?"
	return r.scanChild(r.db.QueryRow(query, childID, userID))
}

func (r *ChildRepository) scanChild(row *sql.Row) (*models.Child, error) {
	child := &models.Child{}
	var birthDate sql.NullTime

	err := row.Scan(
		&child.ID,
		&child.UserID,
		&child.Name,
		&birthDate,
		&child.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if birthDate.Valid {
		child.BirthDate = &birthDate.Time
	}

	return child, nil
}
