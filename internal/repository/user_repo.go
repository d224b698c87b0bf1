package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/models"
)

// UserRepository handles database operations for account holders
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user row
func (r *UserRepository) CreateUser(email, name string) (*models.User, error) {
	query := "INSERT INTO users (email, name) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, email, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.User{
		ID:        id,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}

// GetUserByID retrieves a user by ID, returning nil when no row exists
func (r *UserRepository) GetUserByID(userID int64) (*models.User, error) {
	query := "SELECT id, email, name, created_at FROM users WHERE id = ?"

	user := &models.User{}
	err := r.db.QueryRow(query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
