package models

import "time"

// Child represents a child profile owned by a user
type Child struct {
	ID        int64
	UserID    int64
	Name      string
	BirthDate *time.Time
	CreatedAt time.Time
}
