package models

import "time"

// User represents an account holder (a parent or caregiver).
// Account lifecycle and credentials are managed by the account service;
// this backend only reads identity rows.
type User struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt time.Time
}
