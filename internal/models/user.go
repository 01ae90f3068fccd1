package models

import "time"

// User represents an authenticated member of the platform.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
