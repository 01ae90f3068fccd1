package domain

// User represents an authenticated member of the platform.
type User struct {
	UserID       string `json:"userID"` // Primary Key (e.g., UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
