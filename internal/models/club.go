package models

import "time"

// Club represents a tenant boundary; every event, campaign, ledger entry and
// impact record belongs to exactly one club.
type Club struct {
	ClubID      string `db:"club_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// UserClubRole defines the role a user holds within a club.
type UserClubRole string

const (
	RoleAdmin    UserClubRole = "ADMIN"
	RoleMember   UserClubRole = "MEMBER"
	RoleReadOnly UserClubRole = "READONLY"
	RoleRemoved  UserClubRole = "REMOVED"
)

// UserClub is the membership row joining users to clubs with a role.
type UserClub struct {
	UserID   string       `db:"user_id"`
	UserName string       `db:"user_name"` // Joined from users; not a column of user_clubs
	ClubID   string       `db:"club_id"`
	Role     UserClubRole `db:"role"`
	JoinedAt time.Time    `db:"joined_at"`
}
