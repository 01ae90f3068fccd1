package domain

import "time"

// Club represents a fundraising organisation: the tenant that owns events,
// campaigns, ledger entries and impact records.
type Club struct {
	ClubID      string `json:"clubID"`      // Primary Key (e.g., UUID)
	Name        string `json:"name"`        // User-defined name for the club
	Description string `json:"description"` // Optional description
	IsActive    bool   `json:"isActive"`    // Indicates whether the club is active or disabled
	AuditFields        // Embed common audit fields
}

// UserClubRole defines the possible roles a user can have within a club.
type UserClubRole string

const (
	RoleAdmin    UserClubRole = "ADMIN"
	RoleMember   UserClubRole = "MEMBER"
	RoleReadOnly UserClubRole = "READONLY" // Users with read-only access to club data
	RoleRemoved  UserClubRole = "REMOVED"  // For users who have been removed from the club
)

// UserClub represents the membership of a User in a Club.
type UserClub struct {
	UserID   string       `json:"userID"`   // FK -> users.user_id
	UserName string       `json:"userName"` // Name of the user
	ClubID   string       `json:"clubID"`   // FK -> clubs.club_id
	Role     UserClubRole `json:"role"`     // Role of the user in this specific club
	JoinedAt time.Time    `json:"joinedAt"` // Timestamp when the user joined the club
}
