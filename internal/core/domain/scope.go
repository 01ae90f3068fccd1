package domain

import "github.com/clubraise/clubraise_backend/internal/apperrors"

// ScopeLevel identifies which level of the club hierarchy a record is attached to.
type ScopeLevel string

const (
	ScopeClub     ScopeLevel = "CLUB"
	ScopeCampaign ScopeLevel = "CAMPAIGN"
	ScopeEvent    ScopeLevel = "EVENT"
)

// Scope is the tagged union ClubScope | CampaignScope(id) | EventScope(id).
// Exactly one of CampaignID/EventID is set for the respective level; both are
// empty for club-level records. Construct through the helpers below so the
// "both set" state cannot be produced.
type Scope struct {
	Level      ScopeLevel `json:"level"`
	CampaignID string     `json:"campaignID,omitempty"`
	EventID    string     `json:"eventID,omitempty"`
}

// ClubScope returns the club-wide (unscoped) scope.
func ClubScope() Scope {
	return Scope{Level: ScopeClub}
}

// CampaignScope returns a scope bound to a campaign.
func CampaignScope(campaignID string) Scope {
	return Scope{Level: ScopeCampaign, CampaignID: campaignID}
}

// EventScope returns a scope bound to an event.
func EventScope(eventID string) Scope {
	return Scope{Level: ScopeEvent, EventID: eventID}
}

// NewScope builds a scope from the nullable identifier pair used on the wire
// and in the persisted layout. It rejects the dual-binding case.
func NewScope(eventID, campaignID *string) (Scope, error) {
	hasEvent := eventID != nil && *eventID != ""
	hasCampaign := campaignID != nil && *campaignID != ""
	switch {
	case hasEvent && hasCampaign:
		return Scope{}, apperrors.NewConflictError("a record may reference an event or a campaign, not both")
	case hasEvent:
		return EventScope(*eventID), nil
	case hasCampaign:
		return CampaignScope(*campaignID), nil
	default:
		return ClubScope(), nil
	}
}

// Validate checks the tag/payload pairing is consistent.
func (s Scope) Validate() error {
	switch s.Level {
	case ScopeClub:
		if s.CampaignID != "" || s.EventID != "" {
			return apperrors.NewValidationFailedError("club scope must not carry an entity reference")
		}
	case ScopeCampaign:
		if s.CampaignID == "" || s.EventID != "" {
			return apperrors.NewValidationFailedError("campaign scope requires exactly a campaign reference")
		}
	case ScopeEvent:
		if s.EventID == "" || s.CampaignID != "" {
			return apperrors.NewValidationFailedError("event scope requires exactly an event reference")
		}
	default:
		return apperrors.NewValidationFailedError("unknown scope level " + string(s.Level))
	}
	return nil
}

// IsClub reports whether the scope is club-wide.
func (s Scope) IsClub() bool { return s.Level == ScopeClub }
