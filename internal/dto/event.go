package dto

import (
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEventRequest defines the data needed to create an event.
type CreateEventRequest struct {
	CampaignID  *string   `json:"campaignID"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID       string                       `json:"eventID"`
	ClubID        string                       `json:"clubID"`
	CampaignID    *string                      `json:"campaignID,omitempty"`
	Name          string                       `json:"name"`
	Description   string                       `json:"description"`
	EventDate     time.Time                    `json:"eventDate"`
	Status        domain.EventStatus           `json:"status"`
	ImpactStatus  domain.ImpactReportingStatus `json:"impactStatus"`
	ActualAmount  decimal.Decimal              `json:"actualAmount"`
	TotalExpenses decimal.Decimal              `json:"totalExpenses"`
	NetProfit     decimal.Decimal              `json:"netProfit"`
}

// ToEventResponse converts a domain.Event to EventResponse.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:       e.EventID,
		ClubID:        e.ClubID,
		CampaignID:    e.CampaignID,
		Name:          e.Name,
		Description:   e.Description,
		EventDate:     e.EventDate,
		Status:        e.Status,
		ImpactStatus:  e.ImpactStatus,
		ActualAmount:  e.ActualAmount,
		TotalExpenses: e.TotalExpenses,
		NetProfit:     e.NetProfit,
	}
}

// ToEventResponses converts a slice of events.
func ToEventResponses(events []domain.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return responses
}
