package repositories

import (
	"context"
	"time"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// EventReader defines read operations for event data.
type EventReader interface {
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEventsByClub(ctx context.Context, clubID string) ([]domain.Event, error)
	ListEventsByCampaign(ctx context.Context, campaignID string) ([]domain.Event, error)
	// SumEventRollups sums the current denormalized rollup columns of a
	// campaign's child events.
	SumEventRollups(ctx context.Context, campaignID string) (domain.ScopeTotals, error)
	// ListOutstandingImpactEvents returns the club's ended events whose impact
	// reporting is still pending or in progress and whose event date falls on
	// or after windowStart.
	ListOutstandingImpactEvents(ctx context.Context, clubID string, windowStart time.Time) ([]domain.Event, error)
}

// EventWriter defines write operations for event data.
type EventWriter interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	UpdateEventStatus(ctx context.Context, eventID string, status domain.EventStatus, updatedBy string, updatedAt time.Time) error
	UpdateEventImpactStatus(ctx context.Context, eventID string, status domain.ImpactReportingStatus, updatedBy string, updatedAt time.Time) error
	// UpdateEventRollup overwrites the denormalized rollup columns in place.
	UpdateEventRollup(ctx context.Context, eventID string, rollup domain.EventRollup, updatedBy string, updatedAt time.Time) error
}

// EventRepositoryFacade combines all event repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
