package repositories

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
)

// ImpactReader defines read operations for impact records.
type ImpactReader interface {
	FindImpactByID(ctx context.Context, impactID string) (*domain.ImpactRecord, error)
	// ListImpactsByScope returns the records attached to one event or
	// campaign scope, optionally filtered by status.
	ListImpactsByScope(ctx context.Context, scope domain.Scope, statuses []domain.ImpactRecordStatus) ([]domain.ImpactRecord, error)
	// FindFinalForScope returns the scope's final record, or ErrNotFound.
	FindFinalForScope(ctx context.Context, scope domain.Scope) (*domain.ImpactRecord, error)
}

// ImpactWriter defines write operations for impact records.
type ImpactWriter interface {
	SaveImpact(ctx context.Context, record domain.ImpactRecord) error
	UpdateImpact(ctx context.Context, record domain.ImpactRecord) error
	DeleteImpact(ctx context.Context, impactID string) error
}

// ImpactRepositoryFacade combines all impact record repository interfaces.
type ImpactRepositoryFacade interface {
	ImpactReader
	ImpactWriter
}

// ImpactAreaRepositoryFacade defines operations on impact area reference data.
type ImpactAreaRepositoryFacade interface {
	SaveImpactArea(ctx context.Context, area domain.ImpactArea) error
	FindImpactAreaByID(ctx context.Context, areaID string) (*domain.ImpactArea, error)
	FindImpactAreasByIDs(ctx context.Context, areaIDs []string) (map[string]domain.ImpactArea, error)
	ListImpactAreas(ctx context.Context) ([]domain.ImpactArea, error)
}
