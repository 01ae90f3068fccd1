package services

import (
	"context"

	"github.com/clubraise/clubraise_backend/internal/core/domain"
	"github.com/clubraise/clubraise_backend/internal/dto"
)

// ImpactSvcFacade is the impact record store and its publication state
// machine (draft -> published -> final).
type ImpactSvcFacade interface {
	CreateImpact(ctx context.Context, clubID string, req dto.CreateImpactRequest, creatorUserID string) (*domain.ImpactRecord, error)
	GetImpactByID(ctx context.Context, clubID, impactID string, userID string) (*domain.ImpactRecord, error)
	ListImpactsByScope(ctx context.Context, clubID string, scope domain.Scope, userID string) ([]domain.ImpactRecord, error)
	UpdateImpact(ctx context.Context, clubID, impactID string, req dto.UpdateImpactRequest, userID string) (*domain.ImpactRecord, error)
	DeleteImpact(ctx context.Context, clubID, impactID string, userID string) error

	// PublishImpact moves a draft to published after single-record scoring.
	PublishImpact(ctx context.Context, clubID, impactID string, userID string) (*domain.ImpactRecord, error)
	// CanMarkAsFinal reports whether the record could be finalized right now.
	CanMarkAsFinal(ctx context.Context, clubID, impactID string, userID string) (*dto.CanFinalizeResponse, error)
	// MarkAsFinal finalizes the record after aggregate scoring across all
	// published records for its scope.
	MarkAsFinal(ctx context.Context, clubID, impactID string, userID string) (*domain.ImpactRecord, error)
}

// TrustSvcFacade is the club-level trust gate: a read-only projection over
// ended events with outstanding impact obligations.
type TrustSvcFacade interface {
	CheckTrustStatus(ctx context.Context, clubID string, userID string) (*domain.TrustStatus, error)
	GetOutstandingImpactReports(ctx context.Context, clubID string, userID string) ([]domain.Event, error)
}

// ImpactAreaSvcFacade manages impact area reference data.
type ImpactAreaSvcFacade interface {
	CreateImpactArea(ctx context.Context, req dto.CreateImpactAreaRequest, creatorUserID string) (*domain.ImpactArea, error)
	GetImpactAreaByID(ctx context.Context, areaID string) (*domain.ImpactArea, error)
	ListImpactAreas(ctx context.Context) ([]domain.ImpactArea, error)
}
