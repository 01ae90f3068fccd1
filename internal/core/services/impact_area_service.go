package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/google/uuid"
)

// impactAreaService implements the ImpactAreaSvcFacade interface. Impact
// areas are platform-wide reference data, not tenant data.
type impactAreaService struct {
	BaseService
	areaRepo portsrepo.ImpactAreaRepositoryFacade
}

// NewImpactAreaService creates a new impact area service
func NewImpactAreaService(areaRepo portsrepo.ImpactAreaRepositoryFacade) portssvc.ImpactAreaSvcFacade {
	return &impactAreaService{areaRepo: areaRepo}
}

var _ portssvc.ImpactAreaSvcFacade = (*impactAreaService)(nil)

// CreateImpactArea adds a new impact area to the reference set
func (s *impactAreaService) CreateImpactArea(ctx context.Context, req dto.CreateImpactAreaRequest, creatorUserID string) (*domain.ImpactArea, error) {
	now := time.Now()
	area := domain.ImpactArea{
		AreaID:      uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.areaRepo.SaveImpactArea(ctx, area); err != nil {
		s.LogError(ctx, err, "Failed to save impact area",
			slog.String("area_id", area.AreaID))
		return nil, err
	}
	return &area, nil
}

// GetImpactAreaByID retrieves one impact area
func (s *impactAreaService) GetImpactAreaByID(ctx context.Context, areaID string) (*domain.ImpactArea, error) {
	area, err := s.areaRepo.FindImpactAreaByID(ctx, areaID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find impact area",
				slog.String("area_id", areaID))
		}
		return nil, err
	}
	return area, nil
}

// ListImpactAreas retrieves all impact areas
func (s *impactAreaService) ListImpactAreas(ctx context.Context) ([]domain.ImpactArea, error) {
	areas, err := s.areaRepo.ListImpactAreas(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list impact areas")
		return nil, err
	}
	if areas == nil {
		return []domain.ImpactArea{}, nil
	}
	return areas, nil
}
