package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/clubraise/clubraise_backend/internal/apperrors"
	"github.com/clubraise/clubraise_backend/internal/core/domain"
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/dto"
	"github.com/clubraise/clubraise_backend/internal/utils/proofscore"
	"github.com/google/uuid"
)

// impactService implements the ImpactSvcFacade interface: impact record CRUD
// and the draft -> published -> final state machine.
type impactService struct {
	BaseService
	impactRepo     portsrepo.ImpactRepositoryFacade
	impactAreaRepo portsrepo.ImpactAreaRepositoryFacade
	eventRepo      portsrepo.EventRepositoryFacade
	campaignRepo   portsrepo.CampaignRepositoryFacade
}

// NewImpactService creates a new impact service with the provided dependencies
func NewImpactService(
	impactRepo portsrepo.ImpactRepositoryFacade,
	impactAreaRepo portsrepo.ImpactAreaRepositoryFacade,
	eventRepo portsrepo.EventRepositoryFacade,
	campaignRepo portsrepo.CampaignRepositoryFacade,
	authorizer portssvc.ClubAuthorizerSvc,
) portssvc.ImpactSvcFacade {
	return &impactService{
		BaseService:    BaseService{ClubAuthorizer: authorizer},
		impactRepo:     impactRepo,
		impactAreaRepo: impactAreaRepo,
		eventRepo:      eventRepo,
		campaignRepo:   campaignRepo,
	}
}

var _ portssvc.ImpactSvcFacade = (*impactService)(nil)

// resolveImpactScope verifies the record's scope: it must name exactly one
// event or campaign of the club. Club-wide impact records do not exist.
func (s *impactService) resolveImpactScope(ctx context.Context, clubID string, ref dto.ScopeRef) (domain.Scope, error) {
	scope, err := domain.NewScope(ref.EventID, ref.CampaignID)
	if err != nil {
		return domain.Scope{}, err
	}

	switch scope.Level {
	case domain.ScopeEvent:
		event, err := s.eventRepo.FindEventByID(ctx, scope.EventID)
		if err != nil {
			return domain.Scope{}, err
		}
		if event.ClubID != clubID {
			return domain.Scope{}, apperrors.NewNotFoundError("event not found")
		}
	case domain.ScopeCampaign:
		campaign, err := s.campaignRepo.FindCampaignByID(ctx, scope.CampaignID)
		if err != nil {
			return domain.Scope{}, err
		}
		if campaign.ClubID != clubID {
			return domain.Scope{}, apperrors.NewNotFoundError("campaign not found")
		}
	default:
		return domain.Scope{}, apperrors.NewValidationFailedError("an impact record must reference an event or a campaign")
	}
	return scope, nil
}

// validateAreas checks the referenced impact areas all exist.
func (s *impactService) validateAreas(ctx context.Context, areaIDs []string) error {
	for _, id := range areaIDs {
		if strings.TrimSpace(id) == "" {
			return apperrors.NewValidationFailedError("impact area ids must be non-empty")
		}
	}
	areas, err := s.impactAreaRepo.FindImpactAreasByIDs(ctx, areaIDs)
	if err != nil {
		return err
	}
	for _, id := range areaIDs {
		if _, ok := areas[id]; !ok {
			return apperrors.NewNotFoundError("impact area " + id + " not found")
		}
	}
	return nil
}

// validateMetrics rejects non-positive metric values.
func validateMetrics(metrics []domain.ImpactMetric) error {
	for _, m := range metrics {
		if !m.Value.IsPositive() {
			return apperrors.NewValidationFailedError("metric values must be greater than zero")
		}
	}
	return nil
}

// CreateImpact creates a draft impact record for an event or campaign.
func (s *impactService) CreateImpact(ctx context.Context, clubID string, req dto.CreateImpactRequest, creatorUserID string) (*domain.ImpactRecord, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	scope, err := s.resolveImpactScope(ctx, clubID, req.ScopeRef)
	if err != nil {
		return nil, err
	}
	if err := s.validateAreas(ctx, req.ImpactAreaIDs); err != nil {
		return nil, err
	}

	metrics := dto.ToDomainMetrics(req.Metrics)
	if err := validateMetrics(metrics); err != nil {
		return nil, err
	}
	if req.AmountSpent != nil && req.AmountSpent.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount spent must not be negative")
	}

	now := time.Now()
	record := domain.ImpactRecord{
		ImpactID:      uuid.NewString(),
		ClubID:        clubID,
		Scope:         scope,
		ImpactAreaIDs: req.ImpactAreaIDs,
		Title:         req.Title,
		Description:   req.Description,
		ImpactDate:    req.ImpactDate,
		Location:      req.Location,
		Metrics:       metrics,
		AmountSpent:   req.AmountSpent,
		Proof:         dto.ToDomainProof(req.Proof),
		Status:        domain.ImpactDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.impactRepo.SaveImpact(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save impact record",
			slog.String("impact_id", record.ImpactID))
		return nil, err
	}

	s.LogInfo(ctx, "Impact record created",
		slog.String("impact_id", record.ImpactID),
		slog.String("club_id", clubID))
	return &record, nil
}

// GetImpactByID retrieves an impact record, verifying club ownership.
func (s *impactService) GetImpactByID(ctx context.Context, clubID, impactID string, userID string) (*domain.ImpactRecord, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findClubImpact(ctx, clubID, impactID)
}

// ListImpactsByScope lists the records attached to one event or campaign.
func (s *impactService) ListImpactsByScope(ctx context.Context, clubID string, scope domain.Scope, userID string) ([]domain.ImpactRecord, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if scope.IsClub() {
		return nil, apperrors.NewValidationFailedError("impact records are listed per event or campaign")
	}

	records, err := s.impactRepo.ListImpactsByScope(ctx, scope, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list impact records")
		return nil, err
	}

	// Scope listing is still tenant-checked; a scope owned by another club
	// yields records whose club differs and is rejected wholesale.
	for i := range records {
		if records[i].ClubID != clubID {
			return nil, apperrors.NewNotFoundError("impact records not found")
		}
	}
	if records == nil {
		return []domain.ImpactRecord{}, nil
	}
	return records, nil
}

// UpdateImpact updates a draft record. Only the creator may edit it, and only
// while it is a draft.
func (s *impactService) UpdateImpact(ctx context.Context, clubID, impactID string, req dto.UpdateImpactRequest, userID string) (*domain.ImpactRecord, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	record, err := s.findClubImpact(ctx, clubID, impactID)
	if err != nil {
		return nil, err
	}
	if record.CreatedBy != userID {
		return nil, apperrors.NewForbiddenError("only the creator may edit an impact record")
	}
	if record.Status != domain.ImpactDraft {
		return nil, apperrors.NewConflictError("only draft impact records can be edited")
	}

	if req.ImpactAreaIDs != nil {
		if err := s.validateAreas(ctx, req.ImpactAreaIDs); err != nil {
			return nil, err
		}
		record.ImpactAreaIDs = req.ImpactAreaIDs
	}
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.ImpactDate != nil {
		record.ImpactDate = *req.ImpactDate
	}
	if req.Location != nil {
		record.Location = req.Location
	}
	if req.Metrics != nil {
		metrics := dto.ToDomainMetrics(req.Metrics)
		if err := validateMetrics(metrics); err != nil {
			return nil, err
		}
		record.Metrics = metrics
	}
	if req.AmountSpent != nil {
		if req.AmountSpent.IsNegative() {
			return nil, apperrors.NewValidationFailedError("amount spent must not be negative")
		}
		record.AmountSpent = req.AmountSpent
	}
	if req.Proof != nil {
		if len(req.Proof.Media) == 0 {
			return nil, apperrors.NewValidationFailedError("proof must keep at least one photo or video")
		}
		record.Proof = dto.ToDomainProof(*req.Proof)
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = userID

	if err := s.impactRepo.UpdateImpact(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update impact record",
			slog.String("impact_id", impactID))
		return nil, err
	}
	return record, nil
}

// DeleteImpact removes a draft record. Creator only.
func (s *impactService) DeleteImpact(ctx context.Context, clubID, impactID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleMember); err != nil {
		return err
	}

	record, err := s.findClubImpact(ctx, clubID, impactID)
	if err != nil {
		return err
	}
	if record.CreatedBy != userID {
		return apperrors.NewForbiddenError("only the creator may delete an impact record")
	}
	if record.Status != domain.ImpactDraft {
		return apperrors.NewConflictError("only draft impact records can be deleted")
	}

	if err := s.impactRepo.DeleteImpact(ctx, impactID); err != nil {
		s.LogError(ctx, err, "Failed to delete impact record",
			slog.String("impact_id", impactID))
		return err
	}

	s.LogInfo(ctx, "Impact record deleted",
		slog.String("impact_id", impactID),
		slog.String("club_id", clubID))
	return nil
}

// PublishImpact moves a draft to published. The record must carry at least
// one photo/video or one valid metric, and a reported spend must be backed by
// a receipt or invoice on this record.
func (s *impactService) PublishImpact(ctx context.Context, clubID, impactID string, userID string) (*domain.ImpactRecord, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	record, err := s.findClubImpact(ctx, clubID, impactID)
	if err != nil {
		return nil, err
	}
	if record.CreatedBy != userID {
		return nil, apperrors.NewForbiddenError("only the creator may publish an impact record")
	}
	if record.Status != domain.ImpactDraft {
		return nil, apperrors.NewConflictError("only draft impact records can be published")
	}

	var missing []string
	if len(record.Proof.Media) == 0 && proofscore.ValidMetricCount(record.Metrics) == 0 {
		missing = append(missing, "at least one photo/video or one measurable metric")
	}
	if record.SpentAmount().IsPositive() &&
		len(record.Proof.Receipts) == 0 && len(record.Proof.Invoices) == 0 {
		missing = append(missing, proofscore.MissingSpendEvidence)
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationFailedError(
			"cannot publish, missing: " + strings.Join(missing, "; "))
	}

	now := time.Now()
	record.Status = domain.ImpactPublished
	record.PublishedAt = &now
	record.LastUpdatedAt = now
	record.LastUpdatedBy = userID

	if err := s.impactRepo.UpdateImpact(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to publish impact record",
			slog.String("impact_id", impactID))
		return nil, err
	}

	s.advanceScopeImpactStatus(ctx, record.Scope, domain.ImpactInProgress, userID, now)

	s.LogInfo(ctx, "Impact record published",
		slog.String("impact_id", impactID),
		slog.String("club_id", clubID))
	return record, nil
}

// CanMarkAsFinal reports whether the record could be finalized right now,
// without changing anything. The same checks gate MarkAsFinal.
func (s *impactService) CanMarkAsFinal(ctx context.Context, clubID, impactID string, userID string) (*dto.CanFinalizeResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	record, err := s.findClubImpact(ctx, clubID, impactID)
	if err != nil {
		return nil, err
	}
	// Mirrors the MarkAsFinal restriction so the answer holds for this user.
	if record.CreatedBy != userID {
		return &dto.CanFinalizeResponse{Allowed: false, Reason: "only the creator may finalize an impact record"}, nil
	}

	resp, _, err := s.checkFinalizable(ctx, record)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// MarkAsFinal finalizes a published record after aggregate scoring across all
// published records for its scope, and completes the owning entity's impact
// reporting.
func (s *impactService) MarkAsFinal(ctx context.Context, clubID, impactID string, userID string) (*domain.ImpactRecord, error) {
	if err := s.AuthorizeUser(ctx, userID, clubID, domain.RoleMember); err != nil {
		return nil, err
	}

	record, err := s.findClubImpact(ctx, clubID, impactID)
	if err != nil {
		return nil, err
	}
	if record.CreatedBy != userID {
		return nil, apperrors.NewForbiddenError("only the creator may finalize an impact record")
	}

	resp, result, err := s.checkFinalizable(ctx, record)
	if err != nil {
		return nil, err
	}
	if !resp.Allowed {
		// A scoring shortfall is a validation failure; a state problem
		// (wrong status, sibling final) is a conflict.
		if result != nil {
			return nil, apperrors.NewValidationFailedError(resp.Reason)
		}
		return nil, apperrors.NewConflictError(resp.Reason)
	}

	now := time.Now()
	record.Status = domain.ImpactFinal
	record.IsFinal = true
	record.LastUpdatedAt = now
	record.LastUpdatedBy = userID

	if err := s.impactRepo.UpdateImpact(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to finalize impact record",
			slog.String("impact_id", impactID))
		return nil, err
	}

	s.advanceScopeImpactStatus(ctx, record.Scope, domain.ImpactComplete, userID, now)

	s.LogInfo(ctx, "Impact record finalized",
		slog.String("impact_id", impactID),
		slog.String("club_id", clubID),
		slog.Int("aggregate_score", result.Score))
	return record, nil
}

// checkFinalizable runs the shared finalization checks: the record must be
// published, its scope must not already have a final record, and the pooled
// evidence of all published records for the scope must score at or above the
// threshold with nothing missing.
func (s *impactService) checkFinalizable(ctx context.Context, record *domain.ImpactRecord) (*dto.CanFinalizeResponse, *proofscore.Result, error) {
	if record.Status == domain.ImpactFinal {
		return &dto.CanFinalizeResponse{Allowed: false, Reason: "record is already final"}, nil, nil
	}
	if record.Status != domain.ImpactPublished {
		return &dto.CanFinalizeResponse{Allowed: false, Reason: "only published records can be finalized"}, nil, nil
	}

	existing, err := s.impactRepo.FindFinalForScope(ctx, record.Scope)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, err
	}
	if existing != nil {
		return &dto.CanFinalizeResponse{Allowed: false, Reason: "this event or campaign already has a final impact record"}, nil, nil
	}

	published, err := s.impactRepo.ListImpactsByScope(ctx, record.Scope,
		[]domain.ImpactRecordStatus{domain.ImpactPublished})
	if err != nil {
		return nil, nil, err
	}

	result := proofscore.Aggregate(published)
	resp := &dto.CanFinalizeResponse{
		Allowed:    result.Complete(),
		Validation: &result,
	}
	if !resp.Allowed {
		if len(result.MissingElements) > 0 {
			resp.Reason = "missing: " + strings.Join(result.MissingElements, "; ")
		} else {
			resp.Reason = "aggregate evidence score is below the finalization threshold"
		}
	}
	return resp, &result, nil
}

// advanceScopeImpactStatus moves the owning event or campaign's impact
// reporting status forward. The status only ever advances: publishing lifts
// PENDING to IN_PROGRESS and a COMPLETE scope keeps its status when further
// records are published. Failures are logged, not surfaced: the record
// transition already committed and the status converges on the next
// transition.
func (s *impactService) advanceScopeImpactStatus(ctx context.Context, scope domain.Scope, status domain.ImpactReportingStatus, userID string, now time.Time) {
	var err error
	switch scope.Level {
	case domain.ScopeEvent:
		event, ferr := s.eventRepo.FindEventByID(ctx, scope.EventID)
		if ferr != nil {
			err = ferr
			break
		}
		if !impactStatusAdvances(event.ImpactStatus, status) {
			return
		}
		err = s.eventRepo.UpdateEventImpactStatus(ctx, scope.EventID, status, userID, now)
	case domain.ScopeCampaign:
		campaign, ferr := s.campaignRepo.FindCampaignByID(ctx, scope.CampaignID)
		if ferr != nil {
			err = ferr
			break
		}
		if !impactStatusAdvances(campaign.ImpactStatus, status) {
			return
		}
		err = s.campaignRepo.UpdateCampaignImpactStatus(ctx, scope.CampaignID, status, userID, now)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to advance impact reporting status",
			slog.String("status", string(status)))
	}
}

// impactStatusAdvances reports whether writing next over current moves the
// reporting status forward. PENDING -> IN_PROGRESS -> COMPLETE, never back.
func impactStatusAdvances(current, next domain.ImpactReportingStatus) bool {
	switch next {
	case domain.ImpactInProgress:
		return current == domain.ImpactPending
	case domain.ImpactComplete:
		return current != domain.ImpactComplete
	}
	return false
}

// findClubImpact loads a record and verifies club ownership.
func (s *impactService) findClubImpact(ctx context.Context, clubID, impactID string) (*domain.ImpactRecord, error) {
	record, err := s.impactRepo.FindImpactByID(ctx, impactID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find impact record",
				slog.String("impact_id", impactID))
		}
		return nil, err
	}
	if record.ClubID != clubID {
		return nil, apperrors.NewNotFoundError("impact record not found")
	}
	return record, nil
}
