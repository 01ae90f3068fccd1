package services

import (
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	portssvc "github.com/clubraise/clubraise_backend/internal/core/ports/services"
	"github.com/clubraise/clubraise_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Club service first since everything else hangs authorization off it
	container.Club = NewClubService(repos.ClubRepo)
	authorizer := container.Club.(portssvc.ClubAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, container.User)

	container.Trust = NewTrustService(repos.EventRepo, authorizer)
	container.Event = NewEventService(repos.EventRepo, repos.CampaignRepo, authorizer)
	container.Campaign = NewCampaignService(repos.CampaignRepo, container.Trust, authorizer)

	container.Rollup = NewRollupService(repos.LedgerRepo, repos.EventRepo, repos.CampaignRepo)
	container.Finance = NewFinanceService(
		repos.LedgerRepo,
		repos.EventRepo,
		repos.CampaignRepo,
		repos.SummaryRepo,
		container.Rollup,
		authorizer,
	)

	container.ImpactArea = NewImpactAreaService(repos.ImpactAreaRepo)
	container.Impact = NewImpactService(
		repos.ImpactRepo,
		repos.ImpactAreaRepo,
		repos.EventRepo,
		repos.CampaignRepo,
		authorizer,
	)

	return container
}
