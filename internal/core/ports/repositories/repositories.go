package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ClubRepo       ClubRepositoryFacade
	UserRepo       UserRepositoryFacade
	EventRepo      EventRepositoryFacade
	CampaignRepo   CampaignRepositoryFacade
	LedgerRepo     LedgerRepositoryFacade
	ImpactRepo     ImpactRepositoryFacade
	ImpactAreaRepo ImpactAreaRepositoryFacade
	SummaryRepo    SummaryRepositoryFacade
}
