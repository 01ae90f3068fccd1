package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Club       ClubSvcFacade
	User       UserSvcFacade
	Auth       AuthSvcFacade
	Event      EventSvcFacade
	Campaign   CampaignSvcFacade
	Finance    FinanceSvcFacade
	Rollup     RollupSvcFacade
	Impact     ImpactSvcFacade
	Trust      TrustSvcFacade
	ImpactArea ImpactAreaSvcFacade
}
