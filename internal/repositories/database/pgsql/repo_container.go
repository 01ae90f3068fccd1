package pgsql

import (
	portsrepo "github.com/clubraise/clubraise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClubRepo:       newPgxClubRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		EventRepo:      newPgxEventRepository(dbPool),
		CampaignRepo:   newPgxCampaignRepository(dbPool),
		LedgerRepo:     newPgxLedgerRepository(dbPool),
		ImpactRepo:     newPgxImpactRepository(dbPool),
		ImpactAreaRepo: newPgxImpactAreaRepository(dbPool),
		SummaryRepo:    newSummaryRepository(dbPool),
	}
}
