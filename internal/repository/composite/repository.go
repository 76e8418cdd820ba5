package composite

import (
	"context"

	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/internal/repository/opensearch"
	"github.com/kingrain94/rental-manager-api/internal/repository/postgres"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	searchRepo   repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return New(postgres.NewPostgresRepository(dbConnections), opensearch.NewRepository(osClient, osConfig))
}

// New combines an existing relational repository with a search repository.
// A nil search repository is allowed for tools that never search.
func New(pg repository.PostgresRepository, search repository.SearchRepository) repository.Repository {
	return &compositeRepository{
		postgresRepo: pg,
		searchRepo:   search,
	}
}

func (r *compositeRepository) Room() repository.RoomRepository {
	return r.postgresRepo.Room()
}

func (r *compositeRepository) Tenant() repository.TenantRepository {
	return r.postgresRepo.Tenant()
}

func (r *compositeRepository) Payment() repository.PaymentRepository {
	return r.postgresRepo.Payment()
}

func (r *compositeRepository) UserProfile() repository.UserProfileRepository {
	return r.postgresRepo.UserProfile()
}

func (r *compositeRepository) Transaction(ctx context.Context, fn func(tx repository.PostgresRepository) error) error {
	return r.postgresRepo.Transaction(ctx, fn)
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
