package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/repository"
)

type postgresRepository struct {
	writerDB    *gorm.DB
	readerDB    *gorm.DB
	roomRepo    repository.RoomRepository
	tenantRepo  repository.TenantRepository
	paymentRepo repository.PaymentRepository
	profileRepo repository.UserProfileRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return newPostgresRepository(dbConnections.Writer, dbConnections.Reader)
}

func newPostgresRepository(writerDB, readerDB *gorm.DB) *postgresRepository {
	return &postgresRepository{
		writerDB:    writerDB,
		readerDB:    readerDB,
		roomRepo:    NewRoomRepository(writerDB, readerDB),
		tenantRepo:  NewTenantRepository(writerDB, readerDB),
		paymentRepo: NewPaymentRepository(writerDB, readerDB),
		profileRepo: NewUserProfileRepository(writerDB, readerDB),
	}
}

func (r *postgresRepository) Room() repository.RoomRepository {
	return r.roomRepo
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Payment() repository.PaymentRepository {
	return r.paymentRepo
}

func (r *postgresRepository) UserProfile() repository.UserProfileRepository {
	return r.profileRepo
}

// Transaction binds both reader and writer to the transaction so reads inside fn
// observe the writes made before them.
func (r *postgresRepository) Transaction(ctx context.Context, fn func(tx repository.PostgresRepository) error) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newPostgresRepository(tx, tx))
	})
}
