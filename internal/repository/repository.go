package repository

import (
	"context"
	"time"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

// Lookups that find nothing return gorm.ErrRecordNotFound; services translate it.

//go:generate mockery --name RoomRepository --output ../mocks
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	// Update writes the mutable fields only; status and tenant_id are left untouched.
	Update(ctx context.Context, room *domain.Room) error
	UpdateStatus(ctx context.Context, id string, status domain.RoomStatus, tenantID *string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Room, error)
	FindByName(ctx context.Context, name string) ([]domain.Room, error)
}

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	// Delete reports how many rows were removed.
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context) ([]domain.Tenant, error)
	FindByRoomNumber(ctx context.Context, roomNumber string) ([]domain.Tenant, error)
}

//go:generate mockery --name PaymentRepository --output ../mocks
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	// List returns every payment, newest first.
	List(ctx context.Context) ([]domain.Payment, error)
	// ListBetween returns payments dated in [start, end), newest first.
	ListBetween(ctx context.Context, start, end time.Time) ([]domain.Payment, error)
}

//go:generate mockery --name UserProfileRepository --output ../mocks
type UserProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	Create(ctx context.Context, profile *domain.UserProfile) error
	Update(ctx context.Context, profile *domain.UserProfile) error
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	EnsureIndex(ctx context.Context) error
	IndexRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, id string) error
	SearchRooms(ctx context.Context, query string, status domain.RoomStatus) ([]domain.Room, error)
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Room() RoomRepository
	Tenant() TenantRepository
	Payment() PaymentRepository
	UserProfile() UserProfileRepository
	// Transaction runs fn against repositories bound to a single database transaction.
	// Returning an error from fn rolls the transaction back.
	Transaction(ctx context.Context, fn func(tx PostgresRepository) error) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
