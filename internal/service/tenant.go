package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
	"github.com/kingrain94/rental-manager-api/pkg/utils"
)

// TenantService owns the tenancy ledger. Every tenant write and the room status
// writes it implies commit in one transaction.
type TenantService struct {
	notifier
	repo      repository.Repository
	occupancy *OccupancyService
	logger    *logger.Logger
}

func NewTenantService(repo repository.Repository, occupancy *OccupancyService, logger *logger.Logger) *TenantService {
	return &TenantService{
		repo:      repo,
		occupancy: occupancy,
		logger:    logger,
	}
}

func normalizeTenantFields(fields *domain.TenantFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}
	startDate, err := utils.NormalizeDate(fields.StartDate)
	if err != nil {
		return domain.NewValidationError("startDate", "must be a date in YYYY-MM-DD or RFC3339 format")
	}
	fields.StartDate = startDate
	return nil
}

func requireRoom(ctx context.Context, tx repository.PostgresRepository, roomNumber string) error {
	rooms, err := tx.Room().FindByName(ctx, roomNumber)
	if err != nil {
		return storeError("find rooms by name", err)
	}
	if len(rooms) == 0 {
		return fmt.Errorf("%w: %q", ErrRoomNotFound, roomNumber)
	}
	return nil
}

// Create registers a tenant and marks the referenced room rented.
func (s *TenantService) Create(ctx context.Context, fields domain.TenantFields) (*domain.Tenant, error) {
	if err := normalizeTenantFields(&fields); err != nil {
		return nil, err
	}

	tenant := &domain.Tenant{}
	fields.Apply(tenant)

	var changed []domain.Room
	err := s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		if err := requireRoom(ctx, tx, fields.RoomNumber); err != nil {
			return err
		}
		if err := tx.Tenant().Create(ctx, tenant); err != nil {
			return storeError("create tenant", err)
		}
		var err error
		changed, err = s.occupancy.markRented(ctx, tx, tenant.RoomNumber, tenant.ID)
		return err
	})
	if err != nil {
		return nil, passThrough("create tenant", err)
	}

	s.logger.Info("tenant created",
		zap.String("tenant_id", tenant.ID),
		zap.String("room_number", tenant.RoomNumber))
	s.occupancy.reindex(ctx, changed)
	s.changed(ctx, domain.CollectionTenants, domain.CollectionRooms)
	return tenant, nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("tenant", id)
		}
		return nil, storeError("get tenant", err)
	}
	return tenant, nil
}

func (s *TenantService) List(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, storeError("list tenants", err)
	}
	return tenants, nil
}

// Update replaces the tenant's fields. Moving to another room number marks the new room
// rented and frees the old one once nobody references it.
func (s *TenantService) Update(ctx context.Context, id string, fields domain.TenantFields) (*domain.Tenant, error) {
	if err := normalizeTenantFields(&fields); err != nil {
		return nil, err
	}

	var (
		tenant  *domain.Tenant
		changed []domain.Room
	)
	err := s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		existing, err := tx.Tenant().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("tenant", id)
			}
			return storeError("get tenant", err)
		}
		if err := requireRoom(ctx, tx, fields.RoomNumber); err != nil {
			return err
		}

		previousRoom := existing.RoomNumber
		fields.Apply(existing)
		if err := tx.Tenant().Update(ctx, existing); err != nil {
			return storeError("update tenant", err)
		}
		tenant = existing

		if previousRoom == existing.RoomNumber {
			return nil
		}
		rented, err := s.occupancy.markRented(ctx, tx, existing.RoomNumber, existing.ID)
		if err != nil {
			return err
		}
		released, err := s.occupancy.releaseIfVacant(ctx, tx, previousRoom)
		if err != nil {
			return err
		}
		changed = append(rented, released...)
		return nil
	})
	if err != nil {
		return nil, passThrough("update tenant", err)
	}

	s.occupancy.reindex(ctx, changed)
	s.changed(ctx, domain.CollectionTenants, domain.CollectionRooms)
	return tenant, nil
}

// Delete removes the tenant and frees roomNumber unless another tenant still references it.
// An empty roomNumber is taken from the stored tenant. When roomNumber is given, a tenant
// that is already gone is not an error and the room is still freed.
func (s *TenantService) Delete(ctx context.Context, id, roomNumber string) error {
	var changed []domain.Room
	err := s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		if roomNumber == "" {
			existing, err := tx.Tenant().GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return notFound("tenant", id)
				}
				return storeError("get tenant", err)
			}
			roomNumber = existing.RoomNumber
		}

		deleted, err := tx.Tenant().Delete(ctx, id)
		if err != nil {
			return storeError("delete tenant", err)
		}
		if deleted == 0 {
			s.logger.Info("tenant already deleted", zap.String("tenant_id", id))
		}

		changed, err = s.occupancy.releaseIfVacant(ctx, tx, roomNumber)
		return err
	})
	if err != nil {
		return passThrough("delete tenant", err)
	}

	s.occupancy.reindex(ctx, changed)
	s.changed(ctx, domain.CollectionTenants, domain.CollectionRooms)
	return nil
}
