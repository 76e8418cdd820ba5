package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(tenant).Error
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	tenant.UpdatedAt = time.Now()
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Tenant{}).
		Where("id = ?", tenant.ID).
		Updates(map[string]any{
			"name":        tenant.Name,
			"phone":       tenant.Phone,
			"room_number": tenant.RoomNumber,
			"start_date":  tenant.StartDate,
			"notes":       tenant.Notes,
			"updated_at":  tenant.UpdatedAt,
		})
	return affectedOrNotFound(result)
}

func (r *TenantRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.writerDB.WithContext(ctx).Delete(&domain.Tenant{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	tenants := make([]domain.Tenant, 0)
	if err := r.readerDB.WithContext(ctx).Order("created_at ASC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepository) FindByRoomNumber(ctx context.Context, roomNumber string) ([]domain.Tenant, error) {
	tenants := make([]domain.Tenant, 0)
	if err := r.readerDB.WithContext(ctx).
		Where("room_number = ?", roomNumber).
		Order("created_at ASC").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
