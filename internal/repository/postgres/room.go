package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

type RoomRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRoomRepository(writerDB, readerDB *gorm.DB) *RoomRepository {
	return &RoomRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	if room.Status == "" {
		room.Status = domain.RoomAvailable
	}
	return r.writerDB.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	if err := r.readerDB.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	room.UpdatedAt = time.Now()
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"name":        room.Name,
			"address":     room.Address,
			"description": room.Description,
			"price":       room.Price,
			"image_url":   room.ImageURL,
			"updated_at":  room.UpdatedAt,
		})
	return affectedOrNotFound(result)
}

// UpdateStatus sets status and the tenant back-reference. A nil tenantID clears it.
func (r *RoomRepository) UpdateStatus(ctx context.Context, id string, status domain.RoomStatus, tenantID *string) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"tenant_id":  tenantID,
			"updated_at": time.Now(),
		})
	return affectedOrNotFound(result)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return affectedOrNotFound(r.writerDB.WithContext(ctx).Delete(&domain.Room{}, "id = ?", id))
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	rooms := make([]domain.Room, 0)
	if err := r.readerDB.WithContext(ctx).Order("name ASC, created_at ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) FindByName(ctx context.Context, name string) ([]domain.Room, error) {
	rooms := make([]domain.Room, 0)
	if err := r.readerDB.WithContext(ctx).Where("name = ?", name).Order("created_at ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
