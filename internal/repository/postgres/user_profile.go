package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

type UserProfileRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserProfileRepository(writerDB, readerDB *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// GetByID reads from the writer so a profile created on first access is visible immediately.
func (r *UserProfileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := r.writerDB.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	if profile.Status == "" {
		profile.Status = domain.DefaultProfileStatus
	}
	return r.writerDB.WithContext(ctx).Create(profile).Error
}

func (r *UserProfileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	return r.writerDB.WithContext(ctx).Save(profile).Error
}
