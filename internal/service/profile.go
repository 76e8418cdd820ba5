package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

// Identity is the signed-in user as asserted by the access token.
type Identity struct {
	UserID string
	Email  string
}

type ProfileService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewProfileService(repo repository.Repository, logger *logger.Logger) *ProfileService {
	return &ProfileService{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the caller's profile, creating it on first access.
func (s *ProfileService) Get(ctx context.Context, identity Identity) (*domain.UserProfile, error) {
	if identity.UserID == "" {
		return nil, domain.NewValidationError("user_id", "is required")
	}

	profile, err := s.repo.UserProfile().GetByID(ctx, identity.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeError("get profile", err)
	}

	profile = &domain.UserProfile{
		ID:     identity.UserID,
		Email:  identity.Email,
		Status: domain.DefaultProfileStatus,
	}
	if err := s.repo.UserProfile().Create(ctx, profile); err != nil {
		// Another request may have created it first
		existing, getErr := s.repo.UserProfile().GetByID(ctx, identity.UserID)
		if getErr != nil {
			return nil, storeError("create profile", err)
		}
		return existing, nil
	}

	s.logger.Info("profile created", zap.String("user_id", profile.ID))
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, identity Identity, fields domain.ProfileFields) (*domain.UserProfile, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.Get(ctx, identity)
	if err != nil {
		return nil, err
	}

	fields.Apply(profile)
	if err := s.repo.UserProfile().Update(ctx, profile); err != nil {
		return nil, storeError("update profile", err)
	}
	return profile, nil
}
