package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

func TestProfileGet_CreatesOnFirstAccess(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := newTestRepository(t)
	svc := NewProfileService(repo, testLogger)
	identity := Identity{UserID: "auth0|64b7f1", Email: "linh@example.com"}

	// Act
	first, err := svc.Get(ctx, identity)
	require.NoError(t, err)
	second, err := svc.Get(ctx, identity)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "auth0|64b7f1", first.ID)
	assert.Equal(t, "linh@example.com", first.Email)
	assert.Equal(t, domain.DefaultProfileStatus, first.Status)
	assert.Equal(t, first.ID, second.ID)
}

func TestProfileGet_RequiresUser(t *testing.T) {
	svc := NewProfileService(newTestRepository(t), testLogger)

	_, err := svc.Get(context.Background(), Identity{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileUpdate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := newTestRepository(t)
	svc := NewProfileService(repo, testLogger)
	identity := Identity{UserID: "user-1", Email: "linh@example.com"}

	// Act
	updated, err := svc.Update(ctx, identity, domain.ProfileFields{
		DisplayName: " Linh Tran ",
		PhoneNumber: "0907654321",
		Status:      "Busy",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Linh Tran", updated.DisplayName)
	assert.Equal(t, "busy", updated.Status)

	stored, err := repo.UserProfile().GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "0907654321", stored.PhoneNumber)
	assert.Equal(t, "busy", stored.Status)
}

func TestProfileUpdate_KeepsStatusWhenOmitted(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newTestRepository(t), testLogger)
	identity := Identity{UserID: "user-1"}

	updated, err := svc.Update(ctx, identity, domain.ProfileFields{DisplayName: "Linh"})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfileStatus, updated.Status)
}

func TestProfileUpdate_InvalidStatus(t *testing.T) {
	svc := NewProfileService(newTestRepository(t), testLogger)

	_, err := svc.Update(context.Background(), Identity{UserID: "user-1"}, domain.ProfileFields{Status: "away"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
