package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
)

var (
	// ErrNotFound is returned when the referenced room, tenant or profile does not exist
	ErrNotFound = errors.New("not found")

	// ErrRoomNotFound is returned when a tenant references a room number no room carries
	ErrRoomNotFound = errors.New("no room matches room number")

	// ErrRemoteIO wraps storage, queue and network failures
	ErrRemoteIO = errors.New("remote store unavailable")
)

func notFound(entity, id string) error {
	return fmt.Errorf("%s %q %w", entity, id, ErrNotFound)
}

// storeError classifies a repository failure. Missing records become ErrNotFound,
// everything else is an ErrRemoteIO carrying the cause.
func storeError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrRemoteIO, err)
}

// passThrough keeps errors that were already classified and classifies the rest.
func passThrough(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrRemoteIO) || errors.Is(err, domain.ErrValidation) {
		return err
	}
	return storeError(op, err)
}
