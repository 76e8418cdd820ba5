package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

//go:generate mockery --name SnapshotPublisher --output ../mocks
type SnapshotPublisher interface {
	Publish(ctx context.Context, snapshot *dto.Snapshot) error
}

// SnapshotService rebuilds whole collections and publishes them after every change.
type SnapshotService struct {
	repo      repository.Repository
	publisher SnapshotPublisher
	logger    *logger.Logger
}

func NewSnapshotService(repo repository.Repository, publisher SnapshotPublisher, logger *logger.Logger) *SnapshotService {
	return &SnapshotService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Build reads the current content of a collection. Rooms carry their derived occupancy
// and payments are newest first.
func (s *SnapshotService) Build(ctx context.Context, kind domain.CollectionKind) (*dto.Snapshot, error) {
	// Stamped before the reads: the data is never older than GeneratedAt
	generatedAt := time.Now().UTC()

	var items any
	switch kind {
	case domain.CollectionRooms:
		rooms, err := s.repo.Room().List(ctx)
		if err != nil {
			return nil, storeError("list rooms", err)
		}
		tenants, err := s.repo.Tenant().List(ctx)
		if err != nil {
			return nil, storeError("list tenants", err)
		}
		items = dto.FromRoomViews(domain.Project(rooms, tenants))

	case domain.CollectionTenants:
		tenants, err := s.repo.Tenant().List(ctx)
		if err != nil {
			return nil, storeError("list tenants", err)
		}
		items = dto.FromTenants(tenants)

	case domain.CollectionPayments:
		payments, err := s.repo.Payment().List(ctx)
		if err != nil {
			return nil, storeError("list payments", err)
		}
		items = dto.FromPayments(payments)

	default:
		return nil, domain.NewValidationError("collection", fmt.Sprintf("unknown collection %q", kind))
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s snapshot: %w", kind, err)
	}

	return &dto.Snapshot{
		Collection:  string(kind),
		Items:       raw,
		GeneratedAt: generatedAt,
	}, nil
}

// CollectionChanged publishes a fresh snapshot. Failures are logged and never reach the writer.
func (s *SnapshotService) CollectionChanged(ctx context.Context, kind domain.CollectionKind) {
	snapshot, err := s.Build(ctx, kind)
	if err != nil {
		s.logger.Error("failed to build snapshot", err, zap.String("collection", string(kind)))
		return
	}
	if err := s.publisher.Publish(ctx, snapshot); err != nil {
		s.logger.Error("failed to publish snapshot", err, zap.String("collection", string(kind)))
	}
}
