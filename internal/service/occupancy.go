package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

// OccupancyService keeps Room.Status in line with the tenants referencing each room name.
type OccupancyService struct {
	notifier
	repo   repository.Repository
	sqsSvc SQSService
	logger *logger.Logger
}

type ReconcileResult struct {
	RoomsChecked int                     `json:"rooms_checked"`
	Repaired     []domain.OccupancyDrift `json:"repaired"`
}

func NewOccupancyService(repo repository.Repository, sqsSvc SQSService, logger *logger.Logger) *OccupancyService {
	return &OccupancyService{
		repo:   repo,
		sqsSvc: sqsSvc,
		logger: logger,
	}
}

// MarkRented applies the rule in "mark rented" mode in its own transaction.
func (s *OccupancyService) MarkRented(ctx context.Context, roomNumber, tenantID string) (int, error) {
	var changed []domain.Room
	err := s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		var err error
		changed, err = s.markRented(ctx, tx, roomNumber, tenantID)
		return err
	})
	if err != nil {
		return 0, passThrough("mark rented", err)
	}
	s.roomsChanged(ctx, changed)
	return len(changed), nil
}

// MarkAvailable applies the rule in "mark available" mode in its own transaction.
func (s *OccupancyService) MarkAvailable(ctx context.Context, roomNumber string) (int, error) {
	var changed []domain.Room
	err := s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		var err error
		changed, err = s.markAvailable(ctx, tx, roomNumber)
		return err
	})
	if err != nil {
		return 0, passThrough("mark available", err)
	}
	s.roomsChanged(ctx, changed)
	return len(changed), nil
}

// markRented re-reads every room named roomNumber and flips the ones not already rented.
// The room points at the first tenant referencing it, tenantID when there is none.
func (s *OccupancyService) markRented(ctx context.Context, tx repository.PostgresRepository, roomNumber, tenantID string) ([]domain.Room, error) {
	tenants, err := tx.Tenant().FindByRoomNumber(ctx, roomNumber)
	if err != nil {
		return nil, storeError("find tenants by room number", err)
	}
	holder := tenantID
	if len(tenants) > 0 {
		holder = tenants[0].ID
	}
	return s.occupy(ctx, tx, roomNumber, holder)
}

// occupy sets every room named roomNumber to rented by holder, skipping rooms already there.
func (s *OccupancyService) occupy(ctx context.Context, tx repository.PostgresRepository, roomNumber, holder string) ([]domain.Room, error) {
	rooms, err := tx.Room().FindByName(ctx, roomNumber)
	if err != nil {
		return nil, storeError("find rooms by name", err)
	}
	if len(rooms) == 0 {
		s.logger.Info("no room to mark rented", zap.String("room_number", roomNumber))
		return nil, nil
	}

	var changed []domain.Room
	for _, room := range rooms {
		if room.Status == domain.RoomRented && room.TenantID != nil && *room.TenantID == holder {
			continue
		}
		id := holder
		if err := tx.Room().UpdateStatus(ctx, room.ID, domain.RoomRented, &id); err != nil {
			return nil, storeError("mark room rented", err)
		}
		room.Status = domain.RoomRented
		room.TenantID = &id
		changed = append(changed, room)
	}

	if len(changed) == 0 {
		s.logger.Info("rooms already rented", zap.String("room_number", roomNumber))
	}
	return changed, nil
}

// markAvailable re-reads every room named roomNumber and frees the ones not already available.
func (s *OccupancyService) markAvailable(ctx context.Context, tx repository.PostgresRepository, roomNumber string) ([]domain.Room, error) {
	rooms, err := tx.Room().FindByName(ctx, roomNumber)
	if err != nil {
		return nil, storeError("find rooms by name", err)
	}
	if len(rooms) == 0 {
		s.logger.Info("no room to mark available", zap.String("room_number", roomNumber))
		return nil, nil
	}

	var changed []domain.Room
	for _, room := range rooms {
		if room.Status == domain.RoomAvailable {
			continue
		}
		if err := tx.Room().UpdateStatus(ctx, room.ID, domain.RoomAvailable, nil); err != nil {
			return nil, storeError("mark room available", err)
		}
		room.Status = domain.RoomAvailable
		room.TenantID = nil
		changed = append(changed, room)
	}

	if len(changed) == 0 {
		s.logger.Info("rooms already available", zap.String("room_number", roomNumber))
	}
	return changed, nil
}

// releaseIfVacant marks the room available unless another tenant still references it, in
// which case the room is handed to the first remaining tenant.
func (s *OccupancyService) releaseIfVacant(ctx context.Context, tx repository.PostgresRepository, roomNumber string) ([]domain.Room, error) {
	remaining, err := tx.Tenant().FindByRoomNumber(ctx, roomNumber)
	if err != nil {
		return nil, storeError("find tenants by room number", err)
	}
	if len(remaining) > 0 {
		s.logger.Info("room still occupied",
			zap.String("room_number", roomNumber),
			zap.Int("tenants", len(remaining)))
		return s.occupy(ctx, tx, roomNumber, remaining[0].ID)
	}
	return s.markAvailable(ctx, tx, roomNumber)
}

// Reconcile rewrites every persisted room status that disagrees with the derived projection.
func (s *OccupancyService) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	result := &ReconcileResult{Repaired: []domain.OccupancyDrift{}}
	var changed []domain.Room

	err := s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		rooms, err := tx.Room().List(ctx)
		if err != nil {
			return storeError("list rooms", err)
		}
		tenants, err := tx.Tenant().List(ctx)
		if err != nil {
			return storeError("list tenants", err)
		}

		result.RoomsChecked = len(rooms)
		byID := make(map[string]domain.Room, len(rooms))
		for _, room := range rooms {
			byID[room.ID] = room
		}

		for _, drift := range domain.FindDrift(rooms, tenants) {
			if err := tx.Room().UpdateStatus(ctx, drift.RoomID, drift.Derived, drift.TenantID); err != nil {
				return storeError(fmt.Sprintf("repair room %s", drift.RoomID), err)
			}
			room := byID[drift.RoomID]
			room.Status = drift.Derived
			room.TenantID = drift.TenantID
			changed = append(changed, room)
			result.Repaired = append(result.Repaired, drift)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough("reconcile occupancy", err)
	}

	if len(result.Repaired) > 0 {
		s.logger.Warn("repaired room occupancy drift",
			zap.Int("rooms_checked", result.RoomsChecked),
			zap.Int("repaired", len(result.Repaired)))
	} else {
		s.logger.Info("room occupancy consistent", zap.Int("rooms_checked", result.RoomsChecked))
	}
	s.roomsChanged(ctx, changed)
	return result, nil
}

// roomsChanged runs after commit: reindexes the rooms and tells subscribers.
func (s *OccupancyService) roomsChanged(ctx context.Context, rooms []domain.Room) {
	if len(rooms) == 0 {
		return
	}
	s.reindex(ctx, rooms)
	s.changed(ctx, domain.CollectionRooms)
}

func (s *OccupancyService) reindex(ctx context.Context, rooms []domain.Room) {
	if s.sqsSvc == nil {
		return
	}
	for i := range rooms {
		if err := s.sqsSvc.SendRoomIndexMessage(ctx, &rooms[i]); err != nil {
			s.logger.Error("failed to send room index message", err, zap.String("room_id", rooms[i].ID))
		}
	}
}
