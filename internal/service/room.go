package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type RoomService struct {
	notifier
	repo     repository.Repository
	sqsSvc   SQSService
	uploader ImageUploader
	logger   *logger.Logger
}

func NewRoomService(repo repository.Repository, sqsSvc SQSService, logger *logger.Logger) *RoomService {
	return &RoomService{
		repo:   repo,
		sqsSvc: sqsSvc,
		logger: logger,
	}
}

// SetImageUploader enables room image uploads
func (s *RoomService) SetImageUploader(uploader ImageUploader) {
	s.uploader = uploader
}

func (s *RoomService) Create(ctx context.Context, fields domain.RoomFields) (*domain.Room, error) {
	price, err := fields.Validate()
	if err != nil {
		return nil, err
	}

	room := &domain.Room{Status: domain.RoomAvailable}
	fields.Apply(room, price)

	if err := s.repo.Room().Create(ctx, room); err != nil {
		return nil, storeError("create room", err)
	}

	s.logger.Info("room created", zap.String("room_id", room.ID), zap.String("name", room.Name))
	s.indexRoom(ctx, room)
	s.changed(ctx, domain.CollectionRooms)
	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.repo.Room().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("room", id)
		}
		return nil, storeError("get room", err)
	}
	return room, nil
}

// Update replaces the editable fields and keeps status and tenant back-reference.
// Renaming a room changes which tenants reference it, so a reconcile sweep is queued.
func (s *RoomService) Update(ctx context.Context, id string, fields domain.RoomFields) (*domain.Room, error) {
	price, err := fields.Validate()
	if err != nil {
		return nil, err
	}

	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousName := room.Name

	fields.Apply(room, price)
	if err := s.repo.Room().Update(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("room", id)
		}
		return nil, storeError("update room", err)
	}

	if previousName != room.Name {
		s.logger.Info("room renamed",
			zap.String("room_id", room.ID),
			zap.String("from", previousName),
			zap.String("to", room.Name))
		s.queueReconcile(ctx, fmt.Sprintf("room %s renamed", room.ID))
	}

	s.indexRoom(ctx, room)
	s.changed(ctx, domain.CollectionRooms)
	return room, nil
}

// Delete removes the room without touching tenants that still reference its name.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tenants, err := s.repo.Tenant().FindByRoomNumber(ctx, room.Name)
	if err != nil {
		return storeError("find tenants by room number", err)
	}
	if len(tenants) > 0 {
		s.logger.Warn("deleting room still referenced by tenants",
			zap.String("room_id", room.ID),
			zap.String("name", room.Name),
			zap.Int("tenants", len(tenants)))
	}

	if err := s.repo.Room().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("room", id)
		}
		return storeError("delete room", err)
	}

	if s.sqsSvc != nil {
		if err := s.sqsSvc.SendRoomDeleteMessage(ctx, id); err != nil {
			s.logger.Error("failed to send room delete message", err, zap.String("room_id", id))
		}
	}
	s.changed(ctx, domain.CollectionRooms)
	return nil
}

// FindByName returns every room carrying the name; there may be none or several.
func (s *RoomService) FindByName(ctx context.Context, name string) ([]domain.Room, error) {
	rooms, err := s.repo.Room().FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, storeError("find rooms by name", err)
	}
	return rooms, nil
}

// List returns rooms with their derived occupancy, filtered on the derived status.
func (s *RoomService) List(ctx context.Context, status domain.RoomStatus) ([]domain.RoomWithOccupancy, error) {
	rooms, err := s.repo.Room().List(ctx)
	if err != nil {
		return nil, storeError("list rooms", err)
	}
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, storeError("list tenants", err)
	}

	return domain.Project(domain.FilterByStatus(rooms, tenants, status), tenants), nil
}

func (s *RoomService) Search(ctx context.Context, query string, status domain.RoomStatus) ([]domain.Room, error) {
	search := s.repo.Search()
	if search == nil {
		return nil, fmt.Errorf("search rooms: %w: search index not configured", ErrRemoteIO)
	}
	rooms, err := search.SearchRooms(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("search rooms: %w: %w", ErrRemoteIO, err)
	}
	return rooms, nil
}

// UploadImage stores a room photo and returns its public URL for use as imageURL.
func (s *RoomService) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return "", domain.NewValidationError("image", "must be a png, jpg, jpeg or webp file")
	}
	if s.uploader == nil {
		return "", fmt.Errorf("upload image: %w: image storage not configured", ErrRemoteIO)
	}

	url, err := s.uploader.UploadRoomImage(ctx, filename, r)
	if err != nil {
		return "", fmt.Errorf("upload image: %w: %w", ErrRemoteIO, err)
	}
	return url, nil
}

func (s *RoomService) queueReconcile(ctx context.Context, reason string) {
	if s.sqsSvc == nil {
		return
	}
	if err := s.sqsSvc.SendReconcileMessage(ctx, reason); err != nil {
		s.logger.Error("failed to send reconcile message", err, zap.String("reason", reason))
	}
}

func (s *RoomService) indexRoom(ctx context.Context, room *domain.Room) {
	if s.sqsSvc == nil {
		return
	}
	if err := s.sqsSvc.SendRoomIndexMessage(ctx, room); err != nil {
		s.logger.Error("failed to send room index message", err, zap.String("room_id", room.ID))
	}
}
