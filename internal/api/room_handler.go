package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/service"
)

//go:generate mockery --name RoomService --output ../mocks
type RoomService interface {
	Create(ctx context.Context, fields domain.RoomFields) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Update(ctx context.Context, id string, fields domain.RoomFields) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
	FindByName(ctx context.Context, name string) ([]domain.Room, error)
	List(ctx context.Context, status domain.RoomStatus) ([]domain.RoomWithOccupancy, error)
	Search(ctx context.Context, query string, status domain.RoomStatus) ([]domain.Room, error)
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

//go:generate mockery --name OccupancyService --output ../mocks
type OccupancyService interface {
	Reconcile(ctx context.Context) (*service.ReconcileResult, error)
}

type RoomHandler struct {
	*BaseHandler
	service   RoomService
	occupancy OccupancyService
}

func NewRoomHandler(service RoomService, occupancy OccupancyService) *RoomHandler {
	return &RoomHandler{service: service, occupancy: occupancy}
}

// CreateRoom godoc
// @Summary Create a room
// @Description Create a room. New rooms start available with no tenant.
// @Tags rooms
// @Accept json
// @Produce json
// @Param body body dto.RoomRequest true "Room object"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	room, err := h.service.Create(h.RequestCtx(c), req.ToRoomFields())
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromRoom(room))
}

// ListRooms godoc
// @Summary List rooms
// @Description List rooms with the occupancy derived from tenant records, optionally filtered by that derived status
// @Tags rooms
// @Produce json
// @Param status query string false "available or rented"
// @Success 200 {array} dto.RoomResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	status, err := domain.ParseRoomStatus(c.Query("status"))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	rooms, err := h.service.List(h.RequestCtx(c), status)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromRoomViews(rooms))
}

// SearchRooms godoc
// @Summary Search rooms
// @Description Full-text search over room name, address and description
// @Tags rooms
// @Produce json
// @Param q query string false "Search text"
// @Param status query string false "available or rented"
// @Success 200 {array} dto.RoomResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms/search [get]
func (h *RoomHandler) SearchRooms(c *gin.Context) {
	status, err := domain.ParseRoomStatus(c.Query("status"))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	rooms, err := h.service.Search(h.RequestCtx(c), c.Query("q"), status)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromRooms(rooms))
}

// FindRoomsByName godoc
// @Summary Find rooms by name
// @Description Rooms whose name equals the given value. Names are not unique.
// @Tags rooms
// @Produce json
// @Param name path string true "Room name"
// @Success 200 {array} dto.RoomResponse
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms/by-name/{name} [get]
func (h *RoomHandler) FindRoomsByName(c *gin.Context) {
	rooms, err := h.service.FindByName(h.RequestCtx(c), c.Param("name"))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromRooms(rooms))
}

// GetRoom godoc
// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromRoom(room))
}

// UpdateRoom godoc
// @Summary Update room
// @Description Replace the editable fields of a room. Status and tenant are left untouched.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param body body dto.RoomRequest true "Room object"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	room, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req.ToRoomFields())
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromRoom(room))
}

// DeleteRoom godoc
// @Summary Delete room
// @Description Delete a room. Tenants referencing its name are kept.
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadRoomImage godoc
// @Summary Upload a room image
// @Description Store a room photo and return the URL to use as image_url
// @Tags rooms
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "png, jpg, jpeg or webp"
// @Success 201 {object} dto.ImageUploadResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms/images [post]
func (h *RoomHandler) UploadRoomImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		h.WriteError(c, domain.NewValidationError("image", "is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.BadRequest(c, err)
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(h.RequestCtx(c), header.Filename, file)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ImageUploadResponse{URL: url})
}

// ReconcileRooms godoc
// @Summary Reconcile room occupancy
// @Description Rewrite every persisted room status that disagrees with the tenant records
// @Tags rooms
// @Produce json
// @Success 200 {object} dto.ReconcileResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /rooms/reconcile [post]
func (h *RoomHandler) ReconcileRooms(c *gin.Context) {
	result, err := h.occupancy.Reconcile(h.RequestCtx(c))
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromReconcileResult(result.RoomsChecked, result.Repaired))
}
