package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/service"
)

//go:generate mockery --name ProfileService --output ../mocks
type ProfileService interface {
	Get(ctx context.Context, identity service.Identity) (*domain.UserProfile, error)
	Update(ctx context.Context, identity service.Identity, fields domain.ProfileFields) (*domain.UserProfile, error)
}

type ProfileHandler struct {
	*BaseHandler
	service ProfileService
}

func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile godoc
// @Summary Get my profile
// @Description The caller's profile, created on first access
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ctx := h.RequestCtx(c)
	identity, err := h.Identity(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	profile, err := h.service.Get(ctx, identity)
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProfile(profile))
}

// UpdateProfile godoc
// @Summary Update my profile
// @Tags profile
// @Accept json
// @Produce json
// @Param body body dto.ProfileRequest true "Profile object"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ctx := h.RequestCtx(c)
	identity, err := h.Identity(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	profile, err := h.service.Update(ctx, identity, req.ToProfileFields())
	if err != nil {
		h.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProfile(profile))
}
