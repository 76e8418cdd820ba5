package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/service"
	"github.com/kingrain94/rental-manager-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// Identity returns the caller as established by the auth middleware
func (h *BaseHandler) Identity(ctx context.Context) (service.Identity, error) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return service.Identity{}, err
	}
	return service.Identity{UserID: userID, Email: utils.GetEmailFromContext(ctx)}, nil
}

// WriteError maps the service error taxonomy onto HTTP status codes
func (h *BaseHandler) WriteError(c *gin.Context, err error) {
	c.JSON(statusFor(err), dto.Error{Error: err.Error()})
}

func (h *BaseHandler) BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrRoomNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrRemoteIO):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
