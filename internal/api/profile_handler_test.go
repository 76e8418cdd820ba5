package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/service"
	"github.com/kingrain94/rental-manager-api/internal/utils"
)

func newProfileRouter(svc *MockProfileService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewProfileHandler(svc)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(string(utils.UserIDKey), userID)
			c.Set(string(utils.EmailKey), "linh@example.com")
		}
		c.Next()
	})
	router.GET("/profile", handler.GetProfile)
	router.PUT("/profile", handler.UpdateProfile)
	return router
}

func TestGetProfile_UsesTokenIdentity(t *testing.T) {
	// Arrange
	svc := new(MockProfileService)
	identity := service.Identity{UserID: "user-1", Email: "linh@example.com"}
	svc.On("Get", mock.Anything, identity).Return(&domain.UserProfile{
		ID:     "user-1",
		Email:  "linh@example.com",
		Status: domain.DefaultProfileStatus,
	}, nil)
	router := newProfileRouter(svc, "user-1")

	// Act
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	var response dto.ProfileResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "online", response.Status)
	svc.AssertExpectations(t)
}

func TestGetProfile_NoIdentity(t *testing.T) {
	svc := new(MockProfileService)
	router := newProfileRouter(svc, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUpdateProfile(t *testing.T) {
	// Arrange
	svc := new(MockProfileService)
	identity := service.Identity{UserID: "user-1", Email: "linh@example.com"}
	fields := domain.ProfileFields{DisplayName: "Linh Tran", Status: "busy"}
	svc.On("Update", mock.Anything, identity, fields).Return(&domain.UserProfile{
		ID:          "user-1",
		DisplayName: "Linh Tran",
		Status:      "busy",
	}, nil)
	router := newProfileRouter(svc, "user-1")

	body, _ := json.Marshal(dto.ProfileRequest{DisplayName: "Linh Tran", Status: "busy"})
	req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"display_name":"Linh Tran"`)
	svc.AssertExpectations(t)
}
