package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/utils"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	auth   *AuthMiddleware
	router *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.auth = NewAuthMiddleware(&config.Config{JWTSecretKey: "test-secret", JWTExpirationHours: 1})

	s.router = gin.New()
	s.router.GET("/staff", s.auth.JWTAuth(), s.auth.RequireRole(domain.RoleStaff), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(string(utils.UserIDKey)),
			"email":   c.GetString(string(utils.EmailKey)),
		})
	})
	s.router.GET("/manager", s.auth.JWTAuth(), s.auth.RequireRole(domain.RoleManager), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) token(roles ...string) string {
	token, err := s.auth.GenerateToken("user-1", "linh@example.com", roles)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := s.do("/staff", "")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestInvalidSignature() {
	other := NewAuthMiddleware(&config.Config{JWTSecretKey: "other-secret", JWTExpirationHours: 1})
	token, err := other.GenerateToken("user-1", "", []string{"admin"})
	s.Require().NoError(err)

	w := s.do("/staff", token)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"roles":   []string{"admin"},
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	s.Require().NoError(err)

	w := s.do("/staff", token)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestStaffAllowed() {
	w := s.do("/staff", s.token("staff"))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"user_id":"user-1"`)
	s.Contains(w.Body.String(), `"email":"linh@example.com"`)
}

func (s *AuthMiddlewareTestSuite) TestStaffForbiddenOnManagerRoute() {
	w := s.do("/manager", s.token("staff"))

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestAdminGrantsManager() {
	w := s.do("/manager", s.token("admin"))

	s.Equal(http.StatusOK, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestQueryToken() {
	req := httptest.NewRequest(http.MethodGet, "/staff?access_token="+s.token("staff"), nil)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
}

func TestRateLimit_FailsOpenWhenRedisUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	rl := NewRateLimitMiddleware(client, &config.Config{GlobalRateLimit: 1}, logger.NewLogger("test"))
	router := gin.New()
	router.GET("/", rl.GlobalRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserRateLimit_RequiresUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimitMiddleware(nil, &config.Config{}, logger.NewLogger("test"))
	router := gin.New()
	router.GET("/", rl.UserRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func newValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	v := NewValidationMiddleware(logger.NewLogger("test"))
	router := gin.New()
	router.Use(v.BlockSuspiciousPatterns(), v.SanitizeInput(), v.ValidateContentType("application/json", "multipart/form-data"))
	router.Any("/*path", func(c *gin.Context) { c.String(http.StatusOK, c.Query("q")) })
	return router
}

func TestValidation_ContentType(t *testing.T) {
	router := newValidationRouter()

	tests := []struct {
		name        string
		contentType string
		expected    int
	}{
		{name: "json with charset", contentType: "application/json; charset=utf-8", expected: http.StatusOK},
		{name: "multipart with boundary", contentType: "multipart/form-data; boundary=----WebKitFormBoundary7MA4", expected: http.StatusOK},
		{name: "xml rejected", contentType: "application/xml", expected: http.StatusUnsupportedMediaType},
		{name: "missing with body", contentType: "", expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestValidation_BlocksSuspiciousQuery(t *testing.T) {
	router := newValidationRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/search?q=1+UNION+SELECT+password", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidation_SanitizesQuery(t *testing.T) {
	router := newValidationRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rooms/search?q=bal%00cony", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "balcony", w.Body.String())
}
