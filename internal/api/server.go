package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/middleware"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

const maxRequestSize = 10 * 1024 * 1024 // 10MB, room photos included

// Services groups what the HTTP layer calls into
type Services struct {
	Rooms     RoomService
	Occupancy OccupancyService
	Tenants   TenantService
	Payments  PaymentService
	Profiles  ProfileService
	Snapshots SnapshotSource

	// ReportLocation is the time zone of calendar dates in requests
	ReportLocation *time.Location
}

type Server struct {
	room       *RoomHandler
	tenant     *TenantHandler
	payment    *PaymentHandler
	profile    *ProfileHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	services Services,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub SnapshotSubscriber,
) *Server {
	return &Server{
		room:       NewRoomHandler(services.Rooms, services.Occupancy),
		tenant:     NewTenantHandler(services.Tenants),
		payment:    NewPaymentHandler(services.Payments, services.ReportLocation),
		profile:    NewProfileHandler(services.Profiles),
		websocket:  NewWebSocketHandler(services.Snapshots, logger, pubsub),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(maxRequestSize))
	api.Use(s.validation.ValidateContentType("application/json", "multipart/form-data"))
	api.Use(s.rateLimit.GlobalRateLimit())

	authed := api.Group("", s.auth.JWTAuth(), s.rateLimit.UserRateLimit())

	staff := s.auth.RequireRole(domain.RoleStaff)
	manager := s.auth.RequireRole(domain.RoleManager)
	admin := s.auth.RequireRole(domain.RoleAdmin)

	rooms := authed.Group("/rooms")
	{
		rooms.POST("", manager, s.room.CreateRoom)
		rooms.GET("", staff, s.room.ListRooms)
		rooms.GET("/search", staff, s.room.SearchRooms)
		rooms.GET("/by-name/:name", staff, s.room.FindRoomsByName)
		rooms.POST("/images", manager, s.room.UploadRoomImage)
		rooms.POST("/reconcile", admin, s.room.ReconcileRooms)
		rooms.GET("/:id", staff, s.room.GetRoom)
		rooms.PUT("/:id", manager, s.room.UpdateRoom)
		rooms.DELETE("/:id", manager, s.room.DeleteRoom)
	}

	tenants := authed.Group("/tenants")
	{
		tenants.POST("", manager, s.tenant.CreateTenant)
		tenants.GET("", staff, s.tenant.ListTenants)
		tenants.GET("/:id", staff, s.tenant.GetTenant)
		tenants.PUT("/:id", manager, s.tenant.UpdateTenant)
		tenants.DELETE("/:id", manager, s.tenant.DeleteTenant)
	}

	payments := authed.Group("/payments")
	{
		payments.POST("", manager, s.payment.RecordPayment)
		payments.GET("", staff, s.payment.ListPayments)
		payments.GET("/revenue", staff, s.payment.GetRevenue)
	}

	authed.GET("/profile", s.profile.GetProfile)
	authed.PUT("/profile", s.profile.UpdateProfile)

	authed.GET("/stream", staff, s.websocket.HandleWebSocket)
}

// StartWebSocketHub starts the hub that fans snapshots out to websocket clients
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
