package server

import (
	"context"
	"net/http"

	"github.com/coraxie-ca/comp3005-project/internal/admin"
	"github.com/coraxie-ca/comp3005-project/internal/auth"
	"github.com/coraxie-ca/comp3005-project/internal/booking"
	"github.com/coraxie-ca/comp3005-project/internal/config"
	"github.com/coraxie-ca/comp3005-project/internal/email"
	"github.com/coraxie-ca/comp3005-project/internal/health"
	"github.com/coraxie-ca/comp3005-project/internal/identity"
	"github.com/coraxie-ca/comp3005-project/internal/member"
	"github.com/coraxie-ca/comp3005-project/internal/room"
	"github.com/coraxie-ca/comp3005-project/internal/trainer"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(database *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	registerValidators()

	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	memberRepo := member.NewRepository(database)
	trainerRepo := trainer.NewRepository(database)
	adminRepo := admin.NewRepository(database)
	bookingRepo := booking.NewRepository(database)
	healthRepo := health.NewRepository(database)
	roomRepo := room.NewRepository(database)

	memberHandler := member.NewHandler(member.NewService(memberRepo, emailService, cfg.JWTSecret))
	identityHandler := identity.NewHandler(identity.NewService(adminRepo, trainerRepo, memberRepo, cfg.JWTSecret))
	trainerHandler := trainer.NewHandler(trainer.NewService(trainerRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, memberRepo, trainerRepo, emailService))
	healthHandler := health.NewHandler(health.NewService(healthRepo, memberRepo, emailService))
	roomHandler := room.NewHandler(room.NewService(roomRepo))
	adminHandler := admin.NewHandler(admin.NewService(adminRepo))

	public := router.Group("/auth")
	{
		public.POST("/register", memberHandler.Register)
		public.POST("/login", identityHandler.Login)
		public.POST("/refresh", identityHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	members := router.Group("/")
	members.Use(authMiddleware, auth.RequireRole(auth.RoleMember))
	{
		members.GET("/me", memberHandler.GetMe)
		members.PUT("/me/profile", memberHandler.UpdateProfile)
		members.POST("/me/metrics", healthHandler.LogMetric)
		members.GET("/me/metrics", healthHandler.ListMetrics)
		members.POST("/me/goals", healthHandler.SetGoal)
		members.GET("/me/goals", healthHandler.ListGoals)
		members.GET("/trainers", trainerHandler.ListTrainers)
		members.GET("/trainers/:trainerID/slots", trainerHandler.ListOpenSlots)
		members.POST("/sessions/book", bookingHandler.BookSession)
	}

	trainers := router.Group("/")
	trainers.Use(authMiddleware, auth.RequireRole(auth.RoleTrainer))
	{
		trainers.POST("/availability", trainerHandler.CreateAvailability)
		trainers.GET("/sessions", trainerHandler.ListMySessions)
	}

	admins := router.Group("/admin")
	admins.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admins.POST("/rooms", roomHandler.CreateRoom)
		admins.GET("/rooms", roomHandler.ListRooms)
		admins.POST("/sessions/:slotID/room", bookingHandler.AssignRoom)
		admins.POST("/equipment", roomHandler.LogIssue)
		admins.PUT("/equipment/:equipmentID/status", roomHandler.UpdateStatus)
		admins.GET("/equipment/:equipmentID", roomHandler.GetEquipment)
		admins.GET("/equipment", roomHandler.ListEquipment)
		admins.POST("/trainers", trainerHandler.CreateTrainer)
		admins.POST("/admins", adminHandler.CreateAdmin)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		http:   &http.Server{Handler: router},
		db:     database,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http.Addr = ":" + port
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
