package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/config"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/handlers"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
	"github.com/VIT-EcoTrack/EcoTrack/internal/middleware"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	repos      *postgres.Container
	images     handlers.ImageStore
	classifier handlers.Classifier
}

// New creates a new server instance with its dependencies injected
func New(cfg *config.Config, repos *postgres.Container, images handlers.ImageStore, cls handlers.Classifier) *Server {
	return &Server{
		config:     cfg,
		repos:      repos,
		images:     images,
		classifier: cls,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())

	corsConfig := cors.DefaultConfig()
	if s.config.CORS.AllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	router.Use(cors.New(corsConfig))

	tokens := auth.NewTokenService(s.config.Auth.JWTSecret, time.Duration(s.config.Auth.TokenExpiry)*time.Hour)

	authHandler := handlers.NewAuthHandler(s.repos.Users(), tokens)
	userHandler := handlers.NewUserHandler(s.repos.Users())
	taskHandler := handlers.NewTaskHandler(s.repos.Tasks())
	eventHandler := handlers.NewEventHandler(s.repos.Events(), s.config.Events.EnforceCapacity)
	forumHandler := handlers.NewForumHandler(s.repos.Forum())
	wasteHandler := handlers.NewWasteHandler(s.repos.Waste(), s.repos.Users(), s.images, s.config.Storage.MaxFileSize)
	classifyHandler := handlers.NewClassifyHandler(s.classifier, s.config.Storage.MaxFileSize)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "EcoTrack API is running",
			"status":  "healthy",
		})
	})

	protect := middleware.Protect(tokens, s.repos.Users())
	adminOnly := middleware.RequireRole(user.RoleAdmin)
	workerOnly := middleware.RequireRole(user.RoleWorker)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", protect, authHandler.Me)
		}

		users := api.Group("/users", protect, adminOnly)
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/workers", userHandler.ListWorkers)
			users.PUT("/:id/role", userHandler.UpdateRole)
		}

		tasks := api.Group("/tasks", protect)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", adminOnly, taskHandler.CreateTask)
			tasks.PUT("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.GET("/my-tasks", workerOnly, taskHandler.ListMyTasks)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", protect, adminOnly, eventHandler.CreateEvent)
			events.POST("/:id/join", protect, eventHandler.JoinEvent)
			events.PUT("/:id/status", protect, adminOnly, eventHandler.UpdateEventStatus)
		}

		forums := api.Group("/forums")
		{
			forums.GET("", forumHandler.ListPosts)
			forums.POST("", protect, forumHandler.CreatePost)
			forums.POST("/:id/comments", protect, forumHandler.AddComment)
			forums.POST("/:id/like", protect, forumHandler.ToggleLike)
		}

		waste := api.Group("/waste", protect)
		{
			waste.GET("", wasteHandler.ListWaste)
			waste.POST("/report", wasteHandler.ReportWaste)
			waste.PUT("/:id/assign", adminOnly, wasteHandler.AssignWaste)
			waste.PUT("/:id/status", wasteHandler.UpdateWasteStatus)
			waste.GET("/my-assignments", workerOnly, wasteHandler.ListMyAssignments)
			waste.POST("/:id/images", wasteHandler.UploadImage)
		}

		api.POST("/classify", protect, classifyHandler.Classify)
	}

	return router
}
