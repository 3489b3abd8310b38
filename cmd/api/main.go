package main

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/talentbase/talentbase/internal/config"
	"github.com/talentbase/talentbase/internal/database"
	"github.com/talentbase/talentbase/internal/handlers"
	"github.com/talentbase/talentbase/internal/logger"
	"github.com/talentbase/talentbase/internal/middleware"
	"github.com/talentbase/talentbase/internal/services"
	"github.com/talentbase/talentbase/internal/storage"
	"github.com/talentbase/talentbase/web"
)

func main() {
	// 1. Logger & Configuration
	logger.Init()
	cfg := config.Load()

	if cfg.AdminToken == "" {
		log.Warn().Msg("ADMIN_TOKEN is not set; admin routes will reject every request")
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// 3. Resume Storage
	var store storage.ResumeStore
	var s3Store *storage.S3Store
	switch cfg.StorageBackend {
	case config.BackendS3:
		s3Store, err = storage.NewS3Store(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize S3 storage")
		}
		store = s3Store
	default:
		store, err = storage.NewDiskStore(cfg.UploadDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize upload directory")
		}
	}

	// 4. Services
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	statsService := services.NewStatsService(db)

	// 5. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, store)
	adminHandler := handlers.NewAdminHandler(jobService, applicationService, statsService)

	// 6. Router & Middleware
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Routes
	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/jobs", jobHandler.ListOpen)
		api.GET("/jobs/:id", jobHandler.Get)

		api.POST("/applications",
			middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
			applicationHandler.Submit)

		admin := api.Group("/admin", middleware.AdminAuth(cfg.AdminToken))
		{
			admin.GET("/jobs", adminHandler.ListJobs)
			admin.POST("/jobs", adminHandler.CreateJob)
			admin.PUT("/jobs/:id", adminHandler.UpdateJob)
			admin.DELETE("/jobs/:id", adminHandler.DeleteJob)

			admin.GET("/applications", adminHandler.ListApplications)
			admin.GET("/applications/:id", adminHandler.GetApplication)
			admin.PATCH("/applications/:id", adminHandler.UpdateApplication)
			admin.DELETE("/applications/:id", adminHandler.DeleteApplication)

			admin.GET("/stats", adminHandler.Stats)
		}
	}

	// 8. Resume downloads
	if s3Store != nil {
		resumeHandler := handlers.NewResumeHandler(s3Store)
		r.GET("/uploads/resumes/:file", resumeHandler.Download)
	} else {
		r.Static("/uploads/resumes", cfg.UploadDir)
	}

	// 9. Embedded web clients
	registerWebRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func registerWebRoutes(r *gin.Engine) {
	publicFS, err := fs.Sub(web.Assets, "public")
	if err != nil {
		log.Fatal().Err(err).Msg("bad embedded public assets")
	}
	adminFS, err := fs.Sub(web.Assets, "admin")
	if err != nil {
		log.Fatal().Err(err).Msg("bad embedded admin assets")
	}

	// Serving the directory root avoids http.FileServer's redirect of
	// explicit index.html paths.
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(publicFS))
	})
	r.GET("/admin", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(adminFS))
	})
	r.StaticFS("/public", http.FS(publicFS))
	r.StaticFS("/admin-assets", http.FS(adminFS))
}
