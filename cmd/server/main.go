package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/juraijvu/furn-newyear/internal/config"
	"github.com/juraijvu/furn-newyear/internal/database"
	"github.com/juraijvu/furn-newyear/internal/handlers"
	"github.com/juraijvu/furn-newyear/internal/ledger"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/middleware"
	"github.com/juraijvu/furn-newyear/internal/recolor"
	"github.com/juraijvu/furn-newyear/internal/replicate"
	"github.com/juraijvu/furn-newyear/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database is optional: without DATABASE_URL the recolor endpoints still
	// work, there is just no bookkeeping.
	var dbClient *ledger.Client
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set; ledger operations disabled, migrations skipped")
	} else {
		migrator, err := database.NewMigrator(cfg.DatabaseURL, log)
		if err != nil {
			log.Warn("failed to initialize migrator", "error", err)
		} else {
			if err := migrator.Run(); err != nil {
				log.Warn("migration failed", "error", err)
			} else {
				log.Info("migrations completed")
			}
			migrator.Close()
		}

		dbClient, err = ledger.NewClient(cfg.DatabaseURL)
		if err != nil {
			log.Warn("failed to initialize database client; ledger operations disabled", "error", err)
			dbClient = nil
		} else {
			defer dbClient.Close()
		}
	}

	var store storage.Store
	var diskStore *storage.DiskStore
	switch cfg.StorageBackend {
	case "supabase":
		store, err = storage.NewBucketStore(cfg.SupabaseURL, cfg.SupabasePublishableKey,
			cfg.SupabaseStorageBucket, cfg.MaxUploadBytes)
		if err != nil {
			log.Fatal("failed to initialize bucket store", "error", err)
		}
	default:
		diskStore, err = storage.NewDiskStore(cfg.UploadDir, cfg.BaseURL, cfg.MaxUploadBytes)
		if err != nil {
			log.Fatal("failed to initialize disk store", "error", err)
		}
		store = diskStore
	}

	gateway := replicate.NewClient(cfg.ReplicateAPIBaseURL, cfg.ReplicateAPIToken, cfg.PublicBaseURL)
	recolorService := recolor.NewService(gateway, dbClient, log)

	uploadHandler := handlers.NewUploadHandler(store, log)
	projectsHandler := handlers.NewProjectsHandler(dbClient, log)
	imagesHandler := handlers.NewImagesHandler(dbClient, log)
	recolorHandler := handlers.NewRecolorHandler(recolorService, log)
	colorsHandler := handlers.NewColorsHandler(dbClient, log)
	canvasHandler := handlers.NewCanvasHandler(dbClient, log)
	resultsHandler := handlers.NewResultsHandler(dbClient, log)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(gateway, log)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/health", handlers.HealthHandler)

	// Uploaded assets are public so the inference provider can fetch them.
	if diskStore != nil {
		router.Static("/uploads", diskStore.Dir())
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.APIJWTSecret))

	api.POST("/upload", uploadHandler.Upload)

	api.GET("/projects", projectsHandler.ListProjects)
	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects/:id", projectsHandler.GetProject)
	api.PUT("/projects/:id", projectsHandler.UpdateProject)
	api.DELETE("/projects/:id", projectsHandler.DeleteProject)
	api.POST("/projects/:id/images", imagesHandler.AttachImage)
	api.GET("/projects/:id/results", resultsHandler.ListResults)
	api.GET("/projects/:id/canvas", canvasHandler.GetCanvas)
	api.PUT("/projects/:id/canvas", canvasHandler.SaveCanvas)

	api.POST("/segment-professional", recolorHandler.Segment)
	api.POST("/inpaint-professional", recolorHandler.Inpaint)
	api.POST("/professional-recolor", recolorHandler.Recolor)

	api.POST("/colors", colorsHandler.CreateColorApplication)
	api.GET("/recent-colors", colorsHandler.ListRecentColors)
	api.POST("/recent-colors", colorsHandler.CreateRecentColor)

	api.GET("/materials", handlers.MaterialsHandler)

	api.GET("/test-replicate", diagnosticsHandler.TestReplicate)
	api.GET("/check-model/:owner/:name", diagnosticsHandler.CheckModel)

	log.Info("server starting", "port", cfg.Port, "storage", cfg.StorageBackend)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
