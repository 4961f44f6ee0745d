package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/docstore"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize repositories on the configured store driver
	var (
		submissionRepo repositories.SubmissionRepository
		statusRepo     repositories.StatusRepository
		rankingRepo    repositories.RankingRepository
	)

	switch cfg.Store.Driver {
	case "postgres":
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		submissionRepo = repositories.NewPgSubmissionRepository(db)
		statusRepo = repositories.NewPgStatusRepository(db)
		rankingRepo = repositories.NewPgRankingRepository(db)
	case "json":
		store, err := docstore.Open(cfg.Store.Path)
		if err != nil {
			log.Fatalf("❌ Failed to open document store: %v", err)
		}
		submissionRepo = repositories.NewSubmissionRepository(store)
		statusRepo = repositories.NewStatusRepository(store)
		rankingRepo = repositories.NewRankingRepository(store)
	default:
		log.Fatalf("❌ Unknown store driver: %s", cfg.Store.Driver)
	}
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	scheduler := services.NewScheduler()
	tracker := services.NewStatusTracker(statusRepo, scheduler, cfg.Status.AdvanceInterval)
	submissionService := services.NewSubmissionService(submissionRepo, rankingRepo, tracker)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	submitHandler := handlers.NewSubmitHandler(submissionService, storageService, cfg.Storage.MaxFileSize)
	submissionHandler := handlers.NewSubmissionHandler(submissionRepo)
	statusHandler := handlers.NewStatusHandler(submissionRepo, tracker)
	rankingHandler := handlers.NewRankingHandler(rankingRepo)
	analyzeHandler := handlers.NewAnalyzeHandler(submissionService)
	feedbackHandler := handlers.NewFeedbackHandler()
	formatHandler := handlers.NewFormatHandler(submissionRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/submit", submitHandler.HandleSubmit)
	api.Get("/submissions", submissionHandler.HandleList)
	api.Get("/submissions/:id", submissionHandler.HandleGet)
	api.Get("/status/:id", statusHandler.HandleGetStatus)
	api.Get("/rankings", rankingHandler.HandleGetRankings)
	api.Get("/analyze/:id", analyzeHandler.HandleAnalyze)
	api.Post("/feedback", feedbackHandler.HandleFeedback)
	api.Get("/format/:id/:format", formatHandler.HandleFormat)

	// Uploaded resume files
	app.Static("/uploads", cfg.Storage.UploadPath)

	// Prometheus exposition
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/submit",
				"GET /api/submissions",
				"GET /api/submissions/:id",
				"GET /api/status/:id",
				"GET /api/rankings",
				"GET /api/analyze/:id",
				"POST /api/feedback",
				"GET /api/format/:id/:format",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		scheduler.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
