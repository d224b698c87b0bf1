package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhsobrinho/educareapp-sub012/internal/catalog"
	"github.com/jhsobrinho/educareapp-sub012/internal/config"
	"github.com/jhsobrinho/educareapp-sub012/internal/database"
	"github.com/jhsobrinho/educareapp-sub012/internal/handlers"
	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
	"github.com/jhsobrinho/educareapp-sub012/internal/security"
	"github.com/jhsobrinho/educareapp-sub012/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be configured")
	}

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Content catalog compiled into the binary
	content := catalog.NewBuiltin()
	log.Printf("Content catalog loaded (version %s, %d questions)", content.Version(), content.QuestionCount())

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	childRepo := repository.NewChildRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)

	// Initialize services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	var notifier service.BadgeNotifier
	if emailService.IsEnabled() {
		notifier = emailService
	}

	sessionService := service.NewSessionService(sessionRepo, userRepo, childRepo, content)
	responseService := service.NewResponseService(responseRepo, sessionRepo, content)
	progressService := service.NewProgressService(progressRepo, userRepo, childRepo, content)
	badgeService := service.NewBadgeService(badgeRepo, progressRepo, sessionRepo, userRepo, childRepo, content, notifier)
	reconcileService := service.NewReconcileService(sessionRepo)

	// Initialize handlers
	limiter := security.NewRateLimiter(30, time.Minute)
	middleware := handlers.NewMiddleware(cfg.JWTSecret, childRepo, limiter)
	botHandler := handlers.NewBotHandler(sessionService, responseService, badgeService, content)
	progressHandler := handlers.NewProgressHandler(progressService, badgeService, content)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Journey bot routes
	mux.HandleFunc("POST /api/v1/children/{childID}/bot/sessions",
		middleware.RequireAuth(middleware.RequireChild(botHandler.StartSession)))
	mux.HandleFunc("POST /api/v1/children/{childID}/bot/sessions/{sessionID}/answers",
		middleware.RequireAuth(middleware.RequireChild(middleware.RateLimit(botHandler.SubmitAnswer))))
	mux.HandleFunc("POST /api/v1/children/{childID}/bot/sessions/{sessionID}/pause",
		middleware.RequireAuth(middleware.RequireChild(botHandler.PauseSession)))
	mux.HandleFunc("POST /api/v1/children/{childID}/bot/sessions/{sessionID}/complete",
		middleware.RequireAuth(middleware.RequireChild(botHandler.CompleteSession)))

	// Journey progress routes
	mux.HandleFunc("GET /api/v1/children/{childID}/journeys/{journeyID}/weeks/{weekID}/progress",
		middleware.RequireAuth(middleware.RequireChild(progressHandler.GetProgress)))
	mux.HandleFunc("POST /api/v1/children/{childID}/journeys/{journeyID}/weeks/{weekID}/topics/{topicID}/complete",
		middleware.RequireAuth(middleware.RequireChild(progressHandler.CompleteTopic)))
	mux.HandleFunc("POST /api/v1/children/{childID}/journeys/{journeyID}/weeks/{weekID}/quizzes/{quizID}/complete",
		middleware.RequireAuth(middleware.RequireChild(progressHandler.CompleteQuiz)))

	// Badge routes
	mux.HandleFunc("GET /api/v1/children/{childID}/badges",
		middleware.RequireAuth(middleware.RequireChild(progressHandler.ListBadges)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background counter reconciliation
	go reconcileCounters(reconcileService, cfg.ReconcileInterval)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// reconcileCounters periodically repairs drifted answered counters
func reconcileCounters(reconcileService *service.ReconcileService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		repaired, err := reconcileService.ReconcileCounters()
		if err != nil {
			log.Printf("Error reconciling session counters: %v", err)
			continue
		}
		if repaired > 0 {
			log.Printf("Reconciled %d session counters", repaired)
		}
	}
}
