package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "projectportal/internal/api/http"
	"projectportal/internal/config"
	"projectportal/internal/jobs"
	"projectportal/internal/logger"
	"projectportal/internal/repository/postgres"
	"projectportal/internal/scheduler"
	"projectportal/internal/security"
	"projectportal/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Project Portal backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := api.NewAuthMiddleware(tokenManager)

	// Initialize Email
	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey == "" {
		logger.Info("No SendGrid API key configured, decision notices will be logged only")
		emailSvc = service.NewNoopEmailService()
	} else {
		emailSvc = service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.AccountRepository, tokenManager)
	accountSvc := service.NewAccountService(store.AccountRepository)
	projectSvc := service.NewProjectService(store.ProjectRepository, store.MembershipRepository, store.SubmissionRepository, store.AccountRepository)
	membershipSvc := service.NewMembershipService(store.MembershipRepository, store.ProjectRepository, store.AccountRepository, emailSvc)
	submissionSvc := service.NewSubmissionService(store.SubmissionRepository, store.LikeRepository, store.ProjectRepository, store.AccountRepository)
	feedbackSvc := service.NewFeedbackService(store.FeedbackRepository)

	// Initialize HTTP handlers
	uploadHandler, err := api.NewUploadHandler(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize upload handler", "error", err)
		log.Fatalf("Failed to initialize upload handler: %v", err)
	}
	handlers := api.Handlers{
		Auth:       api.NewAuthHandler(authSvc),
		Account:    api.NewAccountHandler(accountSvc),
		Project:    api.NewProjectHandler(projectSvc),
		Membership: api.NewMembershipHandler(membershipSvc),
		Submission: api.NewSubmissionHandler(submissionSvc),
		Feedback:   api.NewFeedbackHandler(feedbackSvc),
		Upload:     uploadHandler,
	}
	router := api.NewRouter(handlers, authMiddleware)

	// Start Scheduler
	jobRunner := jobs.NewJobRunner(store.ProjectRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
