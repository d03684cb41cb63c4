package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	cron "github.com/progressbuddy/progress-buddy/internal/scheduler"

	"github.com/progressbuddy/progress-buddy/internal/config"
	"github.com/progressbuddy/progress-buddy/internal/database"
	"github.com/progressbuddy/progress-buddy/internal/handlers"
	"github.com/progressbuddy/progress-buddy/internal/jobs"
	"github.com/progressbuddy/progress-buddy/internal/repository"
	"github.com/progressbuddy/progress-buddy/internal/services"
	"github.com/progressbuddy/progress-buddy/pkg/email"
	"github.com/progressbuddy/progress-buddy/pkg/logger"
	"github.com/progressbuddy/progress-buddy/pkg/middleware"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Phase one: build every dependency. The listener opens only after all
	// of this succeeds; a database failure is fatal.
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	activityRepo := repository.NewActivityRepository(db)
	logRepo := repository.NewLogRepository(db)

	// One mailer for the whole process, configured up front.
	mailer := email.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	// --- Services ---
	activityService := services.NewActivityService(activityRepo)
	logService := services.NewLogService(logRepo, activityRepo)
	notificationService := services.NewNotificationService(activityRepo, logRepo, mailer)

	// --- Handlers ---
	activityHandler := handlers.NewActivityHandler(activityService)
	logHandler := handlers.NewLogHandler(logService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, cfg)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFoundHandler)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	// Activity routes
	activityRoutes := api.PathPrefix("/activities").Subrouter()
	activityRoutes.HandleFunc("", activityHandler.CreateActivityHandler).Methods("POST")
	activityRoutes.HandleFunc("", activityHandler.GetActivitiesHandler).Methods("GET")
	activityRoutes.HandleFunc("/{id}", activityHandler.GetActivityHandler).Methods("GET")
	activityRoutes.HandleFunc("/{id}", activityHandler.UpdateActivityHandler).Methods("PUT")
	activityRoutes.HandleFunc("/{id}", activityHandler.DeleteActivityHandler).Methods("DELETE")
	activityRoutes.HandleFunc("/{id}/complete", activityHandler.CompleteActivityHandler).Methods("PATCH")

	// Log routes
	logRoutes := api.PathPrefix("/logs").Subrouter()
	logRoutes.HandleFunc("", logHandler.CreateLogHandler).Methods("POST")
	logRoutes.HandleFunc("", logHandler.GetLogsHandler).Methods("GET")
	logRoutes.HandleFunc("/{id}", logHandler.GetLogHandler).Methods("GET")
	logRoutes.HandleFunc("/{id}", logHandler.DeleteLogHandler).Methods("DELETE")

	// Notification routes, rate limited since every call sends email
	notificationRoutes := api.PathPrefix("/notifications").Subrouter()
	notificationRoutes.Use(middleware.NewRateLimiter(10, time.Minute).Limit)
	notificationRoutes.HandleFunc("/achievement", notificationHandler.SendAchievementHandler).Methods("POST")
	notificationRoutes.HandleFunc("/goal-completed", notificationHandler.SendGoalCompletedHandler).Methods("POST")
	notificationRoutes.HandleFunc("/weekly-summary", notificationHandler.SendWeeklySummaryHandler).Methods("POST")

	// Apply middleware for request IDs, logging and panic recovery
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware(cfg.IsDevelopment()))

	// Scheduled buddy digests
	digest := jobs.NewBuddyDigest(activityService, notificationService)
	cron.StartNotificationCronJobs(digest)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	// Phase two: open the listener.
	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
