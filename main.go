// File: appointly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointly/config"
	"appointly/cron"
	"appointly/database"
	appointmentRepoPkg "appointly/database/repository/appointment"
	blockeddateRepoPkg "appointly/database/repository/blockeddate"
	userRepoPkg "appointly/database/repository/user"
	"appointly/handlers"
	"appointly/middleware"
	"appointly/routes"
	"appointly/services/appointment"
	"appointly/services/blockeddates"
	"appointly/services/email"
	"appointly/services/tasks"
	"appointly/services/user"
	"appointly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	blockedRepo := blockeddateRepoPkg.NewMongoBlockedDateRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// Index creation fails when the collection already violates a unique
	// constraint; the server still starts so force-sync can repair the data.
	for _, ensure := range []func() error{
		blockedRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
		apptRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	mailer := email.NewSMTPEmailService()
	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	blockedService := &blockeddates.DefaultBlockedDateService{
		Repo:  blockedRepo,
		Cache: utils.GetCacheClient(),
	}

	userService := &user.DefaultUserService{
		Repo:        userRepo,
		Email:       mailer,
		ResetSecret: config.AppConfig.ResetTokenSecret,
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:         apptRepo,
		Users:        userRepo,
		BlockedDates: blockedService,
		Email:        mailer,
		Reminders:    reminderScheduler,
	}

	// Background reminder worker.
	cron.InitReminderWorker(apptRepo, mailer)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		BlockedDates: handlers.NewBlockedDateHandler(blockedService),
		Appointments: handlers.NewAppointmentHandler(appointmentService),
		Users:        handlers.NewUserHandler(userService),
		Email:        handlers.NewEmailHandler(mailer, userService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	utils.CloseCache()
	database.CloseDB()
	logger.Sugar().Info("main: server stopped gracefully")
}
