package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nps-campus/gatepass-api/internal/config"
	"github.com/nps-campus/gatepass-api/internal/database"
	"github.com/nps-campus/gatepass-api/internal/handler"
	"github.com/nps-campus/gatepass-api/internal/middleware"
	"github.com/nps-campus/gatepass-api/internal/models"
	"github.com/nps-campus/gatepass-api/internal/repository"
	"github.com/nps-campus/gatepass-api/internal/router"
	"github.com/nps-campus/gatepass-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Student{},
		&models.StaffAccount{},
		&models.LeaveRequest{},
		&models.OutgoingRecord{},
		&models.AttendanceRecord{},
		&models.ReconciliationEntry{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, attendance cache and event channel disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	natsConn, err := database.ConnectNATS(cfg.NATSURL)
	if err != nil {
		logger.Warn().Err(err).Msg("nats unavailable, approval events disabled")
		natsConn = nil
	} else {
		defer natsConn.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	requestRepo := repository.NewRequestRepository(db)
	outgoingRepo := repository.NewOutgoingRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	reconciliationRepo := repository.NewReconciliationRepository(db)

	events := service.NewApprovalEventPublisher(natsConn, redisClient, cfg.EventChannelBase, logger)
	approvalService := service.NewApprovalService(requestRepo, studentRepo, reconciliationRepo, validate, events, logger)
	outgoingService := service.NewOutgoingService(outgoingRepo, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, redisClient, cfg.AttendanceCacheTTL, logger)
	authService := service.NewAuthService(studentRepo, staffRepo, validate, cfg.JWTSecret, cfg.TokenTTL, logger)
	rosterService := service.NewRosterService(studentRepo, staffRepo, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authService, logger),
		RequestHandler:    handler.NewRequestHandler(approvalService, logger),
		FacultyHandler:    handler.NewFacultyHandler(approvalService, logger),
		AdminHandler:      handler.NewAdminHandler(approvalService, rosterService, logger),
		OutgoingHandler:   handler.NewOutgoingHandler(outgoingService, logger),
		AttendanceHandler: handler.NewAttendanceHandler(attendanceService, logger),
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
