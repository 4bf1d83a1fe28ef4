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

	"github.com/waritk/gradtrack-api/internal/config"
	"github.com/waritk/gradtrack-api/internal/database"
	"github.com/waritk/gradtrack-api/internal/handler"
	"github.com/waritk/gradtrack-api/internal/middleware"
	"github.com/waritk/gradtrack-api/internal/models"
	"github.com/waritk/gradtrack-api/internal/repository"
	"github.com/waritk/gradtrack-api/internal/router"
	"github.com/waritk/gradtrack-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Student{}, &models.ThesisProgress{}, &models.CourseEnrollment{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	thesisRepo := repository.NewThesisRepository(db)
	statisticsRepo := repository.NewStatisticsRepository(db)

	studentService := service.NewStudentService(studentRepo, validate, logger)
	courseService := service.NewCourseService(courseRepo, validate, logger)
	thesisService := service.NewThesisService(thesisRepo, logger)
	statisticsService := service.NewStatisticsService(statisticsRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:       &logger,
		AllowOrigins: cfg.CORSAllowOrigins,
	})
	router.Register(app, cfg, router.Dependencies{
		StudentHandler:    handler.NewStudentHandler(studentService, logger),
		CourseHandler:     handler.NewCourseHandler(courseService, logger),
		ThesisHandler:     handler.NewThesisHandler(thesisService, logger),
		StatisticsHandler: handler.NewStatisticsHandler(statisticsService, logger),
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
