package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/peccode-dev/peccode-api/internal/auth"
	"github.com/peccode-dev/peccode-api/internal/config"
	"github.com/peccode-dev/peccode-api/internal/database"
	"github.com/peccode-dev/peccode-api/internal/handler"
	"github.com/peccode-dev/peccode-api/internal/middleware"
	"github.com/peccode-dev/peccode-api/internal/models"
	"github.com/peccode-dev/peccode-api/internal/repository"
	"github.com/peccode-dev/peccode-api/internal/router"
	"github.com/peccode-dev/peccode-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Question{}, &models.Submission{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, dashboard caching disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	authService := service.NewAuthService(userRepo, tokens, validate, cfg.CollegeMailDomain, logger)
	questionService := service.NewQuestionService(questionRepo, validate, logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	submissionService := service.NewSubmissionService(submissionRepo, questionRepo, validate, rng, logger)
	executeService := service.NewExecuteService(validate, cfg.ExecuteDelay, logger)
	dashboardService := service.NewDashboardService(questionRepo, submissionRepo, redisClient, cfg.DashboardCacheTTL, logger)

	if cfg.SeedOnStart {
		seedService := service.NewSeedService(userRepo, questionRepo, submissionRepo, logger)
		if err := seedService.SeedIfEmpty(context.Background()); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authService, logger),
		UserHandler:       handler.NewUserHandler(authService, logger),
		QuestionHandler:   handler.NewQuestionHandler(questionService, logger),
		SubmissionHandler: handler.NewSubmissionHandler(submissionService, logger),
		ExecuteHandler:    handler.NewExecuteHandler(executeService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
		JWTMiddleware:     middleware.JWTProtected(tokens),
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
