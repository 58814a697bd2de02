package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingo-byte/internal/adapter"
	"lingo-byte/internal/cache"
	"lingo-byte/internal/config"
	"lingo-byte/internal/domain"
	"lingo-byte/internal/handler"
	"lingo-byte/internal/logger"
	"lingo-byte/internal/middleware"
	"lingo-byte/internal/repository"
	"lingo-byte/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repository.Connect(ctx, cfg.Store)
	if err != nil {
		l.Fatal("store connection failed", zap.Error(err))
	}
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		l.Fatal("index creation failed", zap.Error(err))
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			l.Warn("store disconnect failed", zap.Error(err))
		}
	}()

	llmClient, err := adapter.NewOllamaClient(cfg.LLM)
	if err != nil {
		l.Fatal("LLM client setup failed", zap.Error(err))
	}

	// Redis is optional; without it the detailed analytics projection is
	// simply computed on every request.
	var analyticsCache domain.Cache
	if redisClient, err := cache.NewRedisClient(cfg.Redis); err != nil {
		l.Warn("running without redis cache", zap.Error(err))
	} else {
		analyticsCache = adapter.NewRedisCacheAdapter(redisClient)
		defer redisClient.Close()
	}

	userRepo := repository.NewMongoUserRepository(db)
	quizRepo := repository.NewMongoQuizRepository(db)
	sessionRepo := repository.NewMongoSessionRepository(db)
	qaRepo := repository.NewMongoQARepository(db)
	chatLogRepo := repository.NewMongoChatLogRepository(db)

	authService := service.NewAuthService(userRepo, sessionRepo, quizRepo, qaRepo, chatLogRepo, cfg.Auth)
	progressionService := service.NewProgressionService(userRepo, quizRepo, analyticsCache, cfg.Learning)
	quizService := service.NewQuizService(userRepo, quizRepo, llmClient, cfg.Learning)
	chatService := service.NewChatService(llmClient, chatLogRepo, qaRepo)
	analyticsService := service.NewAnalyticsService(userRepo, quizRepo, analyticsCache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())

	protected := middleware.Protected(authService)
	api := app.Group("/api")

	handler.NewSystemHandler(llmClient).RegisterRoutes(api, protected)
	handler.NewAuthHandler(authService).RegisterRoutes(api, protected)
	handler.NewQuizHandler(quizService, progressionService).RegisterRoutes(api, protected)
	handler.NewAnalyticsHandler(analyticsService).RegisterRoutes(api, protected)
	handler.NewChatHandler(chatService).RegisterRoutes(api, protected)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		l.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := app.Listen(addr); err != nil {
			l.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		l.Error("graceful shutdown failed", zap.Error(err))
	}
}
