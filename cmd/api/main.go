package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dog-personality-quiz/internal/config"
	"dog-personality-quiz/internal/db"
	apihttp "dog-personality-quiz/internal/http"
	"dog-personality-quiz/internal/llm"
	"dog-personality-quiz/internal/metrics"
	"dog-personality-quiz/internal/repository"
	"dog-personality-quiz/internal/service"
	"dog-personality-quiz/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal("db schema", zap.Error(err))
	}

	sessionRepo := repository.NewPgSessionRepository(pool)
	questionRepo := repository.NewPgQuestionRepository(pool)
	answerRepo := repository.NewPgAnswerRepository(pool)
	resultRepo := repository.NewPgResultRepository(pool)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	imageClient := llm.NewImageClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.ImageModel, cfg.ImageSize, logger)
	pipeline := metrics.NewPipeline()

	imageStore, err := storage.NewFileStore(cfg.ImageSavePath, cfg.ImagePublicBaseURL)
	if err != nil {
		logger.Fatal("image store", zap.Error(err))
	}

	var (
		chatLimiter       service.RateLimiter
		regenerateLimiter service.RateLimiter
		resultCache       service.ResultCache
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-process limiters and no result cache", zap.Error(err))
		} else {
			chatLimiter = service.NewRedisRateLimiter(redisClient, "quiz:rl:chat:", cfg.RateLimitWindow, cfg.ChatRateLimit)
			regenerateLimiter = service.NewRedisRateLimiter(redisClient, "quiz:rl:regenerate:", cfg.RateLimitWindow, cfg.RegenerateRateLimit)
			resultCache = service.NewRedisResultCache(redisClient, 10*time.Minute)
		}
		cancel()
	}
	if chatLimiter == nil {
		// Sin redis no hay cache: una copia por proceso quedaría desfasada
		// entre réplicas después de una regeneración.
		chatLimiter = service.NewMemoryRateLimiter(cfg.RateLimitWindow, cfg.ChatRateLimit)
		regenerateLimiter = service.NewMemoryRateLimiter(cfg.RateLimitWindow, cfg.RegenerateRateLimit)
	}

	tokens := service.NewSessionTokenService(cfg.SessionTokenSecret, cfg.SessionTokenTTL)
	if !tokens.Enabled() {
		logger.Warn("session token secret not configured, write endpoints are open")
	}

	quizSvc := service.NewQuizService(sessionRepo, questionRepo, answerRepo, tokens, logger, pipeline)
	resultSvc := service.NewResultService(
		sessionRepo,
		answerRepo,
		resultRepo,
		service.NewTraitProfiler(service.DefaultRandSource),
		service.NewTitleGenerator(llmClient, cfg.TitleTimeout, logger, pipeline),
		service.NewTraitImageService(imageClient, imageStore, cfg.ImageTimeout, cfg.ImageConcurrency, cfg.PlaceholderBaseURL, logger, pipeline),
		resultCache,
		regenerateLimiter,
		logger,
		pipeline,
	)
	chatSvc := service.NewChatService(sessionRepo, resultRepo, llmClient, chatLimiter, cfg.ChatTimeout, logger)

	router := apihttp.NewRouter(
		logger,
		cfg.AllowedOrigins(),
		pipeline.Handler(),
		imageStore,
		tokens,
		apihttp.NewQuizHandler(logger, quizSvc),
		apihttp.NewResultHandler(logger, resultSvc, chatSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// La generación de imágenes puede tardar; se le da margen a lo que está en vuelo.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ImageTimeout+10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
