package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"tempmail-api/internal/config"
	"tempmail-api/internal/db"
	apihttp "tempmail-api/internal/http"
	"tempmail-api/internal/repository"
	"tempmail-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	// La validación de config es el único punto fatal de arranque:
	// sin secrets o sin DSN el proceso no levanta.
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}
	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	var loginLimiter service.RateLimiter = service.NewLoginRateLimiter(time.Minute, 10)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, time.Minute, 10)
		}
		cancel()
	}

	accessTTL := time.Duration(cfg.AccessTTLMin) * time.Minute
	refreshTTL := time.Duration(cfg.RefreshTTLHrs) * time.Hour

	userRepo := repository.NewPgUserRepository(pool)
	tokenSvc := service.NewTokenService(cfg.AccessSecret, cfg.RefreshSecret, accessTTL, refreshTTL)
	userSvc := service.NewUserService(logger, userRepo, loginLimiter)

	cookies := apihttp.NewSessionCookies(accessTTL, refreshTTL, cfg.IsProduction())
	authHandler := apihttp.NewAuthHandler(logger, userSvc, tokenSvc, cookies)
	contentHandler := apihttp.NewContentHandler(logger)
	router := apihttp.NewRouter(logger, tokenSvc, cookies, authHandler, contentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("env", cfg.Env))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
