package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"dog-ocean/internal/ai"
	"dog-ocean/internal/config"
	apihttp "dog-ocean/internal/http"
	"dog-ocean/internal/service"
	"dog-ocean/internal/storage"

	"github.com/gin-gonic/gin"
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

	store, err := storage.NewFileSessionStore(filepath.Join(cfg.DataDir, "sessions"))
	if err != nil {
		logger.Fatal("session store init", zap.Error(err))
	}

	batteries := service.NewBatteryRegistry()
	if err := batteries.LoadDir(filepath.Join(cfg.DataDir, "batteries"), logger); err != nil {
		logger.Fatal("battery load", zap.Error(err))
	}

	var profileSvc *ai.ProfileService
	if cfg.OpenAIConfigured() {
		profileSvc, err = ai.NewProfileService(cfg, logger)
		if err != nil {
			logger.Fatal("profile service init", zap.Error(err))
		}
	} else {
		logger.Warn("OPENAI_API_KEY not configured; ai features disabled")
	}

	var cache service.ProfileCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisProfileCache(redisClient, 24*time.Hour)
		}
		cancel()
	}

	sessionSvc := service.NewSessionService(logger, store, batteries, profileSvc, cache)

	tokenSvc := service.NewTokenService(
		cfg.JWTSecret,
		cfg.APIClientID,
		cfg.APIClientSecretHash,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
	)
	var authMW gin.HandlerFunc
	if cfg.JWTSecret != "" && cfg.APIClientID != "" {
		authMW = apihttp.JWTAuthMiddleware(tokenSvc)
	} else {
		logger.Warn("jwt/client credentials not configured; api runs open")
	}

	authHandler := apihttp.NewAuthHandler(logger, tokenSvc)
	batteryHandler := apihttp.NewBatteryHandler(logger, batteries)
	sessionHandler := apihttp.NewSessionHandler(logger, sessionSvc)
	router := apihttp.NewRouter(logger, authMW, authHandler, batteryHandler, sessionHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
