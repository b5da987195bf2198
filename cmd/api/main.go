package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Aellun/exam-wishes-app/internal/config"
	apihttp "github.com/Aellun/exam-wishes-app/internal/http"
	"github.com/Aellun/exam-wishes-app/internal/repository"
	"github.com/Aellun/exam-wishes-app/internal/service"
	"github.com/Aellun/exam-wishes-app/internal/sheets"
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

	var wishRepo repository.WishRepository
	if cfg.SpreadsheetID != "" {
		client, err := sheets.NewService(ctx, cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
		if err != nil {
			logger.Fatal("sheets client init failed", zap.Error(err))
		}
		sheetsRepo := repository.NewSheetsWishRepository(client, cfg.SpreadsheetID, cfg.SheetName, cfg.SheetsTimeout)
		if err := sheetsRepo.EnsureHeader(ctx); err != nil {
			logger.Fatal("ensure sheet header failed", zap.Error(err))
		}
		wishRepo = sheetsRepo
		logger.Info("using google sheets store", zap.String("sheet", cfg.SheetName))
	} else {
		logger.Warn("spreadsheet not configured, using in-memory store")
		wishRepo = repository.NewMemoryWishRepository()
	}

	var limiter service.SubmitRateLimiter
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
			limiter = service.NewRedisSubmitRateLimiter(redisClient, cfg.SubmitRateWindow, cfg.SubmitRateMax)
		}
		cancel()
	}

	wishSvc := service.NewWishService(logger, wishRepo)
	boardSvc := service.NewBoardService(wishRepo, cfg.Recipients)
	exportSvc := service.NewExportService()

	wishHandler := apihttp.NewWishHandler(logger, wishSvc, limiter)
	boardHandler := apihttp.NewBoardHandler(logger, boardSvc)
	exportHandler := apihttp.NewExportHandler(logger, wishSvc, exportSvc)
	router := apihttp.NewRouter(logger, wishHandler, boardHandler, exportHandler)

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
