package main

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	_ "github.com/rogerio-castellano/expiry-tracker/docs"
	"github.com/rogerio-castellano/expiry-tracker/internal/auth"
	"github.com/rogerio-castellano/expiry-tracker/internal/config"
	"github.com/rogerio-castellano/expiry-tracker/internal/db"
	ehttp "github.com/rogerio-castellano/expiry-tracker/internal/http"
	"github.com/rogerio-castellano/expiry-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/expiry-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/expiry-tracker/internal/metrics"
	"github.com/rogerio-castellano/expiry-tracker/internal/redissvc"
	"github.com/rogerio-castellano/expiry-tracker/internal/reminder"
	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
	"github.com/rogerio-castellano/expiry-tracker/internal/vision"
)

var ctx = context.Background()

// @title Expiry Tracker API
// @version 1.0
// @description REST API for tracking household product expiry dates.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb)
	handlers.SetRedisService(redisService)
	handlers.SetScanCacheTTL(cfg.ScanCacheTTL)
	auth.SetRefreshTokenStore(redisService, cfg.RefreshTTL)

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("❌ Could not run migrations: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	productRepo := repo.NewPostgresProductRepository(database)
	profileRepo := repo.NewPostgresProfileRepository(database)
	notificationRepo := repo.NewPostgresNotificationRepository(database)

	handlers.SetProductRepo(productRepo)
	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetProfileRepo(profileRepo)
	handlers.SetNotificationRepo(notificationRepo)

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	handlers.SetMetricsCollector(collector)
	ehttp.SetMetricsCollector(collector)

	if cfg.VisionAPIKey != "" {
		handlers.SetVisionClient(vision.New(cfg.VisionBaseURL, cfg.VisionAPIKey, cfg.VisionModel, cfg.VisionTimeout))
	} else {
		log.Println("⚠️ EXPIRY_VISION_API_KEY not set, scan endpoint disabled")
	}

	go rl.StartVisitorCleanupLoop()
	go reminder.NewScheduler(profileRepo, productRepo, notificationRepo, collector).Start(ctx, cfg.ReminderInterval)

	r := ehttp.NewRouter()
	log.Println("✅ Server running on :" + cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, r); err != nil {
		log.Fatal(err)
	}
}
