package handlers

import (
	"context"

	"github.com/rogerio-castellano/expiry-tracker/internal/metrics"
	"github.com/rogerio-castellano/expiry-tracker/internal/redissvc"
	repo "github.com/rogerio-castellano/expiry-tracker/internal/repo"
)

// DateExtractor is the vision gateway seen from the scan handler: image in,
// YYYY-MM-DD out or vision.ErrNoDateFound.
type DateExtractor interface {
	ExtractExpiryDate(ctx context.Context, imageDataURL string) (string, error)
}

var (
	productRepo      repo.ProductRepository
	categoryRepo     repo.CategoryRepository
	userRepo         repo.UserRepository
	profileRepo      repo.ProfileRepository
	notificationRepo repo.NotificationRepository

	redisService     *redissvc.RedisService
	visionClient     DateExtractor
	metricsCollector *metrics.Collector
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetProfileRepo(r repo.ProfileRepository) {
	profileRepo = r
}

func SetNotificationRepo(r repo.NotificationRepository) {
	notificationRepo = r
}

func SetRedisService(rs *redissvc.RedisService) {
	redisService = rs
}

func SetVisionClient(c DateExtractor) {
	visionClient = c
}

func SetMetricsCollector(c *metrics.Collector) {
	metricsCollector = c
}
