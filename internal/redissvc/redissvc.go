package redissvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// RedisService wraps the shared Redis client for the refresh-token store and
// the scan-result cache.
type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

// SetRefreshToken stores a refresh token for a user with a TTL. Tokens are
// keyed by their value so rotation invalidates the old one implicitly.
func (s *RedisService) SetRefreshToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, "refresh:"+token, userID, ttl).Err()
}

// ConsumeRefreshToken atomically fetches and deletes a refresh token,
// returning the user it belonged to. A missing token yields ErrCacheMiss.
func (s *RedisService) ConsumeRefreshToken(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, "refresh:"+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return userID, err
}

// ScanCacheKey derives the scan-cache key from the raw image bytes, so the
// same photo never hits the vision gateway twice within the TTL.
func ScanCacheKey(image []byte) string {
	sum := sha256.Sum256(image)
	return "scan:" + hex.EncodeToString(sum[:])
}

func (s *RedisService) GetScanResult(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return v, err
}

func (s *RedisService) SetScanResult(ctx context.Context, key, expiryDate string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, expiryDate, ttl).Err()
}
