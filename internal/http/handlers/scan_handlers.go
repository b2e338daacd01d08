package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/redissvc"
	"github.com/rogerio-castellano/expiry-tracker/internal/vision"
)

var scanCacheTTL = 24 * time.Hour

// SetScanCacheTTL overrides how long extracted dates stay cached per image.
func SetScanCacheTTL(ttl time.Duration) {
	scanCacheTTL = ttl
}

func recordScan(outcome string) {
	if metricsCollector != nil {
		metricsCollector.RecordScan(outcome)
	}
}

// ScanHandler godoc
// @Summary Extract an expiry date from a packaging photo
// @Description Sends the photo to the vision gateway and returns the date it
// @Description reads, if any. Identical images are served from cache.
// @Tags scan
// @Accept json
// @Produce json
// @Param scan body ScanRequest true "base64 data URL of the photo"
// @Success 200 {object} ScanResult
// @Failure 400 {string} string "Invalid input"
// @Failure 402 {string} string "Credits exhausted"
// @Failure 429 {string} string "Rate limited"
// @Failure 503 {string} string "Vision gateway unavailable"
// @Security BearerAuth
// @Router /scan [post]
func ScanHandler(w http.ResponseWriter, r *http.Request) {
	if visionClient == nil {
		http.Error(w, "scan is not configured", http.StatusServiceUnavailable)
		return
	}

	var req ScanRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if !strings.HasPrefix(req.Image, "data:image/") {
		http.Error(w, "image must be a base64 data URL", http.StatusBadRequest)
		return
	}

	cacheKey := redissvc.ScanCacheKey([]byte(req.Image))
	if redisService != nil {
		if cached, err := redisService.GetScanResult(r.Context(), cacheKey); err == nil {
			recordScan("cached")
			if err := writeJSON(w, http.StatusOK, ScanResult{ExpiryDate: &cached}); err != nil {
				log.Printf("Failed to write JSON response: %v", err)
			}
			return
		} else if !errors.Is(err, redissvc.ErrCacheMiss) {
			log.Printf("scan cache lookup failed: %v", err)
		}
	}

	expiryDate, err := visionClient.ExtractExpiryDate(r.Context(), req.Image)
	if err != nil {
		switch {
		case errors.Is(err, vision.ErrNoDateFound):
			recordScan("not_found")
			if err := writeJSON(w, http.StatusOK, ScanResult{
				Message: "no expiry date found in image",
			}); err != nil {
				log.Printf("Failed to write JSON response: %v", err)
			}
		case errors.Is(err, vision.ErrRateLimited):
			recordScan("rate_limited")
			http.Error(w, "rate limit exceeded, please try again later", http.StatusTooManyRequests)
		case errors.Is(err, vision.ErrCreditsExhausted):
			recordScan("credits_exhausted")
			http.Error(w, "ai credits exhausted", http.StatusPaymentRequired)
		default:
			recordScan("error")
			log.Printf("vision extraction failed: %v", err)
			http.Error(w, "failed to analyze image", http.StatusServiceUnavailable)
		}
		return
	}

	recordScan("extracted")
	if redisService != nil {
		if err := redisService.SetScanResult(r.Context(), cacheKey, expiryDate, scanCacheTTL); err != nil {
			log.Printf("scan cache store failed: %v", err)
		}
	}

	if err := writeJSON(w, http.StatusOK, ScanResult{ExpiryDate: &expiryDate}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
