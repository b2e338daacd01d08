package handlers_test_suite

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/expiry-tracker/internal/http"
	handler "github.com/rogerio-castellano/expiry-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/expiry-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/expiry-tracker/internal/vision"
)

// stubExtractor answers every scan with a fixed date or error.
type stubExtractor struct {
	date string
	err  error
}

func (s stubExtractor) ExtractExpiryDate(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.date, nil
}

const sampleImage = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

func setupScan(t *testing.T, extractor handler.DateExtractor) http.Handler {
	t.Helper()
	handler.SetVisionClient(extractor)
	rl.CleanupAllVisitors()
	t.Cleanup(func() {
		handler.SetVisionClient(nil)
		rl.CleanupAllVisitors()
	})
	return api.NewRouter()
}

func TestScanHandler_ExtractsDate(t *testing.T) {
	r := setupScan(t, stubExtractor{date: "2026-12-31"})

	w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Image: sampleImage})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ScanResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ExpiryDate == nil || *resp.ExpiryDate != "2026-12-31" {
		t.Errorf("expected extracted date 2026-12-31, got %+v", resp)
	}
}

func TestScanHandler_NoDateFound(t *testing.T) {
	r := setupScan(t, stubExtractor{err: vision.ErrNoDateFound})

	w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Image: sampleImage})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ScanResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.ExpiryDate != nil {
		t.Errorf("expected null expiry date, got %v", *resp.ExpiryDate)
	}
	if resp.Message == "" {
		t.Error("expected an explanatory message")
	}
}

func TestScanHandler_GatewayErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"rate limited upstream", vision.ErrRateLimited, http.StatusTooManyRequests},
		{"credits exhausted", vision.ErrCreditsExhausted, http.StatusPaymentRequired},
		{"gateway down", context.DeadlineExceeded, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupScan(t, stubExtractor{err: tt.err})

			w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Image: sampleImage})
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}

func TestScanHandler_RejectsNonImagePayload(t *testing.T) {
	r := setupScan(t, stubExtractor{date: "2026-12-31"})

	w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Image: "hello"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non data-URL payload, got %d", w.Code)
	}
}

func TestScanHandler_NotConfigured(t *testing.T) {
	r := setupScan(t, nil)

	w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Image: sampleImage})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 when the vision client is absent, got %d", w.Code)
	}
}

func TestScanHandler_PerUserRateLimit(t *testing.T) {
	r := setupScan(t, stubExtractor{date: "2026-12-31"})

	// Burst of three, then the limiter kicks in.
	for i := 0; i < 3; i++ {
		if w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Image: sampleImage}); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 OK, got %d", i+1, w.Code)
		}
	}

	w := doJSON(r, http.MethodPost, "/scan", handler.ScanRequest{Image: sampleImage})
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", w.Code)
	}
}
