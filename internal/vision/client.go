// Package vision calls the hosted AI gateway that reads expiry dates off
// product packaging photos. The rest of the service treats it as an opaque
// function: image in, YYYY-MM-DD out (or an explicit not-found signal) — the
// returned date flows into Product.ExpiryDate exactly like a typed-in one.
package vision

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
	"github.com/sony/gobreaker/v2"
)

var (
	// ErrNoDateFound means the gateway answered but saw no expiry date in
	// the image. Not a failure of the call itself.
	ErrNoDateFound = errors.New("no expiry date found in image")
	// ErrRateLimited maps the gateway's 429.
	ErrRateLimited = errors.New("vision gateway rate limit exceeded")
	// ErrCreditsExhausted maps the gateway's 402.
	ErrCreditsExhausted = errors.New("vision gateway credits exhausted")
)

const systemPrompt = `You are an expert at reading expiry dates from product packaging images.
Your task is to find and extract the expiry date from the image.
Look for text like "EXP", "EXPIRY", "USE BY", "BEST BEFORE", "BB", "SELL BY", or similar date indicators.
Return ONLY the date in YYYY-MM-DD format.
If you cannot find an expiry date, return "NOT_FOUND".
Do not include any other text or explanation.`

const userPrompt = "Extract the expiry date from this product packaging image. Return only the date in YYYY-MM-DD format."

// Client talks to an OpenAI-compatible chat-completions gateway with a
// vision-capable model. Calls run through a circuit breaker so a misbehaving
// gateway fails fast instead of tying up request handlers.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[string]
}

func New(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
			Name:    "vision-gateway",
			Timeout: 30 * time.Second,
		}),
	}
}

// ExtractExpiryDate sends a packaging photo (as a base64 data URL) to the
// gateway and returns the expiry date it reads, normalized to YYYY-MM-DD.
func (c *Client) ExtractExpiryDate(ctx context.Context, imageDataURL string) (string, error) {
	raw, err := c.breaker.Execute(func() (string, error) {
		return c.requestExtraction(ctx, imageDataURL)
	})
	if err != nil {
		return "", err
	}
	return normalizeDate(raw)
}

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Layouts the model occasionally answers with despite the prompt.
var fallbackLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02.01.2006",
}

// normalizeDate validates the model's answer and coerces near-miss formats to
// the canonical calendar-date form. NOT_FOUND and unparseable answers both
// surface as ErrNoDateFound.
func normalizeDate(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" || text == "NOT_FOUND" {
		return "", ErrNoDateFound
	}
	if isoDateRe.MatchString(text) {
		if _, err := expiry.ParseDate(text); err == nil {
			return text, nil
		}
		return "", ErrNoDateFound
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Format(expiry.DateLayout), nil
		}
	}
	return "", ErrNoDateFound
}
