package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"
)

// RetryPolicy controls the backoff loop around one generateContent call.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  5,
		InitialDelay: time.Second,
		Multiplier:   2.0,
	}
}

type Client struct {
	apiKey     string
	httpClient *http.Client
	policy     RetryPolicy
	log        *logger.ZapLogger
	sleep      func(time.Duration)
}

// NewClient builds a caller for the generativelanguage API. An empty apiKey
// is allowed: every Generate call then fails with ErrKeyNotConfigured, so a
// misconfigured deployment starts up and reports the problem per request.
func NewClient(apiKey string, log *logger.ZapLogger) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		policy:     DefaultRetryPolicy(),
		log:        log,
		sleep:      time.Sleep,
	}
}

// Generate POSTs payload to endpoint with the key as query parameter.
// 429 and transport failures are retried with exponential backoff; 400/403
// fail immediately as credential errors; other non-2xx fail immediately.
func (c *Client) Generate(ctx context.Context, endpoint string, payload *GenerateRequest) (*GenerateResponse, error) {
	if c.apiKey == "" {
		return nil, ErrKeyNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode gemini request: %w", err)
	}

	target := endpoint + "?key=" + url.QueryEscape(c.apiKey)
	delay := c.policy.InitialDelay
	var lastErr error

	for i := 0; i < c.policy.MaxAttempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if i == c.policy.MaxAttempts-1 {
				break
			}
			c.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: fmt.Sprintf("gemini request failed, retrying in %.2fs", delay.Seconds()),
				Service: "gemini",
				Error:   err,
			})
			c.sleep(delay)
			delay = time.Duration(float64(delay) * c.policy.Multiplier)
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			if i == c.policy.MaxAttempts-1 {
				return nil, &RateLimitError{Attempts: c.policy.MaxAttempts, Body: string(respBody)}
			}
			c.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: fmt.Sprintf("rate limit exceeded (429), retrying in %.2fs", delay.Seconds()),
				Service: "gemini",
			})
			c.sleep(delay)
			delay = time.Duration(float64(delay) * c.policy.Multiplier)
			continue
		}

		// 400/403 means a bad key, not a transient condition. Never retried.
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusForbidden {
			return nil, &CredentialError{Status: resp.StatusCode, Body: string(respBody)}
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &UpstreamError{Status: resp.StatusCode}
		}

		var out GenerateResponse
		if err := json.Unmarshal(respBody, &out); err != nil {
			return nil, fmt.Errorf("decode gemini response: %w", err)
		}
		return &out, nil
	}

	return nil, &TransportError{Attempts: c.policy.MaxAttempts, Err: lastErr}
}
