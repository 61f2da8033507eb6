package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"castlechat/config"
	"castlechat/models"
	"castlechat/utils"

	"go.uber.org/zap"
)

// Client is the interface to the remote booking service. All calls are
// context-bounded; CreateReservation must be given an idempotency key so
// retried deliveries cannot produce duplicate bookings.
type Client interface {
	GetRooms(ctx context.Context) ([]models.Room, error)
	GetWorkingHours(ctx context.Context, date string) (models.WorkingHours, error)
	CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (models.AvailabilityResult, error)
	CreateReservation(ctx context.Context, payload models.CreateReservationPayload, idempotencyKey string) (models.CreatedReservation, error)
}

// ClientOptions configures an HTTPClient. Zero values fall back to the
// loaded application config, so the client can be constructed before the
// environment is known; misconfiguration surfaces on the first call.
type ClientOptions struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int

	// Sleep and Jitter are injectable for tests.
	Sleep  func(ctx context.Context, d time.Duration) error
	Jitter func() time.Duration
}

// HTTPClient implements Client against the booking REST API with bounded
// retries, exponential backoff and per-request timeouts.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
	sleep      func(ctx context.Context, d time.Duration) error
	jitter     func() time.Duration
}

// NewHTTPClient builds a booking API client. Construction never fails; a
// missing base URL or API key is reported by the first request instead.
func NewHTTPClient(opts ClientOptions) *HTTPClient {
	if opts.BaseURL == "" {
		opts.BaseURL = config.AppConfig.ReservationAPIURL
	}
	if opts.APIKey == "" {
		opts.APIKey = config.AppConfig.ReservationAPIKey
	}
	if opts.Timeout <= 0 {
		ms := config.AppConfig.ReservationTimeoutMs
		if ms <= 0 {
			ms = 8000
		}
		opts.Timeout = time.Duration(ms) * time.Millisecond
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = config.AppConfig.ReservationRetries
		if opts.MaxRetries <= 0 {
			opts.MaxRetries = 2
		}
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepCtx
	}
	if opts.Jitter == nil {
		opts.Jitter = defaultJitter
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		timeout:    opts.Timeout,
		maxRetries: opts.MaxRetries,
		httpClient: &http.Client{},
		sleep:      opts.Sleep,
		jitter:     opts.Jitter,
	}
}

// GetRooms lists the pub's bookable rooms.
func (c *HTTPClient) GetRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, http.MethodGet, "/api/chat/rooms", nil, "", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetWorkingHours returns the bookable start times for one date.
func (c *HTTPClient) GetWorkingHours(ctx context.Context, date string) (models.WorkingHours, error) {
	var hours models.WorkingHours
	q := url.Values{"target_date": {date}}
	err := c.do(ctx, http.MethodGet, "/api/chat/working-hours?"+q.Encode(), nil, "", &hours)
	return hours, err
}

// CheckAvailability asks whether the requested slot fits the party.
func (c *HTTPClient) CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (models.AvailabilityResult, error) {
	var result models.AvailabilityResult
	err := c.do(ctx, http.MethodPost, "/api/chat/availability", req, "", &result)
	return result, err
}

// CreateReservation books the collected reservation. The idempotency key is
// sent as a header so server-side deduplication absorbs client retries.
func (c *HTTPClient) CreateReservation(ctx context.Context, payload models.CreateReservationPayload, idempotencyKey string) (models.CreatedReservation, error) {
	var created models.CreatedReservation
	err := c.do(ctx, http.MethodPost, "/api/chat/reservations", payload, idempotencyKey, &created)
	return created, err
}

// attemptResult captures one HTTP attempt so the retry loop stays flat.
type attemptResult struct {
	status     int
	body       []byte
	retryAfter int // seconds, from the Retry-After header
}

// do performs one logical request with the retry budget. Retryable failures
// are 429, 5xx and transport errors (timeouts included); everything else
// fails immediately with the response body captured.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, idempotencyKey string, out any) error {
	if c.baseURL == "" {
		return NewConfigError("RESERVATION_API_URL not configured")
	}
	if c.apiKey == "" {
		return NewConfigError("RESERVATION_API_KEY not configured")
	}

	var body []byte
	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return err
		}
	}

	logger := utils.GetLogger()
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		res, err := c.roundTrip(ctx, method, path, body, idempotencyKey)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return err
			}
			if attempt < c.maxRetries {
				logger.Warn("Reservation API request failed, retrying",
					zap.String("path", path), zap.Int("attempt", attempt), zap.Error(err))
				if serr := c.sleep(ctx, backoffDelay(attempt, 0, c.jitter)); serr != nil {
					return serr
				}
			}
			continue
		}

		switch {
		case res.status >= 200 && res.status < 300:
			return decodeResponse(res, out)

		case res.status == http.StatusTooManyRequests || (res.status >= 500 && res.status <= 599):
			lastErr = NewAPIError(res.status, string(res.body))
			if attempt < c.maxRetries {
				logger.Warn("Reservation API returned retryable status",
					zap.String("path", path), zap.Int("status", res.status), zap.Int("attempt", attempt))
				if serr := c.sleep(ctx, backoffDelay(attempt, res.retryAfter, c.jitter)); serr != nil {
					return serr
				}
			}

		default:
			// Non-retryable error: surface immediately with the body captured.
			return NewAPIError(res.status, string(res.body))
		}
	}

	return lastErr
}

// roundTrip issues a single HTTP attempt bounded by the client timeout.
func (c *HTTPClient) roundTrip(ctx context.Context, method, path string, body []byte, idempotencyKey string) (attemptResult, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
	if err != nil {
		return attemptResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return attemptResult{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return attemptResult{}, err
	}
	return attemptResult{
		status:     resp.StatusCode,
		body:       data,
		retryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}, nil
}

// decodeResponse parses a success body. 204 yields the zero value, JSON
// content is decoded, and anything unparseable is kept in the error rather
// than dropped.
func decodeResponse(res attemptResult, out any) error {
	if res.status == http.StatusNoContent || len(res.body) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return NewDecodeError(string(res.body))
	}
	return nil
}

func parseRetryAfter(header string) int {
	if header == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}
