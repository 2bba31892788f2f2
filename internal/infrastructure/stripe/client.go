package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courseflow/course-service/config"
	pkgerrors "github.com/courseflow/course-service/pkg/errors"
)

// Intent is the subset of a payment intent this service cares about.
type Intent struct {
	ID             string `json:"id"`
	Amount         int64  `json:"amount"`
	AmountReceived int64  `json:"amount_received"`
}

// Gateway creates and retrieves payment intents against the processor.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
}

type Client struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
	logger     zerolog.Logger
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(cfg *config.StripeConfig, logger zerolog.Logger) Gateway {
	client := &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		currency: cfg.Currency,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Str("currency", cfg.Currency).
		Msg("Payment gateway client initialized")

	return client
}

// CreateIntent opens a payment intent for amount in minor currency units
// with automatic payment-method selection enabled.
func (c *Client) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", pkgerrors.NewValidationError("amount must be a positive integer")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", c.currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	endpoint := fmt.Sprintf("%s/v1/payment_intents", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	var intent Intent
	if err := c.do(req, &intent); err != nil {
		return "", err
	}

	c.logger.Info().
		Str("intent_id", intent.ID).
		Int64("amount", amount).
		Msg("payment intent created")

	return intent.ID, nil
}

// RetrieveIntent fetches the current requested and received amounts for an
// intent reference.
func (c *Client) RetrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s", c.baseURL, url.PathEscape(intentID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	var intent Intent
	if err := c.do(req, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("url", req.URL.String()).
			Msg("payment gateway request failed")
		return pkgerrors.NewGatewayErrorf("payment gateway unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}

		c.logger.Warn().
			Int("status_code", resp.StatusCode).
			Str("url", req.URL.String()).
			Str("message", message).
			Msg("payment gateway rejected request")

		return pkgerrors.NewGatewayErrorf("payment gateway error: %s", message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.NewGatewayErrorf("failed to decode gateway response: %v", err)
	}

	return nil
}
