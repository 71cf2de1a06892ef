package chatlytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/chatlytics/chatlytics-go/internal/transport"
	"github.com/chatlytics/chatlytics-go/pkg/apierror"
	"github.com/chatlytics/chatlytics-go/pkg/validation"
)

const (
	// DefaultBaseURL is the production Chatlytics API host.
	DefaultBaseURL = "https://api.chatlytics.io"

	// DefaultTimeout bounds each individual HTTP request.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is how many times a transient failure is retried
	// after the initial attempt.
	DefaultMaxRetries = 3
)

// ErrAPIKeyRequired is returned by New when no API key is configured.
var ErrAPIKeyRequired = errors.New("api key is required")

// Config holds the client configuration. APIKey is required, every other
// field falls back to its default when left zero.
type Config struct {
	// APIKey authenticates every request via the x-api-key header.
	APIKey string

	// BaseURL overrides the production host, mainly for testing.
	BaseURL string

	// Timeout bounds each HTTP request from connection to body read.
	// Retries get a fresh timeout each.
	Timeout time.Duration

	// MaxRetries bounds automatic retries of transient failures.
	MaxRetries int
}

// Client records conversation analytics against the Chatlytics API. It is
// safe for concurrent use by multiple goroutines.
type Client struct {
	transport *transport.Client
	validator *validation.TrackingRequestValidator
}

// New creates a Client from cfg, applying defaults for unset optional
// fields. It fails fast when the API key is missing so that the mistake
// surfaces at startup rather than on the first tracked interaction.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	return &Client{
		transport: transport.New(transport.Config{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		}),
		validator: validation.NewTrackingRequestValidator(),
	}, nil
}

// Close releases the pooled connections held by the client. The client
// must not be used after Close.
func (c *Client) Close() {
	c.transport.Close()
}

// NewID returns a fresh identifier suitable for caller-assigned thread,
// message and run ids.
func NewID() string {
	return uuid.New().String()
}

// post issues one API call and unwraps the data object from the response
// envelope. A success response without a data field is reported as an
// API failure, the server broke its own contract.
func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.transport.Do(ctx, http.MethodPost, path, body, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, apierror.FromStatus(http.StatusOK, "Invalid response format: missing data field", nil)
	}

	return envelope.Data, nil
}
