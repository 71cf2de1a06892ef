// Package transport implements the HTTP layer of the Chatlytics client:
// authentication headers, the retry loop for transient failures, and the
// mapping of every failure onto the apierror taxonomy.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chatlytics/chatlytics-go/internal/logger"
	"github.com/chatlytics/chatlytics-go/pkg/apierror"
)

// retryableStatuses are the transient HTTP statuses worth retrying.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Config carries the connection settings for a transport Client.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

// Client issues JSON requests against the Chatlytics API. Transient
// failures are retried with exponential backoff up to MaxRetries times;
// everything else surfaces as an *apierror.Error.
type Client struct {
	baseURL    string
	apiKey     string
	maxRetries int
	httpClient *http.Client

	// sleep is replaced in tests to observe backoff without waiting.
	sleep func(time.Duration)
}

// New creates a transport client. The caller is responsible for filling
// in defaults before constructing it.
func New(cfg Config) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		sleep:      time.Sleep,
	}
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Do performs one logical API call: body is marshaled to JSON, the
// response body is decoded into out. Statuses 429, 500, 502, 503 and 504
// are retried with exponential backoff; once the budget is exhausted the
// last response is classified and returned.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) error {
	var jsonData []byte
	if body != nil {
		var err error
		jsonData, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request: %w", err)
		}
	}

	url := c.baseURL + path
	requestID := uuid.New().String()

	var lastStatus int
	var lastBody []byte
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(attempt)
			logger.Log.WithFields(logrus.Fields{"request_id": requestID, "delay": delay, "attempt": attempt + 1, "max_retries": c.maxRetries}).Info("Retrying request")
			c.sleep(delay)
		}

		status, respBody, err := c.send(ctx, method, url, jsonData, requestID, attempt)
		if err != nil {
			// Network-level failures are never retried.
			return err
		}

		if status >= 200 && status < 300 {
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return apierror.FromStatus(status, "error decoding response", decodePayload(respBody))
			}
			return nil
		}

		if !retryableStatuses[status] {
			return apierror.FromStatus(status, responseMessage(status, respBody), decodePayload(respBody))
		}

		lastStatus = status
		lastBody = respBody
	}

	// Every attempt came back with a transient status.
	return apierror.FromStatus(lastStatus, responseMessage(lastStatus, lastBody), decodePayload(lastBody))
}

// send performs a single HTTP exchange and returns the status and body.
// Failures to get a response at all come back already classified.
func (c *Client) send(ctx context.Context, method, url string, jsonData []byte, requestID string, attempt int) (int, []byte, error) {
	var reqBody io.Reader
	if jsonData != nil {
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, apierror.Connection(fmt.Sprintf("error creating request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	logger.Log.WithFields(logrus.Fields{"request_id": requestID, "method": method, "url": url, "attempt": attempt + 1}).Debug("Sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, nil, apierror.Timeout(fmt.Sprintf("request timed out: %v", err))
		}
		return 0, nil, apierror.Connection(fmt.Sprintf("error sending request: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apierror.Connection(fmt.Sprintf("error reading response body: %v", err))
	}

	logger.Log.WithFields(logrus.Fields{"request_id": requestID, "status_code": resp.StatusCode, "response_length": len(respBody)}).Debug("Received response")

	return resp.StatusCode, respBody, nil
}

// backoffDelay returns the wait before retry attempt n: 2s, then 4s, then
// 8s for the default budget of three retries.
func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// isTimeout reports whether err is a deadline or timeout failure rather
// than a generic connection failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// decodePayload decodes a JSON object body for error reporting. Bodies
// that are empty or not JSON objects yield nil.
func decodePayload(body []byte) map[string]any {
	if len(body) == 0 {
		return nil
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return payload
}

// responseMessage derives a readable failure message from an error
// response, preferring the service's own error text when present.
func responseMessage(status int, body []byte) string {
	if payload := decodePayload(body); payload != nil {
		for _, key := range []string{"error", "message"} {
			if text, ok := payload[key].(string); ok && text != "" {
				return text
			}
		}
	}
	return fmt.Sprintf("API returned status %d", status)
}
