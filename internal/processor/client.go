package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-customer-payment-service/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 1 << 20
)

// Client calls the external payment processor. Each call is a single
// synchronous POST; there are no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A nil client is ignored.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout bounds every call, whichever HTTP client ends up in use.
// Non-positive values keep the client's own timeout, or the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a processor client for baseURL. Payments are posted to
// baseURL and reversals to baseURL/reversal.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		client := *c.httpClient
		client.Timeout = c.timeout
		c.httpClient = &client
	}
	return c
}

// Timeout reports the bound applied to each call.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// ProcessPayment asks the processor to charge req. A non-nil error means the
// call never produced a response.
func (c *Client) ProcessPayment(ctx context.Context, req PaymentRequest) (*Response, error) {
	return c.post(ctx, OperationPayment, c.baseURL, req)
}

// ProcessReversal asks the processor to undo the payment with req.Reference.
func (c *Client) ProcessReversal(ctx context.Context, req ReversalRequest) (*Response, error) {
	return c.post(ctx, OperationReversal, c.baseURL+"/reversal", req)
}

func (c *Client) post(ctx context.Context, op Operation, url string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling %s request: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error building %s request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		observe(op, "transport_error", start)
		logrus.WithField("operation", op).Errorf("processor call failed: %s", err.Error())
		return nil, fmt.Errorf("error calling processor for %s: %w", op, err)
	}
	defer resp.Body.Close()

	result := &Response{StatusCode: resp.StatusCode}
	if resp.StatusCode != http.StatusCreated {
		result.Error = decodeErrorBody(resp.Body)
	}
	observe(op, strconv.Itoa(resp.StatusCode), start)

	logrus.WithFields(logrus.Fields{
		"operation": op,
		"status":    resp.StatusCode,
	}).Debug("processor responded")

	return result, nil
}

func decodeErrorBody(r io.Reader) *ErrorBody {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var body ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return nil
	}
	return &body
}

func observe(op Operation, outcome string, start time.Time) {
	metrics.ProcessorRequestDuration.WithLabelValues(string(op), outcome).Observe(time.Since(start).Seconds())
}
