// Package storefront is the Shopify Storefront API client used to load
// journal articles. It speaks GraphQL over HTTPS and wraps every call in a
// circuit breaker and an outbound rate limiter.
package storefront

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"journal-storefront/internal/observability/metrics"
	"journal-storefront/internal/observability/tracing"
	"journal-storefront/internal/resilience/circuitbreaker"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// AccessTokenHeader carries the public Storefront access token.
const AccessTokenHeader = "X-Shopify-Storefront-Access-Token"

// GraphQLRequest represents a GraphQL request.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse represents a GraphQL response.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// Client executes Storefront API queries.
//
// Thread safety: Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	token       string
	maxBodySize int64
	breaker     *circuitbreaker.CircuitBreaker
	limiter     *RateLimiter
	logger      *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCircuitBreaker replaces the default Storefront circuit breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

// WithLogger sets the logger used for query diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a client from a validated Config.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
		endpoint:    cfg.Endpoint(),
		token:       cfg.AccessToken,
		maxBodySize: cfg.MaxBodySize,
		limiter:     NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.breaker == nil {
		cbConfig := circuitbreaker.StorefrontAPIConfig()
		cbConfig.OnStateChange = func(_, to gobreaker.State) {
			metrics.SetStorefrontCircuitOpen(to == gobreaker.StateOpen)
		}
		c.breaker = circuitbreaker.New(cbConfig)
	}
	return c
}

// Endpoint returns the GraphQL URL this client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// IsCircuitOpen reports whether calls are currently being rejected.
func (c *Client) IsCircuitOpen() bool {
	return c.breaker.IsOpen()
}

// Execute sends one GraphQL operation and returns the decoded envelope.
// A response carrying GraphQL errors is returned together with an error
// wrapping ErrGraphQL.
func (c *Client) Execute(ctx context.Context, operation, query string, variables map[string]interface{}) (*GraphQLResponse, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "storefront."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("graphql.operation.name", operation)),
	)
	defer span.End()

	start := time.Now()
	resp, errType, err := c.execute(ctx, operation, query, variables)

	status := "success"
	if err != nil {
		status = "error"
		metrics.RecordStorefrontError(operation, errType)
		span.RecordError(err)
		span.SetStatus(codes.Error, errType)
		c.logger.WarnContext(ctx, "storefront query failed",
			slog.String("operation", operation),
			slog.String("error_type", errType),
			slog.Any("error", err))
	}
	metrics.RecordStorefrontQuery(operation, status, time.Since(start))

	return resp, err
}

func (c *Client) execute(ctx context.Context, operation, query string, variables map[string]interface{}) (*GraphQLResponse, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "rate_limit", fmt.Errorf("storefront rate limit wait: %w", err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.roundTrip(ctx, operation, query, variables)
	})
	if err != nil {
		if circuitbreaker.IsOpenError(err) {
			return nil, "circuit_open", fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		return nil, classify(err), err
	}

	gqlResp := result.(*GraphQLResponse)
	if len(gqlResp.Errors) > 0 {
		return gqlResp, "graphql", fmt.Errorf("%w: %s", ErrGraphQL, gqlResp.Errors[0].Message)
	}
	return gqlResp, "", nil
}

// roundTrip performs the HTTP exchange. GraphQL-level errors are not
// failures here; the API answered and the circuit stays healthy.
func (c *Client) roundTrip(ctx context.Context, operation, query string, variables map[string]interface{}) (*GraphQLResponse, error) {
	reqBody, err := json.Marshal(GraphQLRequest{
		Query:         query,
		OperationName: operation,
		Variables:     variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(AccessTokenHeader, c.token)

	c.logger.DebugContext(ctx, "executing storefront query", slog.String("operation", operation))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrResponseTooLarge, c.maxBodySize)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(resp.StatusCode, body)
	}

	var gqlResp GraphQLResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &gqlResp, nil
}

func classify(err error) string {
	var statusErr *StatusError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &statusErr):
		return "http_status"
	case errors.Is(err, ErrResponseTooLarge):
		return "too_large"
	case errors.As(err, &syntaxErr):
		return "decode"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "transport"
	}
}
