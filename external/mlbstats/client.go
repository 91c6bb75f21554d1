package mlbstats

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/resilience"
	"github.com/riskibarqy/statsapi-gateway/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL   = "https://statsapi.mlb.com/api/v1"
	DefaultUserAgent = "MLB-MCP-Server/1.0"

	maxBodyBytes = 32 << 20
)

var errUpstreamTransient = crerr.New("statsapi transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client performs single GET requests against the MLB Stats API. It never
// retries and never merges concurrent identical requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	breaker := resilience.NewFromConfig(cfg.CircuitBreaker).OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("statsapi circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
		breaker:    breaker,
	}
}

// Fetch issues GET {baseURL}/{path}?{rawQuery} and returns the body untouched
// when the upstream answers 2xx with valid JSON. A non-2xx answer yields a
// *usecase.UpstreamStatusError; everything else is an internal failure.
func (c *Client) Fetch(ctx context.Context, path, rawQuery string) (json.RawMessage, error) {
	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		fullURL += "?" + rawQuery
	}

	var raw []byte
	err := c.breaker.Do(func() error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, fullURL)
		return reqErr
	}, isCircuitFailure)
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "statsapi circuit breaker rejected request", "url", fullURL, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: statistics API is temporarily unavailable", usecase.ErrUpstream)
		}
		return nil, err
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.InfoContext(ctx, "fetching statsapi", "url", fullURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "statsapi request failed", "url", fullURL, "error", err)
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errUpstreamTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		c.logger.WarnContext(ctx, "statsapi returned non-2xx",
			"url", fullURL,
			"status", resp.StatusCode,
		)
		statusErr := crerr.WithStack(&usecase.UpstreamStatusError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		})
		if isTransientStatus(resp.StatusCode) {
			return nil, crerr.Mark(statusErr, errUpstreamTransient)
		}
		return nil, statusErr
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errUpstreamTransient)
	}
	if !sonic.Valid(raw) {
		return nil, crerr.Newf("decode upstream payload: invalid JSON (%d bytes)", len(raw))
	}

	return raw, nil
}

// statusText is the reason phrase the upstream sent, falling back to the
// canonical text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errUpstreamTransient)
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
