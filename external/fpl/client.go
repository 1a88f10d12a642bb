package fpl

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/fpl-cli/internal/platform/logging"
)

const (
	defaultBaseURL      = "https://fantasy.premierleague.com/api"
	defaultUserAgent    = "fpl-cli"
	defaultMaxBodyBytes = 16 << 20
)

var (
	ErrTransport = crerr.New("fpl transport failure")
	ErrStatus    = crerr.New("fpl unexpected status")
	ErrDecode    = crerr.New("fpl decode failure")
)

type ClientConfig struct {
	HTTPClient   *http.Client
	BaseURL      string
	UserAgent    string
	Timeout      time.Duration
	MaxBodyBytes int64
	Logger       *logging.Logger
}

// Client issues one GET per resource. It never retries; the first failure is
// returned to the caller.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	userAgent    string
	maxBodyBytes int64
	logger       *logging.Logger
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
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	raw, err := c.executeRequest(ctx, path)
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		c.logger.WarnContext(ctx, "fpl payload decode failed", "path", path, "error", err)
		return crerr.Wrapf(ErrDecode, "decode %s: %s", path, err.Error())
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", c.userAgent)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "fpl request failed", "path", path, "error", err)
		return nil, crerr.Wrapf(ErrTransport, "GET %s: %s", path, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		c.logger.WarnContext(ctx, "fpl response read failed", "path", path, "error", err)
		return nil, crerr.Wrapf(ErrTransport, "read %s: %s", path, err.Error())
	}

	c.logger.DebugContext(ctx, "fpl request done",
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, crerr.Wrapf(ErrStatus, "GET %s: status=%d body=%s", path, resp.StatusCode, abbreviateBody(raw))
	}

	return raw, nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
