package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lgtm-migrator/qibot/internal/config"
)

// Fetcher retrieves raw bytes by URL. It is implemented by *Client and can be
// replaced in tests.
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client is the shared outbound HTTP connection pool. One Client is created
// at process start and reused by every caller; it is safe for concurrent use.
type Client struct {
	http      *http.Client
	transport *http.Transport
	userAgent string
}

// ClientOptions tune the connection pool. Zero values use defaults.
type ClientOptions struct {
	Timeout             time.Duration
	MaxIdleConnsPerHost int
	UserAgent           string
}

const (
	defaultTimeout             = 30 * time.Second
	defaultMaxIdleConnsPerHost = 8
	defaultUserAgent           = "qibot/" + config.Version
)

// NewClient builds the pooled Client.
func NewClient(opts ClientOptions) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	idle := opts.MaxIdleConnsPerHost
	if idle <= 0 {
		idle = defaultMaxIdleConnsPerHost
	}
	agent := strings.TrimSpace(opts.UserAgent)
	if agent == "" {
		agent = defaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = idle

	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		transport: transport,
		userAgent: agent,
	}
}

// FetchBytes issues a GET for rawURL and returns the full response body.
// Transport failures and responses with status >= 400 are *NetworkError.
// There are no retries.
func (c *Client) FetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &NetworkError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

// Close releases idle pooled connections. In-flight requests are not
// interrupted.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.transport.CloseIdleConnections()
}
