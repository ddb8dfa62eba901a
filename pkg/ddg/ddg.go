package ddg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL          = "https://api.duckduckgo.com"
	defaultAppName          = "ddgskill"
	defaultMaxResponseBytes = 2 << 20
)

type Config struct {
	BaseURL          string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.duckduckgo.com"`
	AppName          string        `envconfig:"APP_NAME" split_words:"true" default:"ddgskill"`
	Timeout          time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"0s"`
	MaxResponseBytes int64         `envconfig:"MAX_RESPONSE_BYTES" split_words:"true" default:"2097152"`
}

// Option customizes Client.
type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// Client talks to the DuckDuckGo Instant Answer API.
type Client struct {
	baseURL          string
	appName          string
	maxResponseBytes int64
	httpClient       *http.Client
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid instant answer url: %w", err)
	}

	appName := strings.TrimSpace(cfg.AppName)
	if appName == "" {
		appName = defaultAppName
	}

	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxResponseBytes
	}

	// A zero timeout keeps net/http's default of no client-side deadline.
	client := &Client{
		baseURL:          baseURL,
		appName:          appName,
		maxResponseBytes: maxBytes,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

func MustNew(cfg Config, opts ...Option) *Client {
	client, err := NewClient(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// Query runs one Instant Answer lookup. Disambiguation pages are not skipped.
func (c *Client) Query(ctx context.Context, query string) (*Results, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("instant answer query is empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_redirect", "1")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "0")
	params.Set("t", c.appName)

	raw, err := c.get(ctx, c.baseURL+"/?"+params.Encode())
	if err != nil {
		return nil, err
	}
	return ParseJSON(raw)
}

// Detail fetches an XML detail document. It returns nil, nil when the body
// is empty.
func (c *Client) Detail(ctx context.Context, detailURL string) (*Results, error) {
	if _, err := url.ParseRequestURI(detailURL); err != nil {
		return nil, fmt.Errorf("invalid detail url: %w", err)
	}

	raw, err := c.get(ctx, detailURL)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return ParseXML(raw)
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	if c == nil {
		return nil, errors.New("nil instant answer client")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build instant answer request: %w", err)
	}
	req.Header.Set("User-Agent", c.appName)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute instant answer request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read instant answer response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("instant answer http status=%d body=%s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
