// ABOUTME: Shared HTTP client: base URL, default headers, tuned transport, proxy resolution
// ABOUTME: Single attempt per request; proxies come from config or HTTP_PROXY/HTTPS_PROXY/NO_PROXY

package httputil

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/http/httpproxy"
)

// Client wraps an http.Client with a base URL and default headers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new HTTP client with the given base URL and default headers.
// proxyURL, when non-empty, overrides HTTP_PROXY and HTTPS_PROXY; NO_PROXY still applies.
func NewClient(baseURL string, headers map[string]string, proxyURL string, opts ...Option) *Client {
	if headers == nil {
		headers = make(map[string]string)
	}
	c := &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy: ProxyFunc(proxyURL),
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   4,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		baseURL: NormalizeBaseURL(baseURL),
		headers: headers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base URL configured on this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL resolves path against the base URL. Absolute http(s) URLs pass through.
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Do sends a single HTTP request. Any response, whatever its status, is
// returned to the caller, who must close its body.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := c.buildRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}

// Get is shorthand for Do with GET and no body.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// buildRequest creates an http.Request with default headers applied.
func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	target := c.URL(path)

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s %s: %w", method, target, err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// ProxyFunc returns a Transport.Proxy function built from the environment,
// with proxyURL (if set) taking precedence for both schemes.
func ProxyFunc(proxyURL string) func(*http.Request) (*url.URL, error) {
	cfg := httpproxy.FromEnvironment()
	if proxyURL != "" {
		cfg.HTTPProxy = proxyURL
		cfg.HTTPSProxy = proxyURL
	}
	resolve := cfg.ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return resolve(req.URL)
	}
}
