// ABOUTME: Read-only client for the fake store catalog: products, one product, categories
// ABOUTME: Single GET per call, no retries or caching; failures map onto the catalog error types

package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/mailru/easyjson"

	"github.com/mauromedda/themeswitch-go/internal/httputil"
)

const (
	// DefaultBaseURL is the public catalog service.
	DefaultBaseURL = "https://fakestoreapi.com"
	// DefaultUserAgent identifies the client to the catalog service.
	DefaultUserAgent = "themeswitch-go"

	maxJSONBody  = 8 << 20
	maxImageBody = 4_500_000
)

// Client fetches catalog data. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	http *httputil.Client
}

type options struct {
	baseURL    string
	userAgent  string
	proxy      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL points the client at another catalog service.
func WithBaseURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.baseURL = u
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithProxy routes requests through proxyURL.
func WithProxy(proxyURL string) Option {
	return func(o *options) { o.proxy = proxyURL }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// NewClient creates a catalog client.
func NewClient(opts ...Option) *Client {
	o := options{baseURL: DefaultBaseURL, userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}
	headers := map[string]string{
		"Accept":     "application/json",
		"User-Agent": o.userAgent,
	}
	return &Client{
		http: httputil.NewClient(o.baseURL, headers, o.proxy, httputil.WithHTTPClient(o.httpClient)),
	}
}

// BaseURL returns the catalog service base URL.
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

// ListProducts fetches every product. Callers slice the result themselves.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out Products
	if err := c.getJSON(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches a single product by id. id must be positive.
func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	if id <= 0 {
		return Product{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	var out Product
	if err := c.getJSON(ctx, "/products/"+strconv.Itoa(id), &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// ListCategories fetches the category names.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var out Categories
	if err := c.getJSON(ctx, "/products/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchImage downloads a product image. url may be absolute (as returned in
// Product.Image) or relative to the base URL.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	body, err := c.get(ctx, url, maxImageBody)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, &DecodeError{URL: c.http.URL(url), Err: ErrEmptyBody}
	}
	return body, nil
}

// getJSON fetches path and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, path string, v easyjson.Unmarshaler) error {
	body, err := c.get(ctx, path, maxJSONBody)
	if err != nil {
		return err
	}
	target := c.http.URL(path)
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &DecodeError{URL: target, Err: ErrEmptyBody}
	}
	if err := easyjson.Unmarshal(trimmed, v); err != nil {
		return &DecodeError{URL: target, Err: err}
	}
	return nil
}

// get performs one GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, path string, limit int64) ([]byte, error) {
	target := c.http.URL(path)

	resp, err := c.http.Get(ctx, path)
	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, &HTTPError{Method: http.MethodGet, URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, URL: target, Err: err}
	}
	if int64(len(body)) > limit {
		return nil, &DecodeError{URL: target, Err: ErrBodyTooLarge}
	}
	return body, nil
}
