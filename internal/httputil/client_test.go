// ABOUTME: Tests for the shared HTTP client: headers, URL resolution, no retries, proxy
// ABOUTME: Uses httptest.NewServer for deterministic, isolated test scenarios

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestClientGetAppliesHeaders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("got method %s, want GET", r.Method)
		}
		if r.URL.Path != "/products" {
			t.Errorf("got path %s, want /products", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != "themeswitch-test" {
			t.Errorf("got User-Agent %q", r.Header.Get("User-Agent"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL+"/", map[string]string{"User-Agent": "themeswitch-test"}, "")

	resp, err := client.Get(context.Background(), "/products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestClientDoesNotRetry(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, nil, "")
	resp, err := client.Get(context.Background(), "/products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("got status %d, want 503", resp.StatusCode)
	}
	if got := attempts.Load(); got != 1 {
		t.Errorf("got %d attempts, want 1", got)
	}
}

func TestClientURL(t *testing.T) {
	t.Parallel()

	client := NewClient("https://fakestoreapi.com/", nil, "")
	tests := map[string]string{
		"/products":                  "https://fakestoreapi.com/products",
		"products/1":                 "https://fakestoreapi.com/products/1",
		"https://cdn.example/a.jpg":  "https://cdn.example/a.jpg",
		"http://other.example/x.png": "http://other.example/x.png",
	}
	for in, want := range tests {
		if got := client.URL(in); got != want {
			t.Errorf("URL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClientRespectsContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, nil, "")
	if _, err := client.Get(ctx, "/cancelled"); err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}
}

func TestNewClientHasTransportTimeouts(t *testing.T) {
	t.Parallel()

	client := NewClient("http://example.com", nil, "")

	transport, ok := client.httpClient.Transport.(*http.Transport)
	if !ok {
		t.Fatal("httpClient.Transport is not *http.Transport")
	}
	if transport.TLSHandshakeTimeout == 0 {
		t.Error("TLSHandshakeTimeout is zero; want a non-zero timeout")
	}
	if transport.ResponseHeaderTimeout == 0 {
		t.Error("ResponseHeaderTimeout is zero; want a non-zero timeout")
	}
	if transport.Proxy == nil {
		t.Error("Proxy is nil; want proxy resolution")
	}
}

func TestProxyFuncOverride(t *testing.T) {
	t.Parallel()

	proxy := ProxyFunc("http://proxy.internal:3128")

	req, _ := http.NewRequest(http.MethodGet, "https://fakestoreapi.com/products", nil)
	u, err := proxy(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Host != "proxy.internal:3128" {
		t.Errorf("proxy = %v, want proxy.internal:3128", u)
	}

	// Loopback is never proxied.
	local, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:9/products", nil)
	if u, _ := proxy(local); u != nil {
		t.Errorf("loopback proxied via %v", u)
	}
}
