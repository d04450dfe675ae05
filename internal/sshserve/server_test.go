// ABOUTME: Tests for the SSH storefront: per-user theme isolation, rate limiting, lifecycle
// ABOUTME: Uses in-memory slots, the virtual clock and a loopback listener

package sshserve

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/mauromedda/themeswitch-go/internal/clock"
	"github.com/mauromedda/themeswitch-go/internal/kv"
	"github.com/mauromedda/themeswitch-go/internal/themestore"
	"github.com/mauromedda/themeswitch-go/pkg/theme"
)

func TestNamespace(t *testing.T) {
	t.Parallel()

	tests := []struct{ user, want string }{
		{"alice", "users/alice"},
		{"  ", "users/anonymous"},
		{"", "users/anonymous"},
		{"a/b", "users/a%2Fb"},
		{"a_b", "users/a_b"},
		{"a b", "users/a%20b"},
	}
	for _, tt := range tests {
		if got := namespace(tt.user); got != tt.want {
			t.Errorf("namespace(%q) = %q, want %q", tt.user, got, tt.want)
		}
	}
}

func TestStoreFor_PerUserThemes(t *testing.T) {
	t.Parallel()

	slot := kv.NewMemory()
	clk := clock.NewFake(time.Unix(0, 0))
	s := &Server{deps: Deps{Slot: slot, Clock: clk, Transition: 10 * time.Millisecond}}

	alice := s.storeFor("alice")
	defer alice.Close()
	if !alice.SwitchTheme(theme.DarkElite) {
		t.Fatal("switch rejected")
	}
	clk.Advance(20 * time.Millisecond)

	bob := s.storeFor("bob")
	defer bob.Close()
	if got := bob.Current(); got != theme.Default {
		t.Errorf("bob Current = %s, want default", got)
	}

	v, err := slot.Get("users/alice/" + themestore.DefaultKey)
	if err != nil || v != string(theme.DarkElite) {
		t.Errorf("alice slot = %q, %v", v, err)
	}

	again := s.storeFor("alice")
	defer again.Close()
	if got := again.Current(); got != theme.DarkElite {
		t.Errorf("alice reconnect Current = %s, want theme2", got)
	}
}

func TestLimiter(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(time.Unix(0, 0))
	l := newLimiter(clk, 60, 2) // one token per second, burst 2

	if !l.allow("1.2.3.4") || !l.allow("1.2.3.4") {
		t.Fatal("burst should allow two sessions")
	}
	if l.allow("1.2.3.4") {
		t.Error("third session should be throttled")
	}
	if !l.allow("5.6.7.8") {
		t.Error("other addresses have their own bucket")
	}

	clk.Advance(time.Second)
	if !l.allow("1.2.3.4") {
		t.Error("token should refill after a second")
	}
	if l.allow("1.2.3.4") {
		t.Error("only one token refilled")
	}
}

func TestLimiter_SweepsIdleBuckets(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(time.Unix(0, 0))
	l := newLimiter(clk, 60, 2)
	l.sweepAt = 3

	l.allow("10.0.0.1")
	l.allow("10.0.0.2")
	l.allow("10.0.0.3")
	if len(l.buckets) != 3 {
		t.Fatalf("buckets = %d, want 3", len(l.buckets))
	}

	clk.Advance(time.Second)
	l.allow("10.0.0.3")
	l.allow("10.0.0.3")
	clk.Advance(5 * time.Second)
	l.allow("10.0.0.4")
	if len(l.buckets) != 1 {
		t.Errorf("buckets after sweep = %d, want only the new address", len(l.buckets))
	}
	if _, ok := l.buckets["10.0.0.4"]; !ok {
		t.Error("new address missing after sweep")
	}
}

func TestLimiter_SweepKeepsThrottledBuckets(t *testing.T) {
	t.Parallel()

	clk := clock.NewFake(time.Unix(0, 0))
	l := newLimiter(clk, 60, 2)
	l.sweepAt = 1

	l.allow("10.0.0.1")
	l.allow("10.0.0.1")
	l.allow("10.0.0.2")
	if l.allow("10.0.0.1") {
		t.Error("sweep must not reset a drained bucket")
	}
}

func TestLimiter_Defaults(t *testing.T) {
	t.Parallel()

	l := newLimiter(clock.NewFake(time.Unix(0, 0)), 0, 0)
	if l.burst != 10 || l.rate != 0.5 {
		t.Errorf("burst=%v rate=%v", l.burst, l.rate)
	}
}

func TestRemoteIP(t *testing.T) {
	t.Parallel()

	if got := remoteIP(&net.TCPAddr{IP: net.ParseIP("10.0.0.1"), Port: 22}); got != "10.0.0.1" {
		t.Errorf("remoteIP = %q", got)
	}
	if got := remoteIP(nil); got != "unknown" {
		t.Errorf("remoteIP(nil) = %q", got)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv, err := New(Config{
		Addr:        "127.0.0.1:0",
		HostKeyPath: filepath.Join(t.TempDir(), "host_ed25519"),
		IdleTimeout: time.Minute,
	}, Deps{Slot: kv.NewMemory()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr = %q", srv.Addr())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
