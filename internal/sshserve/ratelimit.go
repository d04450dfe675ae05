// ABOUTME: Per-IP connection rate limiting for the SSH storefront
// ABOUTME: Token bucket per remote address refilled at a fixed rate per minute

package sshserve

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/mauromedda/themeswitch-go/internal/clock"
	pilog "github.com/mauromedda/themeswitch-go/internal/log"
)

type bucket struct {
	tokens float64
	last   time.Time
}

// limiter is a set of token buckets keyed by IP.
type limiter struct {
	mu      sync.Mutex
	clock   clock.Clock
	rate    float64 // tokens per second
	burst   float64
	buckets map[string]bucket
	sweepAt int // map size that triggers dropping full buckets
}

const defaultSweepAt = 1024

func newLimiter(clk clock.Clock, perMinute, burst int) *limiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	if burst <= 0 {
		burst = 10
	}
	return &limiter{
		clock:   clk,
		rate:    float64(perMinute) / 60,
		burst:   float64(burst),
		buckets: make(map[string]bucket),
		sweepAt: defaultSweepAt,
	}
}

func (l *limiter) allow(ip string) bool {
	now := l.clock.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		if len(l.buckets) >= l.sweepAt {
			l.sweepLocked(now)
		}
		b = bucket{tokens: l.burst, last: now}
	}
	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = min(b.tokens+elapsed*l.rate, l.burst)
		b.last = now
	}
	if b.tokens < 1 {
		l.buckets[ip] = b
		return false
	}
	b.tokens--
	l.buckets[ip] = b
	return true
}

// sweepLocked drops buckets that have refilled completely; a full bucket
// behaves the same as a missing one. Must hold mu.
func (l *limiter) sweepLocked(now time.Time) {
	for ip, b := range l.buckets {
		if b.tokens+now.Sub(b.last).Seconds()*l.rate >= l.burst {
			delete(l.buckets, ip)
		}
	}
}

// rateLimit rejects sessions from addresses over their budget.
func rateLimit(l *limiter) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			ip := remoteIP(s.RemoteAddr())
			if !l.allow(ip) {
				pilog.Warn("ssh: rate limit exceeded for %s", ip)
				wish.Fatalln(s, "rate limit exceeded")
				return
			}
			next(s)
		}
	}
}

func remoteIP(addr net.Addr) string {
	if addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
