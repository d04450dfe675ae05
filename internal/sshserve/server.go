// ABOUTME: SSH storefront: every session runs its own TUI and theme store
// ABOUTME: Theme choices persist per SSH user in a namespace of the shared slot

package sshserve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/muesli/termenv"

	"github.com/mauromedda/themeswitch-go/internal/clock"
	"github.com/mauromedda/themeswitch-go/internal/kv"
	pilog "github.com/mauromedda/themeswitch-go/internal/log"
	"github.com/mauromedda/themeswitch-go/internal/themestore"
	"github.com/mauromedda/themeswitch-go/internal/ui"
)

// Config holds listener settings.
type Config struct {
	Addr               string
	HostKeyPath        string
	IdleTimeout        time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Deps are shared by every session.
type Deps struct {
	Slot          kv.Store
	Catalog       ui.Catalog
	FeaturedLimit int
	Transition    time.Duration
	Clock         clock.Clock
	Version       string
}

// Server wraps a wish SSH server.
type Server struct {
	cfg    Config
	deps   Deps
	srv    *ssh.Server
	active atomic.Int64
}

// New builds the server. The host key is generated on first use.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	s := &Server{cfg: cfg, deps: deps}

	srv, err := wish.NewServer(
		wish.WithAddress(cfg.Addr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bm.MiddlewareWithProgramHandler(s.programHandler, termenv.ANSI256),
			activeterm.Middleware(),
			rateLimit(newLimiter(deps.Clock, cfg.RateLimitPerMinute, cfg.RateLimitBurst)),
			s.logSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ssh server: %w", err)
	}
	s.srv = srv
	return s, nil
}

// Addr is the configured listen address.
func (s *Server) Addr() string { return s.srv.Addr }

// Active is the number of open sessions.
func (s *Server) Active() int64 { return s.active.Load() }

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives.
func (s *Server) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pilog.Info("ssh: shutting down, %d active sessions", s.Active())
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			pilog.Warn("ssh: shutdown: %v", err)
		}
		_ = ln.Close()
	}()

	pilog.Info("ssh: storefront listening on %s", ln.Addr())
	err = s.srv.Serve(ln)
	if err == nil || errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

// programHandler creates the per-session theme store and TUI.
func (s *Server) programHandler(sess ssh.Session) *tea.Program {
	store := s.storeFor(sess.User())

	p, cleanup := ui.NewProgram(ui.Deps{
		Store:         store,
		Catalog:       s.deps.Catalog,
		FeaturedLimit: s.deps.FeaturedLimit,
		Renderer:      bm.MakeRenderer(sess),
		Version:       s.deps.Version,
	}, append(bm.MakeOptions(sess), tea.WithAltScreen())...)

	go func() {
		<-sess.Context().Done()
		cleanup()
		store.Close()
	}()
	return p
}

// storeFor returns an initialized theme store whose slot is private to user.
func (s *Server) storeFor(user string) *themestore.Store {
	slot := kv.Namespace(s.deps.Slot, namespace(user))
	store := themestore.New(slot, s.deps.Clock, themestore.WithDelay(s.deps.Transition))
	store.Initialize()
	return store
}

// namespace maps an SSH user name to a key prefix.
func namespace(user string) string {
	user = strings.TrimSpace(user)
	if user == "" {
		return "users/anonymous"
	}
	return "users/" + url.PathEscape(user)
}

func (s *Server) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		start := time.Now()
		pilog.Info("ssh: session start user=%s remote=%s active=%d", sess.User(), remoteIP(sess.RemoteAddr()), n)
		defer func() {
			n := s.active.Add(-1)
			pilog.Info("ssh: session end user=%s duration=%s active=%d", sess.User(), time.Since(start).Round(time.Millisecond), n)
		}()
		next(sess)
	}
}
