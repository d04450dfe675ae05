// ABOUTME: CLI entry point for themeswitch: TUI storefront, print mode, theme listing, SSH server
// ABOUTME: Loads settings, opens the durable theme slot, and dispatches to the selected mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/themeswitch-go/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/themeswitch-go/internal/clock"
	"github.com/mauromedda/themeswitch-go/internal/config"
	"github.com/mauromedda/themeswitch-go/internal/kv"
	pilog "github.com/mauromedda/themeswitch-go/internal/log"
	"github.com/mauromedda/themeswitch-go/internal/mode/print"
	"github.com/mauromedda/themeswitch-go/internal/sshserve"
	"github.com/mauromedda/themeswitch-go/internal/themestore"
	"github.com/mauromedda/themeswitch-go/internal/ui"
	"github.com/mauromedda/themeswitch-go/pkg/catalog"
	"github.com/mauromedda/themeswitch-go/pkg/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to the selected mode.
func run(argv []string, stdout, stderr io.Writer) error {
	args, err := parseFlags(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if args.version {
		fmt.Fprintf(stdout, "themeswitch %s (%s) built %s\n", version, commit, date)
		return nil
	}

	settings, err := loadSettings(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slot, err := openSlot(settings, args.ephemeral)
	if err != nil {
		return err
	}

	client := catalog.NewClient(
		catalog.WithBaseURL(settings.BaseURL),
		catalog.WithUserAgent(settings.UserAgent),
		catalog.WithProxy(settings.Proxy),
	)

	if args.command == "serve" {
		return serve(ctx, settings, slot, client)
	}

	store := themestore.New(slot, clock.Real{}, themestore.WithDelay(settings.Transition()))
	store.Initialize()
	defer store.Close()

	if args.theme != "" {
		if err := applyTheme(store, args.theme, 2*settings.Transition()+time.Second); err != nil {
			return err
		}
	}

	if args.command == "themes" {
		return listThemes(stdout, store)
	}

	interactive := isTerminal(os.Stdin) && isTerminal(os.Stderr)
	if args.print || !interactive {
		if !args.print {
			pilog.Debug("no terminal attached, falling back to print mode")
		}
		return print.Run(ctx, print.Config{
			Format: args.format,
			Limit:  settings.FeaturedLimit,
			Theme:  store.Config(),
			Out:    stdout,
			Width:  terminalWidth(os.Stdout),
		}, client)
	}

	return ui.Run(ui.Deps{
		Store:         store,
		Catalog:       client,
		FeaturedLimit: settings.FeaturedLimit,
		Version:       version,
		LogFile:       logFile(args.ephemeral),
	})
}

// logFile is where the TUI logs; ephemeral runs leave nothing on disk.
func logFile(ephemeral bool) string {
	if ephemeral {
		return ""
	}
	if err := config.EnsureDir(config.GlobalDir()); err != nil {
		return ""
	}
	return config.LogFile()
}

// loadSettings reads the config file and applies CLI overrides.
func loadSettings(args cliArgs) (*config.Settings, error) {
	path := args.configPath
	if path == "" {
		path = config.ConfigFile()
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if args.baseURL != "" {
		settings.BaseURL = args.baseURL
	}
	if args.limit >= 0 {
		settings.FeaturedLimit = args.limit
	}
	if args.addr != "" {
		settings.SSH.Addr = args.addr
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	level, _ := pilog.ParseLevel(settings.LogLevel)
	if args.verbose {
		level = pilog.LevelDebug
	}
	pilog.SetLevel(level)
	return settings, nil
}

func openSlot(settings *config.Settings, ephemeral bool) (kv.Store, error) {
	if ephemeral {
		return kv.NewMemory(), nil
	}
	if err := config.EnsureDir(filepath.Dir(settings.StateFile)); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	fs := kv.NewFileStore(settings.StateFile)
	pilog.Debug("theme slot: %s", fs.Path())
	return fs, nil
}

// applyTheme switches store to the named theme and waits for it to settle.
func applyTheme(store *themestore.Store, name string, timeout time.Duration) error {
	id, ok := theme.Parse(name)
	if !ok {
		return fmt.Errorf("unknown theme %q (want one of %s)", name, joinIDs())
	}
	if store.Current() == id {
		return nil
	}

	settled := make(chan struct{})
	var once bool
	unsubscribe := store.Subscribe(func(st themestore.State) {
		if !once && st.Phase == themestore.Idle && st.Current == id {
			once = true
			close(settled)
		}
	})
	defer unsubscribe()

	if !store.SwitchTheme(id) {
		return fmt.Errorf("switching to %s: store busy", id)
	}
	select {
	case <-settled:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("switching to %s: timed out", id)
	}
}

func listThemes(w io.Writer, store *themestore.Store) error {
	current := store.Current()
	for _, cfg := range theme.All() {
		mark := " "
		if cfg.ID == current {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s  %-13s %s\n", mark, cfg.ID, cfg.DisplayName, cfg.Layout); err != nil {
			return err
		}
	}
	return nil
}

func serve(ctx context.Context, settings *config.Settings, slot kv.Store, client *catalog.Client) error {
	if err := config.EnsureDir(filepath.Dir(settings.SSH.HostKeyPath)); err != nil {
		return fmt.Errorf("creating host key directory: %w", err)
	}
	srv, err := sshserve.New(sshserve.Config{
		Addr:        settings.SSH.Addr,
		HostKeyPath: settings.SSH.HostKeyPath,
		IdleTimeout: settings.SSH.IdleTimeout,
	}, sshserve.Deps{
		Slot:          slot,
		Catalog:       client,
		FeaturedLimit: settings.FeaturedLimit,
		Transition:    settings.Transition(),
		Clock:         clock.Real{},
		Version:       version,
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func joinIDs() string {
	ids := theme.IDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
