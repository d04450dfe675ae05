// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports the themes and serve subcommands plus --print, --theme, --ephemeral, --version

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	command    string // "", "themes" or "serve"
	print      bool
	format     string
	limit      int
	theme      string
	baseURL    string
	configPath string
	ephemeral  bool
	verbose    bool
	version    bool
	addr       string
}

var subcommands = map[string]bool{"themes": true, "serve": true}

// parseFlags parses argv (without the program name). A leading subcommand
// may be followed by any flag.
func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	if len(argv) > 0 && subcommands[argv[0]] {
		args.command = argv[0]
		argv = argv[1:]
	}

	fs := flag.NewFlagSet("themeswitch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: themeswitch [themes|serve] [flags]")
		fs.PrintDefaults()
	}

	fs.BoolVar(&args.print, "print", false, "Print featured products and exit")
	fs.BoolVar(&args.print, "p", false, "Shorthand for --print")
	fs.StringVar(&args.format, "format", "text", "Print output format: text or json")
	fs.IntVar(&args.limit, "limit", -1, "Number of featured products (default from config)")
	fs.StringVar(&args.theme, "theme", "", "Switch to theme (theme1, theme2, theme3) before starting")
	fs.StringVar(&args.baseURL, "base-url", "", "Catalog service base URL")
	fs.StringVar(&args.configPath, "config", "", "Settings file (default ~/.themeswitch/config.yaml)")
	fs.BoolVar(&args.ephemeral, "ephemeral", false, "Keep the theme in memory only")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.StringVar(&args.addr, "addr", "", "Listen address for serve (default from config)")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	if fs.NArg() > 0 {
		return args, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if args.addr != "" && args.command != "serve" {
		return args, fmt.Errorf("--addr is only valid with serve")
	}
	return args, nil
}
