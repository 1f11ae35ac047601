// Command neobookings-mcp serves the Neobookings booking tools over the MCP
// protocol on stdin/stdout. Logs go to stderr so they never interleave with
// the protocol stream.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/neomcp/neobookings-mcp/pkg/bookingtoolbox/budget"
	"github.com/neomcp/neobookings-mcp/pkg/bookingtoolbox/hotel"
	"github.com/neomcp/neobookings-mcp/pkg/bookingtoolbox/session"
	"github.com/neomcp/neobookings-mcp/pkg/neobookings"
	"github.com/neomcp/neobookings-mcp/pkg/tools/mcpserver"
	"github.com/neomcp/neobookings-mcp/pkg/tools/toolbox"
)

const (
	serverName    = "neobookings-mcp"
	serverVersion = "1.0.0"

	serverInstructions = "Tools for managing Neobookings hotel budgets and searching the hotel " +
		"inventory. Every tool authenticates with the configured credentials on each call."
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: neobookings-mcp [flags]\n\nServe the Neobookings booking tools over MCP on stdin/stdout.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	settingsPath := flag.String("settings", "", "path to YAML settings file (default: $NEOBOOKINGS_MCP_SETTINGS if set)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*settingsPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv loads the .env file, ignoring a missing file so the binary can
// run with plain environment variables.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func run(settingsPath string, verbose bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg := neobookings.ConfigFromEnv()

	name := serverName
	instructions := serverInstructions

	if settingsPath == "" {
		settingsPath = os.Getenv("NEOBOOKINGS_MCP_SETTINGS")
	}
	if settingsPath != "" {
		settings, err := LoadSettings(settingsPath)
		if err != nil {
			return err
		}
		cfg = settings.Apply(cfg)
		if settings.Server.Name != "" {
			name = settings.Server.Name
		}
		if settings.Server.Instructions != "" {
			instructions = settings.Server.Instructions
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	tb := toolbox.New()
	tb.Merge(session.New(cfg, log).Tools())
	tb.Merge(budget.New(cfg, log).Tools())
	tb.Merge(hotel.New(cfg, log).Tools())

	srv := mcpserver.New(name, serverVersion, &mcpserver.Options{
		Instructions: instructions,
		Logger:       log,
	})
	srv.RegisterBox(tb)

	log.Info("serving MCP", "server", name, "tools", len(tb.Tools()), "base_url", cfg.BaseURL)

	return srv.Serve(ctx, os.Stdin, os.Stdout)
}
