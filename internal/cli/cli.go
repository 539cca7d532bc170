// Package cli implements the hanoitower command-line interface.
//
// This package provides commands for solving Tower of Hanoi puzzles,
// inspecting the recursion trace, rendering board and recursion-tree
// visualizations, playing interactively, and serving the HTTP API. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Compute the optimal move sequence
//   - trace: Inspect the recursion event log
//   - render: Generate board or recursion-tree visualizations
//   - play: Step through the solution interactively
//   - serve: Run the HTTP API server
//   - session: Manage saved play-throughs
//   - cache: Manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoitower/pkg/buildinfo"
	"github.com/matzehuels/hanoitower/pkg/cache"
	"github.com/matzehuels/hanoitower/pkg/pipeline"
	"github.com/matzehuels/hanoitower/pkg/session"
)

// appName is the application name used for directories and display.
const appName = "hanoitower"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfigOrDefault(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "hanoitower",
		Short:        "Hanoitower solves and visualizes the Tower of Hanoi",
		Long:         `Hanoitower is a CLI tool for the Tower of Hanoi puzzle: it computes optimal solutions, traces the solver's recursion, renders board and recursion-tree visualizations, and lets you play through a game interactively.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.sessionCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cmd *cobra.Command, noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(cmd, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, c.Logger), nil
}

// newCache builds the cache backend selected by config, falling back to a
// null cache when the file backend cannot be created.
func (c *CLI) newCache(cmd *cobra.Command, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.Config.Cache.Backend {
	case CacheBackendNone:
		return cache.NewNullCache(), nil
	case CacheBackendMemory:
		return cache.NewMemoryCache(), nil
	case CacheBackendRedis:
		return cache.NewRedisCache(cmd.Context(), cache.RedisConfig{
			Addr:     c.Config.Cache.Redis.Addr,
			Password: c.Config.Cache.Redis.Password,
			DB:       c.Config.Cache.Redis.DB,
		})
	default:
		dir, err := c.cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// newSessionStore builds the session store selected by config.
func (c *CLI) newSessionStore(cmd *cobra.Command) (session.Store, error) {
	switch c.Config.Session.Store {
	case SessionStoreMemory:
		return session.NewMemoryStore(), nil
	case SessionStoreMongo:
		return session.NewMongoStore(cmd.Context(), session.MongoConfig{
			URI:      c.Config.Session.Mongo.URI,
			Database: c.Config.Session.Mongo.Database,
		})
	default:
		return session.NewFileStore(c.Config.Session.Dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory, preferring the configured override,
// then the XDG standard (~/.cache/hanoitower/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return defaultCacheDir()
}

func defaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
