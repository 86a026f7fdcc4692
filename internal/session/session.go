// Package session carries per-invocation CLI state (configuration, engine
// options, logger) through command contexts.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cibseven/procvar"
	"github.com/cibseven/procvar/i18n"
	"github.com/cibseven/procvar/internal/config"
)

var (
	// ErrInvalidConfig is returned when the configuration file or a flag
	// override does not validate.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNotLoaded is returned when a command runs without a loaded session.
	ErrNotLoaded = errors.New("session not loaded")
)

// Context is the state shared by every command of one invocation.
type Context struct {
	ConfigPath string // Empty when defaults are in use.
	Config     *config.Config
	Options    procvar.Options
	Logger     *slog.Logger
}

// Settings are the global flag values a session is built from.
type Settings struct {
	ConfigPath string // Explicit path; a missing file is then an error.
	Language   string // Overrides the config file when set.
	LongRange  string // Overrides the config file when set.
	Verbose    bool
	Stderr     io.Writer
}

// key is a unique key per type parameter T for context storage.
type key[T any] struct{}

// With stores a typed value in the context.
func With[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, key[T]{}, any(v))
}

// Value retrieves a typed value from the context.
func Value[T any](ctx context.Context) (T, bool) {
	var zero T
	v := ctx.Value(key[T]{})
	if v == nil {
		return zero, false
	}
	if tv, ok := v.(T); ok {
		return tv, true
	}
	return zero, false
}

// From returns the session stored in ctx, or nil.
func From(ctx context.Context) *Context {
	c, _ := Value[*Context](ctx)
	return c
}

// FromCommand extracts the session from a cobra.Command's context.
func FromCommand(cmd *cobra.Command) *Context {
	if cmd.Context() == nil {
		return nil
	}
	return From(cmd.Context())
}

// RequireFromCommand is FromCommand returning ErrNotLoaded when absent.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	c := FromCommand(cmd)
	if c == nil {
		return nil, ErrNotLoaded
	}
	return c, nil
}

// Load builds a session from the configuration file and flag overrides,
// applies the message language and stores the session in the returned
// context. Without an explicit path a missing procvar.yaml is not an error.
func Load(ctx context.Context, s Settings) (context.Context, error) {
	path := s.ConfigPath
	if path == "" {
		path = config.DefaultFileName
	}
	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case s.ConfigPath == "" && errors.Is(err, fs.ErrNotExist):
		cfg, path = config.Default(), ""
	default:
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if s.Language != "" {
		cfg.Language = s.Language
	}
	if s.LongRange != "" {
		cfg.LongRange = s.LongRange
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	i18n.SetLanguage(cfg.Language)

	c := &Context{
		ConfigPath: path,
		Config:     cfg,
		Options:    opts,
		Logger:     newLogger(s.Stderr, s.Verbose),
	}
	c.Logger.Debug("session loaded",
		slog.String("config", path),
		slog.String("language", cfg.Language),
		slog.String("longRange", opts.LongRange.String()),
	)
	return With(ctx, c), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
