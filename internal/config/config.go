package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/lcdmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCols       = "LCDMENU_COLS"
	envRows       = "LCDMENU_ROWS"
	envShowFooter = "LCDMENU_FOOTER"
	envVerbose    = "LCDMENU_VERBOSE"
	envTrace      = "LCDMENU_TRACE"
	envLogFile    = "LCDMENU_LOG_FILE"
)

const (
	defaultCols = 20
	defaultRows = 4

	// A row needs the selector column, at least one label rune, the
	// separator gutter, one value column, and the indicator column.
	minCols = 8
	minRows = 1
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lcdmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	cols := fs.Int("cols", envOrInt(env, envCols, defaultCols), "number of display columns")
	rows := fs.Int("rows", envOrInt(env, envRows, defaultRows), "number of display rows")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log every processed command")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Cols:       *cols,
			Rows:       *rows,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"cols":    strconv.Itoa(*cols),
			"rows":    strconv.Itoa(*rows),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the display dimensions leave room for a drawable row.
func Validate(cfg Config) error {
	if cfg.App.Cols < minCols {
		return fmt.Errorf("cols must be >= %d (got %d)", minCols, cfg.App.Cols)
	}
	if cfg.App.Rows < minRows {
		return fmt.Errorf("rows must be >= %d (got %d)", minRows, cfg.App.Rows)
	}
	return nil
}
