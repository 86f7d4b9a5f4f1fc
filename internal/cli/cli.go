// Package cli parses the command line of the typestatex tool.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Command selects what the tool does.
type Command string

const (
	Build  Command = "build"
	Graph  Command = "graph"
	Layout Command = "layout"
)

// Config is the parsed command line.
type Config struct {
	Command   Command
	Manifest  string
	StoreDir  string
	Format    string
	Layout    string
	LogLevel  slog.Level
	LogFormat string
}

const usage = `
typestatex - build computers from order manifests with a typestate builder.

Usage:
  typestatex [options] build [-store DIR] [-format yaml|json] MANIFEST
  typestatex [options] graph [-layout computer|person]
  typestatex [options] layout [-layout computer|person]

Arguments:
  MANIFEST
    Path to a .yaml, .yml or .hcl order file.

Options:
`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	global := flag.NewFlagSet("typestatex", flag.ContinueOnError)
	global.SetOutput(output)
	global.Usage = func() {
		fmt.Fprint(output, usage)
		global.PrintDefaults()
	}
	logLevelFlag := global.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := global.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := global.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{LogFormat: strings.ToLower(*logFormatFlag)}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if global.NArg() == 0 {
		global.Usage()
		return nil, true, nil
	}

	cfg.Command = Command(global.Arg(0))
	sub := flag.NewFlagSet(string(cfg.Command), flag.ContinueOnError)
	sub.SetOutput(output)

	switch cfg.Command {
	case Build:
		sub.StringVar(&cfg.StoreDir, "store", "", "Directory to persist built computers to. Empty disables persistence.")
		sub.StringVar(&cfg.Format, "format", "yaml", "Store format. Options: 'yaml' or 'json'.")
	case Graph, Layout:
		sub.StringVar(&cfg.Layout, "layout", "computer", "Builder layout to describe.")
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cfg.Command)}
	}

	if err := sub.Parse(global.Args()[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if cfg.Command == Build {
		if sub.NArg() != 1 {
			return nil, false, &ExitError{Code: 2, Message: "build needs exactly one MANIFEST argument"}
		}
		cfg.Manifest = sub.Arg(0)
		cfg.Format = strings.ToLower(cfg.Format)
		if cfg.Format != "yaml" && cfg.Format != "json" {
			return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'yaml' or 'json'"}
		}
	}
	return cfg, false, nil
}

// NewLogger builds the slog logger described by cfg, writing to stderr.
func NewLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
