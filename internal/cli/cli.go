// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jeranaias/pocketcalc/internal/config"
	"github.com/jeranaias/pocketcalc/internal/logging"
	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// =============================================================================
// COMMAND TREE
// =============================================================================

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" placeholder:"PATH"`
	Theme   string           `help:"Starting theme: auto, light or dark" placeholder:"MODE"`
	Verbose bool             `short:"v" help:"Enable debug logging to the log file"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	TUI  TUICmd     `cmd:"" name:"tui" default:"1" help:"Run the calculator widget (default)"`
	Repl ReplCmd    `cmd:"" help:"Line-mode calculator; reads stdin when it is not a terminal"`
	Eval EvalCmd    `cmd:"" help:"Press buttons and print the display, e.g. eval 5 + 3 ="`
	Keys KeysCmd    `cmd:"" help:"Show mouse and keyboard controls"`
	Conf ConfigCmd  `cmd:"" name:"config" help:"Inspect or edit the configuration file"`
	Show VersionCmd `cmd:"" name:"version" help:"Print the version"`
}

// Global is the state shared by every command. Config and logger are
// loaded on first use so that "config init" works without a valid file.
type Global struct {
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer

	configPath string
	verbose    bool
	theme      string

	cfg     *config.Config
	logger  *slog.Logger
	closers []io.Closer
}

// AfterApply runs after flag parsing and records the global flags.
func (c *CLI) AfterApply(g *Global) error {
	if c.Theme != "" {
		if _, ok := styles.ParseMode(c.Theme); !ok {
			return &UsageError{Reason: fmt.Sprintf("invalid --theme %q, must be one of: auto, light, dark", c.Theme)}
		}
	}

	path, err := config.ResolvePath(c.Config)
	if err != nil {
		return &ConfigError{Path: c.Config, Err: err}
	}
	g.configPath = path
	g.verbose = c.Verbose
	g.theme = c.Theme
	return nil
}

// ConfigPath returns the resolved configuration file path.
func (g *Global) ConfigPath() string {
	return g.configPath
}

// Config loads the configuration once. The --theme flag beats the file.
func (g *Global) Config() (*config.Config, error) {
	if g.cfg != nil {
		return g.cfg, nil
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, &ConfigError{Path: g.configPath, Err: err}
	}
	if g.theme != "" {
		cfg.UI.Theme = g.theme
	}
	g.cfg = cfg
	return cfg, nil
}

// Logger builds the file logger once from the [log] section.
func (g *Global) Logger() (*slog.Logger, error) {
	if g.logger != nil {
		return g.logger, nil
	}
	cfg, err := g.Config()
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.Setup(cfg.Log, g.verbose)
	if err != nil {
		return nil, &ConfigError{Path: g.configPath, Err: err}
	}
	g.closers = append(g.closers, closer)
	g.logger = logger
	return logger, nil
}

// Mode returns the configured starting theme.
func (g *Global) Mode() (styles.Mode, error) {
	cfg, err := g.Config()
	if err != nil {
		return styles.ModeAuto, err
	}
	mode, _ := styles.ParseMode(cfg.UI.Theme)
	return mode, nil
}

// Close releases the log file.
func (g *Global) Close() error {
	var errs []error
	for _, c := range g.closers {
		errs = append(errs, c.Close())
	}
	g.closers = nil
	return errors.Join(errs...)
}

// =============================================================================
// EXECUTION
// =============================================================================

// exitPanic carries a kong exit request out of the parser.
type exitPanic int

// Execute parses args, runs the selected command and returns the process
// exit code.
func Execute(args []string, stdin *os.File, stdout, stderr io.Writer) (code int) {
	g := &Global{Stdin: stdin, Stdout: stdout, Stderr: stderr}
	defer g.Close()

	// kong exits after --help and --version.
	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(exitPanic)
			if !ok {
				panic(r)
			}
			code = int(exit)
		}
	}()

	var root CLI
	parser, err := kong.New(&root,
		kong.Name("pocketcalc"),
		kong.Description("A four-function calculator for the terminal."),
		kong.Vars{"version": "pocketcalc " + Version},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitPanic(code)) }),
		kong.Bind(g),
	)
	if err != nil {
		DisplayError(stderr, err)
		return ExitGeneralError
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		DisplayError(stderr, err)
		return GetExitCode(err)
	}

	if err := kctx.Run(g, &root); err != nil {
		DisplayError(stderr, err)
		return GetExitCode(err)
	}
	return ExitSuccess
}

// VersionCmd implements the 'version' command.
type VersionCmd struct{}

func (v *VersionCmd) Run(g *Global) error {
	fmt.Fprintf(g.Stdout, "pocketcalc %s\n", Version)
	return nil
}
