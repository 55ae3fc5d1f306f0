// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/pocketcalc/internal/config"
)

// ConfigCmd implements the 'config' command group.
type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Print the effective configuration"`
	Path ConfigPathCmd `cmd:"" help:"Print the configuration file path"`
	Get  ConfigGetCmd  `cmd:"" help:"Print one setting"`
	Set  ConfigSetCmd  `cmd:"" help:"Change one setting and save the file"`
	Init ConfigInitCmd `cmd:"" help:"Write a default configuration file"`
}

// ConfigShowCmd implements 'config show'.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(g *Global) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Stdout, "# %s\n", g.ConfigPath())
	fmt.Fprint(g.Stdout, cfg.String())
	return nil
}

// ConfigPathCmd implements 'config path'.
type ConfigPathCmd struct{}

func (c *ConfigPathCmd) Run(g *Global) error {
	fmt.Fprintln(g.Stdout, g.ConfigPath())
	return nil
}

// ConfigGetCmd implements 'config get'.
type ConfigGetCmd struct {
	Key string `arg:"" help:"Setting in dot notation, e.g. ui.theme"`
}

func (c *ConfigGetCmd) Run(g *Global) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	value, err := cfg.Get(c.Key)
	if err != nil {
		return &UsageError{Reason: keysHint(), Err: err}
	}
	fmt.Fprintln(g.Stdout, value)
	return nil
}

// ConfigSetCmd implements 'config set'.
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Setting in dot notation, e.g. ui.theme"`
	Value string `arg:"" help:"New value"`
}

func (c *ConfigSetCmd) Run(g *Global) error {
	// Start from the file, not g.Config(), so --theme is not saved.
	cfg, err := config.Load(g.ConfigPath())
	if err != nil {
		return &ConfigError{Path: g.ConfigPath(), Err: err}
	}
	if err := cfg.Set(c.Key, c.Value); err != nil {
		return &UsageError{Reason: keysHint(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Path: g.ConfigPath(), Err: err}
	}
	if err := config.Save(cfg, g.ConfigPath()); err != nil {
		return &ConfigError{Path: g.ConfigPath(), Err: err}
	}
	fmt.Fprintf(g.Stdout, "%s = %s\n", c.Key, c.Value)
	return nil
}

// ConfigInitCmd implements 'config init'.
type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (c *ConfigInitCmd) Run(g *Global) error {
	path := g.ConfigPath()
	if _, err := os.Stat(path); err == nil && !c.Force {
		return NewCommandError("config", "init", "file already exists (use --force to overwrite)", errors.New(path))
	}
	if err := config.Save(config.Default(), path); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	fmt.Fprintf(g.Stdout, "wrote %s\n", path)
	return nil
}

func keysHint() string {
	return "known keys: " + strings.Join(config.GetAllKeys(), ", ")
}
