// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/setsmatcher/setsmatcher/internal/config"
	"github.com/setsmatcher/setsmatcher/internal/issue"
	"github.com/setsmatcher/setsmatcher/pkg/types"
)

// newConfigCommand creates the `setsmatcher config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage setsmatcher configuration",
		Long: `Manage setsmatcher configuration.

Configuration is read from the first file found:
  - Linux: $XDG_CONFIG_HOME/setsmatcher/config.cue (~/.config/setsmatcher/config.cue)
  - macOS: ~/Library/Application Support/setsmatcher/config.cue
  - Windows: %APPDATA%\setsmatcher\config.cue
  - ./config.cue

SETSMATCHER_<KEY> environment variables override the file; flags override both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), loadOptions(flags))
			if err != nil {
				return app.fail(err, types.ExitFailure, issue.ConfigLoadFailedId)
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App, flags *rootFlags) error {
	opts := loadOptions(flags)
	cfg, err := app.Config.Load(cmd.Context(), opts)
	if err != nil {
		return app.fail(err, types.ExitFailure, issue.ConfigLoadFailedId)
	}

	source, err := app.Config.Source(opts)
	if err != nil {
		return app.fail(err, types.ExitFailure, issue.ConfigLoadFailedId)
	}

	out := app.stdout
	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)
	if source != "" {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), source)
	} else {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	values := map[string]string{
		"max_size":   cfg.MaxSize.String(),
		"index":      fmt.Sprint(cfg.Index),
		"verbose":    fmt.Sprint(cfg.Verbose),
		"key_style":  cfg.KeyStyle.String(),
		"show_lines": fmt.Sprint(cfg.ShowLines),
		"html_title": cfg.HTMLTitle,
	}
	for _, key := range config.Keys {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render(key), SuccessStyle.Render(values[key]))
	}

	return nil
}

func initConfig(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	path, created, err := config.CreateDefaultConfig(cfgDir)
	if err != nil {
		return app.fail(
			issue.WrapWithContext(err, "create configuration", filepath.Join(cfgDir, config.FileName())),
			types.ExitCantCreate, 0,
		)
	}

	if created {
		fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	} else {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", SubtitleStyle.Render("•"), path)
	}
	return nil
}

func showConfigPath(app *App, flags *rootFlags) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	source, err := app.Config.Source(loadOptions(flags))
	if err != nil {
		return app.fail(err, types.ExitFailure, issue.ConfigLoadFailedId)
	}
	if source == "" {
		source = SubtitleStyle.Render("(none, using defaults)")
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", source)
	return nil
}
