// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/setsmatcher/setsmatcher/internal/issue"
	"github.com/setsmatcher/setsmatcher/pkg/cueutil"
	"github.com/setsmatcher/setsmatcher/pkg/types"
)

const (
	// AppName is the application name.
	AppName = "setsmatcher"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. SETSMATCHER_MAX_SIZE.
	EnvPrefix = "SETSMATCHER"
)

//go:embed config_schema.cue
var configSchema []byte

// Keys lists the configuration keys in the order they are documented.
var Keys = []string{"max_size", "index", "verbose", "key_style", "show_lines", "html_title"}

// ConfigDir returns the setsmatcher configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FileName returns the config file name, e.g. "config.cue".
func FileName() string { return ConfigFileName + "." + ConfigFileExt }

// loadWithOptions builds a fresh Viper instance from defaults, the resolved
// config file and the environment, then decodes and validates it.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, "", err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("max_size", defaults.MaxSize)
	v.SetDefault("index", defaults.Index)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("key_style", defaults.KeyStyle)
	v.SetDefault("show_lines", defaults.ShowLines)
	v.SetDefault("html_title", defaults.HTMLTitle)

	path, err := resolvePath(opts)
	if err != nil {
		return nil, "", err
	}

	if path != "" {
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'setsmatcher config dump' to see a valid file").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.DecodeHookFuncType(byteSizeHook))); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("parse configuration").
			WithSuggestion("Check the " + EnvPrefix + "_* environment variables").
			Wrap(err).
			BuildError()
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("key_style must be one of regular, green, blue").
			WithSuggestion("html_title must not be blank").
			Wrap(err).
			BuildError()
	}

	return &cfg, path, nil
}

// resolvePath returns the config file to load, or "" when none exists. An
// explicit ConfigFilePath must exist.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		path := string(opts.ConfigFilePath)
		if !fileExists(path) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'setsmatcher config init' to create the default file").
				Wrap(fmt.Errorf("config file not found: %s", path)).
				BuildError()
		}
		return path, nil
	}

	cfgDir := string(opts.ConfigDirPath)
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		cfgDir = dir
	}

	candidates := []string{
		filepath.Join(cfgDir, FileName()),
		filepath.Join(string(opts.BaseDir), FileName()),
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c, nil
		}
	}
	return "", nil
}

// loadCUEIntoViper validates a CUE file against #Config and merges its
// contents into Viper, keeping defaults and env overrides intact.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	values, err := cueutil.DecodeMap(configSchema, data, "#Config", path)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// byteSizeHook decodes strings such as "10MiB" and plain integers into
// types.ByteSize.
func byteSizeHook(_, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeFor[types.ByteSize]() {
		return data, nil
	}

	rv := reflect.ValueOf(data)
	switch {
	case rv.Kind() == reflect.String:
		size, err := types.ParseByteSize(rv.String())
		return size, err
	case rv.CanInt():
		return types.ByteSize(rv.Int()), nil
	case rv.CanUint():
		return types.ByteSize(rv.Uint()), nil
	case rv.CanFloat():
		return types.ByteSize(rv.Float()), nil
	default:
		return data, nil
	}
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default config file into dir unless one is
// already there. It returns the file path and whether it was created.
func CreateDefaultConfig(dir string) (path string, created bool, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	path = filepath.Join(dir, FileName())
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}
	return path, true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// setsmatcher configuration file\n")
	sb.WriteString("// Every field is optional; flags override these values.\n\n")

	fmt.Fprintf(&sb, "// Skip input files larger than this (0 disables the limit).\n")
	fmt.Fprintf(&sb, "max_size: %q\n\n", cfg.MaxSize.String())
	fmt.Fprintf(&sb, "// Prepend the 1-based Index column.\n")
	fmt.Fprintf(&sb, "index: %v\n\n", cfg.Index)
	fmt.Fprintf(&sb, "// Report every loaded file on stderr.\n")
	fmt.Fprintf(&sb, "verbose: %v\n\n", cfg.Verbose)
	fmt.Fprintf(&sb, "// Terminal table key color: \"regular\", \"green\" or \"blue\".\n")
	fmt.Fprintf(&sb, "key_style: %q\n\n", cfg.KeyStyle)
	fmt.Fprintf(&sb, "// Draw separators between terminal table rows.\n")
	fmt.Fprintf(&sb, "show_lines: %v\n\n", cfg.ShowLines)
	fmt.Fprintf(&sb, "// Title of HTML output.\n")
	fmt.Fprintf(&sb, "html_title: %q\n", cfg.HTMLTitle)

	return sb.String()
}
