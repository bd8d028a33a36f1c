// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/setsmatcher/setsmatcher/internal/config"
	"github.com/setsmatcher/setsmatcher/internal/render"
	"github.com/setsmatcher/setsmatcher/pkg/types"
)

type (
	// App holds the services and streams used by the command tree.
	App struct {
		Config  ConfigProvider
		Matcher MatchService
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Matcher MatchService
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// MatchRequest captures all inputs of one matching run after flags and
	// configuration have been merged.
	MatchRequest struct {
		// Patterns are the file paths and glob patterns to load.
		Patterns []string
		// Dir resolves relative patterns; empty means the working directory.
		Dir string
		// Output is the output file; empty prints a table on stdout.
		Output string
		// Format is the resolved output format.
		Format render.Format
		// Render holds the presentation settings.
		Render render.Options
		// MaxSize skips files larger than this; 0 disables the limit.
		MaxSize types.ByteSize
		// Verbose reports loaded files on stderr.
		Verbose bool
	}

	// MatchResult summarizes a successful run.
	MatchResult struct {
		Sets int
		Keys int
	}

	// MatchService loads, matches and renders. Implementations report file
	// diagnostics on the stderr writer they were built with and return errors
	// for the CLI layer to classify.
	MatchService interface {
		Match(ctx context.Context, req MatchRequest) (MatchResult, error)
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Source(opts config.LoadOptions) (string, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Matcher == nil {
		deps.Matcher = newMatchService(deps.Stdout, deps.Stderr)
	}

	return &App{
		Config:  deps.Config,
		Matcher: deps.Matcher,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}, nil
}
