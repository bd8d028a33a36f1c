// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/setsmatcher/setsmatcher/internal/config"
	"github.com/setsmatcher/setsmatcher/internal/issue"
	"github.com/setsmatcher/setsmatcher/internal/loader"
	"github.com/setsmatcher/setsmatcher/internal/matcher"
	"github.com/setsmatcher/setsmatcher/internal/matrix"
	"github.com/setsmatcher/setsmatcher/internal/render"
	"github.com/setsmatcher/setsmatcher/pkg/types"
)

var (
	// ErrFormatWithoutOutput is returned when --format is given without --output.
	ErrFormatWithoutOutput = errors.New("--format requires --output")
	// ErrWriteOutput wraps failures to create or write the output file.
	ErrWriteOutput = errors.New("cannot write output")
)

type matchService struct {
	stdout io.Writer
	stderr io.Writer
}

func newMatchService(stdout, stderr io.Writer) *matchService {
	return &matchService{stdout: stdout, stderr: stderr}
}

// Match runs one load, match and render pass.
func (s *matchService) Match(ctx context.Context, req MatchRequest) (MatchResult, error) {
	logger := newLogger(s.stderr, req.Verbose)

	l := loader.New(loader.Options{MaxSize: req.MaxSize, Dir: req.Dir, Logger: logger})
	sets, err := l.Load(req.Patterns)
	if err != nil {
		return MatchResult{}, err
	}

	if err := ctx.Err(); err != nil {
		return MatchResult{}, err
	}

	m, err := matcher.MatchNamed(sets)
	if err != nil {
		return MatchResult{}, err
	}
	logger.Info("matched", "sets", len(sets), "keys", m.Len())

	r, err := render.New(req.Format, req.Render)
	if err != nil {
		return MatchResult{}, err
	}

	if req.Output == "" {
		if err := render.Render(s.stdout, r, m, req.Render); err != nil {
			return MatchResult{}, fmt.Errorf("render %s: %w", req.Format, err)
		}
	} else {
		if err := writeOutput(req.Output, r, m, req.Render); err != nil {
			return MatchResult{}, err
		}
		logger.Info("wrote", "file", req.Output, "format", req.Format)
	}

	return MatchResult{Sets: len(sets), Keys: m.Len()}, nil
}

// writeOutput renders into path. A partially written file is removed.
func writeOutput(path string, r render.Renderer, m *matrix.Matrix, opts render.Options) error {
	return writeFile(path, func(w io.Writer) error {
		return render.Render(w, r, m, opts)
	})
}

func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteOutput, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fill(bw); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// resolveFormat applies the output format rules: an explicit --format needs
// --output and wins over the suffix; --output alone guesses from the suffix;
// neither prints the terminal table.
func resolveFormat(output, format string) (render.Format, error) {
	if format != "" {
		if output == "" {
			return "", ErrFormatWithoutOutput
		}
		f, err := render.ParseFormat(format)
		if err != nil {
			return "", err
		}
		if f == render.FormatTable {
			return "", &render.InvalidFormatError{Value: f}
		}
		return f, nil
	}
	if output == "" {
		return render.FormatTable, nil
	}
	return render.FormatFromPath(output)
}

// classifyError maps a failed run to its exit code and help page.
func classifyError(err error) (types.ExitCode, issue.Id) {
	switch {
	case errors.Is(err, loader.ErrNoInputs):
		return types.ExitUsage, issue.NoInputsId
	case errors.Is(err, loader.ErrNothingUsable):
		return types.ExitNoInput, issue.NothingUsableId
	case errors.Is(err, matcher.ErrInvalidInput), errors.Is(err, matcher.ErrEmptyInput):
		return types.ExitDataErr, issue.InvalidSetsId
	case errors.Is(err, ErrFormatWithoutOutput),
		errors.Is(err, render.ErrInvalidFormat),
		errors.Is(err, render.ErrUnknownSuffix):
		return types.ExitUsage, issue.FormatErrorId
	case errors.Is(err, render.ErrInvalidKeyStyle), errors.Is(err, types.ErrInvalidByteSize):
		return types.ExitUsage, 0
	case errors.Is(err, ErrWriteOutput):
		return types.ExitCantCreate, issue.OutputWriteFailedId
	case errors.Is(err, config.ErrInvalidConfig):
		return types.ExitFailure, issue.ConfigLoadFailedId
	default:
		return types.ExitFailure, 0
	}
}

// newLogger builds the diagnostics logger: warnings and errors always,
// per-file progress with verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}
