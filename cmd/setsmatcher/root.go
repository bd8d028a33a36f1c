// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/setsmatcher/setsmatcher/internal/config"
	"github.com/setsmatcher/setsmatcher/internal/issue"
	"github.com/setsmatcher/setsmatcher/internal/render"
	"github.com/setsmatcher/setsmatcher/pkg/types"
)

// issueStyle is the glamour style used for help pages on stderr. "auto"
// falls back to plain text when the output is not a terminal.
const issueStyle = "auto"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the raw flag values of one invocation.
type rootFlags struct {
	verbose   bool
	output    string
	format    string
	index     bool
	maxSize   string
	keyStyle  string
	showLines bool
	title     string
	cfgFile   string
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "setsmatcher [flags] FILE|GLOB...",
		Short: "Show which lines occur in which files",
		Long: TitleStyle.Render("setsmatcher") + SubtitleStyle.Render(" - compare line-based files as sets") + `

Every distinct line of the input files is a key. The result is a matrix
with one row per key, sorted, and one column per file marking where the
key occurs. Files are named by their base name without extension.

Text encodings are detected per file. Files above the size limit or
with undetectable encodings are skipped with a warning.

` + SubtitleStyle.Render("Examples:") + `
  setsmatcher a.txt b.txt              Print a table on the terminal
  setsmatcher 'lists/**/*.txt' -i      Match every list, with an Index column
  setsmatcher -o report.xlsx *.txt     Write a spreadsheet
  setsmatcher -o out.txt -f md *.txt   Write Markdown to a file of any name`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, app, flags, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "report every loaded file")
	pf.StringVar(&flags.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/setsmatcher/config.cue)")

	f := rootCmd.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "write the matrix to this file instead of the terminal")
	f.StringVarP(&flags.format, "format", "f", "", "output file format: csv, md, html, xlsx (default: from --output suffix)")
	f.BoolVarP(&flags.index, "index", "i", false, "prepend a 1-based Index column")
	f.StringVar(&flags.maxSize, "max-size", "", "skip files larger than this, e.g. 10MiB; 0 disables the limit (default 10MiB)")
	f.StringVar(&flags.keyStyle, "key-style", "", "terminal key color: regular, green, blue (default green)")
	f.BoolVar(&flags.showLines, "show-lines", false, "draw lines between terminal table rows")
	f.StringVar(&flags.title, "title", "", "title of HTML output (default \"sets-matcher\")")

	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// runMatch merges configuration and flags into a MatchRequest and runs it.
func runMatch(cmd *cobra.Command, app *App, flags *rootFlags, args []string) error {
	ctx := cmd.Context()

	cfg, err := app.Config.Load(ctx, loadOptions(flags))
	if err != nil {
		return app.fail(err, types.ExitFailure, issue.ConfigLoadFailedId)
	}

	req, err := buildRequest(cmd, flags, cfg, args)
	if err != nil {
		code, id := classifyError(err)
		return app.fail(err, code, id)
	}

	if _, err := app.Matcher.Match(ctx, req); err != nil {
		code, id := classifyError(err)
		return app.fail(err, code, id)
	}
	return nil
}

// buildRequest lets explicitly set flags override the configuration.
func buildRequest(cmd *cobra.Command, flags *rootFlags, cfg *config.Config, args []string) (MatchRequest, error) {
	changed := cmd.Flags().Changed

	opts := cfg.RenderOptions()
	if changed("index") {
		opts.Index = flags.index
	}
	if changed("show-lines") {
		opts.ShowLines = flags.showLines
	}
	if changed("title") {
		opts.Title = flags.title
	}
	if changed("key-style") {
		opts.KeyStyle = render.KeyStyle(flags.keyStyle)
		if err := opts.KeyStyle.Validate(); err != nil {
			return MatchRequest{}, err
		}
	}

	maxSize := cfg.MaxSize
	if changed("max-size") {
		size, err := types.ParseByteSize(flags.maxSize)
		if err != nil {
			return MatchRequest{}, err
		}
		maxSize = size
	}

	verbose := cfg.Verbose
	if changed("verbose") {
		verbose = flags.verbose
	}

	format, err := resolveFormat(flags.output, flags.format)
	if err != nil {
		return MatchRequest{}, err
	}

	return MatchRequest{
		Patterns: args,
		Output:   flags.output,
		Format:   format,
		Render:   opts,
		MaxSize:  maxSize,
		Verbose:  verbose,
	}, nil
}

func loadOptions(flags *rootFlags) config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: types.FilesystemPath(flags.cfgFile)}
}

// fail renders the help page for err on stderr and wraps it in an ExitError.
func (a *App) fail(err error, code types.ExitCode, issueID issue.Id) error {
	svcErr := newServiceError(err, issueID, "")
	renderServiceError(a.stderr, svcErr, issueStyle)
	return &ExitError{Code: code, Err: svcErr}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute builds the production App and runs the command tree.
// This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		os.Exit(int(types.ExitFailure))
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(int(exitCodeOf(err)))
	}
}
