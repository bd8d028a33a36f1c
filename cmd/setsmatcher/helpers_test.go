// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/setsmatcher/setsmatcher/internal/config"
)

type (
	stubConfig struct {
		cfg    *config.Config
		source string
		err    error
	}

	recordingMatcher struct {
		requests []MatchRequest
		err      error
	}

	cliResult struct {
		stdout string
		stderr string
		err    error
	}
)

func (s *stubConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	cfg := *s.cfg
	return &cfg, nil
}

func (s *stubConfig) Source(config.LoadOptions) (string, error) {
	return s.source, s.err
}

func (r *recordingMatcher) Match(_ context.Context, req MatchRequest) (MatchResult, error) {
	r.requests = append(r.requests, req)
	return MatchResult{}, r.err
}

func defaultStub() *stubConfig {
	return &stubConfig{cfg: config.DefaultConfig()}
}

// runCLI executes the command tree against in-memory streams.
func runCLI(t *testing.T, deps Dependencies, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	deps.Stdout = &stdout
	deps.Stderr = &stderr
	if deps.Config == nil {
		deps.Config = defaultStub()
	}

	app, err := NewApp(deps)
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}

	root := NewRootCommand(app)
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err = root.ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeSets creates the three sample lists and returns their paths.
func writeSets(t *testing.T) (dir string, paths []string) {
	t.Helper()

	dir = t.TempDir()
	files := []struct{ name, content string }{
		{"first.txt", "a\nb\n"},
		{"second.txt", "b\nc\n"},
		{"third.list", "c\n"},
	}
	for _, f := range files {
		p := filepath.Join(dir, f.name)
		if err := os.WriteFile(p, []byte(f.content), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
		paths = append(paths, p)
	}
	return dir, paths
}
