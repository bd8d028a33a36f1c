// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// rootRunPath is the coverage key for the matching run of the root command.
const rootRunPath = "(root)"

// TestCommandTxtarCoverage verifies that every non-hidden, runnable leaf
// command and the root matching run have at least one testscript (.txtar)
// file in tests/cli/testdata/ exercising them.
func TestCommandTxtarCoverage(t *testing.T) {
	t.Parallel()

	app, err := NewApp(Dependencies{})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	rootCmd := NewRootCommand(app)

	commands := collectLeafCommands(rootCmd)
	commands[rootRunPath] = true

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file path via runtime.Caller")
	}
	// cmd/setsmatcher/coverage_test.go → cmd/setsmatcher/ → cmd/ → project root
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err != nil {
		t.Fatalf("project root detection failed: go.mod not found at %s", projectRoot)
	}
	testdataDir := filepath.Join(projectRoot, "tests", "cli", "testdata")

	covered := scanTxtarCoverage(t, testdataDir, commands)

	var uncovered []string
	for cmdPath := range commands {
		if !covered[cmdPath] {
			uncovered = append(uncovered, cmdPath)
		}
	}
	sort.Strings(uncovered)
	for _, cmdPath := range uncovered {
		t.Errorf("uncovered command: %q has no txtar test in %s", cmdPath, testdataDir)
	}
}

// collectLeafCommands returns the paths of leaf (no visible children),
// non-hidden, runnable commands.
func collectLeafCommands(root *cobra.Command) map[string]bool {
	commands := make(map[string]bool)
	walkCobraTree(root, "", commands)
	return commands
}

func walkCobraTree(cmd *cobra.Command, prefix string, commands map[string]bool) {
	for _, child := range cmd.Commands() {
		if child.Hidden {
			continue
		}

		childPath := child.Name()
		if prefix != "" {
			childPath = prefix + " " + child.Name()
		}

		visibleChildren := 0
		for _, grandchild := range child.Commands() {
			if !grandchild.Hidden {
				visibleChildren++
			}
		}
		if visibleChildren == 0 && (child.RunE != nil || child.Run != nil) {
			commands[childPath] = true
		}

		walkCobraTree(child, childPath, commands)
	}
}

// scanTxtarCoverage reads all .txtar files in testdataDir and records the
// command paths used by `exec setsmatcher ...` and `! exec setsmatcher ...`
// lines. A line whose first argument names no command counts for the root run.
func scanTxtarCoverage(t *testing.T, testdataDir string, knownCommands map[string]bool) map[string]bool {
	t.Helper()
	covered := make(map[string]bool)

	execRe := regexp.MustCompile(`^!?\s*exec\s+setsmatcher(?:\s+(.*))?$`)

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata directory %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txtar") {
			continue
		}
		scanTxtarFile(t, filepath.Join(testdataDir, entry.Name()), execRe, knownCommands, covered)
	}

	return covered
}

func scanTxtarFile(t *testing.T, filePath string, execRe *regexp.Regexp, knownCommands, covered map[string]bool) {
	t.Helper()

	f, err := os.Open(filePath)
	if err != nil {
		t.Errorf("failed to open %s: %v", filePath, err)
		return
	}
	defer func() { _ = f.Close() }() // Read-only file; close error non-critical.

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := execRe.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		if cmdPath := matchLongestCommand(strings.Fields(m[1]), knownCommands); cmdPath != "" {
			covered[cmdPath] = true
		}
	}
	if err := scanner.Err(); err != nil {
		t.Errorf("error scanning %s: %v", filePath, err)
	}
}

// matchLongestCommand returns the longest known command path prefixing
// tokens, or rootRunPath when tokens do not start with a subcommand.
func matchLongestCommand(tokens []string, knownCommands map[string]bool) string {
	if len(tokens) == 0 || (tokens[0] != "config" && tokens[0] != "help" && tokens[0] != "completion") {
		return rootRunPath
	}

	var best string
	for i := 1; i <= len(tokens); i++ {
		candidate := strings.Join(tokens[:i], " ")
		if knownCommands[candidate] {
			best = candidate
		}
	}
	return best
}

func TestMatchLongestCommand(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"config show": true, "config dump": true, rootRunPath: true}

	tests := []struct {
		tokens []string
		want   string
	}{
		{nil, rootRunPath},
		{[]string{"a.txt", "b.txt"}, rootRunPath},
		{[]string{"-o", "out.csv", "*.txt"}, rootRunPath},
		{[]string{"config", "show"}, "config show"},
		{[]string{"config", "dump", "--config", "x.cue"}, "config dump"},
		{[]string{"config"}, ""},
	}

	for _, tt := range tests {
		got := matchLongestCommand(tt.tokens, known)
		if got != tt.want {
			t.Errorf("matchLongestCommand(%q) = %q, want %q", tt.tokens, got, tt.want)
		}
	}
}
