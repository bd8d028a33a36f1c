// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/setsmatcher/setsmatcher/internal/matcher"
	"github.com/setsmatcher/setsmatcher/internal/textenc"
	"github.com/setsmatcher/setsmatcher/pkg/types"
)

type (
	// Options configures a Loader.
	Options struct {
		// MaxSize is the per-file ceiling; zero disables the check.
		MaxSize types.ByteSize
		// Dir is the directory relative patterns are expanded against.
		// Empty means the process working directory.
		Dir string
		// Logger receives one info line per loaded file and one warning or
		// error line per skipped file. Nil discards diagnostics.
		Logger *log.Logger
	}

	// Loader reads line sets from files.
	Loader struct {
		maxSize types.ByteSize
		dir     string
		logger  *log.Logger
	}
)

// New creates a Loader.
func New(opts Options) *Loader {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		maxSize: opts.MaxSize,
		dir:     opts.Dir,
		logger:  logger,
	}
}

// Load expands patterns and reads every resulting file into a NamedSet, in
// order. Files that cannot be used are logged and skipped.
//
// Load returns ErrNoInputs for an empty pattern list and ErrNothingUsable
// when no file could be loaded.
func (l *Loader) Load(patterns []string) ([]matcher.NamedSet, error) {
	if len(patterns) == 0 {
		return nil, ErrNoInputs
	}

	var sets []matcher.NamedSet
	for _, path := range l.Expand(patterns) {
		ns, err := l.LoadFile(path)
		if err != nil {
			l.report(err)
			continue
		}
		sets = append(sets, ns)
		l.logger.Info("loaded", "file", path, "items", ns.Members.Len())
	}

	if len(sets) == 0 {
		return nil, ErrNothingUsable
	}
	return sets, nil
}

// LoadFile reads a single file. Every failure is a *SkipError.
func (l *Loader) LoadFile(path string) (matcher.NamedSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return matcher.NamedSet{}, classify(path, err)
	}
	if info.IsDir() {
		return matcher.NamedSet{}, &SkipError{Path: path, Reason: SkipIO, Err: errors.New("is a directory")}
	}
	if l.maxSize.Exceeded(info.Size()) {
		return matcher.NamedSet{}, &SkipError{
			Path:   path,
			Reason: SkipTooLarge,
			Err:    &SizeError{Size: types.ByteSize(info.Size()), Max: l.maxSize},
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return matcher.NamedSet{}, classify(path, err)
	}

	lines, detection, err := textenc.DecodeLines(content)
	if err != nil {
		return matcher.NamedSet{}, &SkipError{Path: path, Reason: SkipUndetectable, Err: err}
	}
	l.logger.Debug("decoded", "file", path, "encoding", detection.Name, "confidence", detection.Confidence)

	return matcher.NamedSet{
		Name:    types.FilesystemPath(path).Stem(),
		Members: matcher.NewSet(lines...),
	}, nil
}

func (l *Loader) report(err error) {
	var skip *SkipError
	if !errors.As(err, &skip) {
		l.logger.Error(err.Error())
		return
	}
	msg := "skipped: " + skip.Reason.String()
	if skip.Reason.Warning() {
		l.logger.Warn(msg, "file", skip.Path, "err", skip.Err)
		return
	}
	l.logger.Error(msg, "file", skip.Path, "err", skip.Err)
}

func classify(path string, err error) *SkipError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &SkipError{Path: path, Reason: SkipNotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &SkipError{Path: path, Reason: SkipPermission, Err: err}
	default:
		return &SkipError{Path: path, Reason: SkipIO, Err: err}
	}
}
