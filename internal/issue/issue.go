// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

const (
	// NoInputsId is reported when no file or pattern was given.
	NoInputsId Id = iota + 1
	// NothingUsableId is reported when every input file was skipped.
	NothingUsableId
	// InvalidSetsId is reported when the loaded sets cannot be matched.
	InvalidSetsId
	// ConfigLoadFailedId is reported when the config file cannot be used.
	ConfigLoadFailedId
	// OutputWriteFailedId is reported when the output artifact cannot be written.
	OutputWriteFailedId
	// FormatErrorId is reported when the output format cannot be determined.
	FormatErrorId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is the Markdown source of a help page.
	MarkdownMsg string

	// Issue is one help page of the catalog.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

var (
	render = glamour.Render

	noInputsIssue = &Issue{
		id: NoInputsId,
		mdMsg: `
# No input files given

setsmatcher compares two or more line-based files. Pass them as arguments:

~~~
$ setsmatcher customers-2023.txt customers-2024.txt
~~~

Glob patterns are expanded for you, including ` + "`**`" + ` for nested directories:

~~~
$ setsmatcher 'exports/**/*.txt'
~~~`,
	}

	nothingUsableIssue = &Issue{
		id: NothingUsableId,
		mdMsg: `
# Nothing to process

Every input file was skipped. The messages above say why for each file.

## Things you can try
- Check the paths and glob patterns; quote globs so the shell does not expand them.
- Raise the size limit if files were too large:
~~~
$ setsmatcher --max-size 100MiB big-*.txt
~~~
- Use ` + "`--max-size 0`" + ` to disable the limit.
- Convert files whose encoding could not be detected to UTF-8.`,
	}

	invalidSetsIssue = &Issue{
		id: InvalidSetsId,
		mdMsg: `
# The sets could not be matched

The loaded files did not form a valid list of named sets. This usually means
a file name has no usable stem.

## Things you can try
- Rename files so every name has a non-empty base name.
- Run with ` + "`--verbose`" + ` to see which files were loaded.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

The config file is not valid CUE or does not match the schema.

## Things you can try
- Show the file in use:
~~~
$ setsmatcher config path
~~~
- Print a valid file with every option and its default:
~~~
$ setsmatcher config dump
~~~
- Check the ` + "`SETSMATCHER_*`" + ` environment variables.`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Output could not be written

The matrix was computed but writing the output file failed.

## Things you can try
- Check that the target directory exists and is writable.
- Close the file if another program (such as a spreadsheet) holds it open.
- Print to the terminal instead by leaving out ` + "`--output`" + `.`,
	}

	formatErrorIssue = &Issue{
		id: FormatErrorId,
		mdMsg: `
# Output format could not be determined

The format is taken from ` + "`--format`" + ` or guessed from the ` + "`--output`" + ` suffix.

## Supported formats
| Format | Suffixes |
| --- | --- |
| csv | .csv |
| md | .md, .markdown |
| html | .html, .htm |
| xlsx | .xlsx |

## Things you can try
~~~
$ setsmatcher -o report.txt --format md a.txt b.txt
~~~
- ` + "`--format`" + ` needs ` + "`--output`" + `; without an output file the matrix is printed as a table.`,
	}

	issues = map[Id]*Issue{
		noInputsIssue.Id():          noInputsIssue,
		nothingUsableIssue.Id():     nothingUsableIssue,
		invalidSetsIssue.Id():       invalidSetsIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		outputWriteFailedIssue.Id(): outputWriteFailedIssue,
		formatErrorIssue.Id():       formatErrorIssue,
	}
)

// Id returns the catalog identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the Markdown source.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the page for the terminal with the given glamour style
// ("dark", "light", "notty", "auto" or a JSON style path).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := slices.Collect(maps.Values(issues))
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
