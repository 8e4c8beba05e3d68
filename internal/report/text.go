package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// TextReporter renders a Report as human-readable text. Grounded on the
// teacher's internal/reporter/text.go TextReporter, generalized from a
// []rules.Violation list (one violation per line, grouped by file) to a
// single document's Report (two lines per validation error: a kind/index
// header and the message; no file grouping since the core validates one
// schema/input pair at a time).
//
// The teacher declared github.com/fatih/color in go.mod but every color
// function in text.go hand-rolled ANSI escapes instead of calling it; here
// the dependency is actually used.
type TextReporter struct {
	writer io.Writer
	quiet  bool
}

// NewTextReporter creates a TextReporter writing to stdout. quiet
// suppresses the "no violations" success line (schema front-matter option,
// internal/frontmatter.Options.Quiet).
func NewTextReporter(quiet bool) *TextReporter {
	return &TextReporter{writer: os.Stdout, quiet: quiet}
}

// NewTextReporterTo creates a TextReporter writing to an arbitrary writer,
// used by the CLI's check command to support an explicit output-path.
func NewTextReporterTo(w io.Writer, quiet bool) *TextReporter {
	return &TextReporter{writer: w, quiet: quiet}
}

// Report writes rep to the reporter's writer.
func (r *TextReporter) Report(rep *Report) error {
	if rep.OK() {
		if !r.quiet {
			_, _ = fmt.Fprintln(r.writer, color.GreenString("✓ no violations found"))
		}
		return r.reportCaptures(rep)
	}

	for _, e := range rep.Errors {
		_, _ = fmt.Fprintf(r.writer, "  %s %s %s\n",
			color.RedString("✗"),
			color.New(color.Faint).Sprintf("[%d:%d]", e.SchemaIndex, e.InputIndex),
			color.New(color.Bold).Sprintf("[%s]", e.Kind),
		)
		_, _ = fmt.Fprintf(r.writer, "    %s\n", e.Message)
	}
	_, _ = fmt.Fprintln(r.writer, color.RedString("✗ found %d violation(s)", len(rep.Errors)))
	return nil
}

func (r *TextReporter) reportCaptures(rep *Report) error {
	if len(rep.Captures) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(r.writer, color.CyanString("captures:"))
	for id, value := range rep.Captures {
		_, _ = fmt.Fprintf(r.writer, "  %s %v\n", color.New(color.Bold).Sprintf("%s:", id), value)
	}
	return nil
}
