package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/404wolf/mdvalidate/internal/frontmatter"
	"github.com/404wolf/mdvalidate/internal/mdtree"
	"github.com/404wolf/mdvalidate/internal/policy"
	"github.com/404wolf/mdvalidate/internal/report"
	"github.com/404wolf/mdvalidate/internal/stream"
	"github.com/404wolf/mdvalidate/internal/validate"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command. Grounded on the teacher's
// cmd/mdschema/commands/check.go: a schema argument, an input argument,
// parse-then-validate-then-report, ErrViolationsFound on findings.
func NewCheckCmd() *cobra.Command {
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "check <schema-path> <input-path> [output-path]",
		Short: "Validate an input Markdown document against a schema document",
		Long: `check compares input-path against schema-path using the pair-walked
comparison engine. Use "-" for schema-path/input-path to read from stdin and
"-" for output-path to write to stdout (the default).`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ConfigFromContext(cmd.Context())
			cfg.ChunkSize = chunkSize
			return runCheck(cfg, args)
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "split input into chunks of this many bytes and validate via the streaming driver (0 = validate the whole input at once)")

	return cmd
}

func runCheck(cfg *Config, args []string) error {
	schemaSource, err := readPathOrStdin(args[0])
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}
	inputSource, err := readPathOrStdin(args[1])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := validateDocument(schemaSource, inputSource, cfg)
	if err != nil {
		return err
	}

	rep := report.FromResult(result)
	if cfg.Select != "" {
		if err := applySelect(rep, cfg.Select); err != nil {
			return fmt.Errorf("applying --select: %w", err)
		}
	}

	outputPath := "-"
	if len(args) == 3 {
		outputPath = args[2]
	}
	if err := writeReport(rep, outputPath, cfg); err != nil {
		return err
	}

	if !rep.OK() {
		return ErrViolationsFound
	}
	return nil
}

// validateDocument runs the core walker, either in one shot or, when
// cfg.ChunkSize > 0, through internal/stream to exercise the streaming
// driver over successive prefixes of the input. The schema document's own
// front matter (internal/frontmatter) supplies document-level defaults for
// max_list_depth/fast_fail/quiet, layered beneath whatever the CLI flags or
// .mdvalidate.yml already set on cfg (same one-directional-OR precedent as
// applyConfigDefaults: front matter can only turn an option on, never off).
func validateDocument(schemaSource, inputSource []byte, cfg *Config) (*validate.Result, error) {
	opts, err := frontmatter.Parse(schemaSource)
	if err != nil {
		return nil, fmt.Errorf("parsing schema front matter: %w", err)
	}
	if opts.MaxListDepth > 0 {
		validate.MaxListDepth = opts.MaxListDepth
	}
	if opts.FastFail {
		cfg.FastFail = true
	}
	if opts.Quiet {
		cfg.Quiet = true
	}

	// The front matter block only carries options: it is dropped before the
	// schema is parsed, so it is never compared against the input.
	if lines := bytes.SplitAfter(schemaSource, []byte("\n")); len(lines) > 2 &&
		string(bytes.TrimSpace(lines[0])) == "---" && len(bytes.TrimSpace(lines[1])) > 0 {
		offset := len(lines[0])
		for _, line := range lines[1:] {
			offset += len(line)
			if string(bytes.TrimSpace(line)) == "---" {
				schemaSource = schemaSource[offset:]
				break
			}
		}
	}

	if cfg.ChunkSize <= 0 {
		schemaTree, perr := mdtree.Parse(schemaSource)
		if perr != nil {
			return resultForParseFailure(perr), nil
		}
		inputTree, perr := mdtree.Parse(inputSource)
		if perr != nil {
			return resultForParseFailure(perr), nil
		}
		result := validate.Validate(schemaTree.Root(), inputTree.Root(), true)
		if cfg.FastFail {
			result.TruncateAfterFirstFastFailTrigger()
		}
		return result, nil
	}

	driver, err := stream.New(schemaSource)
	if err != nil {
		return resultForParseFailure(err), nil
	}
	driver.SetFastFail(cfg.FastFail)

	result := validate.Empty(0, 0)
	for offset := 0; offset < len(inputSource); offset += cfg.ChunkSize {
		end := offset + cfg.ChunkSize
		if end > len(inputSource) {
			end = len(inputSource)
		}
		eof := end == len(inputSource)
		chunkResult, err := driver.Read(inputSource[offset:end], eof)
		if err != nil {
			return nil, fmt.Errorf("streaming validation: %w", err)
		}
		result.Join(chunkResult)
		if driver.Done() {
			break
		}
	}
	if len(inputSource) == 0 {
		chunkResult, err := driver.Read(nil, true)
		if err != nil {
			return nil, fmt.Errorf("streaming validation: %w", err)
		}
		result.Join(chunkResult)
	}
	return result, nil
}

// resultForParseFailure converts an error returned by mdtree.Parse (or
// wrapping one, as stream.New does) into a Result carrying the matching
// InvalidUTF8/ParserError ValidationError, so a malformed document is
// reported like any other finding (exit code 1) instead of treated as an
// operational failure (exit code 2).
func resultForParseFailure(err error) *validate.Result {
	result := validate.Empty(0, 0)
	result.AddError(validate.NewParseFailureError(0, 0, err))
	return result
}

func applySelect(rep *report.Report, expression string) error {
	sel, err := policy.CompileSelect(expression)
	if err != nil {
		return err
	}
	for id, value := range rep.Captures {
		keep, err := sel.Keep(id, value)
		if err != nil {
			return err
		}
		if !keep {
			delete(rep.Captures, id)
		}
	}
	return nil
}

func writeReport(rep *report.Report, outputPath string, cfg *Config) error {
	if cfg.Format == "json" {
		b, err := rep.JSON()
		if err != nil {
			return err
		}
		return writeBytesOrStdout(outputPath, append(b, '\n'))
	}

	if outputPath == "-" {
		return report.NewTextReporterTo(os.Stdout, cfg.Quiet).Report(rep)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer f.Close()
	return report.NewTextReporterTo(f, cfg.Quiet).Report(rep)
}

func readPathOrStdin(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeBytesOrStdout(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
