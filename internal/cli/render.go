package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/spanqit/internal/queryir"
	"github.com/roach88/spanqit/internal/querysparql"
	"github.com/roach88/spanqit/internal/sparql"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Query  string // render only this query
	Pretty bool   // multi-line output
	Indent int    // starting indent depth for pretty output
	Output string // output file path
}

// RenderedQuery is one query rendered to SPARQL text.
type RenderedQuery struct {
	Name        string `json:"name"`
	Form        string `json:"form"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <file|dir>",
		Short: "Render query documents to SPARQL",
		Long: `Render the queries of a YAML, JSON or CUE document to SPARQL text.

A directory is read as one document made of every query file directly
inside it. Without --query every query is rendered in document order.

Examples:
  spanqit render queries.yaml
  spanqit render ./queries --query people --pretty
  spanqit render queries.cue -o people.rq`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Query, "query", "", "render only the named query")
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", false, "render one clause per line")
	cmd.Flags().IntVar(&opts.Indent, "indent", 0, "starting indent depth for --pretty")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	loadResult, err := LoadQueries(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded %d quer(ies) from %d file(s)", len(loadResult.Document.Queries), loadResult.FileCount)

	rendered, errs := renderDocument(loadResult.Document, opts.Query, opts.Pretty, opts.Indent)
	if len(errs) > 0 {
		return outputCompileErrors(formatter, errs)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(joinRendered(rendered)), 0o644); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
		}
		slog.Debug("rendered queries written", "path", opts.Output, "count", len(rendered))
	}

	if formatter.IsJSON() {
		return formatter.Success(rendered)
	}
	if opts.Output != "" {
		fmt.Fprintf(formatter.Writer, "Wrote %d quer(ies) to %s\n", len(rendered), opts.Output)
		return nil
	}
	fmt.Fprint(formatter.Writer, joinRendered(rendered))
	return nil
}

// renderDocument compiles the named query, or every query, of doc.
// Fresh blank nodes get random labels.
func renderDocument(doc *queryir.Document, only string, pretty bool, indent int) ([]RenderedQuery, []error) {
	c := querysparql.NewCompiler(doc)

	queries := doc.Queries
	if only != "" {
		q, ok := doc.Lookup(only)
		if !ok {
			return nil, []error{&querysparql.CompileError{Query: only, Message: "query not found"}}
		}
		queries = []queryir.Query{*q}
	}

	var rendered []RenderedQuery
	var errs []error
	for _, q := range queries {
		elem, err := c.Compile(q)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		text := elem.Render()
		if pretty {
			text = sparql.Pretty(elem, indent)
		}
		rendered = append(rendered, RenderedQuery{
			Name:        q.Name,
			Form:        string(q.Form.Normalized()),
			Description: q.Description,
			Text:        text,
		})
		slog.Debug("query rendered", "query", q.Name, "bytes", len(text))
	}
	return rendered, errs
}

// joinRendered lays queries out one after another. With several queries
// each is headed by a SPARQL comment naming it.
func joinRendered(rendered []RenderedQuery) string {
	if len(rendered) == 1 {
		return rendered[0].Text + "\n"
	}
	var b strings.Builder
	for i, r := range rendered {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# %s\n%s\n", r.Name, r.Text)
	}
	return b.String()
}

// outputLoadError reports a document that could not be loaded.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		message := loadErr.Message
		if loadErr.Pos.IsValid() {
			message = fmt.Sprintf("%s:%d:%d: %s", loadErr.Pos.Filename(), loadErr.Pos.Line(), loadErr.Pos.Column(), message)
		}
		return formatter.Fail(ExitCommandError, loadErr.Code, message, nil)
	}
	return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
}

// outputCompileErrors outputs queries that failed to compile.
func outputCompileErrors(formatter *OutputFormatter, errs []error) error {
	if formatter.IsJSON() {
		cliErrors := make([]CLIError, len(errs))
		for i, err := range errs {
			cliErrors[i] = compileCLIError(err)
		}

		if err := formatter.Encode(CLIResponse{
			Status: "error",
			Error:  &cliErrors[0],
			Data:   cliErrors, // Include all errors in data
		}); err != nil {
			return err
		}

		// Compilation errors are command-level errors (exit code 2)
		return NewExitError(ExitCommandError, fmt.Sprintf("compilation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintf(formatter.Writer, "%s Compilation failed\n", failMark())
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		e := compileCLIError(err)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", e.Code, e.Message)
	}

	return NewExitError(ExitCommandError, fmt.Sprintf("compilation failed with %d error(s)", len(errs)))
}

func compileCLIError(err error) CLIError {
	var ce *querysparql.CompileError
	if errors.As(err, &ce) {
		return CLIError{
			Code:    ErrCodeCompile,
			Message: ce.Error(),
			Details: map[string]string{"query": ce.Query, "path": ce.Path},
		}
	}
	return CLIError{Code: ErrCodeGeneric, Message: err.Error()}
}
