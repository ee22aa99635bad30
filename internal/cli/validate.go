package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/spanqit/internal/compiler"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool                       `json:"valid"`
	Queries int                        `json:"queries"`
	Errors  []compiler.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file|dir>",
		Short: "Validate query documents without rendering",
		Long: `Validate query documents without writing any output.

Checks document structure, reports sub-query reference cycles and
trial-compiles every remaining query, so bad term tokens, undeclared
prefixes and triples without objects are all found in one run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	loadResult, err := LoadQueries(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	doc := loadResult.Document
	formatter.VerboseLog("Found %d document file(s) in %s", loadResult.FileCount, path)
	for _, name := range doc.Names() {
		formatter.VerboseLog("Validating query: %s", name)
	}

	validationErrors := ValidateDocument(loadResult)
	if len(validationErrors) > 0 {
		return outputValidationErrors(formatter, len(doc.Queries), validationErrors)
	}

	return outputValidateSuccess(formatter, len(doc.Queries))
}

// ValidateDocument validates a loaded document.
// This is a helper function for external callers.
func ValidateDocument(loadResult *LoadResult) []compiler.ValidationError {
	return compiler.Validate(loadResult.Document)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, queries int) error {
	if formatter.IsJSON() {
		return formatter.Success(ValidationResult{Valid: true, Queries: queries})
	}

	fmt.Fprintf(formatter.Writer, "%s All %d quer(ies) valid\n", okMark(), queries)
	return nil
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, queries int, errs []compiler.ValidationError) error {
	if formatter.IsJSON() {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:   false,
				Queries: queries,
				Errors:  errs,
			},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}
		if err := formatter.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1 (test/validation failure)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintf(formatter.Writer, "%s Validation failed\n", failMark())
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		location := err.Query
		if err.Field != "" {
			location += " " + err.Field
		}
		fmt.Fprintln(formatter.Writer, location)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", err.Code, err.Message)
	}

	// Validation failures = exit code 1 (test/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
