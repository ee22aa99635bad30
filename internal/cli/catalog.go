package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/roach88/spanqit/internal/store"
)

// CatalogOptions holds flags shared by the catalog commands.
type CatalogOptions struct {
	*RootOptions
	Database string
}

// SaveOptions holds flags for the save command.
type SaveOptions struct {
	CatalogOptions
	Query string
}

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	CatalogOptions
	History bool
}

// SavedQuery reports the outcome of saving one query.
type SavedQuery struct {
	store.Record
	Inserted bool `json:"inserted"`
}

func addDatabaseFlag(cmd *cobra.Command, opts *CatalogOptions) {
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog (required)")
	_ = cmd.MarkFlagRequired("db")
}

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SaveOptions{CatalogOptions: CatalogOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "save <file|dir>",
		Short: "Render queries and record them in the catalog",
		Long: `Render queries and store the text as catalog revisions.

Saving is idempotent: a query whose rendered text is already stored under
the same name is reported as unchanged. The catalog is created if needed.

Examples:
  spanqit save queries.yaml --db ./catalog.db
  spanqit save ./queries --db ./catalog.db --query people`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(opts, args[0], cmd)
		},
	}

	addDatabaseFlag(cmd, &opts.CatalogOptions)
	cmd.Flags().StringVar(&opts.Query, "query", "", "save only the named query")

	return cmd
}

func runSave(opts *SaveOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	loadResult, err := LoadQueries(path)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	rendered, errs := renderDocument(loadResult.Document, opts.Query, false, 0)
	if len(errs) > 0 {
		return outputCompileErrors(formatter, errs)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeCatalog, fmt.Sprintf("failed to open database: %v", err), nil)
	}
	defer st.Close()

	ctx := context.Background()
	saved := make([]SavedQuery, 0, len(rendered))
	for _, r := range rendered {
		rec, inserted, err := st.Save(ctx, r.Name, r.Form, r.Text, path)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeCatalog, fmt.Sprintf("failed to save %s: %v", r.Name, err), nil)
		}
		slog.Info("query saved", "query", r.Name, "seq", rec.Seq, "inserted", inserted)
		saved = append(saved, SavedQuery{Record: rec, Inserted: inserted})
	}

	if formatter.IsJSON() {
		return formatter.Success(saved)
	}
	for _, s := range saved {
		if s.Inserted {
			fmt.Fprintf(formatter.Writer, "%s saved %s (seq %d)\n", okMark(), s.Name, s.Seq)
		} else {
			fmt.Fprintf(formatter.Writer, "= unchanged %s (seq %d)\n", s.Name, s.Seq)
		}
	}
	return nil
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the latest revision of every catalog query",
		Long: `List the latest revision of every query in the catalog.

Examples:
  spanqit list --db ./catalog.db
  spanqit list --db ./catalog.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	addDatabaseFlag(cmd, opts)
	return cmd
}

func runList(opts *CatalogOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openExisting(formatter, opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.List(context.Background())
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeCatalog, fmt.Sprintf("failed to list queries: %v", err), nil)
	}

	if formatter.IsJSON() {
		return formatter.Success(records)
	}
	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "Catalog is empty.")
		return nil
	}

	table := tablewriter.NewWriter(formatter.Writer)
	table.SetHeader([]string{"Name", "Form", "Seq", "Hash"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range records {
		table.Append([]string{r.Name, r.Form, strconv.FormatInt(r.Seq, 10), shortHash(r.Hash)})
	}
	table.Render()
	return nil
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{CatalogOptions: CatalogOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a catalog query",
		Long: `Print the latest stored text of a query, or with --history every
revision from oldest to newest.

Examples:
  spanqit show people --db ./catalog.db
  spanqit show people --db ./catalog.db --history`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	addDatabaseFlag(cmd, &opts.CatalogOptions)
	cmd.Flags().BoolVar(&opts.History, "history", false, "show every revision")

	return cmd
}

func runShow(opts *ShowOptions, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	st, err := openExisting(formatter, opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	var records []store.Record
	if opts.History {
		records, err = st.History(ctx, name)
	} else {
		var rec store.Record
		rec, err = st.Latest(ctx, name)
		records = []store.Record{rec}
	}
	if errors.Is(err, store.ErrNotFound) || (err == nil && len(records) == 0) {
		return formatter.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("query %q not in catalog", name), nil)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeCatalog, fmt.Sprintf("failed to read %s: %v", name, err), nil)
	}

	if formatter.IsJSON() {
		if opts.History {
			return formatter.Success(records)
		}
		return formatter.Success(records[0])
	}
	for i, r := range records {
		if opts.History {
			if i > 0 {
				fmt.Fprintln(formatter.Writer)
			}
			fmt.Fprintf(formatter.Writer, "# %s seq %d %s\n", r.Name, r.Seq, shortHash(r.Hash))
		}
		fmt.Fprintln(formatter.Writer, r.Text)
	}
	return nil
}

// openExisting opens a catalog that must already exist.
func openExisting(formatter *OutputFormatter, path string) (*store.Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("database not found: %s", path), nil)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeCatalog, fmt.Sprintf("failed to open database: %v", err), nil)
	}
	return st, nil
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
