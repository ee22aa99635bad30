package harness

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/roach88/spanqit/internal/store"
)

// validIdentifier matches valid SQL identifiers (table/column names).
// Only allows alphanumeric and underscore, must start with letter or underscore.
// This prevents SQL injection via identifier interpolation.
var validIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// defaultTable is the catalog table final_state reads when none is named.
const defaultTable = "queries"

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string        // Assertion type for categorization
	Expected string        // Human-readable expected outcome
	Actual   string        // Human-readable actual outcome
	Trace    []RenderEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, event := range e.Trace {
			if event.Error != "" {
				fmt.Fprintf(&buf, "  [%d] %s error: %s\n", event.Seq, event.Query, event.Error)
				continue
			}
			fmt.Fprintf(&buf, "  [%d] %s %s\n", event.Seq, event.Query, event.Text)
		}
	}

	return buf.String()
}

// latestRender returns the text of the last successful render of query.
func latestRender(trace []RenderEvent, query string) (string, bool) {
	for i := len(trace) - 1; i >= 0; i-- {
		if trace[i].Query == query && trace[i].Error == "" {
			return trace[i].Text, true
		}
	}
	return "", false
}

func notRendered(kind string, trace []RenderEvent, query string) error {
	return &AssertionError{
		Type:     kind,
		Expected: fmt.Sprintf("a successful render of %s", query),
		Actual:   "not found in trace",
		Trace:    trace,
	}
}

// assertRenderContains checks the latest render of the query contains the
// fragment.
func assertRenderContains(trace []RenderEvent, assertion Assertion) error {
	text, ok := latestRender(trace, assertion.Query)
	if !ok {
		return notRendered(AssertRenderContains, trace, assertion.Query)
	}
	if !strings.Contains(text, assertion.Text) {
		return &AssertionError{
			Type:     AssertRenderContains,
			Expected: fmt.Sprintf("%s to contain %q", assertion.Query, assertion.Text),
			Actual:   text,
			Trace:    trace,
		}
	}
	return nil
}

// assertRenderOrder checks that fragments appear in the specified order.
// Fragments don't need to be adjacent.
func assertRenderOrder(trace []RenderEvent, assertion Assertion) error {
	text, ok := latestRender(trace, assertion.Query)
	if !ok {
		return notRendered(AssertRenderOrder, trace, assertion.Query)
	}

	pos := 0
	for i, fragment := range assertion.Fragments {
		idx := strings.Index(text[pos:], fragment)
		if idx < 0 {
			actual := fmt.Sprintf("missing fragment: %q", fragment)
			if strings.Contains(text, fragment) {
				actual = fmt.Sprintf("%q appears before %q", fragment, assertion.Fragments[i-1])
			}
			return &AssertionError{
				Type:     AssertRenderOrder,
				Expected: fmt.Sprintf("fragments in order: %q", assertion.Fragments),
				Actual:   actual,
				Trace:    trace,
			}
		}
		pos += idx + len(fragment)
	}
	return nil
}

// assertRenderCount checks if the fragment appears exactly the specified
// number of times.
func assertRenderCount(trace []RenderEvent, assertion Assertion) error {
	text, ok := latestRender(trace, assertion.Query)
	if !ok {
		return notRendered(AssertRenderCount, trace, assertion.Query)
	}

	count := strings.Count(text, assertion.Text)
	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertRenderCount,
			Expected: fmt.Sprintf("%d occurrences of %q", assertion.Count, assertion.Text),
			Actual:   fmt.Sprintf("%d occurrences", count),
			Trace:    trace,
		}
	}
	return nil
}

// assertFinalState checks if the catalog table contains expected values.
// Queries the table with parameterized SQL and validates expected values
// using subset semantics.
//
// Security: Table and column names are validated against a whitelist pattern
// to prevent SQL injection via identifier interpolation.
func assertFinalState(ctx context.Context, st *store.Store, assertion Assertion) error {
	table := assertion.Table
	if table == "" {
		table = defaultTable
	}

	// Validate table name to prevent SQL injection (identifiers can't be parameterized)
	if !validIdentifier.MatchString(table) {
		return fmt.Errorf("invalid table name %q: must match pattern %s", table, validIdentifier.String())
	}

	whereSQL, whereArgs, err := buildWhereClause(assertion.Where)
	if err != nil {
		return err // Identifier validation failed
	}

	query := fmt.Sprintf("SELECT * FROM %s", table)
	if whereSQL != "" {
		query += " WHERE " + whereSQL
	}

	rows, err := st.Query(ctx, query, whereArgs...)
	if err != nil {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("query table %s", table),
			Actual:   fmt.Sprintf("query error: %v", err),
		}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("get columns: %w", err)
	}

	if !rows.Next() {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("row in %s where %s", table, formatWhereClause(assertion.Where)),
			Actual:   "row not found",
		}
	}

	values := make([]interface{}, len(columns))
	valuePtrs := make([]interface{}, len(columns))
	for i := range values {
		valuePtrs[i] = &values[i]
	}
	if err := rows.Scan(valuePtrs...); err != nil {
		return fmt.Errorf("scan row: %w", err)
	}

	// Check for multiple matching rows (would indicate ambiguous assertion)
	if rows.Next() {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("exactly one row in %s where %s", table, formatWhereClause(assertion.Where)),
			Actual:   "multiple rows matched (assertion is ambiguous)",
		}
	}

	actualRow := make(map[string]interface{})
	for i, col := range columns {
		actualRow[col] = values[i]
	}

	// Subset semantics - only check fields in Expect, in name order
	keys := sortedKeys(assertion.Expect)
	for _, key := range keys {
		expectedValue := assertion.Expect[key]
		actualValue, exists := actualRow[key]
		if !exists {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("field %q to exist", key),
				Actual:   fmt.Sprintf("field %q not present in result columns: %v", key, columns),
			}
		}

		if !stateValuesEqual(expectedValue, actualValue) {
			return &AssertionError{
				Type:     AssertFinalState,
				Expected: fmt.Sprintf("field %q = %v (type %T)", key, expectedValue, expectedValue),
				Actual:   fmt.Sprintf("field %q = %v (type %T)", key, actualValue, actualValue),
			}
		}
	}

	return nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// buildWhereClause constructs parameterized WHERE clause from assertion.Where.
// Returns SQL fragment, arguments slice, and error. Keys are sorted for determinism.
//
// Security: Column names are validated against a whitelist pattern to prevent
// SQL injection via identifier interpolation.
func buildWhereClause(where map[string]interface{}) (string, []interface{}, error) {
	if len(where) == 0 {
		return "", nil, nil
	}

	keys := sortedKeys(where)
	clauses := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys))

	for _, key := range keys {
		if !validIdentifier.MatchString(key) {
			return "", nil, fmt.Errorf("invalid column name %q in where clause: must match pattern %s", key, validIdentifier.String())
		}
		clauses = append(clauses, fmt.Sprintf("%s = ?", key))
		args = append(args, toSQLValue(where[key]))
	}

	return strings.Join(clauses, " AND "), args, nil
}

// toSQLValue converts a YAML-decoded value to a SQL-compatible value.
func toSQLValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string, int, int64, bool:
		return val
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatWhereClause creates a human-readable description of WHERE conditions.
func formatWhereClause(where map[string]interface{}) string {
	if len(where) == 0 {
		return "(no conditions)"
	}

	keys := sortedKeys(where)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, where[k]))
	}
	return strings.Join(parts, " AND ")
}

// stateValuesEqual compares expected and actual values from catalog tables.
// Handles type coercion for SQLite values which may be returned as different types.
func stateValuesEqual(expected, actual interface{}) bool {
	if expected == nil && actual == nil {
		return true
	}
	if expected == nil || actual == nil {
		return false
	}

	// SQLite TEXT columns may come back as []byte
	if b, ok := actual.([]byte); ok {
		actual = string(b)
	}

	switch exp := expected.(type) {
	case string:
		actualStr, ok := actual.(string)
		return ok && exp == actualStr
	case int:
		return intEquals(int64(exp), actual)
	case int64:
		return intEquals(exp, actual)
	case float64:
		if exp == float64(int64(exp)) {
			return intEquals(int64(exp), actual)
		}
		actualFloat, ok := actual.(float64)
		return ok && exp == actualFloat
	case bool:
		if actualBool, ok := actual.(bool); ok {
			return exp == actualBool
		}
		// SQLite stores booleans as integers
		if actualInt, ok := actual.(int64); ok {
			return exp == (actualInt != 0)
		}
		return false
	}

	return reflect.DeepEqual(expected, actual)
}

func intEquals(exp int64, actual interface{}) bool {
	switch a := actual.(type) {
	case int64:
		return exp == a
	case int:
		return exp == int64(a)
	}
	return false
}

// AssertionContext provides context for evaluating assertions.
type AssertionContext struct {
	Store *store.Store
	Ctx   context.Context
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
// The actx parameter provides database access for final_state assertions.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertRenderContains:
			err = assertRenderContains(result.Trace, assertion)
		case AssertRenderOrder:
			err = assertRenderOrder(result.Trace, assertion)
		case AssertRenderCount:
			err = assertRenderCount(result.Trace, assertion)
		case AssertFinalState:
			if actx == nil || actx.Store == nil {
				err = fmt.Errorf("assertion[%d]: final_state requires database context", i)
			} else {
				err = assertFinalState(actx.Ctx, actx.Store, assertion)
			}
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
