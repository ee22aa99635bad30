package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/spanqit/internal/queryir"
)

// queryFields lists every field a query struct may carry.
var queryFields = map[string]bool{
	"name": true, "description": true, "form": true, "base": true,
	"prefixes": true, "from": true, "from_named": true, "template": true,
	"describe": true, "distinct": true, "select": true, "where": true,
	"group_by": true, "having": true, "order_by": true, "limit": true,
	"offset": true,
}

// CompileSource compiles CUE source text into a query document.
// filename is only used in error positions.
func CompileSource(filename string, src []byte) (*queryir.Document, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return CompileDocument(v)
}

// CompileDocument collects the queries of a CUE value. Queries are read from
// two places, which may be combined:
//
//	query: people: {select: ["?x"], where: [...]}   // keyed by name
//	queries: [{name: "people", ...}]                // same shape as YAML
//
// Keyed queries come first, in declaration order.
func CompileDocument(v cue.Value) (*queryir.Document, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	doc := &queryir.Document{}

	keyed := v.LookupPath(cue.ParsePath("query"))
	if keyed.Exists() {
		iter, err := keyed.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			q, err := CompileQuery(iter.Value())
			if err != nil {
				return nil, err
			}
			doc.Queries = append(doc.Queries, *q)
		}
	}

	listed := v.LookupPath(cue.ParsePath("queries"))
	if listed.Exists() {
		iter, err := listed.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			q, err := CompileQuery(iter.Value())
			if err != nil {
				return nil, err
			}
			doc.Queries = append(doc.Queries, *q)
		}
	}

	if !keyed.Exists() && !listed.Exists() {
		return nil, &CompileError{
			Field:   "queries",
			Message: "document declares no queries",
			Pos:     v.Pos(),
		}
	}
	return doc, nil
}

// CompileQuery parses a CUE value into a Query.
//
// The value should be the query struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`query: people: { ... }`)
//	q, err := CompileQuery(v.LookupPath(cue.ParsePath("query.people")))
//
// A query found under a struct label takes the label as its name.
func CompileQuery(v cue.Value) (*queryir.Query, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := checkFields(v); err != nil {
		return nil, err
	}

	q := &queryir.Query{}

	// Parse name from struct label, if the query is keyed
	labels := v.Path().Selectors()
	if len(labels) > 0 && labels[len(labels)-1].IsString() {
		q.Name = labels[len(labels)-1].Unquoted()
	}

	name, err := optionalString(v, "name")
	if err != nil {
		return nil, err
	}
	switch {
	case name != "" && q.Name != "" && name != q.Name:
		return nil, &CompileError{
			Field:   "name",
			Message: fmt.Sprintf("name %q does not match label %q", name, q.Name),
			Pos:     v.LookupPath(cue.ParsePath("name")).Pos(),
		}
	case name != "":
		q.Name = name
	case q.Name == "":
		return nil, &CompileError{
			Field:   "name",
			Message: "name is required",
			Pos:     v.Pos(),
		}
	}

	if q.Description, err = optionalString(v, "description"); err != nil {
		return nil, err
	}
	form, err := optionalString(v, "form")
	if err != nil {
		return nil, err
	}
	q.Form = queryir.Form(form)
	if !q.Form.IsValid() {
		return nil, &CompileError{
			Field:   "form",
			Message: fmt.Sprintf("unknown form %q", form),
			Pos:     v.LookupPath(cue.ParsePath("form")).Pos(),
		}
	}
	if q.Base, err = optionalString(v, "base"); err != nil {
		return nil, err
	}

	// Structured parts go through the same JSON decoding as YAML/JSON
	// documents so term and expression shorthands behave identically.
	fields := []struct {
		name string
		dst  any
	}{
		{"prefixes", &q.Prefixes},
		{"from", &q.From},
		{"from_named", &q.FromNamed},
		{"template", &q.Template},
		{"describe", &q.Describe},
		{"distinct", &q.Distinct},
		{"select", &q.Select},
		{"where", &q.Where},
		{"group_by", &q.GroupBy},
		{"having", &q.Having},
		{"order_by", &q.OrderBy},
		{"limit", &q.Limit},
		{"offset", &q.Offset},
	}
	for _, f := range fields {
		if err := decodeField(v, f.name, f.dst); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// checkFields rejects fields a query cannot carry.
func checkFields(v cue.Value) error {
	iter, err := v.Fields()
	if err != nil {
		return formatCUEError(err)
	}
	var unknown []string
	pos := v.Pos()
	for iter.Next() {
		label := iter.Selector().Unquoted()
		if !queryFields[label] {
			if len(unknown) == 0 {
				pos = iter.Value().Pos()
			}
			unknown = append(unknown, label)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &CompileError{
		Field:   unknown[0],
		Message: fmt.Sprintf("unknown field(s): %s", strings.Join(unknown, ", ")),
		Pos:     pos,
	}
}

func optionalString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// decodeField decodes field of v into dst through its JSON form.
// dst is left untouched when the field is absent.
func decodeField(v cue.Value, field string, dst any) error {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil
	}
	data, err := fv.MarshalJSON()
	if err != nil {
		return formatCUEError(err)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return &CompileError{
			Field:   field,
			Message: err.Error(),
			Pos:     fv.Pos(),
		}
	}
	return nil
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
