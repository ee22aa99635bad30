package queryir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML document. Unknown fields are rejected.
func DecodeYAML(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &doc, nil
}

// DecodeJSON parses a JSON document. Unknown fields are rejected.
func DecodeJSON(data []byte) (*Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &doc, nil
}

// decodeJSONAny decodes b keeping numbers as json.Number so integers and
// decimals stay distinguishable.
func decodeJSONAny(b []byte) (any, error) {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Term) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	term, err := termFromAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = term
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Term) UnmarshalJSON(b []byte) error {
	raw, err := decodeJSONAny(b)
	if err != nil {
		return err
	}
	term, err := termFromAny(raw)
	if err != nil {
		return err
	}
	*t = term
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *TermList) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	list, err := termListFromAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = list
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *TermList) UnmarshalJSON(b []byte) error {
	raw, err := decodeJSONAny(b)
	if err != nil {
		return err
	}
	list, err := termListFromAny(raw)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	expr, err := exprFromAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*e = expr
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Expr) UnmarshalJSON(b []byte) error {
	raw, err := decodeJSONAny(b)
	if err != nil {
		return err
	}
	expr, err := exprFromAny(raw)
	if err != nil {
		return err
	}
	*e = expr
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Projection) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	proj, err := projectionFromAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = proj
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Projection) UnmarshalJSON(b []byte) error {
	raw, err := decodeJSONAny(b)
	if err != nil {
		return err
	}
	proj, err := projectionFromAny(raw)
	if err != nil {
		return err
	}
	*p = proj
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	order, err := orderFromAny(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*o = order
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Order) UnmarshalJSON(b []byte) error {
	raw, err := decodeJSONAny(b)
	if err != nil {
		return err
	}
	order, err := orderFromAny(raw)
	if err != nil {
		return err
	}
	*o = order
	return nil
}

func termFromAny(raw any) (Term, error) {
	switch v := raw.(type) {
	case string:
		return Token(v), nil
	case bool:
		return Term{Kind: TermBoolean, Text: strconv.FormatBool(v)}, nil
	case int:
		return Term{Kind: TermInteger, Text: strconv.Itoa(v)}, nil
	case int64:
		return Term{Kind: TermInteger, Text: strconv.FormatInt(v, 10)}, nil
	case uint64:
		return Term{Kind: TermInteger, Text: strconv.FormatUint(v, 10)}, nil
	case float64:
		return Term{Kind: TermDecimal, Text: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			f, err := v.Float64()
			if err != nil {
				return Term{}, err
			}
			return Term{Kind: TermDecimal, Text: strconv.FormatFloat(f, 'f', -1, 64)}, nil
		}
		return Term{Kind: TermInteger, Text: v.String()}, nil
	case nil:
		return Term{}, fmt.Errorf("term is null")
	default:
		return Term{}, fmt.Errorf("term must be a string, number or boolean, got %T", raw)
	}
}

func termListFromAny(raw any) (TermList, error) {
	items, ok := raw.([]any)
	if !ok {
		t, err := termFromAny(raw)
		if err != nil {
			return nil, err
		}
		return TermList{t}, nil
	}
	list := make(TermList, 0, len(items))
	for i, item := range items {
		t, err := termFromAny(item)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		list = append(list, t)
	}
	return list, nil
}

func exprFromAny(raw any) (Expr, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		t, err := termFromAny(raw)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Term: &t}, nil
	}

	if err := checkKeys(m, "op", "fn", "args", "distinct", "star", "separator"); err != nil {
		return Expr{}, err
	}

	var e Expr
	var err error
	if e.Op, err = stringField(m, "op"); err != nil {
		return Expr{}, err
	}
	if e.Fn, err = stringField(m, "fn"); err != nil {
		return Expr{}, err
	}
	switch {
	case e.Op == "" && e.Fn == "":
		return Expr{}, fmt.Errorf("expression needs op or fn")
	case e.Op != "" && e.Fn != "":
		return Expr{}, fmt.Errorf("expression has both op %q and fn %q", e.Op, e.Fn)
	}

	if e.Distinct, err = boolField(m, "distinct"); err != nil {
		return Expr{}, err
	}
	if e.Star, err = boolField(m, "star"); err != nil {
		return Expr{}, err
	}
	if sep, ok := m["separator"]; ok {
		s, isString := sep.(string)
		if !isString {
			return Expr{}, fmt.Errorf("separator must be a string, got %T", sep)
		}
		e.Separator = &s
	}

	if args, ok := m["args"]; ok {
		items, isList := args.([]any)
		if !isList {
			return Expr{}, fmt.Errorf("args must be a list, got %T", args)
		}
		for i, item := range items {
			arg, err := exprFromAny(item)
			if err != nil {
				return Expr{}, fmt.Errorf("arg %d: %w", i, err)
			}
			e.Args = append(e.Args, arg)
		}
	}
	return e, nil
}

func projectionFromAny(raw any) (Projection, error) {
	m, ok := raw.(map[string]any)
	if !ok || m["expr"] == nil {
		e, err := exprFromAny(raw)
		if err != nil {
			return Projection{}, err
		}
		return Projection{Expr: e}, nil
	}

	if err := checkKeys(m, "expr", "as"); err != nil {
		return Projection{}, err
	}
	e, err := exprFromAny(m["expr"])
	if err != nil {
		return Projection{}, fmt.Errorf("expr: %w", err)
	}
	as, err := stringField(m, "as")
	if err != nil {
		return Projection{}, err
	}
	return Projection{Expr: e, As: as}, nil
}

func orderFromAny(raw any) (Order, error) {
	m, ok := raw.(map[string]any)
	if ok && len(m) == 1 {
		for _, dir := range []string{Ascending, Descending} {
			if key, found := m[dir]; found {
				e, err := exprFromAny(key)
				if err != nil {
					return Order{}, fmt.Errorf("%s: %w", dir, err)
				}
				return Order{Expr: e, Direction: dir}, nil
			}
		}
	}
	e, err := exprFromAny(raw)
	if err != nil {
		return Order{}, err
	}
	return Order{Expr: e}, nil
}

func checkKeys(m map[string]any, allowed ...string) error {
	var unknown []string
	for key := range m {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown field(s) %s", strings.Join(unknown, ", "))
	}
	return nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", nil
	}
	s, isString := v.(string)
	if !isString {
		return "", fmt.Errorf("%s must be a string, got %T", key, v)
	}
	return s, nil
}

func boolField(m map[string]any, key string) (bool, error) {
	v, ok := m[key]
	if !ok {
		return false, nil
	}
	b, isBool := v.(bool)
	if !isBool {
		return false, fmt.Errorf("%s must be a boolean, got %T", key, v)
	}
	return b, nil
}
