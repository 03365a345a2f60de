package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Result reports the outcome of a single named expression.
type Result struct {
	Name    string
	Expr    string
	Success bool
	Value   string
	Message string
}

// Apply evaluates JSONPath expressions against a recorded snapshot.
// rules: map[name]jsonPathExpr
//
// Policy:
// - If doc is not JSON -> every rule fails.
// - If a rule fails -> it's reported in its Result; other rules still run.
func Apply(doc []byte, rules map[string]string) (map[string]string, []Result) {
	if len(rules) == 0 {
		return map[string]string{}, []Result{}
	}

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys) // stable output for tests/UI

	parsed, err := parseJSON(doc)
	if err != nil {
		out := make([]Result, 0, len(keys))
		for _, name := range keys {
			expr := strings.TrimSpace(rules[name])
			out = append(out, Result{
				Name:    name,
				Expr:    expr,
				Message: fmt.Sprintf("query %q (%s): snapshot is not valid JSON", name, expr),
			})
		}
		return map[string]string{}, out
	}

	values := map[string]string{}
	results := make([]Result, 0, len(keys))

	for _, name := range keys {
		expr := strings.TrimSpace(rules[name])
		r := eval(parsed, name, expr)
		if r.Success {
			values[name] = r.Value
		}
		results = append(results, r)
	}

	return values, results
}

// Eval runs a single expression.
func Eval(doc []byte, expr string) (string, error) {
	parsed, err := parseJSON(doc)
	if err != nil {
		return "", fmt.Errorf("snapshot is not valid JSON: %w", err)
	}
	r := eval(parsed, expr, strings.TrimSpace(expr))
	if !r.Success {
		return "", errors.New(r.Message)
	}
	return r.Value, nil
}

func eval(doc any, name, expr string) Result {
	r := Result{Name: name, Expr: expr}

	if expr == "" {
		r.Message = fmt.Sprintf("query %q: empty jsonpath expression", name)
		return r
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		r.Message = fmt.Sprintf("query %q (%s): jsonpath error: %v", name, expr, err)
		return r
	}

	if isEmptyValue(val) {
		r.Message = fmt.Sprintf("query %q (%s): no value found", name, expr)
		return r
	}

	s, err := toString(val)
	if err != nil {
		r.Message = fmt.Sprintf("query %q (%s): cannot convert value to string: %v", name, expr, err)
		return r
	}

	r.Success = true
	r.Value = s
	r.Message = fmt.Sprintf("matched %q", name)
	return r
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Filters return a slice; a single match reads better unwrapped.
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("empty array")
		}
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
