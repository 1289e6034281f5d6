// Package validate applies declarative per-entity schemas to request payloads
// and collects every violated rule into one ordered list of messages.
package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var emailPattern = regexp.MustCompile(`^(.+)@(.+)$`)

// Constraint identifies what a rule checks.
type Constraint int

const (
	// Required fails when the field is absent or blank.
	Required Constraint = iota
	// Email fails when a present value is not email-shaped. Absent values pass;
	// pair with Required when the field is mandatory.
	Email
	// MinLength fails when a present string is shorter than Arg characters.
	MinLength
	// MatchesField fails when the field and the field named by Arg are both
	// present and differ.
	MatchesField
	// PositiveNumber fails when a present value is not a number greater than
	// zero. Absent values pass.
	PositiveNumber
	// RequiredPositive fails when the value is absent or not greater than zero.
	RequiredPositive
	// NonEmptyList fails when the field is absent or holds no entries. Lists
	// may arrive as JSON arrays or comma-separated strings.
	NonEmptyList
	// MustAccept fails unless the value is an affirmative boolean.
	MustAccept
)

// Rule is one schema entry: a field, the constraint on it, and the message
// reported when the constraint is violated.
type Rule struct {
	Field      string
	Constraint Constraint
	Arg        any
	Message    string
}

// Schema is an ordered list of rules for one entity.
type Schema []Rule

// Apply checks every rule against data and returns the messages of all
// violated rules, in schema order. An empty result means the payload is valid.
func (s Schema) Apply(data map[string]any) []string {
	var errs []string
	for _, rule := range s {
		if !rule.holds(data) {
			errs = append(errs, rule.Message)
		}
	}
	return errs
}

func (r Rule) holds(data map[string]any) bool {
	value := data[r.Field]

	switch r.Constraint {
	case Required:
		return present(value)
	case Email:
		str := Str(data, r.Field)
		return str == "" || emailPattern.MatchString(str)
	case MinLength:
		str := Str(data, r.Field)
		min, _ := r.Arg.(int)
		return str == "" || len(str) >= min
	case MatchesField:
		other, _ := r.Arg.(string)
		a := Str(data, r.Field)
		b := Str(data, other)
		return a == "" || b == "" || a == b
	case PositiveNumber:
		if !present(value) {
			return true
		}
		n, ok := Num(data, r.Field)
		return ok && n > 0
	case RequiredPositive:
		n, ok := Num(data, r.Field)
		return ok && n > 0
	case NonEmptyList:
		return len(List(data, r.Field)) > 0
	case MustAccept:
		return Bool(data, r.Field)
	}
	return true
}

func present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case bool:
		return v
	default:
		return true
	}
}

// Str extracts a trimmed string field, or "" when absent or not a string.
func Str(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return strings.TrimSpace(s)
}

// Num extracts a numeric field. Numbers sent as strings are parsed.
func Num(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// List extracts a string-list field. Accepts a JSON array or a
// comma-separated string; blank entries are dropped.
func List(data map[string]any, key string) []string {
	var out []string
	switch v := data[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}

// Bool extracts a boolean field. The strings "true", "yes" and "on" count as
// affirmative, matching what HTML form wiring submits.
func Bool(data map[string]any, key string) bool {
	switch v := data[key].(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "yes" || s == "on"
	default:
		return false
	}
}
