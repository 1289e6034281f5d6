// Package handlers contains one handler struct per domain service. Handlers
// validate input, drive the record store and dispatch best-effort
// notifications; they hold their dependencies as struct fields.
package handlers

import (
	"fmt"
	"time"

	"agronomy-services-api-server/internal/store"
)

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// byID selects the document whose internal id matches. Only id is
// authoritative for lookups; display ids are never used here.
func byID(id string) store.Predicate {
	return func(d store.Document) bool {
		return d["id"] == id
	}
}

func byField(key string, value any) store.Predicate {
	return func(d store.Document) bool {
		return d[key] == value
	}
}

// num reads a numeric field from a document; JSON numbers decode as float64.
func num(d store.Document, key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func str(d store.Document, key string) string {
	s, _ := d[key].(string)
	return s
}

// asString renders a passthrough field that clients send either as a string
// or a bare number.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// sameMonth reports whether a stored date ("2006-01-02" or RFC 3339) falls in
// the current calendar month.
func sameMonth(date string, now time.Time) bool {
	if len(date) < 7 {
		return false
	}
	return date[:7] == now.UTC().Format("2006-01")
}

// strip returns a copy of the document without the named fields. Used to keep
// password hashes and verification tokens out of responses.
func strip(d store.Document, fields ...string) store.Document {
	out := make(store.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}
