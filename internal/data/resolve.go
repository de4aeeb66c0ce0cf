package data

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	placeholderPattern = regexp.MustCompile(`\{\{\s*(.+?)\s*\}\}`)
	spaceRuns          = regexp.MustCompile(`\s+`)
)

// Resolver substitutes {{ path.to.value }} tokens in text against a Map.
// It is a pure function over its inputs and never fails: a lookup miss
// substitutes the empty string.
type Resolver struct {
	data Map
}

// NewResolver returns a resolver over the given mapping.
func NewResolver(m Map) *Resolver {
	return &Resolver{data: m}
}

// Lookup exposes the underlying mapping lookup.
func (r *Resolver) Lookup(path string) (any, bool) {
	return r.data.Lookup(path)
}

// Resolve substitutes every non-overlapping placeholder in one pass and
// collapses whitespace runs in the result to single spaces.
func (r *Resolver) Resolve(text string) string {
	if text == "" {
		return ""
	}
	out := placeholderPattern.ReplaceAllStringFunc(strings.TrimSpace(text), func(tok string) string {
		key := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(tok, "{{"), "}}"))
		v, ok := r.data.Lookup(key)
		if !ok || v == nil {
			return ""
		}
		return stringify(v)
	})
	return strings.TrimSpace(spaceRuns.ReplaceAllString(out, " "))
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}
