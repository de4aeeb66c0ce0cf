// Package data provides the merged key-value mapping that document text is
// resolved against, and the {{ placeholder }} resolver itself.
package data

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Map is a nested key-value structure merged from one or more YAML
// sources. It is read-only after loading.
type Map map[string]any

// Load reads the given YAML files in order and merges them key-wise:
// mappings merge recursively, later sources win on leaf values. Missing
// files are skipped so a partially populated data set still builds.
func Load(paths []string) (Map, error) {
	out := Map{}
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read data file %s: %w", p, err)
		}
		var src map[string]any
		if err := yaml.Unmarshal(raw, &src); err != nil {
			return nil, fmt.Errorf("parse data file %s: %w", p, err)
		}
		merge(out, src)
	}
	return out, nil
}

func merge(dst map[string]any, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				merge(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
}

// indexedKey matches a path segment of the form name[N].
var indexedKey = regexp.MustCompile(`^(.*)\[(\d+)\]$`)

// Lookup resolves a dotted path ("product.specs[2].code") against the
// mapping. A mapping value carrying a conventional "value" key is unwrapped
// to that key. The second result is false on any miss.
func (m Map) Lookup(path string) (any, bool) {
	var current any = map[string]any(m)
	for _, part := range strings.Split(path, ".") {
		key := part
		idx := -1
		if g := indexedKey.FindStringSubmatch(part); g != nil {
			key = g[1]
			idx, _ = strconv.Atoi(g[2])
		}

		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[key]
		if !ok {
			return nil, false
		}

		if idx >= 0 {
			list, ok := current.([]any)
			if !ok || idx >= len(list) {
				return nil, false
			}
			current = list[idx]
		}
	}

	// Unwrap "value + metadata" objects.
	if node, ok := current.(map[string]any); ok {
		if v, ok := node["value"]; ok {
			return v, true
		}
	}
	return current, true
}
