// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mask

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Wildcard is the key that matches every source key not bound explicitly.
const Wildcard = "*"

// Spec is a parsed filter. Each bound key maps to either nil (a leaf, keep the
// whole subtree) or a nested Spec to recurse with. A nil Spec selects
// everything, while an empty non-nil Spec selects nothing.
type Spec map[string]Spec

// Path is one flattened selection path of a Spec.
type Path struct {
	// Slash joined keys from the root, e.g. "a/*/c".
	Path string `json:"path" yaml:"path"`
	// Leaf is true when the last key keeps its whole subtree.
	Leaf bool `json:"leaf" yaml:"leaf"`
}

// String renders s as a canonical filter string. Keys are sorted and
// nested specs use the group form, so Parse(s.String()) yields an equal Spec
// as long as no key contains one of the delimiters ",/()".
func (s Spec) String() string {
	if s == nil {
		return ""
	}
	// A lone comma parses back to an empty, non-nil Spec.
	if len(s) == 0 {
		return ","
	}

	keys := s.sortedKeys()
	terms := make([]string, 0, len(keys))
	for _, key := range keys {
		sub := s[key]
		switch {
		case sub == nil:
			terms = append(terms, key)
		default:
			terms = append(terms, key+"("+sub.String()+")")
		}
	}

	return strings.Join(terms, ",")
}

// Paths flattens s into sorted slash paths, one per leaf or empty
// group.
func (s Spec) Paths() []Path {
	var paths []Path
	s.collectPaths("", &paths)
	sort.Slice(paths, func(i, j int) bool { return paths[i].Path < paths[j].Path })
	return paths
}

func (s Spec) collectPaths(prefix string, paths *[]Path) {
	for key, sub := range s {
		p := key
		if prefix != "" {
			p = prefix + "/" + key
		}
		if len(sub) == 0 {
			*paths = append(*paths, Path{Path: p, Leaf: sub == nil})
			continue
		}
		sub.collectPaths(p, paths)
	}
}

// hasIndexKeys reports whether any key addresses an array position.
func (s Spec) hasIndexKeys() bool {
	for key := range s {
		if _, ok := index(key); ok {
			return true
		}
	}
	return false
}

// sortedKeys returns the keys with the wildcard, if any, last.
func (s Spec) sortedKeys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		if key != Wildcard {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, ok := s[Wildcard]; ok {
		keys = append(keys, Wildcard)
	}
	return keys
}

// index parses key as a base-10 non-negative integer. Signs, spaces and any
// other characters disqualify it. Digit-only keys too large for an int are
// still indices and map to math.MaxInt, past the end of any array.
func index(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return math.MaxInt, true
	}
	return n, true
}
