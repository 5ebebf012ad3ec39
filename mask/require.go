// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mask

// Satisfied reports whether source holds every key bound in required. A leaf
// only needs the key to be present; a nested spec must also be satisfied by
// the key's value. A nil spec is always satisfied.
//
// The wildcard has no special meaning here and is looked up as the literal
// key "*".
func Satisfied(required Spec, source any) bool {
	if required == nil {
		return true
	}

	for key, sub := range required {
		val, ok := lookup(source, key)
		if !ok || IsUndefined(val) {
			return false
		}
		if sub != nil && !Satisfied(sub, val) {
			return false
		}
	}

	return true
}

// lookup returns the value under key for objects, or under the index key
// names for arrays.
func lookup(source any, key string) (any, bool) {
	switch src := source.(type) {
	case map[string]any:
		val, ok := src[key]
		return val, ok
	case []any:
		i, ok := index(key)
		if !ok || i >= len(src) {
			return nil, false
		}
		return src[i], true
	}
	return nil, false
}
