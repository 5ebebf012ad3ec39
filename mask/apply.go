// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mask

// Apply returns a pruned copy of source holding only what spec selects. The
// source is never modified.
//
// A nil spec returns source as-is. An array filtered by a spec without index
// keys has spec applied to each element. Explicit keys are resolved before
// the wildcard, which only fills keys still missing from the result.
func Apply(spec Spec, source any) any {
	if spec == nil {
		return source
	}

	if arr, ok := source.([]any); ok {
		if !spec.hasIndexKeys() {
			out := make([]any, len(arr))
			for i, item := range arr {
				out[i] = Apply(spec, item)
			}
			return out
		}
		return applyPositional(spec, arr)
	}

	obj, _ := source.(map[string]any)
	return applyObject(spec, obj)
}

// applyObject filters a map. Scalars arrive here with a nil obj and therefore
// produce an empty object.
func applyObject(spec Spec, obj map[string]any) map[string]any {
	out := make(map[string]any)

	for key, sub := range spec {
		if key == Wildcard {
			continue
		}
		val, ok := obj[key]
		if !ok {
			continue
		}
		out[key] = Apply(sub, val)
	}

	sub, ok := spec[Wildcard]
	if !ok {
		return out
	}
	for key, val := range obj {
		if _, set := out[key]; set {
			continue
		}
		out[key] = Apply(sub, val)
	}

	return out
}

// applyPositional filters an array by index keys. The result is as long as
// one past the highest index assigned, with Undefined in every slot that was
// not.
func applyPositional(spec Spec, arr []any) []any {
	slots := make([]any, len(arr))
	set := make([]bool, len(arr))
	size := 0

	assign := func(i int, sub Spec) {
		slots[i] = Apply(sub, arr[i])
		set[i] = true
		if i+1 > size {
			size = i + 1
		}
	}

	// Sorted so that keys naming the same slot, like "1" and "01", resolve the
	// same way every time.
	for _, key := range spec.sortedKeys() {
		i, ok := index(key)
		if !ok || i >= len(arr) {
			continue
		}
		assign(i, spec[key])
	}

	if sub, ok := spec[Wildcard]; ok {
		for i := range arr {
			if !set[i] {
				assign(i, sub)
			}
		}
	}

	out := slots[:size]
	for i := range out {
		if !set[i] {
			out[i] = Undefined
		}
	}

	return out
}
