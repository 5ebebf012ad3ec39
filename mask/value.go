// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mask

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"
)

// undefined is the type of the Undefined marker.
type undefined struct{}

// Undefined marks an array slot that was never assigned while building a
// positional result. It is distinct from nil, which is a JSON null that was
// present in the source.
var Undefined = undefined{}

// MarshalJSON encodes a gap as null so dense arrays keep their positions.
func (undefined) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalYAML encodes a gap as a YAML null.
func (undefined) MarshalYAML() (interface{}, error) {
	return nil, nil
}

func (undefined) String() string { return "undefined" }

// IsUndefined reports whether v is the Undefined marker.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Normalize converts a value produced by an arbitrary decoder into the closed
// set the engine understands: nil, bool, float64, string, []any and
// map[string]any. Values of unknown kinds are returned unchanged and are
// treated as scalars.
func Normalize(v any) any {
	switch val := v.(type) {
	case nil, bool, float64, string, undefined:
		return val
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case gjson.Result:
		return Normalize(val.Value())
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = Normalize(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32:
		return rv.Float()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Normalize(iter.Value().Interface())
		}
		return out
	}

	return v
}
