// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/fieldmask/internal/log"
)

// NoChanges is written by Diff when the mask kept everything.
const NoChanges = "The mask kept every field."

// Diff writes an ASCII diff from before to after. Both values are taken
// through JSON first so gaps compare as nulls.
func Diff(w io.Writer, before any, after any, color bool) error {
	left, err := roundTrip(before)
	if err != nil {
		return err
	}
	right, err := roundTrip(after)
	if err != nil {
		return err
	}

	differ := gojsondiff.New()

	var delta gojsondiff.Diff
	switch l := left.(type) {
	case map[string]interface{}:
		r, ok := right.(map[string]interface{})
		if !ok {
			return diffWrapped(w, differ, left, right, color)
		}
		delta = differ.CompareObjects(l, r)
	case []interface{}:
		r, ok := right.([]interface{})
		if !ok {
			return diffWrapped(w, differ, left, right, color)
		}
		delta = differ.CompareArrays(l, r)
	default:
		return diffWrapped(w, differ, left, right, color)
	}

	return writeDelta(w, left, delta, color)
}

// diffWrapped compares values that are not two containers of the same kind
// by placing each under a "value" key.
func diffWrapped(w io.Writer, differ *gojsondiff.Differ, left any, right any, color bool) error {
	l := map[string]interface{}{"value": left}
	r := map[string]interface{}{"value": right}
	return writeDelta(w, l, differ.CompareObjects(l, r), color)
}

func writeDelta(w io.Writer, left any, delta gojsondiff.Diff, color bool) error {
	if !delta.Modified() {
		_, err := fmt.Fprintln(w, NoChanges)
		return err
	}
	log.Debugf("diff deltas: count=%d", len(delta.Deltas()))

	f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	s, err := f.Format(delta)
	if err != nil {
		return fmt.Errorf("failed to format diff: %w", err)
	}
	_, err = fmt.Fprint(w, s)
	return err
}

func roundTrip(v any) (any, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode for diff: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("failed to decode for diff: %w", err)
	}
	return out, nil
}
