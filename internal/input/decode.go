// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/fieldmask/internal/log"
	"github.com/tfctl/fieldmask/mask"
)

// Supported input formats.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the values accepted by Decode.
var Formats = []string{FormatAuto, FormatJSON, FormatYAML}

// ErrRootNotFound is returned when the root path matches nothing.
var ErrRootNotFound = errors.New("root path not found in document")

// Decode parses data in the given format and returns the value found at root,
// a gjson path, or the whole document when root is empty. Auto picks JSON
// when data is valid JSON and YAML otherwise.
func Decode(data []byte, format string, root string) (any, error) {
	if format == "" || format == FormatAuto {
		format = FormatYAML
		if gjson.ValidBytes(data) {
			format = FormatJSON
		}
	}
	log.Debugf("decoding: format=%s, root=%s, bytes=%d", format, root, len(data))

	switch format {
	case FormatJSON:
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("invalid JSON document")
		}
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML document: %w", err)
		}
		if root == "" {
			return mask.Normalize(doc), nil
		}
		// Root paths are resolved with gjson, so go through JSON.
		b, err := json.Marshal(mask.Normalize(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to convert YAML document: %w", err)
		}
		data = b
	default:
		return nil, fmt.Errorf("unsupported input format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}

	result := gjson.ParseBytes(data)
	if root != "" {
		result = result.Get(root)
		if !result.Exists() {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
	}
	return mask.Normalize(result), nil
}

// Lines decodes newline-delimited JSON, one value per non-blank line, and
// applies root to each. Any invalid line fails the whole input.
func Lines(data []byte, root string) ([]any, error) {
	var (
		values []any
		err    error
		n      int
	)

	for _, line := range bytes.Split(data, []byte("\n")) {
		n++
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var v any
		if v, err = Decode(line, FormatJSON, root); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		values = append(values, v)
	}

	log.Debugf("lines decoded: count=%d", len(values))
	return values, nil
}
