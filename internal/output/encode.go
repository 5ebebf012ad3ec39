// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/pretty"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Supported document output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
	FormatRaw  = "raw"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options controls how Encode renders a value.
type Options struct {
	Format string
	Pretty bool
	Color  bool
}

// Marshal renders v as compact JSON without HTML escaping and without a
// trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Encode writes v to w in the requested format followed by a newline. Raw
// writes strings unquoted and anything else as compact JSON.
func Encode(w io.Writer, v any, opts Options) error {
	switch opts.Format {
	case FormatJSON, "":
		b, err := Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		if opts.Pretty {
			b = pretty.Pretty(b)
		}
		if opts.Color {
			b = pretty.Color(b, nil)
		}
		if !bytes.HasSuffix(b, []byte("\n")) {
			b = append(b, '\n')
		}
		_, err = w.Write(b)
		return err

	case FormatRaw:
		if s, ok := v.(string); ok {
			_, err := fmt.Fprintln(w, s)
			return err
		}
		return Encode(w, v, Options{Format: FormatJSON})

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

// ColorEnabled resolves a color mode for w. Auto enables color only when w is
// a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
