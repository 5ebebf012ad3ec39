// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  string
		root    string
		want    any
		wantErr error
		anyErr  bool
	}{
		{
			name:   "auto json",
			data:   `{"a":{"b":1}}`,
			format: FormatAuto,
			want:   map[string]any{"a": map[string]any{"b": 1.0}},
		},
		{
			name: "empty format is auto",
			data: `[1,"x",null,true]`,
			want: []any{1.0, "x", nil, true},
		},
		{
			name:   "auto yaml",
			data:   "a:\n  b: 1\n",
			format: FormatAuto,
			want:   map[string]any{"a": map[string]any{"b": 1.0}},
		},
		{
			name:   "json root",
			data:   `{"data":{"items":[{"id":1},{"id":2}]}}`,
			format: FormatJSON,
			root:   "data.items",
			want:   []any{map[string]any{"id": 1.0}, map[string]any{"id": 2.0}},
		},
		{
			name:   "json root with gjson query",
			data:   `{"items":[{"id":1},{"id":2}]}`,
			format: FormatJSON,
			root:   "items.#.id",
			want:   []any{1.0, 2.0},
		},
		{
			name:   "yaml root",
			data:   "data:\n  name: x\n",
			format: FormatYAML,
			root:   "data",
			want:   map[string]any{"name": "x"},
		},
		{
			name:    "missing root",
			data:    `{"a":1}`,
			format:  FormatJSON,
			root:    "b",
			wantErr: ErrRootNotFound,
		},
		{
			name:   "invalid json",
			data:   `{"a":`,
			format: FormatJSON,
			anyErr: true,
		},
		{
			name:   "invalid yaml",
			data:   "a: [1",
			format: FormatYAML,
			anyErr: true,
		},
		{
			name:   "unknown format",
			data:   `{}`,
			format: "toml",
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data), tt.format, tt.root)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLines(t *testing.T) {
	data := "{\"id\":1,\"x\":1}\n\n  {\"id\":2}  \n{\"id\":3}"

	got, err := Lines([]byte(data), "")
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"id": 1.0, "x": 1.0},
		map[string]any{"id": 2.0},
		map[string]any{"id": 3.0},
	}, got)

	got, err = Lines([]byte(data), "id")
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, got)
}

func TestLines_InvalidLine(t *testing.T) {
	_, err := Lines([]byte("{\"id\":1}\n{oops\n"), "")
	assert.ErrorContains(t, err, "line 2")
}
