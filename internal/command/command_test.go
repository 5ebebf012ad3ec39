// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/fieldmask/internal/config"
	"github.com/tfctl/fieldmask/internal/meta"
	"github.com/tfctl/fieldmask/mask"
)

// run executes the app with stdin and returns what it wrote.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfg, err := filepath.Abs(filepath.Join("testdata", "fieldmask.yaml"))
	require.NoError(t, err)
	t.Setenv("FIELDMASK_CFG_FILE", cfg)
	t.Setenv("FIELDMASK_CACHE", "0")
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	var out, errOut bytes.Buffer
	streams := meta.Streams{In: strings.NewReader(stdin), Out: &out, Err: &errOut}

	args = append([]string{"fieldmask"}, args...)
	app, err := InitApp(context.Background(), args, streams)
	require.NoError(t, err)

	err = app.Run(context.Background(), args)
	return out.String(), errOut.String(), err
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "nested filter",
			stdin: `{"a":1,"b":{"c":2,"d":3}}`,
			args:  []string{"apply", "-f", "a,b/c"},
			want:  `{"a":1,"b":{"c":2}}`,
		},
		{
			name:  "positional array",
			stdin: `{"items":[1,2,3]}`,
			args:  []string{"apply", "-f", "items(1)"},
			want:  `{"items":[null,2]}`,
		},
		{
			name:  "broadcast over array",
			stdin: `[{"id":1,"x":true},{"id":2}]`,
			args:  []string{"apply", "--filter", "id"},
			want:  `[{"id":1},{"id":2}]`,
		},
		{
			name:  "yaml input",
			stdin: "a: 1\nb:\n  c: two\n  d: 3\n",
			args:  []string{"apply", "-f", "b(c)"},
			want:  `{"b":{"c":"two"}}`,
		},
		{
			name:  "root selection",
			stdin: `{"data":{"id":7,"name":"x"}}`,
			args:  []string{"apply", "--root", "data", "-f", "id"},
			want:  `{"id":7}`,
		},
		{
			name:  "no filter keeps everything",
			stdin: `{"a":[1,{"b":null}]}`,
			args:  []string{"apply"},
			want:  `{"a":[1,{"b":null}]}`,
		},
		{
			name:  "required fields present",
			stdin: `{"id":1,"meta":{"owner":"x"}}`,
			args:  []string{"apply", "-f", "id", "-r", "meta/owner"},
			want:  `{"id":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestApply_RequiredMissing(t *testing.T) {
	out, _, err := run(t, `{"id":1}`, "apply", "-f", "id", "-r", "owner")

	require.Error(t, err)
	assert.True(t, errors.Is(err, mask.ErrNotFound))
	assert.Empty(t, out)
}

func TestApply_OutputFormats(t *testing.T) {
	out, _, err := run(t, `{"a":1,"b":2}`, "apply", "-f", "a", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", out)

	out, _, err = run(t, `{"name":"x","n":1}`, "apply", "--root", "name", "-o", "raw")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)

	out, _, err = run(t, `{"a":{"b":1}}`, "apply", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"a\"")

	_, _, err = run(t, `{}`, "apply", "-o", "text")
	assert.Error(t, err, "text is not an apply format")
}

func TestApply_File(t *testing.T) {
	path := filepath.Join("testdata", "items.json")

	out, _, err := run(t, "", "apply", "--root", "data", "-f", "items/id,total", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"id":1},{"id":2}],"total":2}`, out)

	_, _, err = run(t, "", "apply", filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)
}

func TestApply_Preset(t *testing.T) {
	// Presets expand to flags in main; here they resolve through config.
	t.Setenv("FIELDMASK_CFG_FILE", filepath.Join("testdata", "fieldmask.yaml"))
	config.Config = config.Type{}
	p, err := config.GetPreset("ids")
	require.NoError(t, err)

	path := filepath.Join("testdata", "items.json")
	out, _, err := run(t, "", "apply", "--root", "data", "-f", p.Filter, "-r", p.Require, path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"id":1},{"id":2}]}`, out)
}

func TestApply_Lines(t *testing.T) {
	stdin := strings.Join([]string{
		`{"id":1,"name":"a"}`,
		``,
		`{"name":"b"}`,
		`{"id":3,"name":"c"}`,
	}, "\n")

	out, errOut, err := run(t, stdin, "apply", "--lines", "--stats", "--pretty", "-f", "id", "-r", "id")
	require.NoError(t, err)
	assert.Equal(t, "{\"id\":1}\n{\"id\":3}\n", out)
	assert.Contains(t, errOut, "kept 2 of 3 documents")

	out, _, err = run(t, stdin, "apply", "--lines", "-o", "yaml", "-f", "id", "-r", "id")
	require.NoError(t, err)
	assert.Equal(t, "id: 1\n---\nid: 3\n", out)

	_, _, err = run(t, "not json\n", "apply", "--lines")
	assert.ErrorContains(t, err, "line 1")
}

func TestApply_Diff(t *testing.T) {
	out, _, err := run(t, `{"a":1,"secret":"s"}`, "apply", "--diff", "-f", "a")
	require.NoError(t, err)

	assert.Contains(t, out, "secret")
	removed := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "-") {
			removed = true
		}
	}
	assert.True(t, removed, "diff should mark the removed field")
}

func TestApply_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown input format", []string{"apply", "--input-format", "toml"}},
		{"unknown color", []string{"apply", "--color", "sometimes"}},
		{"lines with yaml", []string{"apply", "--lines", "--input-format", "yaml"}},
		{"lines with diff", []string{"apply", "--lines", "--diff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, `{}`, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestParse(t *testing.T) {
	out, _, err := run(t, "", "parse", "-o", "json", "a,b(c,d/e)")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":null,"b":{"c":null,"d":{"e":null}}}`, out)

	out, _, err = run(t, "", "parse", "-o", "yaml", "--filter", "x/y")
	require.NoError(t, err)
	assert.YAMLEq(t, "x:\n  \"y\": null\n", out)

	out, _, err = run(t, "", "parse", "-o", "text", "--titles", "a,b(c)")
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "b/c")
}

func TestParse_ConfigDefault(t *testing.T) {
	// parse.output is raw in the test config.
	out, _, err := run(t, "", "parse", "b/c, a")
	require.NoError(t, err)
	assert.Equal(t, "a,b(c)\n", out)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, `{"id":1,"meta":{"owner":null}}`, "check", "-r", "id,meta/owner")
	require.NoError(t, err)
	assert.Equal(t, "satisfied\n", out)

	out, _, err = run(t, `{"id":1}`, "check", "-r", "id,meta/owner")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mask.ErrNotFound))
	assert.Equal(t, "not satisfied\n", out)
}

func TestCheck_Lines(t *testing.T) {
	out, _, err := run(t, "{\"id\":1}\n{\"x\":2}\n", "check", "--lines", "-r", "id")

	require.Error(t, err)
	assert.ErrorContains(t, err, "1 of 2 documents")
	assert.Equal(t, "satisfied\nnot satisfied\n", out)
}

func TestCompletion(t *testing.T) {
	out, _, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -F _fieldmask fieldmask")

	out, _, err = run(t, "", "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "compdef _fieldmask fieldmask")

	t.Setenv("SHELL", "/bin/fish")
	_, _, err = run(t, "", "completion")
	assert.Error(t, err)
}

func TestHelp(t *testing.T) {
	out, _, err := run(t, "", "--help")
	require.NoError(t, err)

	for _, cmd := range []string{"apply", "parse", "check"} {
		assert.Contains(t, out, cmd)
	}
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
}

func TestFlagValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("json", OneOf("json", "yaml")))
	assert.Error(t, FlagValidators("toml", OneOf("json", "yaml")))
	assert.Error(t, FlagValidators(1, OneOf("json")))
	assert.NoError(t, FlagValidators("anything"))
}
