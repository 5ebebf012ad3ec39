// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfctl/fieldmask/internal/config"
	"github.com/tfctl/fieldmask/mask"
)

// SpecTree converts spec into plain maps for encoding. Leaves become nil
// interface values so they encode as null in both JSON and YAML, and an
// absent spec becomes nil.
func SpecTree(spec mask.Spec) any {
	if spec == nil {
		return nil
	}
	out := make(map[string]any, len(spec))
	for key, sub := range spec {
		out[key] = SpecTree(sub)
	}
	return out
}

// SpecTable renders the flattened paths of spec as a two column table. An
// absent spec is shown as a single "*" row since it keeps everything.
func SpecTable(w io.Writer, spec mask.Spec, titles bool, colored bool) {
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if colored {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	var rows [][]string
	if spec == nil {
		rows = append(rows, []string{mask.Wildcard, "all"})
	}
	for _, p := range spec.Paths() {
		kind := "leaf"
		if !p.Leaf {
			kind = "none"
		}
		rows = append(rows, []string{p.Path, kind})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2) //nolint:mnd
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("PATH", "KEEPS").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering, falling back
// to defaults picked for the terminal background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
