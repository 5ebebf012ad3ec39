// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes one markdown page per fieldmask subcommand, built
// from the live command definitions.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/fieldmask/internal/command"
	"github.com/tfctl/fieldmask/internal/meta"
	"github.com/tfctl/fieldmask/internal/version"
)

//go:embed command.md.tmpl
var pageTemplate string

//go:embed examples.yaml
var examplesYAML []byte

type Flag struct {
	Names   string
	Default string
	Usage   string
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Page struct {
	Name      string
	Aliases   []string
	Usage     string
	UsageText string
	Flags     []Flag
	Examples  []Example
	Date      string
	Version   string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <folder>")
		os.Exit(1)
	}
	if err := generate(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(folder string) error {
	app, err := command.InitApp(context.Background(), []string{version.Name}, meta.StdStreams())
	if err != nil {
		return err
	}

	pages, err := buildPages(app)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(folder, 0o755); err != nil { //nolint:mnd
		return err
	}

	for _, page := range pages {
		path := filepath.Join(folder, page.Name+".md")
		fmt.Println("Generating", path)

		file, err := os.Create(path)
		if err != nil {
			return err
		}
		err = render(file, page)
		file.Close()
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", path, err)
		}
	}
	return nil
}

// buildPages collects the documented subcommands of app.
func buildPages(app *cli.Command) ([]Page, error) {
	var examples map[string][]Example
	if err := yaml.Unmarshal(examplesYAML, &examples); err != nil {
		return nil, fmt.Errorf("failed to parse examples: %w", err)
	}

	date := time.Now().Format("January 2, 2006")

	var pages []Page
	for _, cmd := range app.Commands {
		if cmd.Name == "completion" {
			continue
		}
		page := Page{
			Name:      cmd.Name,
			Aliases:   cmd.Aliases,
			Usage:     cmd.Usage,
			UsageText: cmd.UsageText,
			Examples:  examples[cmd.Name],
			Date:      date,
			Version:   version.Version,
		}
		for _, f := range cmd.Flags {
			page.Flags = append(page.Flags, describe(f))
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// describe renders a flag's names, default and usage.
func describe(f cli.Flag) Flag {
	var names []string
	for _, n := range f.Names() {
		if len(n) == 1 {
			names = append(names, "-"+n)
		} else {
			names = append(names, "--"+n)
		}
	}

	d := Flag{Names: strings.Join(names, ", ")}
	if df, ok := f.(cli.DocGenerationFlag); ok {
		d.Usage = df.GetUsage()
		if df.TakesValue() {
			d.Default = df.GetValue()
		}
	}
	return d
}

func render(w io.Writer, page Page) error {
	tmpl, err := template.New("page").Funcs(template.FuncMap{"join": strings.Join}).Parse(pageTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, page)
}
