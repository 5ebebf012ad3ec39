// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/fieldmask/internal/input"
	"github.com/tfctl/fieldmask/internal/output"
)

// NewFilterFlag returns --filter. When cfgFile is set, the value may also come
// from "<ns>.filter" or "filter" in that file.
func NewFilterFlag(ns string, cfgFile string) cli.Flag {
	filter := &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "fields to keep, e.g. 'id,name,tags(*)'",
		Sources: cli.NewValueSourceChain(cli.EnvVar("FIELDMASK_FILTER")),
	}
	if cfgFile != "" {
		NameSpacedValueChainFromConfigFile(ns, cfgFile, filter.Name, &filter.Sources)
	}
	return filter
}

// NewRequireFlag returns --require, sourced like --filter.
func NewRequireFlag(ns string, cfgFile string) cli.Flag {
	require := &cli.StringFlag{
		Name:    "require",
		Aliases: []string{"r"},
		Usage:   "fields that must exist for a document to be kept",
		Sources: cli.NewValueSourceChain(cli.EnvVar("FIELDMASK_REQUIRE")),
	}
	if cfgFile != "" {
		NameSpacedValueChainFromConfigFile(ns, cfgFile, require.Name, &require.Sources)
	}
	return require
}

// NewInputFlags returns the flags that control reading and decoding input.
func NewInputFlags(ns string, cfgFile string) []cli.Flag {
	format := &cli.StringFlag{
		Name:  "input-format",
		Usage: "input format: auto, json or yaml",
		Value: input.FormatAuto,
		Validator: func(value string) error {
			return FlagValidators(value, InputFormatValidator)
		},
	}
	root := &cli.StringFlag{
		Name:  "root",
		Usage: "gjson path of the sub-document to process, e.g. 'data.items'",
	}
	profile := &cli.StringFlag{
		Name:    "profile",
		Usage:   "AWS profile for s3:// inputs",
		Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
	}
	region := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region for s3:// inputs",
	}

	if cfgFile != "" {
		for _, f := range []*cli.StringFlag{format, profile, region} {
			NameSpacedValueChainFromConfigFile(ns, cfgFile, f.Name, &f.Sources)
		}
	}

	return []cli.Flag{
		format,
		root,
		profile,
		region,
		&cli.BoolFlag{
			Name:  "lines",
			Usage: "treat input as newline-delimited JSON",
		},
	}
}

// NewOutputFlags returns --output, limited to formats, plus the rendering
// flags shared by every command.
func NewOutputFlags(ns string, cfgFile string, formats ...string) []cli.Flag {
	out := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   formats[0],
		Sources: cli.NewValueSourceChain(cli.EnvVar("FIELDMASK_OUTPUT")),
		Validator: func(value string) error {
			return FlagValidators(value, OneOf(formats...))
		},
	}
	color := &cli.StringFlag{
		Name:  "color",
		Usage: "colorize output: auto, always or never",
		Value: output.ColorAuto,
		Validator: func(value string) error {
			return FlagValidators(value, ColorValidator)
		},
	}
	pretty := &cli.BoolFlag{
		Name:    "pretty",
		Aliases: []string{"p"},
		Usage:   "indent JSON output",
	}

	if cfgFile != "" {
		NameSpacedValueChainFromConfigFile(ns, cfgFile, out.Name, &out.Sources)
		NameSpacedValueChainFromConfigFile(ns, cfgFile, color.Name, &color.Sources)
		NameSpacedValueChainFromConfigFile(ns, cfgFile, pretty.Name, &pretty.Sources)
	}

	return []cli.Flag{out, color, pretty}
}

// NameSpacedValueChainFromConfigFile appends namespaced and global config file
// sources for name to chain.
func NameSpacedValueChainFromConfigFile(ns string, path string, name string, chain *cli.ValueSourceChain) {
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}
