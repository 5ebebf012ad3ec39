// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for fieldmask's user
// configuration. The configuration is a YAML document named fieldmask.yaml in
// the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/fieldmask.yaml or $HOME/.config/fieldmask.yaml
//   - macOS: $HOME/Library/Application Support/fieldmask.yaml
//   - Windows: %AppData%/fieldmask.yaml
//
// FIELDMASK_CFG_FILE overrides the location. A typical file:
//
//	output: yaml
//	apply:
//	  pretty: true
//	cache:
//	  hours: 24
//	presets:
//	  summary:
//	    filter: id,name,tags/*
//	    require: id
package config
