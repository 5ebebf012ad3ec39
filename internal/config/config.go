// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tfctl/fieldmask/internal/log"
)

// FileName is the config file looked up in the user config directory.
const FileName = "fieldmask.yaml"

// ErrNoConfig is returned when no config file could be located.
var ErrNoConfig = errors.New("no config file found in standard locations")

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded.
//   - Namespace: optional command name used to prefer namespaced lookups
//     (e.g. "apply.output" before "output").
//   - Data: raw key/value tree unmarshaled from YAML.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Preset is a named filter and required pair from the presets section.
type Preset struct {
	Name    string
	Filter  string
	Require string
}

// Config holds the global, lazily-loaded configuration instance.
var Config Type

// GetInt returns the integer value for the given dotted key path. A single
// defaultValue may be provided and is returned when the key is missing.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("value of %s is not an int", key)
	}
}

// GetString returns the string value for the given dotted key path. If the key
// is not found and a single defaultValue is provided, the default is returned.
// Returns an error if the value exists but is not a string.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("value of %s is not a string", key)
	}

	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key path.
// A scalar string is accepted as a single element slice.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d of %s is not a string", i, key)
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, fmt.Errorf("value of %s is not a slice", key)
	}
}

// GetPreset returns the preset stored under presets.<name>. Either field may
// be empty but not both.
func GetPreset(name string) (Preset, error) {
	preset := Preset{Name: name}
	preset.Filter, _ = GetString("presets." + name + ".filter")
	preset.Require, _ = GetString("presets." + name + ".require")

	if preset.Filter == "" && preset.Require == "" {
		return preset, fmt.Errorf("preset %q not found in %s", name, Config.Source)
	}
	log.Debugf("preset resolved: name=%s, filter=%s, require=%s", name, preset.Filter, preset.Require)
	return preset, nil
}

// Load reads the YAML configuration file and replaces the global Config. The
// namespace, if given, is kept for namespaced lookups.
func Load(namespace ...string) (Type, error) {
	path, err := File()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, fmt.Errorf("failed to read config: %w", err)
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	Config = Type{
		Source: path,
		Data:   data,
	}
	if len(namespace) == 1 {
		Config.Namespace = namespace[0]
	}

	return Config, nil
}

// File returns the absolute path to the YAML config file. If the
// FIELDMASK_CFG_FILE environment variable is set, it is treated as the full
// path to the config file. Otherwise os.UserConfigDir()/fieldmask.yaml is
// used. The file must exist and not be a directory.
func File() (string, error) {
	if cfgPath := os.Getenv("FIELDMASK_CFG_FILE"); cfgPath != "" {
		fileInfo, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("config file not found at FIELDMASK_CFG_FILE path: %s", cfgPath)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("FIELDMASK_CFG_FILE points to a directory: %s", cfgPath)
		}
		log.Debugf("using config file from FIELDMASK_CFG_FILE: %s", cfgPath)
		return cfgPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, FileName)
	if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", ErrNoConfig
}

// lookup loads the config on first use and resolves key, preferring the
// namespaced form.
func lookup(key string) (any, error) {
	if len(Config.Data) == 0 {
		if _, err := Load(Config.Namespace); err != nil {
			return nil, err
		}
	}
	return Config.get(key)
}

// get traverses the configuration tree using a dotted key path. If Namespace
// is set, Namespace + "." + kspec is attempted first.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		var current interface{} = cfg.Data

		found := true
		for _, part := range strings.Split(key, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				found = false
				break
			}
			if current, ok = m[part]; !ok {
				found = false
				break
			}
		}

		if found {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}
