// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"

	"github.com/bborbe/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the config file read from the working directory.
const ConfigFileName = ".pr-panel.yaml"

// Loader loads configuration from a file.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name ConfigLoader . Loader
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// fileLoader implements Loader by reading from a file.
type fileLoader struct {
	configPath string
}

// NewLoader creates a Loader that reads from .pr-panel.yaml in the current directory.
func NewLoader() Loader {
	return &fileLoader{
		configPath: ConfigFileName,
	}
}

// NewLoaderForPath creates a Loader that reads from the given path.
func NewLoaderForPath(configPath string) Loader {
	return &fileLoader{
		configPath: configPath,
	}
}

// partialConfig is used for YAML unmarshaling to distinguish between
// explicitly set zero values and missing fields.
type partialConfig struct {
	TitleSource                *TitleSource       `yaml:"titleSource"`
	DescriptionSource          *DescriptionSource `yaml:"descriptionSource"`
	DefaultRemote              *string            `yaml:"defaultRemote"`
	Draft                      *bool              `yaml:"draft"`
	BranchTitleCommitThreshold *int               `yaml:"branchTitleCommitThreshold"`
	ServerPort                 *int               `yaml:"serverPort"`
	DevMode                    *bool              `yaml:"devMode"`
}

// Load reads the config file, merges with defaults, validates, and returns the config.
func (l *fileLoader) Load(ctx context.Context) (Config, error) {
	// Start with defaults
	cfg := Defaults()

	// Try to read config file
	// #nosec G304 -- configPath is hardcoded, not user input
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist - return defaults
			return cfg, nil
		}
		return Config{}, errors.Wrap(ctx, err, "read config file")
	}

	// Parse YAML into partial config to preserve defaults for missing fields
	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return Config{}, errors.Wrap(ctx, err, "parse config file")
	}

	// Merge non-nil values onto defaults
	if partial.TitleSource != nil {
		cfg.TitleSource = *partial.TitleSource
	}
	if partial.DescriptionSource != nil {
		cfg.DescriptionSource = *partial.DescriptionSource
	}
	if partial.DefaultRemote != nil {
		cfg.DefaultRemote = *partial.DefaultRemote
	}
	if partial.Draft != nil {
		cfg.Draft = *partial.Draft
	}
	if partial.BranchTitleCommitThreshold != nil {
		cfg.BranchTitleCommitThreshold = *partial.BranchTitleCommitThreshold
	}
	if partial.ServerPort != nil {
		cfg.ServerPort = *partial.ServerPort
	}
	if partial.DevMode != nil {
		cfg.DevMode = *partial.DevMode
	}

	// Validate merged config
	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}

	return cfg, nil
}
