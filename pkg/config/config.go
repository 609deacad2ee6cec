// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// Config holds the pr-panel configuration.
type Config struct {
	TitleSource                TitleSource       `yaml:"titleSource"`
	DescriptionSource          DescriptionSource `yaml:"descriptionSource"`
	DefaultRemote              string            `yaml:"defaultRemote"`
	Draft                      bool              `yaml:"draft"`
	BranchTitleCommitThreshold int               `yaml:"branchTitleCommitThreshold"`
	ServerPort                 int               `yaml:"serverPort"`
	DevMode                    bool              `yaml:"devMode"`
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	return Config{
		TitleSource:                TitleSourceAsk,
		DescriptionSource:          DescriptionSourceAsk,
		DefaultRemote:              "origin",
		Draft:                      false,
		BranchTitleCommitThreshold: 1,
		ServerPort:                 8080,
		DevMode:                    false,
	}
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("titleSource", c.TitleSource),
		validation.Name("descriptionSource", c.DescriptionSource),
		validation.Name("defaultRemote", validation.NotEmptyString(c.DefaultRemote)),
		validation.Name("branchTitleCommitThreshold", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.BranchTitleCommitThreshold < 1 {
				return errors.Errorf(
					ctx,
					"branchTitleCommitThreshold must be positive, got %d",
					c.BranchTitleCommitThreshold,
				)
			}
			return nil
		})),
		validation.Name("serverPort", validation.HasValidationFunc(func(ctx context.Context) error {
			if c.ServerPort <= 0 || c.ServerPort > 65535 {
				return errors.Errorf(ctx, "serverPort must be a valid port, got %d", c.ServerPort)
			}
			return nil
		})),
	}.Validate(ctx)
}
