// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// TitleSource defines where the default pull request title comes from.
const (
	TitleSourceCommit TitleSource = "commit"
	TitleSourceBranch TitleSource = "branch"
	TitleSourceCustom TitleSource = "custom"
	TitleSourceAsk    TitleSource = "ask"
)

// AvailableTitleSources contains all valid title source values.
var AvailableTitleSources = TitleSources{
	TitleSourceCommit,
	TitleSourceBranch,
	TitleSourceCustom,
	TitleSourceAsk,
}

// TitleSource is a string-based enum for title source policies.
type TitleSource string

func (t TitleSource) String() string {
	return string(t)
}

func (t TitleSource) Validate(ctx context.Context) error {
	if !AvailableTitleSources.Contains(t) {
		return errors.Wrapf(ctx, validation.Error, "unknown title source '%s'", t)
	}
	return nil
}

func (t TitleSource) Ptr() *TitleSource {
	return &t
}

// TitleSources is a collection of TitleSource values.
type TitleSources []TitleSource

func (t TitleSources) Contains(source TitleSource) bool {
	return collection.Contains(t, source)
}

// DescriptionSource defines where the default pull request description comes from.
const (
	DescriptionSourceTemplate DescriptionSource = "template"
	DescriptionSourceCommit   DescriptionSource = "commit"
	DescriptionSourceCustom   DescriptionSource = "custom"
	DescriptionSourceAsk      DescriptionSource = "ask"
)

// AvailableDescriptionSources contains all valid description source values.
var AvailableDescriptionSources = DescriptionSources{
	DescriptionSourceTemplate,
	DescriptionSourceCommit,
	DescriptionSourceCustom,
	DescriptionSourceAsk,
}

// DescriptionSource is a string-based enum for description source policies.
type DescriptionSource string

func (d DescriptionSource) String() string {
	return string(d)
}

func (d DescriptionSource) Validate(ctx context.Context) error {
	if !AvailableDescriptionSources.Contains(d) {
		return errors.Wrapf(ctx, validation.Error, "unknown description source '%s'", d)
	}
	return nil
}

func (d DescriptionSource) Ptr() *DescriptionSource {
	return &d
}

// DescriptionSources is a collection of DescriptionSource values.
type DescriptionSources []DescriptionSource

func (d DescriptionSources) Contains(source DescriptionSource) bool {
	return collection.Contains(d, source)
}
