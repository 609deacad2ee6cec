// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"context"
)

// Flags records whether a pull request creation is in progress in the
// host's execution context.
//
//counterfeiter:generate -o ../../mocks/flags.go --fake-name Flags . Flags
type Flags interface {
	SetInCreate(ctx context.Context, active bool) error
}

// noopFlags implements Flags without a backing store.
type noopFlags struct{}

// NewNoopFlags creates a Flags that discards updates.
func NewNoopFlags() Flags {
	return &noopFlags{}
}

// SetInCreate discards the update.
func (n *noopFlags) SetInCreate(ctx context.Context, active bool) error {
	return nil
}
