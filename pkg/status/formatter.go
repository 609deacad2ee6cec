// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status

import (
	"fmt"
	"strings"
)

// Formatter renders a Status for humans.
//
//counterfeiter:generate -o ../../mocks/status-formatter.go --fake-name StatusFormatter . Formatter
type Formatter interface {
	Format(status *Status) string
}

// formatter implements Formatter.
type formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() Formatter {
	return &formatter{}
}

// Format renders the status as plain text.
func (f *formatter) Format(status *Status) string {
	var sb strings.Builder

	if status.DetachedHead {
		sb.WriteString("Branch:   (detached HEAD)\n")
	} else {
		fmt.Fprintf(&sb, "Branch:   %s\n", status.CurrentBranch)
	}

	if status.Upstream != "" {
		fmt.Fprintf(&sb, "Upstream: %s\n", status.Upstream)
	} else {
		sb.WriteString("Upstream: (none)\n")
	}

	if len(status.Repositories) == 0 {
		sb.WriteString("Remotes:  (none)\n")
	} else {
		names := make([]string, 0, len(status.Repositories))
		for _, repository := range status.Repositories {
			names = append(names, repository.String())
		}
		fmt.Fprintf(&sb, "Remotes:  %s\n", strings.Join(names, ", "))
	}

	return sb.String()
}
