// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"strings"
)

// Commit holds the parsed parts of a commit message.
type Commit struct {
	Title string
	Body  string
}

// ParseCommitMessage splits a commit message into title and body.
// The first line is the title, everything after the first blank line
// is the body with surrounding whitespace trimmed.
func ParseCommitMessage(message string) Commit {
	lines := strings.Split(message, "\n")
	if len(lines) == 0 {
		return Commit{}
	}
	commit := Commit{
		Title: strings.TrimSpace(lines[0]),
	}
	if len(lines) > 1 {
		commit.Body = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}
	return commit
}
