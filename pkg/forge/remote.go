// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forge

import (
	"context"
	"strings"

	"github.com/bborbe/errors"
)

// ParseRemoteURL extracts owner and repository name from a git remote URL.
// Supported forms:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
//	ssh://git@github.com/owner/repo.git
func ParseRemoteURL(ctx context.Context, url string) (*RemoteInfo, error) {
	path := url

	// Strip scheme
	if idx := strings.Index(path, "://"); idx != -1 {
		path = path[idx+3:]
	}

	// Strip user@host prefix: scp-like URLs separate host and path with ':'
	if idx := strings.Index(path, ":"); idx != -1 && !strings.Contains(path[:idx], "/") {
		path = path[idx+1:]
	} else if idx := strings.Index(path, "/"); idx != -1 {
		path = path[idx+1:]
	}

	path = strings.TrimSuffix(path, ".git")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, errors.Errorf(ctx, "cannot parse remote url '%s'", url)
	}

	return &RemoteInfo{
		Owner:          parts[0],
		RepositoryName: parts[1],
	}, nil
}
