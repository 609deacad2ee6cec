// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status

import (
	"context"
	stderrors "errors"

	"github.com/bborbe/errors"

	"github.com/bborbe/pr-panel/pkg/forge"
	"github.com/bborbe/pr-panel/pkg/git"
	"github.com/bborbe/pr-panel/pkg/repomanager"
)

// Status describes the panel-relevant state of the checkout.
type Status struct {
	CurrentBranch string             `json:"currentBranch"`
	DetachedHead  bool               `json:"detachedHead"`
	Upstream      string             `json:"upstream,omitempty"`
	Repositories  []forge.RemoteInfo `json:"repositories"`
}

// Checker reports the current panel status.
//
//counterfeiter:generate -o ../../mocks/status-checker.go --fake-name StatusChecker . Checker
type Checker interface {
	GetStatus(ctx context.Context) (*Status, error)
}

// checker implements Checker.
type checker struct {
	gitClient git.Client
	manager   repomanager.Manager
}

// NewChecker creates a new Checker.
func NewChecker(
	gitClient git.Client,
	manager repomanager.Manager,
) Checker {
	return &checker{
		gitClient: gitClient,
		manager:   manager,
	}
}

// GetStatus collects branch, upstream and repository information.
func (c *checker) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{}

	branch, err := c.gitClient.CurrentBranch(ctx)
	if err != nil {
		if !stderrors.Is(err, git.ErrDetachedHead) {
			return nil, errors.Wrap(ctx, err, "get current branch")
		}
		status.DetachedHead = true
	} else {
		status.CurrentBranch = branch
	}

	if !status.DetachedHead {
		upstream, err := c.gitClient.Upstream(ctx)
		if err != nil && !stderrors.Is(err, git.ErrNoUpstream) {
			return nil, errors.Wrap(ctx, err, "get upstream")
		}
		if upstream != nil {
			status.Upstream = upstream.Remote + "/" + upstream.Branch
		}
	}

	repositories, err := c.manager.ListRepositories(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list repositories")
	}
	status.Repositories = repositories

	return status, nil
}
