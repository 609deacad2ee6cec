// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"context"
	stderrors "errors"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bborbe/errors"
)

// ErrDetachedHead is returned when the repository has no current branch.
var ErrDetachedHead = stderrors.New("no current branch (detached HEAD)")

// ErrNoUpstream is returned when the current branch has no upstream tracking branch.
var ErrNoUpstream = stderrors.New("current branch has no upstream")

// Upstream identifies the remote tracking branch of a local branch.
type Upstream struct {
	Remote string
	Branch string
}

// Client provides local git operations.
//
//counterfeiter:generate -o ../../mocks/git-client.go --fake-name GitClient . Client
type Client interface {
	CurrentBranch(ctx context.Context) (string, error)
	Upstream(ctx context.Context) (*Upstream, error)
	HeadCommitMessage(ctx context.Context) (string, error)
	CommitsBetween(ctx context.Context, base string, head string) (int, error)
	RemoteNames(ctx context.Context) ([]string, error)
	RemoteURL(ctx context.Context, name string) (string, error)
	SetBranchConfig(ctx context.Context, branch string, key string, value string) error
	Root(ctx context.Context) (string, error)
}

// client implements Client via the git binary.
type client struct{}

// NewClient creates a new Client.
func NewClient() Client {
	return &client{}
}

// CurrentBranch returns the name of the current branch.
// Returns ErrDetachedHead when HEAD does not point at a branch.
func (c *client) CurrentBranch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(ctx, err, "get current branch")
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" || branch == "HEAD" {
		return "", ErrDetachedHead
	}
	return branch, nil
}

// Upstream returns the remote tracking branch of the current branch.
// Returns ErrNoUpstream when no tracking branch is configured.
func (c *client) Upstream(ctx context.Context) (*Upstream, error) {
	cmd := exec.CommandContext(
		ctx,
		"git", "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}",
	)
	output, err := cmd.Output()
	if err != nil {
		// git exits non-zero when no upstream is configured
		return nil, ErrNoUpstream
	}
	ref := strings.TrimSpace(string(output))
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 {
		return nil, errors.Errorf(ctx, "unexpected upstream ref '%s'", ref)
	}
	return &Upstream{
		Remote: parts[0],
		Branch: parts[1],
	}, nil
}

// HeadCommitMessage returns the full commit message of HEAD.
func (c *client) HeadCommitMessage(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--format=%B")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(ctx, err, "get head commit message")
	}
	return strings.TrimRight(string(output), "\n"), nil
}

// CommitsBetween counts the commits reachable from head but not from base.
func (c *client) CommitsBetween(ctx context.Context, base string, head string) (int, error) {
	// #nosec G204 -- base and head are refs resolved by this client
	cmd := exec.CommandContext(ctx, "git", "rev-list", "--count", base+".."+head)
	output, err := cmd.Output()
	if err != nil {
		return 0, errors.Wrapf(ctx, err, "count commits between %s and %s", base, head)
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0, errors.Wrap(ctx, err, "parse commit count")
	}
	return count, nil
}

// RemoteNames returns the names of all configured remotes.
func (c *client) RemoteNames(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "remote")
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list remotes")
	}
	var names []string
	for _, line := range strings.Split(string(output), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// RemoteURL returns the fetch URL of the given remote.
func (c *client) RemoteURL(ctx context.Context, name string) (string, error) {
	// #nosec G204 -- remote name comes from RemoteNames
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", name)
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(ctx, err, "get url of remote %s", name)
	}
	return strings.TrimSpace(string(output)), nil
}

// SetBranchConfig sets a branch-scoped git config value.
func (c *client) SetBranchConfig(
	ctx context.Context,
	branch string,
	key string,
	value string,
) error {
	// #nosec G204 -- branch and key are controlled by the application
	cmd := exec.CommandContext(ctx, "git", "config", "branch."+branch+"."+key, value)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(ctx, err, "set branch config %s", key)
	}
	return nil
}

// Root returns the root directory of the git repository.
func (c *client) Root(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(ctx, err, "get git root")
	}
	return strings.TrimSpace(string(output)), nil
}
