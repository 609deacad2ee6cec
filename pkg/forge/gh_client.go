// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forge

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"os/exec"
	"strings"
	"time"

	"github.com/bborbe/errors"
	libtime "github.com/bborbe/time"
)

// ghCancelExitCode is the exit code gh uses when the user aborts a prompt.
const ghCancelExitCode = 2

// ghClient implements Client via the gh CLI.
type ghClient struct{}

// NewGithubClient creates a Client backed by the gh CLI.
func NewGithubClient() Client {
	return &ghClient{}
}

// GetDefaultBranch returns the default branch of the remote repository.
func (g *ghClient) GetDefaultBranch(ctx context.Context, remote RemoteInfo) (string, error) {
	// #nosec G204 -- owner and repository come from parsed remote urls
	cmd := exec.CommandContext(
		ctx,
		"gh", "api", "repos/"+remote.Owner+"/"+remote.RepositoryName,
		"--jq", ".default_branch",
	)
	output, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(ctx, err, "get default branch of %s", remote)
	}
	return strings.TrimSpace(string(output)), nil
}

// ListBranches returns the branch names of the remote repository.
func (g *ghClient) ListBranches(ctx context.Context, remote RemoteInfo) ([]string, error) {
	// #nosec G204 -- owner and repository come from parsed remote urls
	cmd := exec.CommandContext(
		ctx,
		"gh", "api", "repos/"+remote.Owner+"/"+remote.RepositoryName+"/branches",
		"--paginate",
		"--jq", ".[].name",
	)
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "list branches of %s", remote)
	}
	var branches []string
	for _, line := range strings.Split(string(output), "\n") {
		branch := strings.TrimSpace(line)
		if branch == "" {
			continue
		}
		branches = append(branches, branch)
	}
	return branches, nil
}

// CreatePullRequest creates a pull request and returns its details.
// Returns nil without error when the user aborted the gh prompt.
func (g *ghClient) CreatePullRequest(
	ctx context.Context,
	request CreateRequest,
) (*PullRequest, error) {
	args := []string{
		"pr", "create",
		"--repo", request.Remote.String(),
		"--title", request.Title,
		"--body", request.Body,
		"--base", request.Base,
		"--head", request.Head,
	}
	if request.Draft {
		args = append(args, "--draft")
	}

	// #nosec G204 -- all arguments are assembled by the panel controller
	cmd := exec.CommandContext(ctx, "gh", args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) && exitErr.ExitCode() == ghCancelExitCode {
			return nil, nil
		}
		return nil, errors.Wrap(ctx, err, "create pull request")
	}

	url := strings.TrimSpace(string(output))
	return g.viewPullRequest(ctx, request.Remote, url)
}

// prJSON is the structure returned by gh pr view --json.
type prJSON struct {
	Number      int       `json:"number"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	BaseRefName string    `json:"baseRefName"`
	HeadRefName string    `json:"headRefName"`
	IsDraft     bool      `json:"isDraft"`
	CreatedAt   time.Time `json:"createdAt"`
}

// viewPullRequest fetches the created pull request details.
func (g *ghClient) viewPullRequest(
	ctx context.Context,
	remote RemoteInfo,
	url string,
) (*PullRequest, error) {
	// #nosec G204 -- url is the gh pr create output
	cmd := exec.CommandContext(
		ctx,
		"gh", "pr", "view", url,
		"--repo", remote.String(),
		"--json", "number,url,title,baseRefName,headRefName,isDraft,createdAt",
	)
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrap(ctx, err, "view created pull request")
	}

	var pr prJSON
	if err := json.Unmarshal(output, &pr); err != nil {
		return nil, errors.Wrap(ctx, err, "parse pull request json")
	}

	return &PullRequest{
		Number:    pr.Number,
		URL:       pr.URL,
		Title:     pr.Title,
		Base:      pr.BaseRefName,
		Head:      pr.HeadRefName,
		Draft:     pr.IsDraft,
		CreatedAt: libtime.DateTime(pr.CreatedAt),
	}, nil
}
