// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repomanager

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"

	"github.com/bborbe/errors"

	"github.com/bborbe/pr-panel/pkg/forge"
	"github.com/bborbe/pr-panel/pkg/git"
)

// ErrRepositoryNotFound is returned when no known remote matches.
var ErrRepositoryNotFound = stderrors.New("repository not found")

// branchConfigKey is the branch-scoped git config key recording the
// pull request a branch belongs to.
const branchConfigKey = "pr-owner-number"

// Manager resolves the checkout's hosted repositories and delegates
// pull request creation to the forge.
//
//counterfeiter:generate -o ../../mocks/repo-manager.go --fake-name RepoManager . Manager
type Manager interface {
	ListRepositories(ctx context.Context) ([]forge.RemoteInfo, error)
	Lookup(ctx context.Context, remote forge.RemoteInfo) (*forge.RemoteInfo, error)
	RepositoryForRemote(ctx context.Context, remoteName string) (*forge.RemoteInfo, error)
	CreatePullRequest(ctx context.Context, request forge.CreateRequest) (*forge.PullRequest, error)
	AssignBranch(ctx context.Context, branch string, pullRequest *forge.PullRequest, remote forge.RemoteInfo) error
}

// manager implements Manager.
type manager struct {
	gitClient   git.Client
	forgeClient forge.Client
}

// NewManager creates a new Manager.
func NewManager(
	gitClient git.Client,
	forgeClient forge.Client,
) Manager {
	return &manager{
		gitClient:   gitClient,
		forgeClient: forgeClient,
	}
}

// ListRepositories returns the hosted repositories behind the configured
// remotes. Remotes with unparseable urls are logged and skipped.
func (m *manager) ListRepositories(ctx context.Context) ([]forge.RemoteInfo, error) {
	names, err := m.gitClient.RemoteNames(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list remote names")
	}

	var repositories []forge.RemoteInfo
	for _, name := range names {
		remote, err := m.remoteInfo(ctx, name)
		if err != nil {
			log.Printf("pr-panel: skipping remote %s: %v", name, err)
			continue
		}
		repositories = append(repositories, *remote)
	}
	return repositories, nil
}

// Lookup returns the known repository matching owner and repository name.
// Returns ErrRepositoryNotFound when no remote matches.
func (m *manager) Lookup(
	ctx context.Context,
	remote forge.RemoteInfo,
) (*forge.RemoteInfo, error) {
	repositories, err := m.ListRepositories(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list repositories")
	}
	for _, repository := range repositories {
		if repository.Owner == remote.Owner &&
			repository.RepositoryName == remote.RepositoryName {
			return &repository, nil
		}
	}
	return nil, ErrRepositoryNotFound
}

// RepositoryForRemote returns the hosted repository behind the named remote.
func (m *manager) RepositoryForRemote(
	ctx context.Context,
	remoteName string,
) (*forge.RemoteInfo, error) {
	remote, err := m.remoteInfo(ctx, remoteName)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "resolve remote %s", remoteName)
	}
	return remote, nil
}

// CreatePullRequest delegates to the forge client.
func (m *manager) CreatePullRequest(
	ctx context.Context,
	request forge.CreateRequest,
) (*forge.PullRequest, error) {
	return m.forgeClient.CreatePullRequest(ctx, request)
}

// AssignBranch records the created pull request on the local branch via
// branch-scoped git config.
func (m *manager) AssignBranch(
	ctx context.Context,
	branch string,
	pullRequest *forge.PullRequest,
	remote forge.RemoteInfo,
) error {
	value := fmt.Sprintf("%s#%s#%d", remote.Owner, remote.RepositoryName, pullRequest.Number)
	if err := m.gitClient.SetBranchConfig(ctx, branch, branchConfigKey, value); err != nil {
		return errors.Wrap(ctx, err, "assign branch to pull request")
	}
	return nil
}

// remoteInfo resolves a remote name to owner and repository name.
func (m *manager) remoteInfo(ctx context.Context, name string) (*forge.RemoteInfo, error) {
	url, err := m.gitClient.RemoteURL(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "get url of remote %s", name)
	}
	remote, err := forge.ParseRemoteURL(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "parse url of remote %s", name)
	}
	return remote, nil
}
