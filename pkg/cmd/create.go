// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bborbe/errors"

	"github.com/bborbe/pr-panel/pkg/defaults"
	"github.com/bborbe/pr-panel/pkg/forge"
	"github.com/bborbe/pr-panel/pkg/git"
	"github.com/bborbe/pr-panel/pkg/repomanager"
)

//counterfeiter:generate -o ../../mocks/create-command.go --fake-name CreateCommand . CreateCommand

// CreateCommand executes the create subcommand: a one-shot pull request
// creation using the configured default policies.
type CreateCommand interface {
	Run(ctx context.Context, args []string) error
}

// createCommand implements CreateCommand.
type createCommand struct {
	gitClient   git.Client
	forgeClient forge.Client
	manager     repomanager.Manager
	computer    defaults.Computer
}

// NewCreateCommand creates a new CreateCommand.
func NewCreateCommand(
	gitClient git.Client,
	forgeClient forge.Client,
	manager repomanager.Manager,
	computer defaults.Computer,
) CreateCommand {
	return &createCommand{
		gitClient:   gitClient,
		forgeClient: forgeClient,
		manager:     manager,
		computer:    computer,
	}
}

// Run executes the create command.
func (c *createCommand) Run(ctx context.Context, args []string) error {
	// Check for flags
	jsonOutput := false
	draft := false
	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOutput = true
		case "--draft":
			draft = true
		}
	}

	upstream, err := c.gitClient.Upstream(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "get upstream")
	}

	remote, err := c.manager.RepositoryForRemote(ctx, upstream.Remote)
	if err != nil {
		return errors.Wrapf(ctx, err, "resolve repository of remote %s", upstream.Remote)
	}

	defaultBranch, err := c.forgeClient.GetDefaultBranch(ctx, *remote)
	if err != nil {
		return errors.Wrap(ctx, err, "get default branch")
	}

	title, err := c.computer.DefaultTitle(ctx, defaultBranch)
	if err != nil {
		return errors.Wrap(ctx, err, "compute title")
	}
	description, err := c.computer.DefaultDescription(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "compute description")
	}
	if !draft {
		draft, err = c.computer.DefaultDraft(ctx)
		if err != nil {
			return errors.Wrap(ctx, err, "compute draft")
		}
	}

	pullRequest, err := c.manager.CreatePullRequest(ctx, forge.CreateRequest{
		Remote: *remote,
		Title:  title,
		Body:   description,
		Base:   defaultBranch,
		Head:   remote.Owner + ":" + upstream.Branch,
		Draft:  draft,
	})
	if err != nil {
		return errors.Wrap(ctx, err, "create pull request")
	}
	if pullRequest == nil {
		return errors.Errorf(ctx, "pull request creation cancelled")
	}

	branch, err := c.gitClient.CurrentBranch(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "get current branch")
	}
	if err := c.manager.AssignBranch(ctx, branch, pullRequest, *remote); err != nil {
		return errors.Wrap(ctx, err, "assign branch")
	}

	// Output
	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(pullRequest)
	}
	fmt.Printf("created pull request #%d: %s\n", pullRequest.Number, pullRequest.URL)
	return nil
}
