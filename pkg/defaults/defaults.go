// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package defaults

import (
	"context"
	stderrors "errors"
	"log"

	"github.com/bborbe/errors"

	"github.com/bborbe/pr-panel/pkg/config"
	"github.com/bborbe/pr-panel/pkg/git"
	"github.com/bborbe/pr-panel/pkg/prtemplate"
)

// Computer computes default pull request field values per the configured
// source policies.
//
//counterfeiter:generate -o ../../mocks/defaults-computer.go --fake-name DefaultsComputer . Computer
type Computer interface {
	DefaultTitle(ctx context.Context, defaultBranch string) (string, error)
	DefaultDescription(ctx context.Context) (string, error)
	DefaultDraft(ctx context.Context) (bool, error)
}

// computer implements Computer.
type computer struct {
	titleSource       config.TitleSource
	descriptionSource config.DescriptionSource
	draft             bool
	commitThreshold   int
	gitClient         git.Client
	templateFinder    prtemplate.Finder
}

// NewComputer creates a new Computer.
func NewComputer(
	cfg config.Config,
	gitClient git.Client,
	templateFinder prtemplate.Finder,
) Computer {
	return &computer{
		titleSource:       cfg.TitleSource,
		descriptionSource: cfg.DescriptionSource,
		draft:             cfg.Draft,
		commitThreshold:   cfg.BranchTitleCommitThreshold,
		gitClient:         gitClient,
		templateFinder:    templateFinder,
	}
}

// DefaultTitle computes the default title:
// branch -> current branch name, commit -> head commit title,
// custom -> empty, ask -> branch name when more than commitThreshold
// commits differ between the default base and the upstream, else commit title.
func (c *computer) DefaultTitle(ctx context.Context, defaultBranch string) (string, error) {
	switch c.titleSource {
	case config.TitleSourceBranch:
		return c.gitClient.CurrentBranch(ctx)
	case config.TitleSourceCommit:
		return c.commitTitle(ctx)
	case config.TitleSourceCustom:
		return "", nil
	default:
		return c.askTitle(ctx, defaultBranch)
	}
}

// askTitle implements the ask policy.
func (c *computer) askTitle(ctx context.Context, defaultBranch string) (string, error) {
	upstream, err := c.gitClient.Upstream(ctx)
	if err != nil {
		if stderrors.Is(err, git.ErrNoUpstream) {
			// No tracking branch - nothing to compare against
			return c.commitTitle(ctx)
		}
		return "", errors.Wrap(ctx, err, "get upstream")
	}

	count, err := c.gitClient.CommitsBetween(
		ctx,
		upstream.Remote+"/"+defaultBranch,
		upstream.Remote+"/"+upstream.Branch,
	)
	if err != nil {
		return "", errors.Wrap(ctx, err, "count commits")
	}

	if count > c.commitThreshold {
		return c.gitClient.CurrentBranch(ctx)
	}
	return c.commitTitle(ctx)
}

// commitTitle returns the title part of the head commit message.
func (c *computer) commitTitle(ctx context.Context) (string, error) {
	message, err := c.gitClient.HeadCommitMessage(ctx)
	if err != nil {
		return "", errors.Wrap(ctx, err, "get head commit message")
	}
	return git.ParseCommitMessage(message).Title, nil
}

// DefaultDescription computes the default description:
// template -> template body, commit -> head commit body, custom -> empty,
// ask -> template body when present, else commit body.
func (c *computer) DefaultDescription(ctx context.Context) (string, error) {
	switch c.descriptionSource {
	case config.DescriptionSourceTemplate:
		return c.templateBody(ctx), nil
	case config.DescriptionSourceCommit:
		return c.commitBody(ctx)
	case config.DescriptionSourceCustom:
		return "", nil
	default:
		if body := c.templateBody(ctx); body != "" {
			return body, nil
		}
		return c.commitBody(ctx)
	}
}

// templateBody returns the template body or empty string.
// Template read failures are logged, not propagated.
func (c *computer) templateBody(ctx context.Context) string {
	template, err := c.templateFinder.Find(ctx)
	if err != nil {
		log.Printf("pr-panel: failed to find pull request template: %v", err)
		return ""
	}
	if template == nil {
		return ""
	}
	return template.Body
}

// commitBody returns the body part of the head commit message.
func (c *computer) commitBody(ctx context.Context) (string, error) {
	message, err := c.gitClient.HeadCommitMessage(ctx)
	if err != nil {
		return "", errors.Wrap(ctx, err, "get head commit message")
	}
	return git.ParseCommitMessage(message).Body, nil
}

// DefaultDraft returns the configured draft flag, overridden by the
// template frontmatter when it sets one.
func (c *computer) DefaultDraft(ctx context.Context) (bool, error) {
	template, err := c.templateFinder.Find(ctx)
	if err != nil {
		return false, errors.Wrap(ctx, err, "find template")
	}
	if template != nil && template.Metadata.Draft != nil {
		return *template.Metadata.Draft, nil
	}
	return c.draft, nil
}
