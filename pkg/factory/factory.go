// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bborbe/errors"
	libhttp "github.com/bborbe/http"

	"github.com/bborbe/pr-panel/pkg/channel"
	"github.com/bborbe/pr-panel/pkg/cmd"
	"github.com/bborbe/pr-panel/pkg/config"
	"github.com/bborbe/pr-panel/pkg/defaults"
	"github.com/bborbe/pr-panel/pkg/forge"
	"github.com/bborbe/pr-panel/pkg/git"
	"github.com/bborbe/pr-panel/pkg/lock"
	"github.com/bborbe/pr-panel/pkg/panel"
	"github.com/bborbe/pr-panel/pkg/prtemplate"
	"github.com/bborbe/pr-panel/pkg/repomanager"
	"github.com/bborbe/pr-panel/pkg/runner"
	"github.com/bborbe/pr-panel/pkg/server"
	"github.com/bborbe/pr-panel/pkg/status"
	"github.com/bborbe/pr-panel/pkg/watcher"
)

// templateDebounce delays template cache invalidation while a file is
// still being written.
const templateDebounce = 500 * time.Millisecond

// Factory is the composition root.
type Factory struct{}

// New creates a new Factory.
func New() *Factory {
	return &Factory{}
}

// components holds the collaborators shared by all entry points.
type components struct {
	cfg         config.Config
	root        string
	gitClient   git.Client
	forgeClient forge.Client
	finder      prtemplate.Finder
	manager     repomanager.Manager
	computer    defaults.Computer
	checker     status.Checker
}

// createComponents loads the config and builds the shared collaborators.
func (f *Factory) createComponents(ctx context.Context) (*components, error) {
	cfg, err := config.NewLoader().Load(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "load config")
	}

	gitClient := git.NewClient()
	root, err := gitClient.Root(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get git root")
	}

	forgeClient := forge.NewGithubClient()
	finder := prtemplate.NewFinder(root)
	manager := repomanager.NewManager(gitClient, forgeClient)

	return &components{
		cfg:         cfg,
		root:        root,
		gitClient:   gitClient,
		forgeClient: forgeClient,
		finder:      finder,
		manager:     manager,
		computer:    defaults.NewComputer(cfg, gitClient, finder),
		checker:     status.NewChecker(gitClient, manager),
	}, nil
}

// CreateRunner wires the panel daemon.
func (f *Factory) CreateRunner(ctx context.Context) (runner.Runner, error) {
	c, err := f.createComponents(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create components")
	}

	buffer := channel.NewBuffer()
	controller := panel.NewController(
		c.cfg,
		c.gitClient,
		c.forgeClient,
		c.manager,
		c.computer,
		buffer,
		panel.NewLogNotifier(),
		panel.NewNoopFlags(),
	)
	controller.OnDone(func(pullRequest *forge.PullRequest) {
		if pullRequest == nil {
			log.Printf("pr-panel: pull request creation cancelled")
			return
		}
		log.Printf("pr-panel: created pull request #%d: %s", pullRequest.Number, pullRequest.URL)
	})

	mux := http.NewServeMux()
	mux.Handle("/health", libhttp.NewErrorHandler(server.NewHealthHandler()))
	mux.Handle("/api/v1/status", libhttp.NewErrorHandler(server.NewStatusHandler(c.checker)))
	mux.HandleFunc("/api/v1/panel", server.NewPanelHandler(controller))
	mux.HandleFunc("/api/v1/panel/view", server.NewViewHandler(c.cfg.DevMode))
	mux.HandleFunc("/api/v1/panel/messages", server.NewMessagesHandler(buffer))

	srv := server.NewServer(
		libhttp.NewServer(fmt.Sprintf(":%d", c.cfg.ServerPort), mux),
	)

	ready := make(chan struct{}, 1)
	templateWatcher := watcher.NewWatcher(c.root, c.finder, ready, templateDebounce)

	return runner.NewRunner(
		lock.NewLocker(c.root),
		templateWatcher,
		srv,
		controller,
		ready,
	), nil
}

// CreateCreateCommand wires the one-shot create command.
func (f *Factory) CreateCreateCommand(ctx context.Context) (cmd.CreateCommand, error) {
	c, err := f.createComponents(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create components")
	}
	return cmd.NewCreateCommand(c.gitClient, c.forgeClient, c.manager, c.computer), nil
}

// CreateStatusCommand wires the status command.
func (f *Factory) CreateStatusCommand(ctx context.Context) (cmd.StatusCommand, error) {
	c, err := f.createComponents(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create components")
	}
	return cmd.NewStatusCommand(c.checker, status.NewFormatter()), nil
}
