// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	stderrors "errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/bborbe/errors"
	"github.com/bborbe/run"

	"github.com/bborbe/pr-panel/pkg/git"
	"github.com/bborbe/pr-panel/pkg/lock"
	"github.com/bborbe/pr-panel/pkg/panel"
	"github.com/bborbe/pr-panel/pkg/server"
	"github.com/bborbe/pr-panel/pkg/watcher"
)

// Runner orchestrates the panel daemon.
type Runner interface {
	Run(ctx context.Context) error
}

// runner implements Runner.
type runner struct {
	locker     lock.Locker
	watcher    watcher.Watcher
	server     server.Server
	controller panel.Controller
	ready      <-chan struct{}
}

// NewRunner creates a new Runner.
func NewRunner(
	locker lock.Locker,
	watcher watcher.Watcher,
	server server.Server,
	controller panel.Controller,
	ready <-chan struct{},
) Runner {
	return &runner{
		locker:     locker,
		watcher:    watcher,
		server:     server,
		controller: controller,
		ready:      ready,
	}
}

// Run executes the panel daemon:
// 1. Acquire instance lock to prevent concurrent daemons on one checkout
// 2. Push the initial pr.initialize message
// 3. Run watcher, server and refresh loop in parallel
func (r *runner) Run(ctx context.Context) error {
	if err := r.locker.Acquire(ctx); err != nil {
		return errors.Wrap(ctx, err, "acquire lock")
	}
	defer func() {
		if err := r.locker.Release(context.WithoutCancel(ctx)); err != nil {
			log.Printf("pr-panel: failed to release lock: %v", err)
		}
	}()

	log.Printf("pr-panel: acquired lock .pr-panel.lock")

	// Set up signal handling
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := r.controller.Initialize(ctx); err != nil {
		return errors.Wrap(ctx, err, "initialize panel")
	}

	// Run watcher, server, and refresh loop in parallel
	// If any fails, context cancels the others automatically
	return run.CancelOnFirstError(
		ctx,
		r.watcher.Watch,
		r.server.ListenAndServe,
		r.refresh,
	)
}

// refresh re-pushes the initialize message whenever the watcher signals a
// template change. A detached HEAD is logged, not fatal: the panel simply
// keeps its last state until a branch exists again.
func (r *runner) refresh(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			log.Printf("pr-panel: refresh loop shutting down")
			return nil

		case <-r.ready:
			if err := r.controller.Initialize(ctx); err != nil {
				if stderrors.Is(err, git.ErrDetachedHead) {
					log.Printf("pr-panel: skipping refresh: %v", err)
					continue
				}
				return errors.Wrap(ctx, err, "refresh panel")
			}
			log.Printf("pr-panel: refreshed panel defaults")
		}
	}
}
