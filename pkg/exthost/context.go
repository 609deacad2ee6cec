// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exthost

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"sync"

	"github.com/bborbe/errors"

	"github.com/bborbe/pr-panel/pkg/panel"
)

// ErrNotSupported is returned by all secret operations: secret storage is
// out of scope for tests using this double.
var ErrNotSupported = stderrors.New("not supported")

// inCreateKey is the workspace state key backing panel.Flags.
const inCreateKey = "inCreatePullRequest"

// Context is an in-memory stand-in for the extension host context,
// for tests exercising the panel controller and its neighbours.
type Context struct {
	WorkspaceState *Memento
	GlobalState    *Memento

	mux               sync.Mutex
	storagePath       string
	globalStoragePath string
	logPath           string
	subscriptions     []io.Closer
}

var _ panel.Flags = &Context{}

// NewContext creates a fresh Context with empty state.
func NewContext() *Context {
	return &Context{
		WorkspaceState: NewMemento(),
		GlobalState:    NewMemento(),
	}
}

// StoragePath returns a temp-directory-backed storage path, created lazily.
func (c *Context) StoragePath(ctx context.Context) (string, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.tempDir(ctx, &c.storagePath, "exthost-storage-")
}

// GlobalStoragePath returns a temp-directory-backed global storage path.
func (c *Context) GlobalStoragePath(ctx context.Context) (string, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.tempDir(ctx, &c.globalStoragePath, "exthost-global-storage-")
}

// LogPath returns a temp-directory-backed log path.
func (c *Context) LogPath(ctx context.Context) (string, error) {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.tempDir(ctx, &c.logPath, "exthost-log-")
}

// tempDir lazily creates and caches a temp directory.
func (c *Context) tempDir(ctx context.Context, target *string, pattern string) (string, error) {
	if *target != "" {
		return *target, nil
	}
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", errors.Wrap(ctx, err, "create temp dir")
	}
	*target = dir
	return dir, nil
}

// Secrets returns the secret store of this context.
func (c *Context) Secrets() *Secrets {
	return &Secrets{}
}

// Subscribe registers a subscription released on Dispose.
func (c *Context) Subscribe(closer io.Closer) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.subscriptions = append(c.subscriptions, closer)
}

// SetInCreate implements panel.Flags via the workspace state.
func (c *Context) SetInCreate(ctx context.Context, active bool) error {
	return c.WorkspaceState.Update(ctx, inCreateKey, active)
}

// Dispose releases all registered subscriptions, clears both state scopes
// and removes any created temp directories.
func (c *Context) Dispose() error {
	c.mux.Lock()
	subscriptions := c.subscriptions
	c.subscriptions = nil
	dirs := []string{c.storagePath, c.globalStoragePath, c.logPath}
	c.storagePath = ""
	c.globalStoragePath = ""
	c.logPath = ""
	c.mux.Unlock()

	var result error
	for _, subscription := range subscriptions {
		if err := subscription.Close(); err != nil && result == nil {
			result = err
		}
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.RemoveAll(dir); err != nil && result == nil {
			result = err
		}
	}
	c.WorkspaceState.Clear()
	c.GlobalState.Clear()
	return result
}

// Secrets is the persisted-secret store of the double. Every operation
// fails with ErrNotSupported.
type Secrets struct{}

// Get always returns ErrNotSupported.
func (s *Secrets) Get(ctx context.Context, key string) (string, error) {
	return "", errors.Wrapf(ctx, ErrNotSupported, "get secret %s", key)
}

// Store always returns ErrNotSupported.
func (s *Secrets) Store(ctx context.Context, key string, value string) error {
	return errors.Wrapf(ctx, ErrNotSupported, "store secret %s", key)
}

// Delete always returns ErrNotSupported.
func (s *Secrets) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(ctx, ErrNotSupported, "delete secret %s", key)
}
