// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watcher

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bborbe/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/bborbe/pr-panel/pkg/prtemplate"
)

// Watcher watches the pull request template locations and invalidates
// the template cache when they change.
//
//counterfeiter:generate -o ../../mocks/watcher.go --fake-name Watcher . Watcher
type Watcher interface {
	Watch(ctx context.Context) error
}

// watcher implements Watcher.
type watcher struct {
	root           string
	templateFinder prtemplate.Finder
	ready          chan<- struct{}
	debounce       time.Duration
}

// NewWatcher creates a new Watcher with the specified debounce duration.
func NewWatcher(
	root string,
	templateFinder prtemplate.Finder,
	ready chan<- struct{},
	debounce time.Duration,
) Watcher {
	return &watcher{
		root:           root,
		templateFinder: templateFinder,
		ready:          ready,
		debounce:       debounce,
	}
}

// Watch starts watching the directories holding template locations.
// On every relevant change the template cache is invalidated and the
// refresh loop is signalled.
func (w *watcher) Watch(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(ctx, err, "create watcher")
	}
	defer fsWatcher.Close()

	for _, dir := range w.watchDirs() {
		if err := fsWatcher.Add(dir); err != nil {
			// Directories like docs/ may not exist in every checkout
			log.Printf("pr-panel: not watching %s: %v", dir, err)
		}
	}

	log.Printf("pr-panel: template watcher started on %s", w.root)

	// Debounce map: file path -> timer (protected by mutex)
	var debounceMu sync.Mutex
	debounceTimers := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			log.Printf("pr-panel: template watcher shutting down")
			return nil

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return errors.Errorf(ctx, "watcher error channel closed")
			}
			log.Printf("pr-panel: watcher error: %v", err)
			return errors.Wrap(ctx, err, "watcher error")

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return errors.Errorf(ctx, "watcher events channel closed")
			}

			w.handleWatchEvent(event, &debounceMu, debounceTimers)
		}
	}
}

// watchDirs returns the directories containing template locations.
func (w *watcher) watchDirs() []string {
	seen := make(map[string]struct{})
	var dirs []string
	for _, location := range prtemplate.Locations {
		dir := filepath.Join(w.root, filepath.Dir(location))
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

// handleWatchEvent processes a file system event with debouncing.
func (w *watcher) handleWatchEvent(
	event fsnotify.Event,
	debounceMu *sync.Mutex,
	debounceTimers map[string]*time.Timer,
) {
	if !w.isTemplatePath(event.Name) {
		return
	}
	if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 &&
		event.Op&fsnotify.Remove == 0 && event.Op&fsnotify.Rename == 0 {
		return
	}

	// Debounce: cancel existing timer for this file
	debounceMu.Lock()
	if timer, exists := debounceTimers[event.Name]; exists {
		timer.Stop()
	}

	eventName := event.Name // Capture for closure
	debounceTimers[eventName] = time.AfterFunc(w.debounce, func() {
		debounceMu.Lock()
		delete(debounceTimers, eventName)
		debounceMu.Unlock()
		w.handleTemplateChange(eventName)
	})
	debounceMu.Unlock()
}

// isTemplatePath reports whether the path is one of the template locations.
func (w *watcher) isTemplatePath(path string) bool {
	for _, location := range prtemplate.Locations {
		if strings.EqualFold(path, filepath.Join(w.root, location)) {
			return true
		}
	}
	return false
}

// handleTemplateChange invalidates the template cache and signals the
// refresh loop.
func (w *watcher) handleTemplateChange(path string) {
	log.Printf("pr-panel: template changed: %s", filepath.Base(path))
	w.templateFinder.Invalidate()

	// Non-blocking send - refresh loop may already be working
	select {
	case w.ready <- struct{}{}:
	default:
	}
}
