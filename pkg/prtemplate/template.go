// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prtemplate

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/frontmatter"
	"github.com/bborbe/errors"
)

// Locations lists pull request template locations in order of precedence.
var Locations = []string{
	".github/PULL_REQUEST_TEMPLATE.md",
	".github/pull_request_template.md",
	"docs/pull_request_template.md",
	"PULL_REQUEST_TEMPLATE.md",
	"pull_request_template.md",
}

// Metadata holds optional YAML frontmatter of a template file.
type Metadata struct {
	Title string `yaml:"title"`
	Draft *bool  `yaml:"draft"`
}

// Template is a discovered pull request template.
type Template struct {
	Path     string
	Body     string
	Metadata Metadata
}

// Finder discovers the repository pull request template.
// Find returns nil when no template exists.
//
//counterfeiter:generate -o ../../mocks/template-finder.go --fake-name TemplateFinder . Finder
type Finder interface {
	Find(ctx context.Context) (*Template, error)
	Invalidate()
}

// finder implements Finder with a single-entry cache.
type finder struct {
	root string

	mux    sync.Mutex
	cached *Template
	valid  bool
}

// NewFinder creates a Finder searching below the given repository root.
func NewFinder(root string) Finder {
	return &finder{
		root: root,
	}
}

// Find returns the first template found in Locations, caching the result
// until Invalidate is called. Unreadable templates are logged and skipped.
func (f *finder) Find(ctx context.Context) (*Template, error) {
	f.mux.Lock()
	defer f.mux.Unlock()

	if f.valid {
		return f.cached, nil
	}

	for _, location := range Locations {
		path := filepath.Join(f.root, location)
		// #nosec G304 -- path is built from the fixed locations list
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			log.Printf("pr-panel: failed to read template %s: %v", path, err)
			continue
		}

		template, err := parse(ctx, path, content)
		if err != nil {
			log.Printf("pr-panel: failed to parse template %s: %v", path, err)
			continue
		}

		f.cached = template
		f.valid = true
		return f.cached, nil
	}

	f.cached = nil
	f.valid = true
	return nil, nil
}

// Invalidate drops the cached template so the next Find re-reads the disk.
func (f *finder) Invalidate() {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.valid = false
	f.cached = nil
}

// parse splits optional frontmatter from the template body.
func parse(ctx context.Context, path string, content []byte) (*Template, error) {
	var metadata Metadata
	body, err := frontmatter.Parse(bytes.NewReader(content), &metadata)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "parse template frontmatter")
	}
	return &Template{
		Path:     path,
		Body:     string(bytes.TrimSpace(body)),
		Metadata: metadata,
	}, nil
}
