// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/mocks"
	"github.com/bborbe/pr-panel/pkg/watcher"
)

var _ = Describe("Watcher", func() {
	var (
		ctx        context.Context
		cancel     context.CancelFunc
		tempDir    string
		mockFinder *mocks.TemplateFinder
		ready      chan struct{}
		w          watcher.Watcher
		done       chan error
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())

		var err error
		tempDir, err = os.MkdirTemp("", "watcher-test-*")
		Expect(err).NotTo(HaveOccurred())
		Expect(os.MkdirAll(filepath.Join(tempDir, ".github"), 0750)).To(Succeed())

		mockFinder = &mocks.TemplateFinder{}
		ready = make(chan struct{}, 1)
		w = watcher.NewWatcher(tempDir, mockFinder, ready, 50*time.Millisecond)

		done = make(chan error, 1)
		go func() {
			done <- w.Watch(ctx)
		}()
		// Give the watcher time to register its directories
		time.Sleep(100 * time.Millisecond)
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(Receive(BeNil()))
		_ = os.RemoveAll(tempDir)
	})

	It("invalidates the template cache when a template is written", func() {
		path := filepath.Join(tempDir, ".github", "PULL_REQUEST_TEMPLATE.md")
		Expect(os.WriteFile(path, []byte("## Summary"), 0600)).To(Succeed())

		Eventually(mockFinder.InvalidateCallCount, 2*time.Second).Should(BeNumerically(">=", 1))
	})

	It("signals the refresh loop", func() {
		path := filepath.Join(tempDir, ".github", "PULL_REQUEST_TEMPLATE.md")
		Expect(os.WriteFile(path, []byte("## Summary"), 0600)).To(Succeed())

		Eventually(ready, 2*time.Second).Should(Receive())
	})

	It("ignores unrelated files", func() {
		path := filepath.Join(tempDir, ".github", "other.md")
		Expect(os.WriteFile(path, []byte("unrelated"), 0600)).To(Succeed())

		Consistently(mockFinder.InvalidateCallCount, 300*time.Millisecond).Should(Equal(0))
	})

	It("debounces rapid writes into one invalidation", func() {
		path := filepath.Join(tempDir, ".github", "PULL_REQUEST_TEMPLATE.md")
		for i := 0; i < 5; i++ {
			Expect(os.WriteFile(path, []byte("## Summary"), 0600)).To(Succeed())
			time.Sleep(5 * time.Millisecond)
		}

		Eventually(mockFinder.InvalidateCallCount, 2*time.Second).Should(BeNumerically(">=", 1))
		Consistently(mockFinder.InvalidateCallCount, 300*time.Millisecond).Should(Equal(1))
	})
})
