// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner_test

import (
	"context"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/mocks"
	"github.com/bborbe/pr-panel/pkg/git"
	"github.com/bborbe/pr-panel/pkg/runner"
)

var _ = Describe("Runner", func() {
	var (
		ctx            context.Context
		cancel         context.CancelFunc
		mockLocker     *mocks.Locker
		mockWatcher    *mocks.Watcher
		mockServer     *mocks.Server
		mockController *mocks.PanelController
		ready          chan struct{}
		r              runner.Runner
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())

		mockLocker = &mocks.Locker{}
		mockWatcher = &mocks.Watcher{}
		mockServer = &mocks.Server{}
		mockController = &mocks.PanelController{}
		ready = make(chan struct{}, 1)

		// Block until cancelled like the real collaborators
		mockWatcher.WatchCalls(func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		})
		mockServer.ListenAndServeCalls(func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		})

		r = runner.NewRunner(mockLocker, mockWatcher, mockServer, mockController, ready)
	})

	AfterEach(func() {
		cancel()
	})

	It("acquires and releases the lock", func() {
		done := make(chan error, 1)
		go func() {
			done <- r.Run(ctx)
		}()

		Eventually(mockLocker.AcquireCallCount).Should(Equal(1))
		cancel()
		Eventually(done).Should(Receive(BeNil()))
		Expect(mockLocker.ReleaseCallCount()).To(Equal(1))
	})

	It("fails when the lock is held", func() {
		mockLocker.AcquireReturns(fmt.Errorf("another instance is already running"))

		err := r.Run(ctx)
		Expect(err).To(HaveOccurred())
		Expect(mockController.InitializeCallCount()).To(Equal(0))
	})

	It("pushes the initial panel state", func() {
		done := make(chan error, 1)
		go func() {
			done <- r.Run(ctx)
		}()

		Eventually(mockController.InitializeCallCount).Should(Equal(1))
		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("fails when the initial push fails", func() {
		mockController.InitializeReturns(fmt.Errorf("no remotes"))

		err := r.Run(ctx)
		Expect(err).To(HaveOccurred())
		Expect(mockLocker.ReleaseCallCount()).To(Equal(1))
	})

	It("re-initializes when the watcher signals a template change", func() {
		done := make(chan error, 1)
		go func() {
			done <- r.Run(ctx)
		}()

		Eventually(mockController.InitializeCallCount).Should(Equal(1))

		ready <- struct{}{}
		Eventually(mockController.InitializeCallCount).Should(Equal(2))

		ready <- struct{}{}
		Eventually(mockController.InitializeCallCount).Should(Equal(3))

		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("keeps running when a refresh hits a detached head", func() {
		mockController.InitializeReturnsOnCall(1, git.ErrDetachedHead)

		done := make(chan error, 1)
		go func() {
			done <- r.Run(ctx)
		}()

		Eventually(mockController.InitializeCallCount).Should(Equal(1))

		ready <- struct{}{}
		Eventually(mockController.InitializeCallCount).Should(Equal(2))

		// Still alive: the next signal triggers another refresh
		ready <- struct{}{}
		Eventually(mockController.InitializeCallCount).Should(Equal(3))

		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("stops when a refresh fails", func() {
		mockController.InitializeReturnsOnCall(1, fmt.Errorf("forge down"))

		done := make(chan error, 1)
		go func() {
			done <- r.Run(ctx)
		}()

		Eventually(mockController.InitializeCallCount).Should(Equal(1))

		ready <- struct{}{}
		Eventually(done, 2*time.Second).Should(Receive(HaveOccurred()))
		Expect(mockLocker.ReleaseCallCount()).To(Equal(1))
	})
})
