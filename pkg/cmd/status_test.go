// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/mocks"
	"github.com/bborbe/pr-panel/pkg/cmd"
	"github.com/bborbe/pr-panel/pkg/status"
)

var _ = Describe("StatusCommand", func() {
	var (
		ctx           context.Context
		mockChecker   *mocks.StatusChecker
		mockFormatter *mocks.StatusFormatter
		command       cmd.StatusCommand
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockChecker = &mocks.StatusChecker{}
		mockFormatter = &mocks.StatusFormatter{}
		command = cmd.NewStatusCommand(mockChecker, mockFormatter)

		mockChecker.GetStatusReturns(&status.Status{
			CurrentBranch: "feature-branch",
			Upstream:      "origin/feature-branch",
		}, nil)
		mockFormatter.FormatReturns("Branch:   feature-branch\n")
	})

	It("formats the status for humans", func() {
		Expect(command.Run(ctx, nil)).To(Succeed())

		Expect(mockChecker.GetStatusCallCount()).To(Equal(1))
		Expect(mockFormatter.FormatCallCount()).To(Equal(1))
		Expect(mockFormatter.FormatArgsForCall(0).CurrentBranch).To(Equal("feature-branch"))
	})

	It("skips the formatter for --json", func() {
		Expect(command.Run(ctx, []string{"--json"})).To(Succeed())

		Expect(mockFormatter.FormatCallCount()).To(Equal(0))
	})

	It("fails when the status cannot be determined", func() {
		mockChecker.GetStatusReturns(nil, fmt.Errorf("git failed"))

		err := command.Run(ctx, nil)
		Expect(err).To(HaveOccurred())
		Expect(mockFormatter.FormatCallCount()).To(Equal(0))
	})
})
