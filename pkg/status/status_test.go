// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/mocks"
	"github.com/bborbe/pr-panel/pkg/forge"
	"github.com/bborbe/pr-panel/pkg/git"
	"github.com/bborbe/pr-panel/pkg/status"
)

var _ = Describe("Checker", func() {
	var (
		ctx         context.Context
		mockGit     *mocks.GitClient
		mockManager *mocks.RepoManager
		checker     status.Checker
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockGit = &mocks.GitClient{}
		mockManager = &mocks.RepoManager{}
		checker = status.NewChecker(mockGit, mockManager)

		mockGit.CurrentBranchReturns("feature-branch", nil)
		mockGit.UpstreamReturns(&git.Upstream{Remote: "origin", Branch: "feature-branch"}, nil)
		mockManager.ListRepositoriesReturns([]forge.RemoteInfo{
			{Owner: "bborbe", RepositoryName: "pr-panel"},
		}, nil)
	})

	It("collects branch, upstream and repositories", func() {
		st, err := checker.GetStatus(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.CurrentBranch).To(Equal("feature-branch"))
		Expect(st.DetachedHead).To(BeFalse())
		Expect(st.Upstream).To(Equal("origin/feature-branch"))
		Expect(st.Repositories).To(HaveLen(1))
	})

	It("tolerates a detached head", func() {
		mockGit.CurrentBranchReturns("", git.ErrDetachedHead)

		st, err := checker.GetStatus(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.DetachedHead).To(BeTrue())
		Expect(st.CurrentBranch).To(BeEmpty())
		Expect(st.Upstream).To(BeEmpty())
	})

	It("tolerates a missing upstream", func() {
		mockGit.UpstreamReturns(nil, git.ErrNoUpstream)

		st, err := checker.GetStatus(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(st.Upstream).To(BeEmpty())
	})

	It("fails when repositories cannot be listed", func() {
		mockManager.ListRepositoriesReturns(nil, fmt.Errorf("git failed"))

		_, err := checker.GetStatus(ctx)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Formatter", func() {
	var formatter status.Formatter

	BeforeEach(func() {
		formatter = status.NewFormatter()
	})

	It("formats a full status", func() {
		output := formatter.Format(&status.Status{
			CurrentBranch: "feature-branch",
			Upstream:      "origin/feature-branch",
			Repositories: []forge.RemoteInfo{
				{Owner: "bborbe", RepositoryName: "pr-panel"},
				{Owner: "other", RepositoryName: "fork"},
			},
		})
		Expect(output).To(ContainSubstring("Branch:   feature-branch"))
		Expect(output).To(ContainSubstring("Upstream: origin/feature-branch"))
		Expect(output).To(ContainSubstring("Remotes:  bborbe/pr-panel, other/fork"))
	})

	It("marks a detached head", func() {
		output := formatter.Format(&status.Status{DetachedHead: true})
		Expect(output).To(ContainSubstring("(detached HEAD)"))
	})

	It("marks missing upstream and remotes", func() {
		output := formatter.Format(&status.Status{CurrentBranch: "main"})
		Expect(output).To(ContainSubstring("Upstream: (none)"))
		Expect(output).To(ContainSubstring("Remotes:  (none)"))
	})
})
