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
	"github.com/bborbe/pr-panel/pkg/forge"
	"github.com/bborbe/pr-panel/pkg/git"
)

var _ = Describe("CreateCommand", func() {
	var (
		ctx          context.Context
		mockGit      *mocks.GitClient
		mockForge    *mocks.ForgeClient
		mockManager  *mocks.RepoManager
		mockComputer *mocks.DefaultsComputer
		command      cmd.CreateCommand
		remote       forge.RemoteInfo
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockGit = &mocks.GitClient{}
		mockForge = &mocks.ForgeClient{}
		mockManager = &mocks.RepoManager{}
		mockComputer = &mocks.DefaultsComputer{}
		command = cmd.NewCreateCommand(mockGit, mockForge, mockManager, mockComputer)

		remote = forge.RemoteInfo{Owner: "bborbe", RepositoryName: "pr-panel"}

		mockGit.UpstreamReturns(&git.Upstream{Remote: "origin", Branch: "feature-branch"}, nil)
		mockGit.CurrentBranchReturns("feature-branch", nil)
		mockManager.RepositoryForRemoteReturns(&remote, nil)
		mockForge.GetDefaultBranchReturns("main", nil)
		mockComputer.DefaultTitleReturns("add feature", nil)
		mockComputer.DefaultDescriptionReturns("## Summary", nil)
		mockComputer.DefaultDraftReturns(false, nil)
		mockManager.CreatePullRequestReturns(&forge.PullRequest{
			Number: 42,
			URL:    "https://github.com/bborbe/pr-panel/pull/42",
		}, nil)
	})

	It("creates the pull request from the computed defaults", func() {
		Expect(command.Run(ctx, nil)).To(Succeed())

		Expect(mockManager.CreatePullRequestCallCount()).To(Equal(1))
		_, request := mockManager.CreatePullRequestArgsForCall(0)
		Expect(request.Remote).To(Equal(remote))
		Expect(request.Title).To(Equal("add feature"))
		Expect(request.Body).To(Equal("## Summary"))
		Expect(request.Base).To(Equal("main"))
		Expect(request.Head).To(Equal("bborbe:feature-branch"))
		Expect(request.Draft).To(BeFalse())
	})

	It("records the pull request on the branch", func() {
		Expect(command.Run(ctx, nil)).To(Succeed())

		Expect(mockManager.AssignBranchCallCount()).To(Equal(1))
		_, branch, pullRequest, assignedRemote := mockManager.AssignBranchArgsForCall(0)
		Expect(branch).To(Equal("feature-branch"))
		Expect(pullRequest.Number).To(Equal(42))
		Expect(assignedRemote).To(Equal(remote))
	})

	It("skips the draft policy when --draft is given", func() {
		Expect(command.Run(ctx, []string{"--draft"})).To(Succeed())

		Expect(mockComputer.DefaultDraftCallCount()).To(Equal(0))
		_, request := mockManager.CreatePullRequestArgsForCall(0)
		Expect(request.Draft).To(BeTrue())
	})

	It("fails without an upstream", func() {
		mockGit.UpstreamReturns(nil, git.ErrNoUpstream)

		err := command.Run(ctx, nil)
		Expect(err).To(HaveOccurred())
		Expect(mockManager.CreatePullRequestCallCount()).To(Equal(0))
	})

	It("fails when the creation is cancelled", func() {
		mockManager.CreatePullRequestReturns(nil, nil)

		err := command.Run(ctx, nil)
		Expect(err).To(MatchError(ContainSubstring("pull request creation cancelled")))
		Expect(mockManager.AssignBranchCallCount()).To(Equal(0))
	})

	It("fails when the forge rejects the request", func() {
		mockManager.CreatePullRequestReturns(nil, fmt.Errorf("forge down"))

		err := command.Run(ctx, nil)
		Expect(err).To(HaveOccurred())
		Expect(mockManager.AssignBranchCallCount()).To(Equal(0))
	})
})
