// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package repomanager_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/mocks"
	"github.com/bborbe/pr-panel/pkg/forge"
	"github.com/bborbe/pr-panel/pkg/repomanager"
)

var _ = Describe("Manager", func() {
	var (
		ctx       context.Context
		mockGit   *mocks.GitClient
		mockForge *mocks.ForgeClient
		manager   repomanager.Manager
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockGit = &mocks.GitClient{}
		mockForge = &mocks.ForgeClient{}
		manager = repomanager.NewManager(mockGit, mockForge)
	})

	Describe("ListRepositories", func() {
		It("returns the repositories behind the remotes", func() {
			mockGit.RemoteNamesReturns([]string{"origin", "fork"}, nil)
			mockGit.RemoteURLCalls(func(ctx context.Context, name string) (string, error) {
				switch name {
				case "origin":
					return "git@github.com:bborbe/pr-panel.git", nil
				case "fork":
					return "https://github.com/other/pr-panel.git", nil
				}
				return "", fmt.Errorf("unknown remote %s", name)
			})

			repositories, err := manager.ListRepositories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(repositories).To(Equal([]forge.RemoteInfo{
				{Owner: "bborbe", RepositoryName: "pr-panel"},
				{Owner: "other", RepositoryName: "pr-panel"},
			}))
		})

		It("skips remotes with unparseable urls", func() {
			mockGit.RemoteNamesReturns([]string{"origin", "broken"}, nil)
			mockGit.RemoteURLCalls(func(ctx context.Context, name string) (string, error) {
				if name == "origin" {
					return "git@github.com:bborbe/pr-panel.git", nil
				}
				return "not-a-url", nil
			})

			repositories, err := manager.ListRepositories(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(repositories).To(HaveLen(1))
			Expect(repositories[0].Owner).To(Equal("bborbe"))
		})

		It("fails when remotes cannot be listed", func() {
			mockGit.RemoteNamesReturns(nil, fmt.Errorf("git failed"))

			_, err := manager.ListRepositories(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Lookup", func() {
		BeforeEach(func() {
			mockGit.RemoteNamesReturns([]string{"origin"}, nil)
			mockGit.RemoteURLReturns("git@github.com:bborbe/pr-panel.git", nil)
		})

		It("finds a known repository", func() {
			remote, err := manager.Lookup(ctx, forge.RemoteInfo{
				Owner:          "bborbe",
				RepositoryName: "pr-panel",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(remote.Owner).To(Equal("bborbe"))
		})

		It("returns ErrRepositoryNotFound for unknown repositories", func() {
			_, err := manager.Lookup(ctx, forge.RemoteInfo{
				Owner:          "unknown",
				RepositoryName: "repo",
			})
			Expect(err).To(MatchError(repomanager.ErrRepositoryNotFound))
		})
	})

	Describe("RepositoryForRemote", func() {
		It("resolves the remote url", func() {
			mockGit.RemoteURLReturns("git@github.com:bborbe/pr-panel.git", nil)

			remote, err := manager.RepositoryForRemote(ctx, "origin")
			Expect(err).NotTo(HaveOccurred())
			Expect(remote.Owner).To(Equal("bborbe"))
			Expect(remote.RepositoryName).To(Equal("pr-panel"))
		})

		It("fails for unknown remotes", func() {
			mockGit.RemoteURLReturns("", fmt.Errorf("no such remote"))

			_, err := manager.RepositoryForRemote(ctx, "missing")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CreatePullRequest", func() {
		It("delegates to the forge client", func() {
			expected := &forge.PullRequest{Number: 42}
			mockForge.CreatePullRequestReturns(expected, nil)

			pullRequest, err := manager.CreatePullRequest(ctx, forge.CreateRequest{Title: "t"})
			Expect(err).NotTo(HaveOccurred())
			Expect(pullRequest).To(Equal(expected))
			Expect(mockForge.CreatePullRequestCallCount()).To(Equal(1))
		})

		It("passes through a nil pull request", func() {
			mockForge.CreatePullRequestReturns(nil, nil)

			pullRequest, err := manager.CreatePullRequest(ctx, forge.CreateRequest{})
			Expect(err).NotTo(HaveOccurred())
			Expect(pullRequest).To(BeNil())
		})
	})

	Describe("AssignBranch", func() {
		It("records owner, repository and number on the branch", func() {
			err := manager.AssignBranch(
				ctx,
				"feature-branch",
				&forge.PullRequest{Number: 42},
				forge.RemoteInfo{Owner: "bborbe", RepositoryName: "pr-panel"},
			)
			Expect(err).NotTo(HaveOccurred())

			Expect(mockGit.SetBranchConfigCallCount()).To(Equal(1))
			_, branch, key, value := mockGit.SetBranchConfigArgsForCall(0)
			Expect(branch).To(Equal("feature-branch"))
			Expect(key).To(Equal("pr-owner-number"))
			Expect(value).To(Equal("bborbe#pr-panel#42"))
		})

		It("fails when git config fails", func() {
			mockGit.SetBranchConfigReturns(fmt.Errorf("config failed"))

			err := manager.AssignBranch(
				ctx,
				"feature-branch",
				&forge.PullRequest{Number: 1},
				forge.RemoteInfo{Owner: "o", RepositoryName: "r"},
			)
			Expect(err).To(HaveOccurred())
		})
	})
})
