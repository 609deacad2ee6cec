// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forge_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/pkg/forge"
)

var _ = Describe("ParseRemoteURL", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("parses https urls", func() {
		remote, err := forge.ParseRemoteURL(ctx, "https://github.com/bborbe/pr-panel.git")
		Expect(err).NotTo(HaveOccurred())
		Expect(remote.Owner).To(Equal("bborbe"))
		Expect(remote.RepositoryName).To(Equal("pr-panel"))
	})

	It("parses https urls without .git suffix", func() {
		remote, err := forge.ParseRemoteURL(ctx, "https://github.com/bborbe/pr-panel")
		Expect(err).NotTo(HaveOccurred())
		Expect(remote.Owner).To(Equal("bborbe"))
		Expect(remote.RepositoryName).To(Equal("pr-panel"))
	})

	It("parses scp-like ssh urls", func() {
		remote, err := forge.ParseRemoteURL(ctx, "git@github.com:bborbe/pr-panel.git")
		Expect(err).NotTo(HaveOccurred())
		Expect(remote.Owner).To(Equal("bborbe"))
		Expect(remote.RepositoryName).To(Equal("pr-panel"))
	})

	It("parses ssh scheme urls", func() {
		remote, err := forge.ParseRemoteURL(ctx, "ssh://git@github.com/bborbe/pr-panel.git")
		Expect(err).NotTo(HaveOccurred())
		Expect(remote.Owner).To(Equal("bborbe"))
		Expect(remote.RepositoryName).To(Equal("pr-panel"))
	})

	It("fails for urls without owner and repository", func() {
		_, err := forge.ParseRemoteURL(ctx, "https://github.com/")
		Expect(err).To(HaveOccurred())
	})

	It("fails for urls without a path", func() {
		_, err := forge.ParseRemoteURL(ctx, "origin")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RemoteInfo", func() {
	It("formats as owner/name", func() {
		remote := forge.RemoteInfo{Owner: "bborbe", RepositoryName: "pr-panel"}
		Expect(remote.String()).To(Equal("bborbe/pr-panel"))
	})
})
