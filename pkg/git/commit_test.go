// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/pkg/git"
)

var _ = Describe("ParseCommitMessage", func() {
	It("parses a single line message", func() {
		commit := git.ParseCommitMessage("fix login redirect")
		Expect(commit.Title).To(Equal("fix login redirect"))
		Expect(commit.Body).To(BeEmpty())
	})

	It("parses title and body", func() {
		commit := git.ParseCommitMessage("fix login redirect\n\nThe redirect lost the query string.\nNow it is preserved.")
		Expect(commit.Title).To(Equal("fix login redirect"))
		Expect(commit.Body).To(Equal("The redirect lost the query string.\nNow it is preserved."))
	})

	It("trims whitespace around title and body", func() {
		commit := git.ParseCommitMessage("  fix login redirect  \n\n  body text  \n")
		Expect(commit.Title).To(Equal("fix login redirect"))
		Expect(commit.Body).To(Equal("body text"))
	})

	It("handles empty message", func() {
		commit := git.ParseCommitMessage("")
		Expect(commit.Title).To(BeEmpty())
		Expect(commit.Body).To(BeEmpty())
	})

	It("keeps body blank lines between paragraphs", func() {
		commit := git.ParseCommitMessage("title\n\nfirst paragraph\n\nsecond paragraph")
		Expect(commit.Body).To(Equal("first paragraph\n\nsecond paragraph"))
	})
})
