// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/pkg/panel"
)

var _ = Describe("Render", func() {
	It("embeds the nonce in the content security policy", func() {
		html := panel.Render("abc123", false)
		Expect(html).To(ContainSubstring("script-src 'nonce-abc123'"))
	})

	It("references the external bundle outside of dev mode", func() {
		html := panel.Render("abc123", false)
		Expect(html).To(ContainSubstring(`src="panel.js"`))
		Expect(html).To(ContainSubstring(`<script nonce="abc123"`))
	})

	It("inlines the script in dev mode", func() {
		html := panel.Render("abc123", true)
		Expect(html).NotTo(ContainSubstring(`src="panel.js"`))
		Expect(html).To(ContainSubstring("window.addEventListener"))
	})
})

var _ = Describe("NewNonce", func() {
	It("returns distinct values", func() {
		Expect(panel.NewNonce()).NotTo(Equal(panel.NewNonce()))
	})

	It("contains no dashes", func() {
		Expect(panel.NewNonce()).NotTo(ContainSubstring("-"))
	})
})
