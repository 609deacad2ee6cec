// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/pkg/config"
)

var _ = Describe("Config", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Defaults", func() {
		It("returns config with default values", func() {
			cfg := config.Defaults()
			Expect(cfg.TitleSource).To(Equal(config.TitleSourceAsk))
			Expect(cfg.DescriptionSource).To(Equal(config.DescriptionSourceAsk))
			Expect(cfg.DefaultRemote).To(Equal("origin"))
			Expect(cfg.Draft).To(BeFalse())
			Expect(cfg.BranchTitleCommitThreshold).To(Equal(1))
			Expect(cfg.ServerPort).To(Equal(8080))
			Expect(cfg.DevMode).To(BeFalse())
		})

		It("returns a valid config", func() {
			Expect(config.Defaults().Validate(ctx)).To(Succeed())
		})
	})

	Describe("Validate", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = config.Defaults()
		})

		It("succeeds for valid config", func() {
			Expect(cfg.Validate(ctx)).To(Succeed())
		})

		It("fails for unknown title source", func() {
			cfg.TitleSource = "banana"
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for unknown description source", func() {
			cfg.DescriptionSource = "banana"
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for empty default remote", func() {
			cfg.DefaultRemote = ""
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for zero commit threshold", func() {
			cfg.BranchTitleCommitThreshold = 0
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})

		It("fails for invalid server port", func() {
			cfg.ServerPort = 0
			Expect(cfg.Validate(ctx)).NotTo(Succeed())

			cfg.ServerPort = 70000
			Expect(cfg.Validate(ctx)).NotTo(Succeed())
		})
	})

	Describe("TitleSource", func() {
		It("accepts all available sources", func() {
			for _, source := range config.AvailableTitleSources {
				Expect(source.Validate(ctx)).To(Succeed())
			}
		})

		It("rejects unknown sources", func() {
			Expect(config.TitleSource("unknown").Validate(ctx)).NotTo(Succeed())
		})
	})

	Describe("DescriptionSource", func() {
		It("accepts all available sources", func() {
			for _, source := range config.AvailableDescriptionSources {
				Expect(source.Validate(ctx)).To(Succeed())
			}
		})

		It("rejects unknown sources", func() {
			Expect(config.DescriptionSource("unknown").Validate(ctx)).NotTo(Succeed())
		})
	})
})
