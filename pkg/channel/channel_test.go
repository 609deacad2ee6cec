// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel_test

import (
	"context"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/pkg/channel"
)

var _ = Describe("Message", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("NewMessage", func() {
		It("assigns a fresh correlation id", func() {
			first, err := channel.NewMessage(ctx, channel.CommandInitialize, nil)
			Expect(err).NotTo(HaveOccurred())
			second, err := channel.NewMessage(ctx, channel.CommandInitialize, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.ID).NotTo(BeEmpty())
			Expect(second.ID).NotTo(BeEmpty())
			Expect(first.ID).NotTo(Equal(second.ID))
		})

		It("marshals the params", func() {
			message, err := channel.NewMessage(ctx, channel.CommandChangeBranch, channel.ChangeBranchParams{
				Branch: "feature-branch",
			})
			Expect(err).NotTo(HaveOccurred())

			var params channel.ChangeBranchParams
			Expect(json.Unmarshal(message.Params, &params)).To(Succeed())
			Expect(params.Branch).To(Equal("feature-branch"))
		})

		It("leaves params empty when nil", func() {
			message, err := channel.NewMessage(ctx, channel.CommandCancelCreate, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(message.Params).To(BeNil())
		})
	})

	Describe("NewReply", func() {
		It("correlates via the request id", func() {
			reply, err := channel.NewReply(ctx, "request-1", struct{}{})
			Expect(err).NotTo(HaveOccurred())
			Expect(reply.ID).To(Equal("request-1"))
			Expect(reply.Error).To(BeEmpty())
		})
	})

	Describe("NewErrorReply", func() {
		It("carries the error message", func() {
			reply := channel.NewErrorReply("request-1", "it broke")
			Expect(reply.ID).To(Equal("request-1"))
			Expect(reply.Error).To(Equal("it broke"))
			Expect(reply.Result).To(BeNil())
		})
	})

	Describe("AvailableCommands", func() {
		It("contains all protocol commands", func() {
			Expect(channel.AvailableCommands.Contains(channel.CommandInitialize)).To(BeTrue())
			Expect(channel.AvailableCommands.Contains(channel.CommandCreate)).To(BeTrue())
			Expect(channel.AvailableCommands.Contains(channel.CommandChangeRemote)).To(BeTrue())
			Expect(channel.AvailableCommands.Contains(channel.CommandChangeBranch)).To(BeTrue())
			Expect(channel.AvailableCommands.Contains(channel.CommandCancelCreate)).To(BeTrue())
		})

		It("does not contain unknown commands", func() {
			Expect(channel.AvailableCommands.Contains(channel.Command("pr.unknown"))).To(BeFalse())
		})
	})
})

var _ = Describe("Buffer", func() {
	var (
		ctx    context.Context
		buffer *channel.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		buffer = channel.NewBuffer()
	})

	It("drains posted messages in order", func() {
		Expect(buffer.Post(ctx, channel.Message{ID: "1"})).To(Succeed())
		Expect(buffer.Post(ctx, channel.Message{ID: "2"})).To(Succeed())

		messages := buffer.Drain()
		Expect(messages).To(HaveLen(2))
		Expect(messages[0].ID).To(Equal("1"))
		Expect(messages[1].ID).To(Equal("2"))
	})

	It("is empty after draining", func() {
		Expect(buffer.Post(ctx, channel.Message{ID: "1"})).To(Succeed())
		buffer.Drain()
		Expect(buffer.Drain()).To(BeEmpty())
	})

	It("drains nothing when empty", func() {
		Expect(buffer.Drain()).To(BeEmpty())
	})
})
