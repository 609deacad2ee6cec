// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/pkg/channel"
	"github.com/bborbe/pr-panel/pkg/server"
)

var _ = Describe("MessagesHandler", func() {
	var buffer *channel.Buffer

	BeforeEach(func() {
		buffer = channel.NewBuffer()
	})

	It("returns and drains the buffered messages", func() {
		ctx := context.Background()
		Expect(buffer.Post(ctx, channel.Message{ID: "1", Command: channel.CommandInitialize})).To(Succeed())

		req := httptest.NewRequest("GET", "/api/v1/panel/messages", nil)
		w := httptest.NewRecorder()

		server.NewMessagesHandler(buffer).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))

		var response server.MessagesResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Messages).To(HaveLen(1))
		Expect(response.Messages[0].Command).To(Equal(channel.CommandInitialize))

		Expect(buffer.Drain()).To(BeEmpty())
	})

	It("returns an empty list without messages", func() {
		req := httptest.NewRequest("GET", "/api/v1/panel/messages", nil)
		w := httptest.NewRecorder()

		server.NewMessagesHandler(buffer).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))

		var response server.MessagesResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Messages).To(BeEmpty())
	})

	It("rejects non-GET requests", func() {
		req := httptest.NewRequest("POST", "/api/v1/panel/messages", nil)
		w := httptest.NewRecorder()

		server.NewMessagesHandler(buffer).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(405))
	})
})

var _ = Describe("ViewHandler", func() {
	It("serves the panel markup", func() {
		req := httptest.NewRequest("GET", "/api/v1/panel/view", nil)
		w := httptest.NewRecorder()

		server.NewViewHandler(false).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Header().Get("Content-Type")).To(Equal("text/html; charset=utf-8"))
		Expect(w.Body.String()).To(ContainSubstring("Content-Security-Policy"))
		Expect(w.Body.String()).To(ContainSubstring("panel.js"))
	})

	It("inlines the script in dev mode", func() {
		req := httptest.NewRequest("GET", "/api/v1/panel/view", nil)
		w := httptest.NewRecorder()

		server.NewViewHandler(true).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Body.String()).NotTo(ContainSubstring("panel.js"))
	})

	It("rejects non-GET requests", func() {
		req := httptest.NewRequest("POST", "/api/v1/panel/view", nil)
		w := httptest.NewRecorder()

		server.NewViewHandler(false).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(405))
	})
})
