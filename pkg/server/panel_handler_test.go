// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/pr-panel/mocks"
	"github.com/bborbe/pr-panel/pkg/channel"
	"github.com/bborbe/pr-panel/pkg/server"
)

var _ = Describe("PanelHandler", func() {
	var mockController *mocks.PanelController

	BeforeEach(func() {
		mockController = &mocks.PanelController{}
	})

	It("dispatches the message and returns the reply", func() {
		mockController.HandleMessageReturns(&channel.Reply{ID: "request-1"}, nil)

		body := `{"id":"request-1","command":"pr.changeRemote","params":{"owner":"bborbe","repositoryName":"pr-panel"}}`
		req := httptest.NewRequest("POST", "/api/v1/panel", strings.NewReader(body))
		w := httptest.NewRecorder()

		server.NewPanelHandler(mockController).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))

		Expect(mockController.HandleMessageCallCount()).To(Equal(1))
		_, message := mockController.HandleMessageArgsForCall(0)
		Expect(message.ID).To(Equal("request-1"))
		Expect(message.Command).To(Equal(channel.CommandChangeRemote))

		var reply channel.Reply
		Expect(json.NewDecoder(w.Body).Decode(&reply)).To(Succeed())
		Expect(reply.ID).To(Equal("request-1"))
	})

	It("returns 204 when the command has no reply", func() {
		mockController.HandleMessageReturns(nil, nil)

		body := `{"id":"request-1","command":"pr.cancelCreate"}`
		req := httptest.NewRequest("POST", "/api/v1/panel", strings.NewReader(body))
		w := httptest.NewRecorder()

		server.NewPanelHandler(mockController).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(204))
	})

	It("rejects non-POST requests", func() {
		req := httptest.NewRequest("GET", "/api/v1/panel", nil)
		w := httptest.NewRecorder()

		server.NewPanelHandler(mockController).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(405))
		Expect(mockController.HandleMessageCallCount()).To(Equal(0))
	})

	It("rejects invalid bodies", func() {
		req := httptest.NewRequest("POST", "/api/v1/panel", strings.NewReader("{broken"))
		w := httptest.NewRecorder()

		server.NewPanelHandler(mockController).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(400))
	})

	It("rejects messages without a command", func() {
		req := httptest.NewRequest("POST", "/api/v1/panel", strings.NewReader(`{"id":"request-1"}`))
		w := httptest.NewRecorder()

		server.NewPanelHandler(mockController).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(400))
	})

	It("returns 500 when handling fails", func() {
		mockController.HandleMessageReturns(nil, fmt.Errorf("boom"))

		body := `{"id":"request-1","command":"pr.changeBranch","params":{"branch":"develop"}}`
		req := httptest.NewRequest("POST", "/api/v1/panel", strings.NewReader(body))
		w := httptest.NewRecorder()

		server.NewPanelHandler(mockController).ServeHTTP(w, req)

		Expect(w.Code).To(Equal(500))
	})
})
