// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bborbe/pr-panel/pkg/channel"
	"github.com/bborbe/pr-panel/pkg/panel"
)

// NewPanelHandler creates a handler for the POST /api/v1/panel endpoint.
// The request body is one inbound protocol message; the response is the
// controller's reply envelope, or 204 when the command has no reply.
func NewPanelHandler(controller panel.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()

		var message channel.Message
		if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if message.Command == "" {
			http.Error(w, "Missing command", http.StatusBadRequest)
			return
		}

		reply, err := controller.HandleMessage(ctx, message)
		if err != nil {
			log.Printf("pr-panel: failed to handle %s: %v", message.Command, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if reply == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reply); err != nil {
			log.Printf("pr-panel: failed to encode reply: %v", err)
		}
	}
}
