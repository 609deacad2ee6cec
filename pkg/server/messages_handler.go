// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bborbe/pr-panel/pkg/channel"
)

// MessagesResponse is the response of GET /api/v1/panel/messages.
type MessagesResponse struct {
	Messages []channel.Message `json:"messages"`
}

// NewMessagesHandler creates a handler for the GET /api/v1/panel/messages
// endpoint. The view polls it to collect outbound protocol messages.
func NewMessagesHandler(buffer *channel.Buffer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		response := MessagesResponse{Messages: buffer.Drain()}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Printf("pr-panel: failed to encode messages response: %v", err)
		}
	}
}
