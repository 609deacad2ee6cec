// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"net/http"

	"github.com/bborbe/pr-panel/pkg/panel"
)

// NewViewHandler creates a handler for the GET /api/v1/panel/view endpoint.
// It serves the static panel markup with a fresh CSP nonce per request.
func NewViewHandler(devMode bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(panel.Render(panel.NewNonce(), devMode)))
	}
}
