// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// scriptBundle is the external bundle referenced outside of dev mode.
const scriptBundle = "panel.js"

// devScript is inlined in dev mode so the view works without a built bundle.
const devScript = `window.addEventListener('message', function (event) {
  if (event.data && event.data.command === 'pr.initialize') {
    window.panelState = event.data.params;
  }
});`

// NewNonce returns a fresh content security policy nonce.
func NewNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Render produces the static panel markup. The content security policy
// only permits scripts carrying the given nonce. In dev mode the script
// is inlined, otherwise the external bundle is referenced.
func Render(nonce string, devMode bool) string {
	var script string
	if devMode {
		script = fmt.Sprintf("<script nonce=%q>%s</script>", nonce, devScript)
	} else {
		script = fmt.Sprintf("<script nonce=%q src=%q></script>", nonce, scriptBundle)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta http-equiv="Content-Security-Policy" content="default-src 'none'; style-src 'unsafe-inline'; script-src 'nonce-%s';">
<title>Create Pull Request</title>
</head>
<body>
<div id="app"></div>
%s
</body>
</html>
`, nonce, script)
}
