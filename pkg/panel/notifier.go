// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"context"
	"log"
)

// Notifier surfaces user-visible notifications from the controller.
//
//counterfeiter:generate -o ../../mocks/notifier.go --fake-name Notifier . Notifier
type Notifier interface {
	ShowError(ctx context.Context, message string)
}

// logNotifier implements Notifier via the process log.
type logNotifier struct{}

// NewLogNotifier creates a Notifier writing to the process log.
func NewLogNotifier() Notifier {
	return &logNotifier{}
}

// ShowError logs the notification.
func (l *logNotifier) ShowError(ctx context.Context, message string) {
	log.Printf("pr-panel: %s", message)
}
