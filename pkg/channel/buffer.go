// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

import (
	"context"
	"sync"
)

// Buffer is a Channel holding outbound messages until the view collects
// them.
type Buffer struct {
	mux      sync.Mutex
	messages []Message
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Post appends the message to the buffer.
func (b *Buffer) Post(ctx context.Context, message Message) error {
	b.mux.Lock()
	defer b.mux.Unlock()
	b.messages = append(b.messages, message)
	return nil
}

// Drain returns all buffered messages and empties the buffer.
func (b *Buffer) Drain() []Message {
	b.mux.Lock()
	defer b.mux.Unlock()
	messages := b.messages
	b.messages = nil
	return messages
}
