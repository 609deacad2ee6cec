// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

import (
	"context"
	"encoding/json"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/google/uuid"
)

// Command names the panel protocol commands.
const (
	CommandInitialize   Command = "pr.initialize"
	CommandCreate       Command = "pr.create"
	CommandChangeRemote Command = "pr.changeRemote"
	CommandChangeBranch Command = "pr.changeBranch"
	CommandCancelCreate Command = "pr.cancelCreate"
)

// AvailableCommands contains all commands of the panel protocol.
var AvailableCommands = Commands{
	CommandInitialize,
	CommandCreate,
	CommandChangeRemote,
	CommandChangeBranch,
	CommandCancelCreate,
}

// Command is a string-based enum for protocol commands.
type Command string

func (c Command) String() string {
	return string(c)
}

// Commands is a collection of Command values.
type Commands []Command

func (c Commands) Contains(command Command) bool {
	return collection.Contains(c, command)
}

// Message is a protocol message with a correlation ID.
type Message struct {
	ID      string          `json:"id"`
	Command Command         `json:"command"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// NewMessage creates a Message with a fresh correlation ID.
func NewMessage(ctx context.Context, command Command, params interface{}) (*Message, error) {
	message := &Message{
		ID:      uuid.NewString(),
		Command: command,
	}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, errors.Wrap(ctx, err, "marshal message params")
		}
		message.Params = data
	}
	return message, nil
}

// Reply answers a Message, correlated by the request ID.
type Reply struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// NewReply creates a successful Reply for the given request ID.
func NewReply(ctx context.Context, requestID string, result interface{}) (*Reply, error) {
	reply := &Reply{
		ID: requestID,
	}
	if result != nil {
		data, err := json.Marshal(result)
		if err != nil {
			return nil, errors.Wrap(ctx, err, "marshal reply result")
		}
		reply.Result = data
	}
	return reply, nil
}

// NewErrorReply creates a failed Reply for the given request ID.
func NewErrorReply(requestID string, message string) *Reply {
	return &Reply{
		ID:    requestID,
		Error: message,
	}
}

// Channel transports outbound messages to the rendered view.
//
//counterfeiter:generate -o ../../mocks/channel.go --fake-name Channel . Channel
type Channel interface {
	Post(ctx context.Context, message Message) error
}
