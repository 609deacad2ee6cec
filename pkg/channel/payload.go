// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package channel

import (
	"github.com/bborbe/pr-panel/pkg/forge"
)

// InitializeParams is the payload of the outbound pr.initialize message.
type InitializeParams struct {
	AvailableRemotes   []forge.RemoteInfo `json:"availableRemotes"`
	DefaultRemote      forge.RemoteInfo   `json:"defaultRemote"`
	DefaultBranch      string             `json:"defaultBranch"`
	BranchesForRemote  []string           `json:"branchesForRemote"`
	DefaultTitle       string             `json:"defaultTitle"`
	DefaultDescription string             `json:"defaultDescription"`
	IsDraft            bool               `json:"isDraft"`
}

// CreateParams is the payload of the inbound pr.create command.
type CreateParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Base        string `json:"base"`
	Draft       bool   `json:"draft"`
}

// ChangeRemoteParams is the payload of the inbound pr.changeRemote command.
type ChangeRemoteParams struct {
	Owner          string `json:"owner"`
	RepositoryName string `json:"repositoryName"`
}

// ChangeRemoteResult is the reply payload of pr.changeRemote.
type ChangeRemoteResult struct {
	Branches      []string `json:"branches"`
	DefaultBranch string   `json:"defaultBranch"`
}

// ChangeBranchParams is the payload of the inbound pr.changeBranch command.
type ChangeBranchParams struct {
	Branch string `json:"branch"`
}
