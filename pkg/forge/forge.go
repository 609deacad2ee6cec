// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forge

import (
	"context"
	"fmt"

	libtime "github.com/bborbe/time"
)

// RemoteInfo identifies a forge-hosted repository.
type RemoteInfo struct {
	Owner          string `json:"owner"`
	RepositoryName string `json:"repositoryName"`
}

func (r RemoteInfo) String() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.RepositoryName)
}

// CreateRequest holds the parameters of a single pull request creation.
type CreateRequest struct {
	Remote RemoteInfo
	Title  string
	Body   string
	Base   string
	Head   string
	Draft  bool
}

// PullRequest holds the forge's view of a created pull request.
type PullRequest struct {
	Number    int              `json:"number"`
	URL       string           `json:"url"`
	Title     string           `json:"title"`
	Base      string           `json:"base"`
	Head      string           `json:"head"`
	Draft     bool             `json:"draft"`
	CreatedAt libtime.DateTime `json:"createdAt"`
}

// Client provides forge operations.
// CreatePullRequest returns a nil pull request without error when the
// forge declined the creation (user cancellation).
//
//counterfeiter:generate -o ../../mocks/forge-client.go --fake-name ForgeClient . Client
type Client interface {
	GetDefaultBranch(ctx context.Context, remote RemoteInfo) (string, error)
	ListBranches(ctx context.Context, remote RemoteInfo) ([]string, error)
	CreatePullRequest(ctx context.Context, request CreateRequest) (*PullRequest, error)
}
