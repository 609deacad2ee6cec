// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package panel

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log"
	"sync"

	"github.com/bborbe/errors"
	"github.com/bborbe/run"

	"github.com/bborbe/pr-panel/pkg/channel"
	"github.com/bborbe/pr-panel/pkg/config"
	"github.com/bborbe/pr-panel/pkg/defaults"
	"github.com/bborbe/pr-panel/pkg/forge"
	"github.com/bborbe/pr-panel/pkg/git"
	"github.com/bborbe/pr-panel/pkg/repomanager"
)

// Controller owns the panel protocol: it computes default field values,
// pushes the initialize message and dispatches inbound commands to the
// repository manager.
//
//counterfeiter:generate -o ../../mocks/panel-controller.go --fake-name PanelController . Controller
type Controller interface {
	Initialize(ctx context.Context) error
	HandleMessage(ctx context.Context, message channel.Message) (*channel.Reply, error)
	OnRemoteChanged(fn func(remote forge.RemoteInfo))
	OnBranchChanged(fn func(branch string))
	OnDone(fn func(pullRequest *forge.PullRequest))
}

// controller implements Controller.
type controller struct {
	cfg         config.Config
	gitClient   git.Client
	forgeClient forge.Client
	manager     repomanager.Manager
	computer    defaults.Computer
	channel     channel.Channel
	notifier    Notifier
	flags       Flags

	mux             sync.Mutex
	selectedRemote  *forge.RemoteInfo
	selectedBranch  string
	remoteListeners []func(remote forge.RemoteInfo)
	branchListeners []func(branch string)
	doneListeners   []func(pullRequest *forge.PullRequest)
	doneFired       bool
}

// NewController creates a new Controller.
func NewController(
	cfg config.Config,
	gitClient git.Client,
	forgeClient forge.Client,
	manager repomanager.Manager,
	computer defaults.Computer,
	ch channel.Channel,
	notifier Notifier,
	flags Flags,
) Controller {
	return &controller{
		cfg:         cfg,
		gitClient:   gitClient,
		forgeClient: forgeClient,
		manager:     manager,
		computer:    computer,
		channel:     ch,
		notifier:    notifier,
		flags:       flags,
	}
}

// Initialize computes all default field values and posts a single
// pr.initialize message. Fails fast with git.ErrDetachedHead when the
// repository has no current branch.
func (c *controller) Initialize(ctx context.Context) error {
	branch, err := c.gitClient.CurrentBranch(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "get current branch")
	}

	repositories, err := c.manager.ListRepositories(ctx)
	if err != nil {
		return errors.Wrap(ctx, err, "list repositories")
	}
	if len(repositories) == 0 {
		return errors.Errorf(ctx, "no forge-hosted remotes found")
	}

	defaultRemote := c.resolveDefaultRemote(ctx, repositories)

	defaultBranch, err := c.forgeClient.GetDefaultBranch(ctx, defaultRemote)
	if err != nil {
		return errors.Wrap(ctx, err, "get default branch")
	}

	// Title, description, draft and branch listing are independent
	// collaborator calls. A failure in any one aborts the whole send.
	var title string
	var description string
	var draft bool
	var branches []string
	err = run.CancelOnFirstError(
		ctx,
		func(ctx context.Context) error {
			var err error
			title, err = c.computer.DefaultTitle(ctx, defaultBranch)
			return err
		},
		func(ctx context.Context) error {
			var err error
			description, err = c.computer.DefaultDescription(ctx)
			return err
		},
		func(ctx context.Context) error {
			var err error
			draft, err = c.computer.DefaultDraft(ctx)
			return err
		},
		func(ctx context.Context) error {
			var err error
			branches, err = c.forgeClient.ListBranches(ctx, defaultRemote)
			return err
		},
	)
	if err != nil {
		return errors.Wrap(ctx, err, "compute defaults")
	}

	message, err := channel.NewMessage(ctx, channel.CommandInitialize, channel.InitializeParams{
		AvailableRemotes:   repositories,
		DefaultRemote:      defaultRemote,
		DefaultBranch:      defaultBranch,
		BranchesForRemote:  branches,
		DefaultTitle:       title,
		DefaultDescription: description,
		IsDraft:            draft,
	})
	if err != nil {
		return errors.Wrap(ctx, err, "build initialize message")
	}
	if err := c.channel.Post(ctx, *message); err != nil {
		return errors.Wrap(ctx, err, "post initialize message")
	}

	c.mux.Lock()
	c.selectedRemote = &defaultRemote
	c.selectedBranch = branch
	c.mux.Unlock()

	return nil
}

// resolveDefaultRemote prefers the configured remote name, falling back to
// the first known repository.
func (c *controller) resolveDefaultRemote(
	ctx context.Context,
	repositories []forge.RemoteInfo,
) forge.RemoteInfo {
	remote, err := c.manager.RepositoryForRemote(ctx, c.cfg.DefaultRemote)
	if err != nil {
		log.Printf(
			"pr-panel: configured remote %s not usable, falling back to %s: %v",
			c.cfg.DefaultRemote, repositories[0], err,
		)
		return repositories[0]
	}
	return *remote
}

// HandleMessage dispatches an inbound protocol command.
// Commands without a reply return a nil reply.
func (c *controller) HandleMessage(
	ctx context.Context,
	message channel.Message,
) (*channel.Reply, error) {
	switch message.Command {
	case channel.CommandCreate:
		return c.handleCreate(ctx, message), nil
	case channel.CommandChangeRemote:
		return c.handleChangeRemote(ctx, message), nil
	case channel.CommandChangeBranch:
		return nil, c.handleChangeBranch(ctx, message)
	case channel.CommandCancelCreate:
		return nil, c.handleCancel(ctx)
	default:
		c.notifier.ShowError(ctx, "unsupported command: "+message.Command.String())
		return nil, nil
	}
}

// handleCreate creates the pull request. All failures become error replies.
func (c *controller) handleCreate(ctx context.Context, message channel.Message) *channel.Reply {
	var params channel.CreateParams
	if err := json.Unmarshal(message.Params, &params); err != nil {
		return channel.NewErrorReply(message.ID, "invalid create params")
	}

	pullRequest, err := c.create(ctx, params)
	if err != nil {
		return channel.NewErrorReply(message.ID, err.Error())
	}
	if pullRequest == nil {
		// Collaborator declined - no pull request was created
		return channel.NewErrorReply(message.ID, "pull request creation cancelled")
	}

	reply, err := channel.NewReply(ctx, message.ID, struct{}{})
	if err != nil {
		return channel.NewErrorReply(message.ID, err.Error())
	}

	c.fireDone(pullRequest)
	return reply
}

// create resolves the upstream, delegates creation and associates the
// local branch with the created pull request.
func (c *controller) create(
	ctx context.Context,
	params channel.CreateParams,
) (*forge.PullRequest, error) {
	upstream, err := c.gitClient.Upstream(ctx)
	if err != nil {
		if stderrors.Is(err, git.ErrNoUpstream) {
			return nil, git.ErrDetachedHead
		}
		return nil, errors.Wrap(ctx, err, "get upstream")
	}

	remote, err := c.manager.RepositoryForRemote(ctx, upstream.Remote)
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "resolve repository of remote %s", upstream.Remote)
	}

	pullRequest, err := c.manager.CreatePullRequest(ctx, forge.CreateRequest{
		Remote: *remote,
		Title:  params.Title,
		Body:   params.Description,
		Base:   params.Base,
		Head:   remote.Owner + ":" + upstream.Branch,
		Draft:  params.Draft,
	})
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create pull request")
	}
	if pullRequest == nil {
		return nil, nil
	}

	branch, err := c.gitClient.CurrentBranch(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get current branch")
	}
	if err := c.manager.AssignBranch(ctx, branch, pullRequest, *remote); err != nil {
		return nil, errors.Wrap(ctx, err, "assign branch")
	}

	return pullRequest, nil
}

// handleChangeRemote switches the selected repository and replies with its
// branches and default branch.
func (c *controller) handleChangeRemote(
	ctx context.Context,
	message channel.Message,
) *channel.Reply {
	var params channel.ChangeRemoteParams
	if err := json.Unmarshal(message.Params, &params); err != nil {
		return channel.NewErrorReply(message.ID, "invalid changeRemote params")
	}

	remote, err := c.manager.Lookup(ctx, forge.RemoteInfo{
		Owner:          params.Owner,
		RepositoryName: params.RepositoryName,
	})
	if err != nil {
		if stderrors.Is(err, repomanager.ErrRepositoryNotFound) {
			return channel.NewErrorReply(
				message.ID,
				"repository "+params.Owner+"/"+params.RepositoryName+" not found",
			)
		}
		return channel.NewErrorReply(message.ID, err.Error())
	}

	defaultBranch, err := c.forgeClient.GetDefaultBranch(ctx, *remote)
	if err != nil {
		return channel.NewErrorReply(message.ID, err.Error())
	}
	branches, err := c.forgeClient.ListBranches(ctx, *remote)
	if err != nil {
		return channel.NewErrorReply(message.ID, err.Error())
	}

	c.mux.Lock()
	c.selectedRemote = remote
	listeners := append([]func(forge.RemoteInfo){}, c.remoteListeners...)
	c.mux.Unlock()
	for _, listener := range listeners {
		listener(*remote)
	}

	reply, err := channel.NewReply(ctx, message.ID, channel.ChangeRemoteResult{
		Branches:      branches,
		DefaultBranch: defaultBranch,
	})
	if err != nil {
		return channel.NewErrorReply(message.ID, err.Error())
	}
	return reply
}

// handleChangeBranch records the selection and re-emits it as an event.
func (c *controller) handleChangeBranch(ctx context.Context, message channel.Message) error {
	var params channel.ChangeBranchParams
	if err := json.Unmarshal(message.Params, &params); err != nil {
		return errors.Wrap(ctx, err, "invalid changeBranch params")
	}

	c.mux.Lock()
	c.selectedBranch = params.Branch
	listeners := append([]func(string){}, c.branchListeners...)
	c.mux.Unlock()
	for _, listener := range listeners {
		listener(params.Branch)
	}
	return nil
}

// handleCancel fires the completion event without a pull request and
// clears the in-create execution flag.
func (c *controller) handleCancel(ctx context.Context) error {
	c.fireDone(nil)
	if err := c.flags.SetInCreate(ctx, false); err != nil {
		return errors.Wrap(ctx, err, "clear in-create flag")
	}
	return nil
}

// OnRemoteChanged registers a listener for remote selection changes.
func (c *controller) OnRemoteChanged(fn func(remote forge.RemoteInfo)) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.remoteListeners = append(c.remoteListeners, fn)
}

// OnBranchChanged registers a listener for branch selection changes.
func (c *controller) OnBranchChanged(fn func(branch string)) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.branchListeners = append(c.branchListeners, fn)
}

// OnDone registers a listener for the completion event.
func (c *controller) OnDone(fn func(pullRequest *forge.PullRequest)) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.doneListeners = append(c.doneListeners, fn)
}

// fireDone fires the completion event at most once.
func (c *controller) fireDone(pullRequest *forge.PullRequest) {
	c.mux.Lock()
	if c.doneFired {
		c.mux.Unlock()
		return
	}
	c.doneFired = true
	listeners := append([]func(*forge.PullRequest){}, c.doneListeners...)
	c.mux.Unlock()
	for _, listener := range listeners {
		listener(pullRequest)
	}
}
