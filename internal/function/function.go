// package function implements the Reverbify proxy function: one invocation
// resolves a user's stored credentials, dispatches a single read-only call to
// the upstream music service, and wraps the outcome in a uniform envelope.
package function

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/reverbify/musicfn/internal/credstore"
	"github.com/reverbify/musicfn/internal/shared"
	"github.com/reverbify/musicfn/internal/ytmusic"
)

// Action identifies one of the supported read operations.
type Action string

const (
	ActionTestConnection      Action = "test_connection"
	ActionGetRecommendations  Action = "get_recommendations"
	ActionGetHome             Action = "get_home"
	ActionGetLibraryPlaylists Action = "get_library_playlists"
)

// ParseAction validates an inbound action value against the supported set.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionTestConnection, ActionGetRecommendations, ActionGetHome, ActionGetLibraryPlaylists:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrUnsupportedAction, s)
	}
}

// Request is the inbound invocation payload.
type Request struct {
	Action string `json:"action"`
}

// Envelope is the uniform invocation result returned to the caller.
type Envelope struct {
	Success  bool   `json:"success"`
	Data     any    `json:"data,omitempty"`
	Error    string `json:"error,omitempty"`
	Category string `json:"category,omitempty"`
}

// Failure categories, stable strings callers can branch on.
const (
	CategoryNotAuthenticated     = "not_authenticated"
	CategoryMalformedCredentials = "malformed_credentials"
	CategoryUnsupportedAction    = "unsupported_action"
	CategoryUpstreamError        = "upstream_error"
	CategoryInfrastructureError  = "infrastructure_error"
)

// MusicClient is the slice of the upstream client the dispatcher needs.
type MusicClient interface {
	TestConnection(ctx context.Context) (bool, error)
	GetHome(ctx context.Context) ([]ytmusic.Section, error)
	GetRecommendations(ctx context.Context) ([]ytmusic.Item, error)
	GetLibraryPlaylists(ctx context.Context) ([]ytmusic.Playlist, error)
}

// ClientFactory builds an upstream client from a credential record.
type ClientFactory func(record *credstore.Record) (MusicClient, error)

// Handler processes invocations. It holds no per-invocation state; each call
// to [Handler.Invoke] fetches its own credentials and builds its own client.
type Handler struct {
	store   credstore.Store
	factory ClientFactory
	logger  *log.Logger
	timeout time.Duration
}

// HandlerOpts contains the collaborators for a [Handler].
type HandlerOpts struct {
	Store    credstore.Store
	Factory  ClientFactory
	Logger   *log.Logger
	Upstream shared.UpstreamConfig
}

// NewHandler creates a [Handler]. When no factory is supplied, clients are
// built against the configured upstream service.
func NewHandler(opts HandlerOpts) *Handler {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	factory := opts.Factory
	if factory == nil {
		upstream := opts.Upstream
		factory = func(record *credstore.Record) (MusicClient, error) {
			return ytmusic.NewClient(record.Headers, record.Cookie, ytmusic.Options{
				BaseURL: upstream.BaseURL,
				Timeout: upstream.Timeout(),
			})
		}
	}

	return &Handler{
		store:   opts.Store,
		factory: factory,
		logger:  opts.Logger,
		timeout: opts.Upstream.Timeout(),
	}
}

// Invoke runs one invocation end to end and always returns a well-formed
// envelope; no failure escapes as a panic or naked error.
func (h *Handler) Invoke(ctx context.Context, userID string, req Request) Envelope {
	action, err := ParseAction(req.Action)
	if err != nil {
		h.logger.Warn("rejected action", "action", req.Action, "user", userID)
		return failure(err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	record, err := h.store.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, credstore.ErrNoRecord) {
			err = fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
		}
		h.logger.Error("credential lookup failed", "user", userID, "err", err)
		return failure(err)
	}

	client, err := h.factory(record)
	if err != nil {
		h.logger.Error("client construction failed", "user", userID, "err", err)
		return failure(err)
	}

	data, err := h.dispatch(ctx, action, client)
	if err != nil {
		h.logger.Error("upstream call failed", "action", action, "user", userID, "err", err)
		return failure(err)
	}

	h.logger.Info("invocation succeeded", "action", action, "user", userID)
	return Envelope{Success: true, Data: data}
}

// dispatch invokes exactly one upstream operation for the action.
func (h *Handler) dispatch(ctx context.Context, action Action, client MusicClient) (any, error) {
	switch action {
	case ActionTestConnection:
		return client.TestConnection(ctx)
	case ActionGetRecommendations:
		return client.GetRecommendations(ctx)
	case ActionGetHome:
		return client.GetHome(ctx)
	case ActionGetLibraryPlaylists:
		return client.GetLibraryPlaylists(ctx)
	default:
		// ParseAction screens inbound values; this arm guards against new
		// actions added without a dispatch case.
		return nil, fmt.Errorf("%w: %q", shared.ErrUnsupportedAction, action)
	}
}

// failure converts an error into a failure envelope with its coarse category.
func failure(err error) Envelope {
	return Envelope{
		Success:  false,
		Error:    err.Error(),
		Category: categorize(err),
	}
}

// categorize maps an error to the coarse failure taxonomy.
func categorize(err error) string {
	switch {
	case errors.Is(err, shared.ErrUnsupportedAction):
		return CategoryUnsupportedAction
	case errors.Is(err, credstore.ErrNoRecord), errors.Is(err, shared.ErrNotAuthenticated):
		return CategoryNotAuthenticated
	case errors.Is(err, shared.ErrMalformedCredentials):
		return CategoryMalformedCredentials
	case errors.Is(err, shared.ErrStoreUnavailable):
		return CategoryInfrastructureError
	default:
		// Everything past client construction is an upstream concern,
		// including timeouts.
		return CategoryUpstreamError
	}
}
