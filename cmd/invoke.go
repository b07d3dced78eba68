package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/reverbify/musicfn/internal/function"
	"github.com/reverbify/musicfn/internal/shared"
)

// Environment variables the hosting platform populates for an invocation.
const (
	envFunctionData = "REVERBIFY_FUNCTION_DATA"
	envFunctionUser = "REVERBIFY_FUNCTION_USER_ID"
)

// Invoke runs a single invocation locally and prints the result envelope.
//
// The payload comes from --data or the platform data variable; a payload that
// fails to parse degrades to the default action rather than aborting, so a
// broken caller still gets a well-formed envelope.
func (r *Runner) Invoke(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.String("user")
	if userID == "" {
		userID = os.Getenv(envFunctionUser)
	}
	if userID == "" {
		return fmt.Errorf("%w: user identity (--user or %s)", shared.ErrMissingArgument, envFunctionUser)
	}

	req := function.Request{Action: string(function.ActionTestConnection)}

	data := cmd.String("data")
	if data == "" {
		data = os.Getenv(envFunctionData)
	}
	if data != "" {
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			r.logger.Warn("malformed payload, using default action", "err", err)
			req = function.Request{Action: string(function.ActionTestConnection)}
		}
	}

	if action := cmd.String("action"); action != "" {
		req.Action = action
	}

	config := r.loadConfig(cmd.String("config"))

	store, err := r.openStore(config.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	fn := function.NewHandler(function.HandlerOpts{
		Store:    store,
		Logger:   r.logger,
		Upstream: config.Upstream,
	})

	envelope := fn.Invoke(ctx, userID, req)
	return r.writeJSON(envelope, cmd.Bool("pretty"))
}
