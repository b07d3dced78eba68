package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/reverbify/musicfn/internal/credstore"
	"github.com/reverbify/musicfn/internal/shared"
)

// Seed parses a browser cURL capture and stores the extracted headers as the
// user's credential record.
func (r *Runner) Seed(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.String("user")
	capturePath := cmd.String("curl")

	capture, err := shared.ParseCurlFile(capturePath)
	if err != nil {
		return fmt.Errorf("failed to parse capture: %w", err)
	}

	config := r.loadConfig(cmd.String("config"))

	store, err := r.openStore(config.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	record := &credstore.Record{
		Headers: capture.Headers,
		Cookie:  capture.Cookie,
	}

	if err := store.Put(ctx, userID, record); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	r.logger.Info("stored credentials", "user", userID, "headers", len(record.Headers))
	return nil
}
