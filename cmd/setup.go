package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/reverbify/musicfn/internal/shared"
)

// Setup writes a starter config file when requested and initializes the
// credential store backend.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if cmd.Bool("write-config") {
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}
		r.logger.Info("wrote config file", "path", configPath)
	}

	config := r.loadConfig(configPath)

	store, err := r.openStore(config.Store)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer store.Close()

	r.logger.Info("credential store ready", "driver", config.Store.Driver)
	return nil
}
