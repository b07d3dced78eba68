// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand initializes local configuration and the credential store schema
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Write a starter config file and initialize the credential store",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "write-config",
				Usage: "Create the config file if it does not exist",
			},
		},
		Action: r.Setup,
	}
}

// serveCommand runs the HTTP invocation surface
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve function invocations over HTTP",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: r.Serve,
	}
}

// invokeCommand runs a single invocation locally, the way the platform would
func invokeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "invoke",
		Usage: "Run one invocation and print the result envelope",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "user",
				Aliases: []string{"u"},
				Usage:   "User identity (falls back to REVERBIFY_FUNCTION_USER_ID)",
			},
			&cli.StringFlag{
				Name:    "action",
				Aliases: []string{"a"},
				Usage:   "Action to dispatch",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "JSON payload (falls back to REVERBIFY_FUNCTION_DATA)",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print the envelope",
				Value: true,
			},
		},
		Action: r.Invoke,
	}
}

// seedCommand stores credentials for a user from a browser capture
func seedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Store credentials for a user from a browser cURL capture",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "user",
				Aliases:  []string{"u"},
				Usage:    "User identity to store credentials for",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "curl",
				Usage:    "Path to a file containing a copied cURL command",
				Required: true,
			},
		},
		Action: r.Seed,
	}
}
