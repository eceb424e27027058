// main.go sets up the signin command-line interface: a development server
// for the browser client, a terminal sign-in form and a helper that hashes
// fixture passwords.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"signin-front/internal/config"
	"signin-front/internal/logging"
)

var version = "dev" // this will be set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

// app carries the resolved configuration to the subcommands.
type app struct {
	cfgFile string
	cfg     config.Config
}

// newRootCmd creates the root command. Each call returns a fresh tree so
// tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "signin",
		Short:         "Sign-in form client, terminal form and development server",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			_, err = logging.Setup(logging.Options{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: cmd.ErrOrStderr(),
			})
			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./signin.yaml or <user config dir>/signin/signin.yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json)")
	flags.String("language", "", "message language (en, ja)")

	cmd.AddCommand(
		newServeCmd(a),
		newLoginCmd(a),
		newHashCmd(),
	)
	return cmd
}
