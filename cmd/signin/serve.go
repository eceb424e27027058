package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"signin-front/internal/devserver"
	"signin-front/internal/logging"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compiled client and a fixture login endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.For("serve")

			accounts, err := devserver.LoadAccounts(a.cfg.AccountsFile)
			if errors.Is(err, devserver.ErrNoAccounts) {
				log.WithField("file", a.cfg.AccountsFile).Warn("no fixture accounts, every login will be rejected")
			} else if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := devserver.New(accounts, a.cfg.StaticDir, devserver.WithLogger(logging.For("devserver")))
			log.WithField("accounts", len(accounts)).WithField("static_dir", a.cfg.StaticDir).Info("starting")
			return srv.ListenAndServe(ctx, a.cfg.Listen)
		},
	}
	cmd.Flags().String("listen", "", "address to listen on")
	cmd.Flags().String("static-dir", "", "directory with index.html and the compiled client")
	cmd.Flags().String("accounts-file", "", "yaml file with fixture accounts")
	return cmd
}
