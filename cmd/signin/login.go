package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"signin-front/internal/authapi"
	"signin-front/internal/form"
	"signin-front/internal/i18n"
	"signin-front/internal/logging"
	"signin-front/internal/tui"
)

func newLoginCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in from the terminal against the configured API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := i18n.New(a.cfg.Language)
			landing := &tui.Landing{}
			ctrl := form.New(
				authapi.New(a.cfg.APIBaseURL, authapi.WithLogger(logging.For("authapi"))),
				landing,
				form.WithDestination(a.cfg.Destination),
				form.WithMessages(cat.Messages()),
				form.WithLogger(logging.For("form")),
			)

			final, err := tui.Run(cmd.Context(), ctrl, cat,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			if final.Quitting() || landing.Path == "" {
				return errors.New("sign-in cancelled")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s\n", cat.T("tui.signed_in"), a.cfg.APIBaseURL, landing.Path)
			return err
		},
	}
	cmd.Flags().String("api-base-url", "", "base URL of the sign-in API")
	cmd.Flags().String("destination", "", "path opened after a successful sign-in")
	return cmd
}
