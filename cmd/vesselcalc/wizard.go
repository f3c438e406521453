package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-vesselcalc/pkg/renderers/tui"
)

func newWizardCmd(a *app) *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Run the interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session()
			if err != nil {
				return err
			}
			runner, err := tui.New(s,
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
				tui.WithLogger(a.logger),
				tui.WithPageSize(pageSize),
			)
			if err != nil {
				return err
			}
			err = runner.Run(cmd.Context())
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "options shown per select prompt")
	return cmd
}
