package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hakel/termdemo/internal/application"
)

func newInputCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "input",
		Short: "Read a name and a number interactively and echo derived values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			terminal := app.terminal(cmd)
			test := application.NewInputTest(app.runner(cmd, terminal))
			return test.Run(cmd.Context())
		},
	}
}
