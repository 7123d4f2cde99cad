package cmd

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hakel/termdemo/internal/application"
)

const warmupDelay = 600 * time.Millisecond

func newDemoCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print interleaved stdout and stderr output with timed pauses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Decorative only, and only on a real terminal: piped runs
			// stay byte-for-byte deterministic.
			if file, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(file.Fd()) {
				if err := runWarmupSpinner(cmd.Context(), file, warmupDelay); err != nil {
					return err
				}
			}

			terminal := app.terminal(cmd)
			demo := application.NewDemo(app.runner(cmd, terminal))
			return demo.Run(cmd.Context())
		},
	}
}
