package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/hakel/termdemo/internal/adapters/term"
	"github.com/hakel/termdemo/internal/application"
	"github.com/hakel/termdemo/internal/domain"
)

func newFibCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fib",
		Short: "Stream the first 15 Fibonacci terms with statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			terminal := app.terminal(cmd)
			fib := application.NewFib(
				app.runner(cmd, terminal),
				application.WithBanner(term.FibBanner()),
			)

			if err := fib.Run(ctx); err != nil {
				if domain.KindOf(err) == domain.FailureInterrupted {
					terminal.PrintErr("")
					terminal.PrintErr("⚠️  Script interrupted by user")
				} else {
					terminal.PrintErr(fmt.Sprintf("❌ An error occurred: %v", err))
				}
				return err
			}

			return nil
		},
	}
}
