package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hakel/termdemo/internal/adapters/script"
	"github.com/hakel/termdemo/internal/domain"
)

func newScriptCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "script <file.toml>",
		Short: "Run a user-authored step sequence from a TOML script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := script.Load(args[0])
			if err != nil {
				return fmt.Errorf("load script: %w", err)
			}

			terminal := app.terminal(cmd)
			runner := app.runner(cmd, terminal)

			if err := runner.Execute(cmd.Context(), session); err != nil {
				if domain.KindOf(err).Fatal() {
					return err
				}
				// A read step outliving its input just ends the session.
				terminal.PrintErr("⚠️  Input ended before the script completed")
			}

			return nil
		},
	}
}
