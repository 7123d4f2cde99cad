package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termdemo",
		Short:         "termdemo: scripted demos for terminal-hosting environments",
		Long:          "termdemo ships three parameterless demo scripts (interleaved stdout/stderr output, a streamed Fibonacci sequence, and an interactive input test) used to exercise terminal emulators, plus a runner for user-authored TOML step sequences.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDemoCmd(app),
		newFibCmd(app),
		newInputCmd(app),
		newScriptCmd(app),
	)

	return rootCmd
}
