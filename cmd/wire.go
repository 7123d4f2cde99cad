package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hakel/termdemo/internal/adapters/term"
	"github.com/hakel/termdemo/internal/application"
	"github.com/hakel/termdemo/internal/logging"
	"github.com/hakel/termdemo/internal/ports"
)

const (
	configName     = "config"
	configType     = "toml"
	configDirName  = "termdemo"
	pacingScaleKey = "pacing.scale"
	verboseKey     = "verbose"
)

// app carries harness-level settings. The scripts themselves stay
// parameterless: pacing scale and verbosity shape how the harness runs
// them, never what they print.
type app struct {
	pacingScale float64
	verbose     bool
}

func wireApp() (*app, error) {
	cfg := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ".config", configDirName))
	cfg.SetDefault(pacingScaleKey, 1.0)
	cfg.SetDefault(verboseKey, false)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	scale := cfg.GetFloat64(pacingScaleKey)
	if scale < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %v", pacingScaleKey, scale)
	}

	return &app{
		pacingScale: scale,
		verbose:     cfg.GetBool(verboseKey),
	}, nil
}

// terminal binds the stdio adapter to the command's streams, so tests can
// capture output through cobra's SetOut/SetErr/SetIn.
func (a *app) terminal(cmd *cobra.Command) *term.Stdio {
	return term.NewStdio(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin())
}

func (a *app) runner(cmd *cobra.Command, terminal ports.Terminal) *application.Runner {
	return application.NewRunner(
		terminal,
		ports.SystemSleeper{},
		ports.SystemClock{},
		application.WithPacingScale(a.pacingScale),
		application.WithLogger(logging.New(cmd.ErrOrStderr(), a.verbose)),
	)
}
