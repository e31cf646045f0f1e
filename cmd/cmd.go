package cmd

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fcb2b-project/fcb2b-go/internal/config"
	"github.com/fcb2b-project/fcb2b-go/pkg/logging"
)

var (
	appConfig      *config.Application
	persistentOpts = config.CliOnlyOptions{}
)

func init() {
	cobra.OnInitialize(
		loadDotEnvFiles,
		initAppConfig,
		initLogging,
		logAppConfig,
	)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = stderrPrintLnf(err.Error())
		os.Exit(1)
	}
}

// loadDotEnvFiles loads .env files into the process environment before viper
// binds environment variables. Values already present in the environment win.
func loadDotEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

func initAppConfig() {
	cfg, err := config.LoadApplicationConfig(viper.GetViper(), persistentOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load application config: %+v\n", err)
		os.Exit(1)
	}
	appConfig = cfg
}

func initLogging() {
	if appConfig.NoColor {
		color.Disable()
	}
	logging.Configure(appConfig.LogLevel(), appConfig.Log.Structured)
}

func logAppConfig() {
	logging.Debug().Msgf("application config:\n%s", color.Magenta.Sprint(appConfig.String()))
}
