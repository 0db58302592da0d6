package main

import (
	"context"
	"fmt"

	"go-chi-calculator/internal/config"
	"go-chi-calculator/internal/observability"

	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string

	current *app
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculator with basic, scientific and programmer modes",
	Long: `calc is a calculator with basic, scientific and programmer modes and a
persisted calculation history.

Without a subcommand it starts the interactive console menu.

Front ends:
  console  - interactive numbered menus
  serve    - HTTP JSON API with tracing and Prometheus metrics
  mcp      - Model Context Protocol tools over stdio`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runConsole,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CALC_CONFIG or ./calc.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides the config file")
}

// setup loads .env and configuration, builds the logger and opens the
// history store before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := loadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.General.LogLevel = logLevel
	}

	if err := observability.InitLogger(cfg.General.LogLevel, cfg.General.Development); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	current, err = newApp(cmd.Context(), cfg)
	return err
}

func teardown(cmd *cobra.Command, args []string) error {
	defer observability.SyncLogger()

	if current == nil {
		return nil
	}
	a := current
	current = nil
	return a.close(context.WithoutCancel(cmd.Context()))
}
