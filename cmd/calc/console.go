package main

import (
	"context"
	"errors"

	"go-chi-calculator/internal/console"
	"go-chi-calculator/internal/observability"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive console menu",
	RunE:  runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	// Info logs would interleave with the menus on the terminal.
	if logLevel == "" {
		observability.Logger = observability.Logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
	}

	err := console.New(current.svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
