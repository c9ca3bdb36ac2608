package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/ostafen/imgsniff/internal/config"
	"github.com/ostafen/imgsniff/internal/env"
	"github.com/ostafen/imgsniff/internal/logger"
	"github.com/spf13/cobra"
)

func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCommand(cfg).ExecuteContext(ctx)
}

func NewRootCommand(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - identify image formats from their leading bytes",
	}

	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().Bool("json-log", cfg.JSONLog, "emit logs as JSON")

	rootCmd.AddCommand(
		DefineIdentifyCommand(cfg),
		DefineFormatsCommand(),
		DefineReportCommand(),
		DefineVersionCommand(),
	)
	return rootCmd
}

func newLogger(cmd *cobra.Command, w io.Writer) hclog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	json, _ := cmd.Flags().GetBool("json-log")

	return logger.New(logger.Options{
		Name:   env.AppName,
		Level:  level,
		JSON:   json,
		Output: w,
	})
}
