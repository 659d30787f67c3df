/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suparena/dynamics/config"
	"github.com/suparena/dynamics/ddb"
)

// app carries the state shared by every subcommand.
type app struct {
	configDir string
	logLevel  string

	cfg    *config.Config
	logger *zap.Logger

	newClient func(ctx context.Context, cfg config.AWS) (ddb.GetItemAPI, error)
}

func newApp() *app {
	return &app{
		logger: zap.NewNop(),
		newClient: func(ctx context.Context, cfg config.AWS) (ddb.GetItemAPI, error) {
			return ddb.NewClient(ctx, cfg)
		},
	}
}

// NewRootCommand creates the dynlint command tree.
func NewRootCommand() *cobra.Command {
	return newApp().rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dynlint",
		Short: "Validate annotation manifests and preview field resolution",
		Long: color.CyanString(`dynlint - annotation tooling for dynamics

Checks YAML annotation manifests with the same rules the runtime catalog
applies, and shows which input key each declared field resolves to for a
JSON document or a DynamoDB item.`),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "Directory holding dynamics.yaml and .env (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(a.checkCommand())
	rootCmd.AddCommand(a.resolveCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded", zap.String("command", cmd.Name()), zap.String("manifest", cfg.Manifest))
	return nil
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
