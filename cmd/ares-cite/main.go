// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ares-cite CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ares-cite/internal/ares"
	"github.com/pdiddy/ares-cite/internal/logging"
	"github.com/pdiddy/ares-cite/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// Set up by the root command before any subcommand runs.
var (
	logger   *slog.Logger
	registry *ares.Client
	padICO   bool
)

// rootCmd is the base command for the ares-cite CLI.
var rootCmd = &cobra.Command{
	Use:   "ares-cite",
	Short: "Look up Czech companies in ARES and format their formal citation",
	Long: `ares-cite queries ARES, the Czech registry of economic subjects, by IČO and
prints the subject in the form required in contracts and formal letters:

  Československá obchodní banka, a. s., IČO 00001350, sídlem Radlická 333/150, Radlice, 15000 Praha 5

Run without a subcommand to enter identifiers interactively.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = logging.New(verbose)

		s, err := secrets.Load(".secrets/", logger)
		if err != nil {
			return err
		}

		cfg := registryConfig(viper.GetViper())
		cfg.UserAgent = s.UserAgent(cfg.UserAgent)
		padICO = cfg.Pad

		logger.Debug("registry configured", "base_url", cfg.BaseURL, "timeout", cfg.Timeout, "user_agent", cfg.UserAgent, "pad", cfg.Pad)
		registry = ares.NewClient(cfg, ares.WithLogger(logger))
		return nil
	},
	RunE: runPrompt,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./ares-cite.yaml or ~/.config/ares-cite/ares-cite.yaml)")
	flags.String("base-url", "", "ARES subject endpoint (default "+defaultBaseURL()+")")
	flags.Duration("timeout", 0, "registry request timeout (default 30s)")
	flags.Bool("pad", false, "left-pad identifiers shorter than 8 digits with zeros")
	flags.BoolP("verbose", "v", false, "log registry requests to stderr")

	for key, flag := range map[string]string{
		keyBaseURL: "base-url",
		keyTimeout: "timeout",
		keyPad:     "pad",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	setDefaults(viper.GetViper())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ares-cite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ares-cite"))
		}
	}

	viper.SetEnvPrefix("ARES_CITE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
