// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mypass/internal/client"
	"github.com/MKhiriev/go-mypass/internal/config"
	"github.com/MKhiriev/go-mypass/internal/crypto"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

var (
	errWeakPassword  = errors.New("password is weak")
	errEmptyPassword = errors.New("no password given")
)

// newRootCmd returns the mypass command. Without a subcommand it starts
// the terminal UI.
func newRootCmd() *cobra.Command {
	tuiCmd := newTUICmd()

	root := &cobra.Command{
		Use:   "mypass",
		Short: "mypass - a terminal password manager",
		Long: `mypass keeps logins, cards, identity documents and secure notes on a
mypass server and shows them in a terminal UI.

Run without a command to start the UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          tuiCmd.RunE,
	}
	root.Flags().AddFlagSet(tuiCmd.Flags())

	root.AddCommand(tuiCmd, newGenerateCmd(), newStrengthCmd(), newVersionCmd())
	return root
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal UI",
		Args:  cobra.NoArgs,
	}
	flags := config.BindClientFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.GetClientConfig(flags)
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		log := logger.NewClientLogger("mypass-client", cfg.App.LogFile)
		if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("error setting log level: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := client.NewApp(ctx, cfg, buildInfo(), log)
		if err != nil {
			log.Err(err).Msg("init client app error")
			return err
		}
		return app.Run(ctx)
	}
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		count                          int
		noUpper, noNumbers, noSpecials bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random passwords",
		Args:  cobra.NoArgs,
	}
	flags := config.BindGeneratorFlags(cmd.Flags())
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "Leave out uppercase letters")
	cmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "Leave out digits")
	cmd.Flags().BoolVar(&noSpecials, "no-special", false, "Leave out special characters")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.GetStructuredConfig(flags)
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		spec := models.DefaultPasswordSpec()
		if cfg.Generator.Length != 0 {
			spec.Length = cfg.Generator.Length
		}
		spec.Uppercase = !noUpper
		spec.Numbers = !noNumbers
		spec.SpecialChars = !noSpecials

		generator := crypto.NewPasswordGenerator()
		for range max(count, 1) {
			password, err := generator.Generate(spec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), password)
		}
		return nil
	}
	return cmd
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Check a password against the strength policy",
		Long: `Check a password against the strength policy. Without an argument the
password is read from the first line of standard input. Exits with status 1
when the password is weak.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd, args)
			if err != nil {
				return err
			}

			verdict := validators.EvaluateStrength(password)
			out := cmd.OutOrStdout()
			if verdict.Strong {
				fmt.Fprintln(out, color.GreenString("✓")+" "+verdict.Message)
				return nil
			}
			fmt.Fprintln(out, color.RedString("✗")+" "+color.YellowString(verdict.Message))
			return errWeakPassword
		},
	}
}

func passwordArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errEmptyPassword
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout())
		},
	}
}
