/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/suparena/entitystate/config"
	"github.com/suparena/entitystate/format"
	"github.com/suparena/entitystate/logging"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	envFile    string
	logLevel   string

	cfg    *config.Config
	logger zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:          "brfmt",
		Short:        "Format and clean Brazilian identifiers (CPF, CNPJ, CEP)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "env file merged into the environment")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(
		a.transformCmd("cpf", "Format as CPF (000.000.000-00)", format.CPF),
		a.transformCmd("cnpj", "Format as CNPJ (00.000.000/0000-00)", format.CNPJ),
		a.transformCmd("cep", "Format as CEP (00000-000)", format.CEP),
		a.transformCmd("strip", "Remove CPF/CNPJ separators", format.StripDocument),
		a.transformCmd("strip-cep", "Remove CEP separators", format.StripCEP),
		a.transformCmd("digits", "Keep digits only", format.DigitsOnly),
		a.transformCmd("lower", "Trim and lowercase", format.LowerTrim),
		a.transformCmd("upper", "Trim and uppercase", format.UpperTrim),
		a.truncateCmd(),
		a.validateCmd(),
		versionCmd(),
	)

	return rootCmd
}

func (a *app) load(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(a.logLevel)
	}

	logger, err := logging.New(cfg.Logging, stderr)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// inputs returns args, or the non-empty lines of stdin when no args are given.
func inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}
