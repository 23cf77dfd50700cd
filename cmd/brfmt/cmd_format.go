/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/suparena/entitystate/errors"
	"github.com/suparena/entitystate/format"
)

func (a *app) transformCmd(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [value...]",
		Short: short,
		Long:  short + ". Reads one value per line from stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			for _, v := range values {
				out := fn(v)
				a.logger.Debug().Str("command", use).Str("input", v).Str("output", out).Msg("formatted")
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}

func (a *app) truncateCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "truncate [value...]",
		Short: "Cut values to a maximum length",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.cfg.Format.TruncateLength
			}
			if length <= 0 {
				return errors.NewValidationError("length", "must be greater than 0")
			}

			values, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), format.Truncate(v, length))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 0, "maximum length (defaults to format.truncate_length)")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "validate [value...]",
		Short: "Check CPF/CNPJ check digits or CEP shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strfmt.Default.ContainsName(name) {
				return errors.NewValidationError("format", fmt.Sprintf("unknown format %q", name))
			}

			values, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			invalid := 0
			for _, v := range values {
				status := "valid"
				if !strfmt.Default.Validates(name, v) {
					status = "invalid"
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v, status)
			}
			a.logger.Debug().Str("format", name).Int("checked", len(values)).Int("invalid", invalid).Msg("validation finished")

			if invalid > 0 {
				return errors.NewValidationError(name, fmt.Sprintf("%d of %d values invalid", invalid, len(values)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "format", "f", "cpf", "format name: cpf, cnpj or cep")
	return cmd
}
