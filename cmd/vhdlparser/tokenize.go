package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vhdlparser/internal/diagfmt"
	"vhdlparser/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.vhd",
	Short: "Tokenize a VHDL source file",
	Long:  `Tokenize breaks a VHDL source file down into tokens with their positions and leading trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts := s.parseOptions()
	result, err := driver.Tokenize(args[0], opts.Standard, opts.Encoding, opts.MaxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	s.printDiagnostics(cmd.ErrOrStderr(), result.Diagnostics, result.FileSet)

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens, result.File)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.File)
	}
	if err != nil {
		return err
	}
	if result.Fatal {
		return errReported
	}
	return nil
}
