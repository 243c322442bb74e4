package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vhdlparser/internal/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.json>",
	Short: "Validate a JSON document against the document schema",
	Long: `Check validates a document produced by "vhdlparser parse" against the CUE
definition of the output format. Use "-" to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("print-schema", false, "print the CUE schema and exit")
}

func runCheck(cmd *cobra.Command, args []string) error {
	printSchema, err := cmd.Flags().GetBool("print-schema")
	if err != nil {
		return err
	}
	if printSchema {
		_, err = fmt.Fprint(cmd.OutOrStdout(), schema.Source())
		return err
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		// #nosec G304 -- path is provided by the user
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	v, err := schema.New()
	if err != nil {
		return err
	}
	if err := v.ValidateJSON(data); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			for _, p := range verr.Problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", args[0], p)
			}
			return errReported
		}
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
	}
	return nil
}
