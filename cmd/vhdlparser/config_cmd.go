package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vhdlparser/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create vhdlparser.toml",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default vhdlparser.toml",
	Long: `Init writes a vhdlparser.toml holding the built-in defaults. [path] is a
directory or a file name; it defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	target, err := configTarget(args)
	if err != nil {
		return err
	}
	if err := config.WriteDefault(target, force); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", target)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
	return nil
}

// configTarget resolves the init argument: a directory gets FileName
// appended, anything else is used as the file path.
func configTarget(args []string) (string, error) {
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(wd, config.FileName), nil
	}
	arg := args[0]
	if st, err := os.Stat(arg); err == nil && st.IsDir() {
		return filepath.Join(arg, config.FileName), nil
	}
	return arg, nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	return showConfig(cmd.OutOrStdout(), s.cfg)
}

func showConfig(w io.Writer, cfg *config.Config) error {
	source := cfg.Path
	if source == "" {
		source = "(defaults)"
	}
	if _, err := fmt.Fprintf(w, "# source: %s\n", source); err != nil {
		return err
	}
	return config.Encode(w, cfg)
}
