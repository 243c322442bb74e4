package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vhdlparser/internal/version"
)

// errReported signals a failure whose details were already printed.
var errReported = errors.New("failed")

var rootCmd = &cobra.Command{
	Use:           "vhdlparser",
	Short:         "VHDL parser with JSON output",
	Long:          `vhdlparser reads VHDL design files and prints their syntax tree and diagnostics as JSON`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: startProfiling,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	addGlobalFlags(rootCmd)
}

// main executes the root command. Any error exits with status 1.
func main() {
	err := rootCmd.Execute()
	stopProfiling()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func addGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("config", "", "path to vhdlparser.toml (default: nearest one upward)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.String("diag-format", "pretty", "diagnostic output (pretty|short)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file (0 = unlimited)")
	pf.Int("max-depth", 0, "maximum syntax nesting depth (0 = default)")
	pf.String("standard", "", "VHDL standard (1993|2002|2008|2019)")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
