package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vhdlparser/internal/config"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/diagfmt"
	"vhdlparser/internal/logging"
	"vhdlparser/internal/source"
	"vhdlparser/internal/vhdl"
)

// settings is the configuration of one command run: vhdlparser.toml,
// environment and flags merged in that order.
type settings struct {
	cfg        *config.Config
	color      bool
	quiet      bool
	timings    bool
	diagFormat string
	logger     *zap.Logger
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath, wd)
	if err != nil {
		return nil, err
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := colorEnabled(colorFlag, isTerminal(os.Stderr))
	if err != nil {
		return nil, err
	}
	color.NoColor = !useColor

	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	diagFormat, err := flags.GetString("diag-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch diagFormat {
	case "pretty", "short":
	default:
		return nil, fmt.Errorf("invalid --diag-format value %q (expected pretty|short)", diagFormat)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		logger.Debug("loaded config", zap.String("path", cfg.Path))
	}
	return &settings{
		cfg:        cfg,
		color:      useColor,
		quiet:      quiet,
		timings:    timings,
		diagFormat: diagFormat,
		logger:     logger,
	}, nil
}

// applyFlagOverrides copies explicitly set flags over the loaded config and
// validates the result.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("standard") {
		if cfg.Standard, err = flags.GetString("standard"); err != nil {
			return err
		}
	}
	if flags.Changed("max-depth") {
		if cfg.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
			return err
		}
	}
	if flags.Changed("max-diagnostics") {
		if cfg.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return err
		}
	}
	if flags.Changed("log-level") {
		if cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	return cfg.Validate()
}

func colorEnabled(mode string, tty bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return tty, nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
}

func (s *settings) parseOptions() vhdl.Options {
	return s.cfg.ParseOptions()
}

func (s *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.color,
		Context:   2,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
		ShowFixes: !s.quiet,
	}
}

// printDiagnostics writes diags in the selected format: the annotated
// source view, or one "severity CODE path:line:col message" line each.
func (s *settings) printDiagnostics(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet) {
	if len(diags) == 0 {
		return
	}
	if s.diagFormat == "short" {
		fmt.Fprintln(w, diag.FormatGoldenDiagnostics(diags, fs, !s.quiet))
		return
	}
	diagfmt.Pretty(w, diags, fs, s.prettyOpts())
}

func (s *settings) close() {
	_ = s.logger.Sync()
}
