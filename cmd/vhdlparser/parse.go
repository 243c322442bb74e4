package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vhdlparser/internal/config"
	"vhdlparser/internal/diagfmt"
	"vhdlparser/internal/docjson"
	"vhdlparser/internal/driver"
	"vhdlparser/internal/logging"
	"vhdlparser/internal/schema"
	"vhdlparser/internal/ui"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.vhd|directory>",
	Short: "Parse VHDL sources and print their documents",
	Long: `Parse reads a VHDL file, or every *.vhd and *.vhdl file under a directory,
and prints the syntax tree together with its diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	f := parseCmd.Flags()
	f.String("format", "json", "output format (json|yaml|tree)")
	f.Bool("pretty", false, "indent JSON output")
	f.Bool("test", false, "echo the input, print the JSON and check that it round-trips")
	f.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	f.String("ui", "auto", "progress view for directories (auto|on|off)")
	f.Bool("no-cache", false, "bypass the on-disk result cache")
	f.Bool("show-empty", false, "tree format: keep empty fields")
	f.String("timings-format", "text", "--timings output (text|json)")
}

type parseFlags struct {
	format        string
	pretty        bool
	test          bool
	jobs          int
	ui            uiMode
	noCache       bool
	showEmpty     bool
	timingsFormat string
}

func readParseFlags(cmd *cobra.Command, cfg *config.Config) (parseFlags, error) {
	flags := cmd.Flags()
	var pf parseFlags
	var err error
	if pf.format, err = flags.GetString("format"); err != nil {
		return pf, fmt.Errorf("failed to get format flag: %w", err)
	}
	pf.format = strings.ToLower(pf.format)
	switch pf.format {
	case "json", "yaml", "tree":
	default:
		return pf, fmt.Errorf("unknown format: %s", pf.format)
	}

	pf.pretty = cfg.Pretty
	if flags.Changed("pretty") {
		if pf.pretty, err = flags.GetBool("pretty"); err != nil {
			return pf, err
		}
	}
	pf.jobs = cfg.Jobs
	if flags.Changed("jobs") {
		if pf.jobs, err = flags.GetInt("jobs"); err != nil {
			return pf, err
		}
	}
	if pf.test, err = flags.GetBool("test"); err != nil {
		return pf, err
	}
	if pf.noCache, err = flags.GetBool("no-cache"); err != nil {
		return pf, err
	}
	if pf.showEmpty, err = flags.GetBool("show-empty"); err != nil {
		return pf, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return pf, err
	}
	if pf.ui, err = readUIMode(uiValue); err != nil {
		return pf, err
	}
	if pf.timingsFormat, err = flags.GetString("timings-format"); err != nil {
		return pf, err
	}
	switch pf.timingsFormat {
	case "text", "json":
	default:
		return pf, fmt.Errorf("invalid --timings-format value %q (expected text|json)", pf.timingsFormat)
	}
	return pf, nil
}

// useCache is false for the tree format: cached results carry no syntax
// tree to draw.
func (pf parseFlags) useCache(cfg *config.Config) bool {
	return cfg.Cache.Enabled && !pf.noCache && pf.format != "tree"
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.close()
	pf, err := readParseFlags(cmd, s.cfg)
	if err != nil {
		return err
	}

	target := args[0]
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	files := []string{target}
	if st.IsDir() {
		if files, err = driver.ListSources(target); err != nil {
			return fmt.Errorf("listing sources: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no VHDL sources under %s", target)
		}
	}

	opts := driver.Options{
		Parse:  s.parseOptions(),
		JSON:   docjson.Options{Pretty: pf.pretty},
		Jobs:   pf.jobs,
		Logger: logging.Component(s.logger, "driver"),
	}
	if pf.useCache(s.cfg) {
		opts.Cache = openCache(s)
	}

	var results []*driver.FileResult
	if shouldUseTUI(pf.ui, len(files)) {
		results, err = ui.RunParseFiles(cmd.Context(), cmd.ErrOrStderr(), "parsing", files, opts)
	} else {
		results, err = driver.ParseFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, r := range results {
		reportDiagnostics(stderr, r, s)
	}

	if pf.test {
		err = writeTestMode(stdout, results, opts.JSON)
	} else {
		err = writeDocuments(stdout, results, pf, s, st.IsDir())
	}
	if err != nil {
		return err
	}

	if s.timings {
		if err := printTimings(stderr, results, pf.timingsFormat); err != nil {
			return err
		}
	}
	for _, r := range results {
		if r.Failed() {
			return errReported
		}
	}
	return nil
}

func openCache(s *settings) *driver.DiskCache {
	cache, err := cacheFor(s)
	if err != nil {
		s.logger.Warn("cache disabled", zap.Error(err))
		return nil
	}
	s.logger.Debug("using cache", zap.String("dir", cache.Dir()))
	return cache
}

// cacheFor opens cache.dir from the config, or the per-user cache directory
// when it is unset.
func cacheFor(s *settings) (*driver.DiskCache, error) {
	if s.cfg.Cache.Dir != "" {
		return driver.OpenDiskCacheAt(s.cfg.Cache.Dir)
	}
	return driver.OpenDiskCache("vhdlparser")
}

func reportDiagnostics(w io.Writer, r *driver.FileResult, s *settings) {
	switch {
	case r.Err != nil:
		fmt.Fprintf(w, "%s: %v\n", r.Path, r.Err)
	case r.Document != nil:
		s.printDiagnostics(w, r.Document.Diagnostics, r.Document.FileSet)
	default:
		for _, m := range r.Messages {
			fmt.Fprintln(w, m)
		}
	}
}

func writeDocuments(w io.Writer, results []*driver.FileResult, pf parseFlags, s *settings, many bool) error {
	switch pf.format {
	case "yaml":
		return writeYAML(w, results, many)
	case "tree":
		return writeTrees(w, results, diagfmt.TreeOpts{Color: s.color, ShowEmpty: pf.showEmpty}, many && !s.quiet)
	}
	if !many {
		if js := results[0].JSON; js != nil {
			_, err := fmt.Fprintf(w, "%s\n", js)
			return err
		}
		return nil
	}
	return writeJSONSet(w, results, pf.pretty)
}

// writeJSONSet prints one object mapping each path to its document, null
// for files that failed.
func writeJSONSet(w io.Writer, results []*driver.FileResult, pretty bool) error {
	set := make(docjson.Object, 0, len(results))
	for _, r := range results {
		if r.JSON == nil {
			set = append(set, docjson.Member{Key: r.Path})
			continue
		}
		doc, err := docjson.Decode(r.JSON)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Path, err)
		}
		set = append(set, docjson.Member{Key: r.Path, Value: doc.Object()})
	}
	data, err := set.MarshalJSON()
	if err != nil {
		return err
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeYAML(w io.Writer, results []*driver.FileResult, many bool) error {
	for _, r := range results {
		if r.JSON == nil {
			continue
		}
		doc, err := docjson.Decode(r.JSON)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Path, err)
		}
		out, err := doc.YAML()
		if err != nil {
			return fmt.Errorf("%s: %w", r.Path, err)
		}
		if many {
			if _, err := fmt.Fprintf(w, "---\n# %s\n", r.Path); err != nil {
				return err
			}
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func writeTrees(w io.Writer, results []*driver.FileResult, opts diagfmt.TreeOpts, headers bool) error {
	for idx, r := range results {
		if r.Document == nil || r.Fatal {
			continue
		}
		if headers {
			if idx > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "== %s ==\n", r.Path); err != nil {
				return err
			}
		}
		if err := diagfmt.FormatTreePretty(w, r.Document.Root, r.Document.File, opts); err != nil {
			return err
		}
	}
	return nil
}

// writeTestMode echoes each input, prints its JSON and checks that the JSON
// decodes, re-encodes to the same bytes and satisfies the schema.
func writeTestMode(w io.Writer, results []*driver.FileResult, jopts docjson.Options) error {
	validator, err := schema.New()
	if err != nil {
		return err
	}
	failed := false
	for _, r := range results {
		// #nosec G304 -- path was just parsed
		raw, err := os.ReadFile(r.Path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "== %s ==\n-- input --\n%s", r.Path, raw)
		if len(raw) > 0 && raw[len(raw)-1] != '\n' {
			fmt.Fprintln(w)
		}
		if r.JSON == nil {
			fmt.Fprintln(w, "-- output --\nparse failed, see diagnostics")
			failed = true
			continue
		}
		fmt.Fprintf(w, "-- output --\n%s\n", r.JSON)

		same, err := roundTrips(r.JSON, jopts)
		switch {
		case err != nil:
			fmt.Fprintf(w, "-- round trip: %v --\n", err)
			failed = true
		case !same:
			fmt.Fprintln(w, "-- round trip: mismatch --")
			failed = true
		default:
			fmt.Fprintln(w, "-- round trip: ok --")
		}
		if err := validator.ValidateJSON(r.JSON); err != nil {
			fmt.Fprintf(w, "-- schema: %v --\n", err)
			failed = true
		} else {
			fmt.Fprintln(w, "-- schema: ok --")
		}
	}
	if failed {
		return errReported
	}
	return nil
}

func roundTrips(data []byte, opts docjson.Options) (bool, error) {
	doc, err := docjson.Decode(data)
	if err != nil {
		return false, err
	}
	again, err := doc.Marshal(opts)
	if err != nil {
		return false, err
	}
	return bytes.Equal(again, data), nil
}
