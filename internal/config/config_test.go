package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vhdlparser/internal/parser"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	opts := cfg.ParseOptions()
	if opts.Standard != token.Std2008 || opts.Encoding != source.EncodingAuto || opts.MaxDepth != parser.DefaultMaxDepth {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestLoadFoundUpward(t *testing.T) {
	root := t.TempDir()
	content := `standard = "1993"
encoding = "latin-1"
max_depth = 64
jobs = 3

[cache]
enabled = true
dir = "/tmp/vc"

[log]
level = "debug"
`
	if err := os.WriteFile(filepath.Join(root, FileName), []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := Load("", nested)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Path != filepath.Join(root, FileName) {
		t.Fatalf("path %q", cfg.Path)
	}
	if cfg.Standard != "1993" || cfg.MaxDepth != 64 || cfg.Jobs != 3 || !cfg.Cache.Enabled || cfg.Cache.Dir != "/tmp/vc" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	// unset keys keep their defaults
	if cfg.MaxDiagnostics != Default().MaxDiagnostics || cfg.Log.Format != "console" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if opts := cfg.ParseOptions(); opts.Standard != token.Std1993 || opts.Encoding != source.EncodingLatin1 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VHDLPARSER_MAX_DEPTH", "12")
	t.Setenv("VHDLPARSER_CACHE_ENABLED", "true")
	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxDepth != 12 || !cfg.Cache.Enabled {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"standard": `standard = "1987"`,
		"encoding": `encoding = "ebcdic"`,
		"depth":    `max_depth = -1`,
		"format":   "[log]\nformat = \"xml\"",
		"syntax":   `standard = `,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := Load(path, "")
			if err == nil || !strings.Contains(err.Error(), path) {
				t.Fatalf("expected error naming %s, got %v", path, err)
			}
		})
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteDefault(path, false); !errors.Is(err, ErrExists) {
		t.Fatalf("second write: %v", err)
	}
	if err := WriteDefault(path, true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	want.Path = path
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFindNone(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	// a vhdlparser.toml above the temp dir would make this flaky
	if ok {
		t.Skip("a config file exists above the temp directory")
	}
}
