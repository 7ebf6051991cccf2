package main

import (
	"os"
	"path/filepath"
	"testing"

	"skybound/server/logging"
)

func TestLoadServerConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadServerConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}
	if cfg.Addr != defaultAddr {
		t.Fatalf("addr = %q, want %q", cfg.Addr, defaultAddr)
	}
	if len(cfg.Logging.Sinks) == 0 {
		t.Fatalf("default config must enable at least one sink")
	}
}

func TestLoadServerConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skybound.yaml")
	doc := "addr: \":9090\"\nseed: fixture\nlogging:\n  sinks: [console, json]\n  minimumSeverity: warn\n  jsonFile: events.log\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadServerConfig(path)
	if err != nil {
		t.Fatalf("loadServerConfig returned error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Seed != "fixture" {
		t.Fatalf("seed = %q, want fixture", cfg.Seed)
	}

	logCfg := cfg.loggingConfig()
	if !logCfg.HasSink("json") {
		t.Fatalf("json sink not enabled: %v", logCfg.EnabledSinks)
	}
	if logCfg.MinimumSeverity != logging.SeverityWarn {
		t.Fatalf("minimum severity = %v, want warn", logCfg.MinimumSeverity)
	}
	if logCfg.JSON.FilePath != "events.log" {
		t.Fatalf("json file = %q, want events.log", logCfg.JSON.FilePath)
	}
}

func TestLoadServerConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skybound.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadServerConfig(path); err == nil {
		t.Fatalf("malformed config must fail to load")
	}
}

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want logging.Severity
	}{
		{"debug", logging.SeverityDebug},
		{"Warn", logging.SeverityWarn},
		{"warning", logging.SeverityWarn},
		{"error", logging.SeverityError},
		{"", logging.SeverityInfo},
		{"bogus", logging.SeverityInfo},
	}
	for _, tc := range cases {
		if got := parseSeverity(tc.in); got != tc.want {
			t.Fatalf("parseSeverity(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
