package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"skybound/server/logging"
)

const defaultAddr = ":8080"

// serverConfig captures the preview server's tunables. It is loaded from a
// YAML file when one exists; every field has a sensible default so the
// server also runs with no config at all.
type serverConfig struct {
	Addr           string           `yaml:"addr"`
	ClientDir      string           `yaml:"clientDir"`
	Seed           string           `yaml:"seed"`
	BiomeOverrides string           `yaml:"biomeOverrides"`
	Logging        logSectionConfig `yaml:"logging"`
}

type logSectionConfig struct {
	Sinks           []string `yaml:"sinks"`
	MinimumSeverity string   `yaml:"minimumSeverity"`
	JSONFile        string   `yaml:"jsonFile"`
	UseColor        bool     `yaml:"useColor"`
}

func (cfg serverConfig) normalized() serverConfig {
	normalized := cfg
	normalized.Addr = strings.TrimSpace(normalized.Addr)
	if normalized.Addr == "" {
		normalized.Addr = defaultAddr
	}
	normalized.Seed = strings.TrimSpace(normalized.Seed)
	if len(normalized.Logging.Sinks) == 0 {
		normalized.Logging.Sinks = []string{"console"}
	}
	return normalized
}

func defaultServerConfig() serverConfig {
	return serverConfig{}.normalized()
}

// loadServerConfig reads the YAML config at path. A missing file yields the
// defaults; a malformed file is an error — better to refuse than to run with
// half-parsed settings.
func loadServerConfig(path string) (serverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultServerConfig(), nil
		}
		return serverConfig{}, fmt.Errorf("read config: %w", err)
	}
	var cfg serverConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return serverConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

func (cfg serverConfig) loggingConfig() logging.Config {
	out := logging.DefaultConfig()
	out.EnabledSinks = cfg.Logging.Sinks
	out.MinimumSeverity = parseSeverity(cfg.Logging.MinimumSeverity)
	out.JSON.FilePath = cfg.Logging.JSONFile
	out.Console.UseColor = cfg.Logging.UseColor
	return out
}

func parseSeverity(name string) logging.Severity {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return logging.SeverityDebug
	case "warn", "warning":
		return logging.SeverityWarn
	case "error":
		return logging.SeverityError
	default:
		return logging.SeverityInfo
	}
}
