package logging

import "time"

type Config struct {
	EnabledSinks     []string       `json:"enabledSinks" yaml:"enabledSinks"`
	BufferSize       int            `json:"bufferSize" yaml:"bufferSize"`
	MinimumSeverity  Severity       `json:"minimumSeverity" yaml:"minimumSeverity"`
	Fields           map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
	JSON             JSONConfig     `json:"json" yaml:"json"`
	Console          ConsoleConfig  `json:"console" yaml:"console"`
	DropWarnInterval time.Duration  `json:"dropWarnInterval" yaml:"dropWarnInterval"`
}

type JSONConfig struct {
	FilePath string `json:"filePath" yaml:"filePath"`
}

type ConsoleConfig struct {
	UseColor bool `json:"useColor" yaml:"useColor"`
}

func DefaultConfig() Config {
	return Config{
		EnabledSinks:     []string{"console"},
		BufferSize:       256,
		MinimumSeverity:  SeverityInfo,
		DropWarnInterval: 5 * time.Second,
	}
}

func (c Config) HasSink(name string) bool {
	for _, s := range c.EnabledSinks {
		if s == name {
			return true
		}
	}
	return false
}

func (c Config) CloneFields() map[string]any {
	if len(c.Fields) == 0 {
		return nil
	}
	cloned := make(map[string]any, len(c.Fields))
	for k, v := range c.Fields {
		cloned[k] = v
	}
	return cloned
}
