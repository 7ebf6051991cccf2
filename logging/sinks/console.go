package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"skybound/server/logging"
)

type ConsoleSink struct {
	logger *log.Logger
	color  bool
}

func NewConsoleSink(w io.Writer, cfg logging.ConsoleConfig) *ConsoleSink {
	return &ConsoleSink{logger: log.New(w, "", log.LstdFlags), color: cfg.UseColor}
}

func (s *ConsoleSink) Write(event logging.Event) error {
	if s.logger == nil {
		return nil
	}
	severity := formatSeverity(event.Severity)
	if s.color {
		severity = colorize(event.Severity, severity)
	}
	s.logger.Printf("[%s] severity=%s%s%s%s%s", event.Type, severity,
		formatField("biome", event.Biome),
		formatField("seed", event.Seed),
		formatField("stage", event.Stage),
		formatPayload(event.Payload))
	return nil
}

func (s *ConsoleSink) Close(context.Context) error {
	return nil
}

func formatSeverity(sev logging.Severity) string {
	switch sev {
	case logging.SeverityDebug:
		return "debug"
	case logging.SeverityInfo:
		return "info"
	case logging.SeverityWarn:
		return "warn"
	case logging.SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func colorize(sev logging.Severity, text string) string {
	switch sev {
	case logging.SeverityWarn:
		return "\x1b[33m" + text + "\x1b[0m"
	case logging.SeverityError:
		return "\x1b[31m" + text + "\x1b[0m"
	default:
		return text
	}
}

func formatField(key, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(" %s=%s", key, value)
}

func formatPayload(payload any) string {
	if payload == nil {
		return ""
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(" payload=%v", payload)
	}
	return fmt.Sprintf(" payload=%s", data)
}
