package logging_test

import (
	"context"
	"testing"
	"time"

	"skybound/server/logging"
	"skybound/server/logging/sinks"
)

func TestRouterForwardsToSinks(t *testing.T) {
	memory := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: memory}})

	router.Publish(context.Background(), logging.Event{
		Type:     "worldgen.level_generated",
		Severity: logging.SeverityInfo,
		Biome:    "grassland",
	})

	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("sink captured %d events, want 1", len(events))
	}
	if events[0].Biome != "grassland" {
		t.Fatalf("event biome = %q, want grassland", events[0].Biome)
	}
	if events[0].Time.IsZero() {
		t.Fatalf("router must stamp events missing a time")
	}
}

func TestRouterFiltersBySeverity(t *testing.T) {
	memory := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: memory}})

	router.Publish(context.Background(), logging.Event{Type: "debug", Severity: logging.SeverityDebug})
	router.Publish(context.Background(), logging.Event{Type: "info", Severity: logging.SeverityInfo})
	router.Publish(context.Background(), logging.Event{Type: "warn", Severity: logging.SeverityWarn})

	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("sink captured %d events, want 1 (warn only)", len(events))
	}
	if events[0].Type != "warn" {
		t.Fatalf("captured event type = %q, want warn", events[0].Type)
	}
}

func TestRouterAppliesConfigFields(t *testing.T) {
	memory := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"service": "worldgen"}
	router := logging.NewRouter(nil, cfg, []logging.NamedSink{{Name: "memory", Sink: memory}})

	router.Publish(context.Background(), logging.Event{Type: "x", Severity: logging.SeverityInfo})
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("sink captured %d events, want 1", len(events))
	}
	if got := events[0].Extra["service"]; got != "worldgen" {
		t.Fatalf("config field not applied, Extra = %v", events[0].Extra)
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	memory := sinks.NewMemorySink()
	router := logging.NewRouter(logging.ClockFunc(func() time.Time { return time.Unix(0, 0) }), logging.DefaultConfig(), []logging.NamedSink{{Name: "memory", Sink: memory}})
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	router.Publish(context.Background(), logging.Event{Type: "late", Severity: logging.SeverityError})
	if got := len(memory.Events()); got != 0 {
		t.Fatalf("event published after close reached the sink (%d events)", got)
	}
}

func TestWithFieldsDoesNotClobberExisting(t *testing.T) {
	var captured logging.Event
	base := logging.PublisherFunc(func(_ context.Context, event logging.Event) { captured = event })
	pub := logging.WithFields(base, map[string]any{"run": "one"})

	pub.Publish(context.Background(), logging.Event{Extra: map[string]any{"run": "zero"}})
	if captured.Extra["run"] != "zero" {
		t.Fatalf("WithFields overwrote an existing field: %v", captured.Extra)
	}

	pub.Publish(context.Background(), logging.Event{})
	if captured.Extra["run"] != "one" {
		t.Fatalf("WithFields did not add its field: %v", captured.Extra)
	}
}
