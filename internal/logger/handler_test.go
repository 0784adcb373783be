package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestHandler(cfg Config) (*filteringHandler, *bytes.Buffer) {
	cfg.process()
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return newFilteringHandler(base, &cfg), &buf
}

func record(msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Now(), slog.LevelDebug, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestHandlerPassesUntaggedByDefault(t *testing.T) {
	h, buf := newTestHandler(Config{LogLevel: "debug"})
	if err := h.Handle(context.Background(), record("plain message")); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(buf.String(), "plain message") {
		t.Errorf("output = %q, want message logged", buf.String())
	}
}

func TestHandlerDisabledTagIsDropped(t *testing.T) {
	h, buf := newTestHandler(Config{LogLevel: "debug", DisabledTags: []string{"clipboard"}})

	h.Handle(context.Background(), record("noisy", slog.String(tagKey, "clipboard")))
	h.Handle(context.Background(), record("kept", slog.String(tagKey, "runner")))

	out := buf.String()
	if strings.Contains(out, "noisy") {
		t.Errorf("output = %q, disabled tag leaked through", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("output = %q, other tags should pass", out)
	}
}

func TestHandlerEnabledTagsAreExclusive(t *testing.T) {
	h, buf := newTestHandler(Config{LogLevel: "debug", EnabledTags: []string{"history"}})

	h.Handle(context.Background(), record("wanted", slog.String(tagKey, "history")))
	h.Handle(context.Background(), record("other", slog.String(tagKey, "runner")))
	h.Handle(context.Background(), record("untagged"))

	out := buf.String()
	if !strings.Contains(out, "wanted") {
		t.Errorf("output = %q, enabled tag missing", out)
	}
	if strings.Contains(out, "other") || strings.Contains(out, "untagged") {
		t.Errorf("output = %q, only enabled tags should pass", out)
	}
}

func TestHandlerTagFilterIsCaseInsensitive(t *testing.T) {
	h, buf := newTestHandler(Config{LogLevel: "debug", DisabledTags: []string{"Clipboard"}})
	h.Handle(context.Background(), record("noisy", slog.String(tagKey, "CLIPBOARD")))
	if strings.Contains(buf.String(), "noisy") {
		t.Errorf("output = %q, tag filter should ignore case", buf.String())
	}
}

func TestConfigProcessLevels(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"err", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.input}
		cfg.process()
		if cfg.level.Level() != tt.want {
			t.Errorf("process(%q): level = %v, want %v", tt.input, cfg.level.Level(), tt.want)
		}
	}
}

func TestSliceToSet(t *testing.T) {
	if set := sliceToSet(nil); set != nil {
		t.Errorf("sliceToSet(nil) = %v, want nil", set)
	}
	if set := sliceToSet([]string{"", ""}); set != nil {
		t.Errorf("sliceToSet of blanks = %v, want nil", set)
	}
	set := sliceToSet([]string{"A", "b"})
	if !foundInSet(set, "a") || !foundInSet(set, "b") {
		t.Errorf("set = %v, want lowercase a and b present", set)
	}
	if foundInSet(set, "c") {
		t.Error("foundInSet reported a missing key")
	}
}
