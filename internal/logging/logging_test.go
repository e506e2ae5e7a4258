package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "text", slog.LevelInfo)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("served", "status", 200)

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("expected debug line to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "msg=served") || !strings.Contains(output, "status=200") {
		t.Errorf("unexpected text output: %s", output)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "JSON", slog.LevelDebug)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Debug("served", "path", "/")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode json log line: %v (%s)", err, buf.String())
	}
	if record["msg"] != "served" || record["path"] != "/" || record["level"] != "DEBUG" {
		t.Errorf("unexpected json record: %v", record)
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "xml", slog.LevelInfo); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"off", levelSilent},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := LevelFromString(tt.input); got != tt.want {
				t.Errorf("LevelFromString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
	if ValidLevel("verbose") || !ValidLevel("Warn") {
		t.Errorf("unexpected ValidLevel results")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Errorf("expected discard logger to be disabled for every level")
	}
}
