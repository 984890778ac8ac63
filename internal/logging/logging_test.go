package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"cloud-demo-apps/internal/config"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()

	if err := Configure(logger, config.LogConfig{Level: "info", Format: "json"}, &buf); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	logger.WithField("request_id", "abc").Info("Lambda triggered")
	logger.Debug("hidden")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "Lambda triggered" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["request_id"] != "abc" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
}

func TestConfigureText(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()

	if err := Configure(logger, config.LogConfig{Level: "debug", Format: "text"}, &buf); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}

	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug line in output, got %q", buf.String())
	}
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	if err := Configure(logrus.New(), config.LogConfig{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown level")
	}
}
