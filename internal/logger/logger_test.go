package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
)

func TestJSONOutsideLocal(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	var buf bytes.Buffer
	log := NewWithOutput(&buf).Component("scoring")
	log.WithError(errors.New("boom")).Debug("scored")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if line["component"] != "scoring" || line["error"] != "boom" || line["level"] != "debug" {
		t.Fatalf("unexpected fields %v", line)
	}
}

func TestLevelFilters(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	NewWithOutput(&buf).Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestRequestID(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/health", nil)
	if RequestID(r) == "" {
		t.Fatal("expected a generated id")
	}
	r.Header.Set(RequestIDHeader, "req-1")
	if got := RequestID(r); got != "req-1" {
		t.Fatalf("expected caller id, got %q", got)
	}
}
