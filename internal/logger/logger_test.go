package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestLogger_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf).Action("close_auction").With("auction_id", "a-1")

	log.Error("close failed", errors.New("lock timeout"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	for key, want := range map[string]string{
		"message":    "close failed",
		"action":     "close_auction",
		"auction_id": "a-1",
		"error":      "lock timeout",
		"level":      "ERROR",
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %q", key, entry[key], want)
		}
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("timestamp missing")
	}
	if _, ok := entry["hostname"]; !ok {
		t.Error("hostname missing")
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info("skipped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %s", buf.String())
	}

	log.Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("warn should be written")
	}
}
