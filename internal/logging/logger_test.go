package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestInitWritesJSONL(t *testing.T) {
	Shutdown()

	dir := t.TempDir()
	Init(Config{
		Debug:  true,
		LogDir: dir,
	})
	defer Shutdown()

	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger after Init")
	}

	l.Info("test_message", "key", "value")

	data, err := os.ReadFile(filepath.Join(dir, "launchdeck.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}

	var record map[string]any
	for i, b := range data {
		if b == '\n' {
			if err := json.Unmarshal(data[:i], &record); err != nil {
				t.Fatalf("failed to parse JSONL: %v (data: %s)", err, string(data[:i]))
			}
			break
		}
	}

	if record["msg"] != "test_message" {
		t.Errorf("expected msg=test_message, got %v", record["msg"])
	}
	if record["key"] != "value" {
		t.Errorf("expected key=value, got %v", record["key"])
	}
}

func TestInitNonDebugDiscards(t *testing.T) {
	Shutdown()

	Init(Config{Debug: false})
	defer Shutdown()

	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger even in non-debug mode")
	}
	l.Info("this goes nowhere")
}

func TestForComponentAttachesComponent(t *testing.T) {
	Shutdown()

	dir := t.TempDir()
	// Component logger created before Init must still reach the real handler.
	l := ForComponent(CompSearch)
	Init(Config{Debug: true, LogDir: dir})
	defer Shutdown()

	l.Info("component_message")

	data, err := os.ReadFile(filepath.Join(dir, "launchdeck.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var record map[string]any
	for i, b := range data {
		if b == '\n' {
			if err := json.Unmarshal(data[:i], &record); err != nil {
				t.Fatalf("failed to parse JSONL: %v", err)
			}
			break
		}
	}

	if record["component"] != CompSearch {
		t.Errorf("expected component=%s, got %v", CompSearch, record["component"])
	}
}
