package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogPathEnv(t *testing.T) {
	t.Setenv("LED_LOG_FILE", "")
	t.Setenv("LED_CONFIG_HOME", "/tmp/led-home")
	path, err := getLogPath()
	if err != nil {
		t.Fatalf("getLogPath error: %v", err)
	}
	if path != "/tmp/led-home/led.log" {
		t.Fatalf("path = %q, want %q", path, "/tmp/led-home/led.log")
	}

	t.Setenv("LED_LOG_FILE", "/tmp/explicit.log")
	path, err = getLogPath()
	if err != nil {
		t.Fatalf("getLogPath error: %v", err)
	}
	if path != "/tmp/explicit.log" {
		t.Fatalf("path = %q, want %q", path, "/tmp/explicit.log")
	}
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "led.log")
	t.Setenv("LED_LOG_FILE", path)
	if err := Init(true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Debug("debug line", "k", 1)
	Info("saved", "path", "a.txt")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "debug line") || !strings.Contains(text, "saved") {
		t.Fatalf("log missing entries:\n%s", text)
	}
	if !strings.Contains(text, "DEBUG") {
		t.Fatalf("log missing level:\n%s", text)
	}
}

func TestHelpersBeforeInit(t *testing.T) {
	Close()
	Debug("ignored")
	Info("ignored")
	Warn("ignored")
	Error("ignored")
}
