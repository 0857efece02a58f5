package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")
	consoleBuffer := &bytes.Buffer{}

	err := Init(consoleBuffer, logPath, false)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	Info("Test info message")
	consoleOutput := consoleBuffer.String()
	if !strings.Contains(consoleOutput, "Test info message") {
		t.Errorf("Console output missing info message: %s", consoleOutput)
	}

	logContent, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	logStr := string(logContent)
	if !strings.Contains(logStr, "[INFO]") {
		t.Error("Log file missing INFO level")
	}
	if !strings.Contains(logStr, "Test info message") {
		t.Error("Log file missing info message")
	}
}

func TestLoggerLevels(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")
	consoleBuffer := &bytes.Buffer{}

	err := Init(consoleBuffer, logPath, false)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	Debug("Debug message")
	Info("Info message")
	Warn("Warn message")
	Error("Error message")

	logContent, _ := os.ReadFile(logPath)
	logStr := string(logContent)

	// File should contain all levels
	for _, level := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(logStr, level) {
			t.Errorf("Log file missing %s level", level)
		}
	}

	// Console should NOT contain DEBUG (verbose=false)
	consoleStr := consoleBuffer.String()
	if strings.Contains(consoleStr, "[DEBUG]") {
		t.Error("Console should not show DEBUG when verbose=false")
	}
}

func TestLoggerVerbose(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")
	consoleBuffer := &bytes.Buffer{}

	err := Init(consoleBuffer, logPath, true)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	Debug("Debug message")

	consoleStr := consoleBuffer.String()
	if !strings.Contains(consoleStr, "[DEBUG]") {
		t.Error("Console should show DEBUG when verbose=true")
	}

	if !IsVerbose() {
		t.Error("IsVerbose() = false, expected true")
	}
}

func TestLogRowError(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")
	consoleBuffer := &bytes.Buffer{}

	err := Init(consoleBuffer, logPath, false)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	LogRowError(7, "Total", "abc", "not numeric, counted as 0")

	logContent, _ := os.ReadFile(logPath)
	logStr := string(logContent)

	if !strings.Contains(logStr, "[ROW_ERROR]") {
		t.Error("Log file missing ROW_ERROR entry")
	}
	if !strings.Contains(logStr, "Row: 7") {
		t.Error("Log file missing row number")
	}

	// Row errors stay out of the console
	if strings.Contains(consoleBuffer.String(), "ROW_ERROR") {
		t.Error("Row errors should not reach the console")
	}
}

func TestUninitializedLoggerDoesNotPanic(t *testing.T) {
	saved := globalLogger
	globalLogger = nil
	defer func() { globalLogger = saved }()

	Debug("no-op")
	LogRowError(1, "Total", "x", "ignored")
	if IsVerbose() {
		t.Error("IsVerbose() = true for uninitialized logger")
	}
}
