package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_WritesToFile(t *testing.T) {
	restore := Replace(nil)
	defer restore()

	logPath := filepath.Join(t.TempDir(), "nested", "docshelf.log")
	if err := Init(Config{Level: "debug", Format: "json", OutputPath: logPath}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	L().Info("snapshot loaded", zap.Int("nodes", 3))
	_ = Sync()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "snapshot loaded") {
		t.Errorf("log file missing message: %s", content)
	}
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	restore := Replace(nil)
	defer restore()

	if err := Init(Config{Level: "loud", OutputPath: filepath.Join(t.TempDir(), "x.log")}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled at info level")
	}
	if !L().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be enabled")
	}
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := Replace(zap.New(core))

	L().Info("hello", zap.String("who", "tests"))
	restore()

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["who"]; got != "tests" {
		t.Errorf("field who = %v", got)
	}
}
