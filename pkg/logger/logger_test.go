package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"badge_studio_backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerIsNop(t *testing.T) {
	// 未初始化时调用不应 panic，也不产生输出
	Log.Info("ignored", zap.String("k", "v"))
	if Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("default logger should discard every level")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		mode, level string
		want        zapcore.Level
	}{
		{"debug", "", zapcore.DebugLevel},
		{"release", "", zapcore.InfoLevel},
		{"debug", "warn", zapcore.WarnLevel},
		{"release", "bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		cfg := &config.Config{Server: config.ServerConfig{Mode: tt.mode}, Log: config.LogConfig{Level: tt.level}}
		if got := Level(cfg); got != tt.want {
			t.Errorf("Level(mode=%q, level=%q) = %s, want %s", tt.mode, tt.level, got, tt.want)
		}
	}
}

func TestNewWritesServiceFields(t *testing.T) {
	var file, console bytes.Buffer
	cfg := &config.Config{Server: config.ServerConfig{Mode: "release"}}

	l := New(cfg, zapcore.AddSync(&file), zapcore.AddSync(&console))
	l.Debug("hidden")
	l.Info("badge generated", zap.Uint("user_id", 7))
	l.Sync()

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("file lines = %d, want 1: %q", len(lines), file.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("file line is not JSON: %v", err)
	}
	if entry["service"] != ServiceName || entry["mode"] != "release" || entry["msg"] != "badge generated" {
		t.Errorf("entry = %v", entry)
	}
	if entry["user_id"] != float64(7) {
		t.Errorf("user_id = %v", entry["user_id"])
	}

	if !strings.Contains(console.String(), "badge generated") {
		t.Errorf("console output = %q", console.String())
	}
}
