package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8001" {
		t.Errorf("port = %q, want 8001", cfg.Server.Port)
	}
	if cfg.Auth.AdminName != DefaultAdminName {
		t.Errorf("admin name = %q", cfg.Auth.AdminName)
	}
	if cfg.Auth.CookieMaxAge() != 7*24*60*60 {
		t.Errorf("cookie max age = %d", cfg.Auth.CookieMaxAge())
	}
	if cfg.Analytics.MonthlyTargetHours != 6 {
		t.Errorf("monthly target = %v, want 6", cfg.Analytics.MonthlyTargetHours)
	}
	if cfg.Log.File != "logs/badge_studio.log" || cfg.Log.MaxSizeMB != 100 {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Errorf("model = %q", cfg.AI.Model)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("auth:\n  admin_name: \"Dana K.\"\nanalytics:\n  monthly_target_hours: 10\nai:\n  timeout_seconds: 5\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Auth.AdminName != "Dana K." {
		t.Errorf("admin name = %q", cfg.Auth.AdminName)
	}
	if cfg.Analytics.MonthlyTargetHours != 10 {
		t.Errorf("monthly target = %v", cfg.Analytics.MonthlyTargetHours)
	}
	if cfg.AI.APIKey != "from-env" {
		t.Errorf("api key = %q", cfg.AI.APIKey)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.AI.Timeout().Seconds() != 5 {
		t.Errorf("timeout = %v", cfg.AI.Timeout())
	}
	if cfg.Path != dir {
		t.Errorf("path = %q", cfg.Path)
	}
}

func TestLoadConfigRejectsEmptyAdminName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("auth:\n  admin_name: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("expected error for empty admin name")
	}
}

func TestAITimeoutFallback(t *testing.T) {
	if got := (AIConfig{}).Timeout().Seconds(); got != 30 {
		t.Errorf("timeout = %v, want 30s", got)
	}
}
