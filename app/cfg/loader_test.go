package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	// Create a config instance to test field access
	cfg := &Cfg{
		FeedsFile:        "./feeds.yml",
		StateFile:        "./state.json",
		StateDB:          "./state.db",
		TelegramBotToken: "test-token",
		TelegramChatID:   "12345",
		UserAgent:        "Test Agent",
		Timeout:          30,
		DryRun:           true,
		Debug:            true,
		Version:          "test-version",
	}

	if cfg.FeedsFile != "./feeds.yml" {
		t.Errorf("Expected feeds file './feeds.yml', got '%s'", cfg.FeedsFile)
	}
	if cfg.StateFile != "./state.json" {
		t.Errorf("Expected state file './state.json', got '%s'", cfg.StateFile)
	}
	if cfg.StateDB != "./state.db" {
		t.Errorf("Expected state DB './state.db', got '%s'", cfg.StateDB)
	}
	if cfg.TelegramBotToken != "test-token" {
		t.Errorf("Expected telegram token 'test-token', got '%s'", cfg.TelegramBotToken)
	}
	if cfg.TelegramChatID != "12345" {
		t.Errorf("Expected telegram chat '12345', got '%s'", cfg.TelegramChatID)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.Timeout != 30 {
		t.Errorf("Expected timeout 30, got %d", cfg.Timeout)
	}
	if !cfg.DryRun {
		t.Error("Expected dry run to be true")
	}
	if !cfg.Debug {
		t.Error("Expected debug to be true")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
