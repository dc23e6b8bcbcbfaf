package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Daemon.Addr != "127.0.0.1:8473" {
		t.Errorf("default daemon addr = %q", cfg.Daemon.Addr)
	}
	if cfg.Daemon.IntervalSeconds != 30 {
		t.Errorf("default interval = %d", cfg.Daemon.IntervalSeconds)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q", cfg.Appearance.Theme)
	}
	if cfg.General.DefaultCompany != "" {
		t.Errorf("default company should be empty, got %q", cfg.General.DefaultCompany)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("config should not exist in a fresh dir")
	}

	cfg := DefaultConfig()
	cfg.General.DefaultCompany = "Demo Company"
	cfg.General.DefaultYear = 2025
	cfg.Daemon.Addr = "127.0.0.1:9000"
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config should exist after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DefaultCompany != "Demo Company" {
		t.Errorf("company = %q", loaded.General.DefaultCompany)
	}
	if loaded.General.DefaultYear != 2025 {
		t.Errorf("year = %d", loaded.General.DefaultYear)
	}
	if loaded.Daemon.Addr != "127.0.0.1:9000" {
		t.Errorf("addr = %q", loaded.Daemon.Addr)
	}
	if loaded.Appearance.Theme != "tokyo-night" {
		t.Errorf("theme = %q", loaded.Appearance.Theme)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Daemon.IntervalSeconds != 30 {
		t.Errorf("expected defaults, got interval %d", cfg.Daemon.IntervalSeconds)
	}
}

func TestDaemonAddrEnvOverride(t *testing.T) {
	t.Setenv("ORCA_DAEMON_ADDR", "127.0.0.1:7777")

	cfg := DefaultConfig()
	cfg.Daemon.Addr = "127.0.0.1:9000"

	if got := DaemonAddr(cfg); got != "127.0.0.1:7777" {
		t.Errorf("DaemonAddr = %q, want env override", got)
	}
}
