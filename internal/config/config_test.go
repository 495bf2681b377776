package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxLength != 256 {
		t.Errorf("MaxLength = %d, want 256", cfg.MaxLength)
	}
	if cfg.MaxCount != 100 {
		t.Errorf("MaxCount = %d, want 100", cfg.MaxCount)
	}
	if cfg.OpsPerSecond != 50 {
		t.Errorf("OpsPerSecond = %d, want 50", cfg.OpsPerSecond)
	}
	if cfg.Burst != 25 {
		t.Errorf("Burst = %d, want 25", cfg.Burst)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RANDCORE_MAX_LENGTH", "64")
	t.Setenv("RANDCORE_MAX_COUNT", "10")
	t.Setenv("RANDCORE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxLength != 64 {
		t.Errorf("MaxLength = %d, want 64", cfg.MaxLength)
	}
	if cfg.MaxCount != 10 {
		t.Errorf("MaxCount = %d, want 10", cfg.MaxCount)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("RANDCORE_MAX_LENGTH", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Load() with non-numeric max length should fail")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{MaxLength: 256, MaxCount: 100, OpsPerSecond: 50, Burst: 25, LogLevel: "info"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"valid min length bound", func(c *Config) { c.MaxLength = 1 }, false},
		{"invalid - zero max length", func(c *Config) { c.MaxLength = 0 }, true},
		{"invalid - max length over core bound", func(c *Config) { c.MaxLength = 257 }, true},
		{"invalid - zero max count", func(c *Config) { c.MaxCount = 0 }, true},
		{"invalid - negative max count", func(c *Config) { c.MaxCount = -1 }, true},
		{"invalid - zero ops per second", func(c *Config) { c.OpsPerSecond = 0 }, true},
		{"invalid - zero burst", func(c *Config) { c.Burst = 0 }, true},
		{"invalid - unknown log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid - empty log level", func(c *Config) { c.LogLevel = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"ERROR", slog.LevelError, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{LogLevel: tt.level}
			got, err := cfg.SlogLevel()
			if (err != nil) != tt.wantErr {
				t.Fatalf("SlogLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
