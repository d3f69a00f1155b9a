package config

import (
	"errors"
	"testing"

	"hypotest/domain/core"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEFAULT_ALPHA", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REPORT_TITLE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Alpha != 0.05 {
		t.Fatalf("Alpha = %v, want 0.05", cfg.Alpha)
	}
	if cfg.LogLevel != "INFO" {
		t.Fatalf("LogLevel = %q, want INFO", cfg.LogLevel)
	}
	if cfg.ReportTitle == "" {
		t.Fatal("ReportTitle must have a default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEFAULT_ALPHA", "0.01")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REPORT_TITLE", "Quarterly Screen")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Alpha != 0.01 {
		t.Fatalf("Alpha = %v, want 0.01", cfg.Alpha)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Fatalf("LogLevel = %q, want DEBUG", cfg.LogLevel)
	}
	if cfg.ReportTitle != "Quarterly Screen" {
		t.Fatalf("ReportTitle = %q", cfg.ReportTitle)
	}
}

func TestLoadRejectsBadAlpha(t *testing.T) {
	for _, raw := range []string{"abc", "0", "1", "-0.2"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("DEFAULT_ALPHA", raw)
			if _, err := Load(); !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("DEFAULT_ALPHA=%q: expected ErrInvalidParameter, got %v", raw, err)
			}
		})
	}
}
