package cli

import (
	"os"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	oldSeed := os.Getenv("SANTA_SEED")
	oldFormat := os.Getenv("SANTA_FORMAT")
	os.Setenv("SANTA_SEED", "42")
	os.Setenv("SANTA_FORMAT", "json")
	defer func() {
		if oldSeed != "" {
			os.Setenv("SANTA_SEED", oldSeed)
		} else {
			os.Unsetenv("SANTA_SEED")
		}
		if oldFormat != "" {
			os.Setenv("SANTA_FORMAT", oldFormat)
		} else {
			os.Unsetenv("SANTA_FORMAT")
		}
	}()

	cfg, err := loadEnv()
	if err != nil {
		t.Fatalf("loadEnv() error: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("cfg.Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Format != "json" {
		t.Errorf("cfg.Format = %q, want %q", cfg.Format, "json")
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	oldSeed := os.Getenv("SANTA_SEED")
	oldFormat := os.Getenv("SANTA_FORMAT")
	oldNoColor := os.Getenv("SANTA_NO_COLOR")
	os.Unsetenv("SANTA_SEED")
	os.Unsetenv("SANTA_FORMAT")
	os.Unsetenv("SANTA_NO_COLOR")
	defer func() {
		if oldSeed != "" {
			os.Setenv("SANTA_SEED", oldSeed)
		}
		if oldFormat != "" {
			os.Setenv("SANTA_FORMAT", oldFormat)
		}
		if oldNoColor != "" {
			os.Setenv("SANTA_NO_COLOR", oldNoColor)
		}
	}()

	cfg, err := loadEnv()
	if err != nil {
		t.Fatalf("loadEnv() error: %v", err)
	}

	if cfg.Seed != 0 {
		t.Errorf("cfg.Seed = %d, want 0", cfg.Seed)
	}
	if cfg.Format != "" {
		t.Errorf("cfg.Format = %q, want empty", cfg.Format)
	}
	if cfg.NoColor {
		t.Error("cfg.NoColor should default to false")
	}
}

func TestLoadEnvInvalidSeed(t *testing.T) {
	oldSeed := os.Getenv("SANTA_SEED")
	os.Setenv("SANTA_SEED", "not-a-number")
	defer func() {
		if oldSeed != "" {
			os.Setenv("SANTA_SEED", oldSeed)
		} else {
			os.Unsetenv("SANTA_SEED")
		}
	}()

	if _, err := loadEnv(); err == nil {
		t.Error("loadEnv() should fail for a non-numeric SANTA_SEED")
	}
}
