package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hwp5go/hwp5/internal/hwp5"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Writer.ReservedByte3 != 0x04 {
		t.Errorf("expected reserved byte 3 0x04, got 0x%02X", cfg.Writer.ReservedByte3)
	}
	if cfg.Writer.Version.Major != 5 {
		t.Errorf("expected version major 5, got %d", cfg.Writer.Version.Major)
	}
	if !cfg.Display.Color {
		t.Error("expected color display on by default")
	}
	if cfg.Display.TreeIndent != 2 {
		t.Errorf("expected tree indent 2, got %d", cfg.Display.TreeIndent)
	}
}

func TestConfig_Apply(t *testing.T) {
	orig := hwp5.ReservedByte3
	defer func() { hwp5.ReservedByte3 = orig }()

	cfg := DefaultConfig()
	cfg.Writer.ReservedByte3 = 0x00
	cfg.Apply()

	if hwp5.ReservedByte3 != 0x00 {
		t.Errorf("expected hwp5.ReservedByte3 to be applied, got 0x%02X", hwp5.ReservedByte3)
	}
}

func TestLoader_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	loader := NewLoaderWithPath(configPath)

	cfg := DefaultConfig()
	cfg.Writer.ReservedByte3 = 0x00

	if err := loader.Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	if !loader.Exists() {
		t.Error("expected config file to exist after save")
	}

	loaded, err := loader.LoadRaw()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if loaded.Writer.ReservedByte3 != 0x00 {
		t.Errorf("expected reserved byte 3 0x00, got 0x%02X", loaded.Writer.ReservedByte3)
	}
}

func TestLoader_LoadNonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nonexistent", "config.yaml")

	loader := NewLoaderWithPath(configPath)

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if cfg.Writer.ReservedByte3 != 0x04 {
		t.Errorf("expected default reserved byte 3 0x04, got 0x%02X", cfg.Writer.ReservedByte3)
	}
}

func TestLoader_Init(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	loader := NewLoaderWithPath(configPath)

	if err := loader.Init(); err != nil {
		t.Fatalf("failed to init config: %v", err)
	}
	if !loader.Exists() {
		t.Error("expected config file to exist after init")
	}
	if err := loader.Init(); err == nil {
		t.Error("expected error when initializing existing config")
	}
}

func TestLoader_LoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("{{{{invalid yaml"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	loader := NewLoaderWithPath(configPath)
	if _, err := loader.Load(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("TEST_HWPINSPECT_VAR", "expanded")
	defer os.Unsetenv("TEST_HWPINSPECT_VAR")

	got := expandEnvVars("prefix-${TEST_HWPINSPECT_VAR}-suffix")
	if got != "prefix-expanded-suffix" {
		t.Errorf("expandEnvVars: got %q", got)
	}

	got = expandEnvVars("${UNSET_HWPINSPECT_VAR}")
	if got != "" {
		t.Errorf("expandEnvVars for unset var: got %q, want empty", got)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if v := GetEnvOrDefault("TEST_VAR", "default"); v != "test-value" {
		t.Errorf("expected 'test-value', got %s", v)
	}
	if v := GetEnvOrDefault("NONEXISTENT_VAR", "default"); v != "default" {
		t.Errorf("expected 'default', got %s", v)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true}, {"TRUE", true}, {"1", true}, {"yes", true},
		{"false", false}, {"0", false}, {"no", false}, {"", false}, {"invalid", false},
	}
	for _, tc := range tests {
		os.Setenv("TEST_BOOL", tc.value)
		if got := GetEnvBool("TEST_BOOL"); got != tc.expected {
			t.Errorf("GetEnvBool(%q): expected %v, got %v", tc.value, tc.expected, got)
		}
	}
	os.Unsetenv("TEST_BOOL")
}

func TestNewLoader(t *testing.T) {
	loader, err := NewLoader()
	if err != nil {
		t.Fatalf("failed to create loader: %v", err)
	}
	path := loader.ConfigPath()
	if path == "" {
		t.Error("expected non-empty config path")
	}
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("expected config file name %s, got %s", ConfigFileName, filepath.Base(path))
	}
}

func TestNewLoader_EnvConfigDirOverride(t *testing.T) {
	os.Setenv(EnvConfigDir, "/tmp/hwpinspect-test-config")
	defer os.Unsetenv(EnvConfigDir)

	loader, err := NewLoader()
	if err != nil {
		t.Fatalf("failed to create loader: %v", err)
	}
	want := filepath.Join("/tmp/hwpinspect-test-config", ConfigFileName)
	if loader.ConfigPath() != want {
		t.Errorf("ConfigPath() = %q, want %q", loader.ConfigPath(), want)
	}
}

func TestConfig_ColorEnabled(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ColorEnabled() {
		t.Error("expected color enabled by default")
	}

	os.Setenv(EnvNoColor, "1")
	defer os.Unsetenv(EnvNoColor)
	if cfg.ColorEnabled() {
		t.Error("expected EnvNoColor to override Display.Color")
	}

	os.Unsetenv(EnvNoColor)
	cfg.Display.Color = false
	if cfg.ColorEnabled() {
		t.Error("expected ColorEnabled to follow Display.Color when EnvNoColor is unset")
	}
}
