package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	for _, name := range cfg.Fields.FieldNames() {
		fc, ok := cfg.Fields.Get(name)
		if !ok {
			t.Fatalf("Fields.Get(%q) not found", name)
		}
		if fc.Default == "" {
			t.Errorf("field %q has no default", name)
		}
		if fc.Min > fc.Max {
			t.Errorf("field %q has min %v > max %v", name, fc.Min, fc.Max)
		}
		if len(fc.Units) == 0 {
			t.Errorf("field %q has no allowed units", name)
		}
	}

	if cfg.Output.Format != OutputFmtPlain {
		t.Errorf("default output format = %v, want plain", cfg.Output.Format)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
fields:
  font_size:
    default: "12pt"
    min: 4
    max: 96
    units: [pt, px]
output:
  format: css
  precision: 2
logging:
  console:
    level: debug
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Fields.FontSize.Default != "12pt" {
		t.Errorf("font_size default = %q, want \"12pt\"", cfg.Fields.FontSize.Default)
	}
	if cfg.Fields.FontSize.Max != 96 {
		t.Errorf("font_size max = %v, want 96", cfg.Fields.FontSize.Max)
	}
	// untouched fields keep template defaults
	if cfg.Fields.LineHeight.Default == "" {
		t.Error("line_height lost its template default")
	}
	if cfg.Output.Format != OutputFmtCss {
		t.Errorf("output format = %v, want css", cfg.Output.Format)
	}
	if cfg.Output.Precision != 2 {
		t.Errorf("output precision = %v, want 2", cfg.Output.Precision)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console log level = %q, want \"debug\"", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_UnknownKeys(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
fields:
  font_size:
    default: "12pt"
    wiggle: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected error for unknown configuration key")
	}
}

func TestLoadConfiguration_BadRange(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
fields:
  font_size:
    default: "12pt"
    min: 100
    max: 10
    units: [pt]
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("expected validation error for min > max")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "font_size:") {
		t.Error("Prepare() output misses field configuration")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"version: 1", "font_size:", "line_height:", "letter_spacing:", "format: plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output misses %q", want)
		}
	}
}
