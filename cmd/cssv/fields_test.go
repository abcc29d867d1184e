package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"cssv/config"
	"cssv/css"
)

func TestCSSInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.css")
	if err := os.WriteFile(path, []byte("font-size: 2em;"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"inline", "font-size: 2em; line-height: 1.6", "font-size: 2em; line-height: 1.6"},
		{"file", path, "font-size: 2em;"},
		{"missing_file_is_inline", filepath.Join(dir, "no-such.css"), filepath.Join(dir, "no-such.css")},
		{"directory_is_inline", dir, dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cssInput(tt.value)
			if err != nil {
				t.Fatalf("cssInput(%q): %v", tt.value, err)
			}
			if string(got) != tt.want {
				t.Errorf("cssInput(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestCSSFileFeedsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.css")
	if err := os.WriteFile(path, []byte("font-size: 2em; line-height: 1.6"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.FieldsConfig{
		FontSize:      config.FieldConfig{Default: "14px", Min: 1, Max: 512, Units: []string{"px", "em"}},
		LineHeight:    config.FieldConfig{Default: "1.45", Min: 0, Max: 10, Units: []string{"none", "em"}},
		LetterSpacing: config.FieldConfig{Default: "0px", Min: -20, Max: 100, Units: []string{"px"}},
	}
	fields, _, err := buildFields(cfg)
	if err != nil {
		t.Fatal(err)
	}

	data, err := cssInput(path)
	if err != nil {
		t.Fatal(err)
	}
	decls, warnings := css.NewDeclParser(zaptest.NewLogger(t)).ParseDeclarations(data)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	for _, d := range decls {
		name := fieldName(d.Property)
		f, ok := fields[name]
		if !ok {
			t.Fatalf("no field for property %q", d.Property)
		}
		if _, err := f.Commit(d.Raw); err != nil {
			t.Fatal(err)
		}
	}

	if got := fields["font_size"].Value().String(); got != "2em" {
		t.Errorf("font_size = %s, want 2em", got)
	}
	if got := fields["line_height"].Value().String(); got != "1.6" {
		t.Errorf("line_height = %s, want 1.6", got)
	}
}
