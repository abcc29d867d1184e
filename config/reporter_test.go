package config

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestReport_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()

	payload := filepath.Join(tmpDir, "payload.txt")
	if err := os.WriteFile(payload, []byte("stored file"), 0644); err != nil {
		t.Fatalf("Failed to write payload: %v", err)
	}

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if rpt.Name() == "" {
		t.Error("Name() returned empty string")
	}

	rpt.Store("payload.txt", payload)
	rpt.Store("missing.txt", filepath.Join(tmpDir, "does-not-exist"))
	rpt.StoreData("config/config.yaml", []byte("version: 1\n"))

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("Failed to open report archive: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}

	for _, want := range []string{"MANIFEST", "payload.txt", "config/config.yaml"} {
		if !names[want] {
			t.Errorf("report archive misses %q, has %v", want, names)
		}
	}
	if names["missing.txt"] {
		t.Error("absent files should be silently skipped")
	}
}

func TestReport_NilSafe(t *testing.T) {
	var rpt *Report

	// all operations must be no-ops on an absent report
	rpt.Store("a", "b")
	rpt.StoreData("c", []byte("d"))
	if rpt.Name() != "" {
		t.Error("Name() on nil report should be empty")
	}
	if err := rpt.Close(); err != nil {
		t.Errorf("Close() on nil report error = %v", err)
	}
}

func TestReport_StoreOverwritePanics(t *testing.T) {
	tmpDir := t.TempDir()
	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer rpt.Close()

	rpt.Store("name", "path-one")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting Store")
		}
	}()
	rpt.Store("name", "path-two")
}
