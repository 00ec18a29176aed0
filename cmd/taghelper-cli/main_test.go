package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitValues(t *testing.T) {
	got := splitValues("red\r\n\n  \ngreen \nred")
	want := []string{"red", "green ", "red"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if got := splitValues(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestLoadData(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "data.json")
	yamlPath := filepath.Join(dir, "data.yaml")
	if err := os.WriteFile(jsonPath, []byte(`{"colors":["red","green"]}`), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if err := os.WriteFile(yamlPath, []byte("colors:\n  - red\n  - green\n"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	want := map[string]any{"colors": []any{"red", "green"}}
	for _, path := range []string{jsonPath, yamlPath} {
		got, err := loadData(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("data mismatch for %s (-want +got):\n%s", path, diff)
		}
	}

	empty, err := loadData("")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty data, got %v (%v)", empty, err)
	}
}
