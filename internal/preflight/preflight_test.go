package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mxfkit/internal/catalog"
	"mxfkit/internal/config"
)

func TestCheckRegistryPasses(t *testing.T) {
	results := CheckRegistry()
	if len(results) != 4 {
		t.Fatalf("expected 4 registry results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Fatalf("%s failed: %s", r.Name, r.Detail)
		}
	}
	if results[1].Name != "Registry partition" || results[1].Detail != "55 picture, 2 sound, 2 data" {
		t.Fatalf("unexpected partition result %+v", results[1])
	}
}

func TestCheckCatalogDirectory_OK(t *testing.T) {
	result := CheckCatalogDirectory(filepath.Join(t.TempDir(), "essence.db"))
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckCatalogDirectory_NotExist(t *testing.T) {
	result := CheckCatalogDirectory(filepath.Join(t.TempDir(), "nope", "essence.db"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckCatalogDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essence.db")
	store, err := catalog.Open(t.Context(), path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if result := CheckCatalogDrift(t.Context(), path); !result.Passed || !result.Skipped || result.Detail != "Not exported" {
		t.Fatalf("unexpected result before export: %+v", result)
	}
	if _, err := store.Export(t.Context()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if result := CheckCatalogDrift(t.Context(), path); !result.Passed || result.Skipped || result.Detail != "In sync" {
		t.Fatalf("unexpected result after export: %+v", result)
	}
}

func TestRunAllSkipsDriftWithoutCatalog(t *testing.T) {
	cfg := config.Default()
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "essence.db")

	results := RunAll(t.Context(), &cfg)
	for _, r := range results {
		if strings.HasPrefix(r.Name, "Catalog drift") {
			t.Fatalf("drift check should be skipped, got %+v", r)
		}
	}
	if Failed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}

	if err := os.WriteFile(cfg.Catalog.Path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	results = RunAll(t.Context(), &cfg)
	if got := results[len(results)-1].Name; got != "Catalog drift" {
		t.Fatalf("expected drift check last, got %q", got)
	}
}

func TestFailed(t *testing.T) {
	if Failed([]Result{{Passed: true}}) {
		t.Fatal("expected no failure")
	}
	if !Failed([]Result{{Passed: true}, {Passed: false}}) {
		t.Fatal("expected failure")
	}
}
