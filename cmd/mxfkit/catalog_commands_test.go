package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mxfkit/internal/catalog"
	"mxfkit/internal/testsupport"
)

func TestCatalogExportListVerify(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "catalog", "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 63 kinds to "+env.cfg.Catalog.Path) {
		t.Fatalf("unexpected export output %q", out)
	}

	out, _, err = env.run(t, "catalog", "list", "-o", "plain", "--generic", "sound", "--concrete")
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	if out != "59\twave_pcm\tSound\tWAVE PCM\n60\td10_aes3_pcm\tSound\tD10 AES3 PCM\n" {
		t.Fatalf("unexpected catalog list:\n%s", out)
	}

	out, _, err = env.run(t, "catalog", "verify")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !strings.Contains(out, "in sync with compiled registry") {
		t.Fatalf("unexpected verify output %q", out)
	}
}

func TestCatalogVerifyBeforeExport(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := env.run(t, "catalog", "verify"); !errors.Is(err, catalog.ErrNotExported) {
		t.Fatalf("expected ErrNotExported, got %v", err)
	}
}

func TestCatalogExportPathFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(testsupport.BaseDir(env.cfg), "other.db")

	out, _, err := env.run(t, "catalog", "export", "--path", target, "-o", "json")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var run catalog.Run
	if err := json.Unmarshal([]byte(out), &run); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if run.ID == "" || run.KindCount != 63 {
		t.Fatalf("unexpected run %+v", run)
	}

	out, _, err = env.run(t, "catalog", "runs", "--path", target, "-o", "plain")
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if !strings.HasPrefix(out, run.ID+"\t") || !strings.HasSuffix(out, "\t63\n") {
		t.Fatalf("unexpected runs output %q", out)
	}
}

func TestCatalogRunsLimit(t *testing.T) {
	env := setupCLITestEnv(t)
	for range 3 {
		testsupport.MustExport(t, env.cfg)
	}

	out, _, err := env.run(t, "catalog", "runs", "--limit", "2", "-o", "json")
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	var runs []catalog.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestCatalogExportDebugLogIncludesCaller(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLogLevel("debug"))

	if _, _, err := env.run(t, "catalog", "export"); err != nil {
		t.Fatalf("export: %v", err)
	}
	content, err := os.ReadFile(testsupport.LogPath(env.cfg))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"INFO catalog: catalog exported", "[export.go:", "count=63"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("expected %q in log:\n%s", want, content)
		}
	}
}
