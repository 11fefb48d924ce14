package main

import (
	"encoding/json"
	"strings"
	"testing"

	"mxfkit/internal/catalog"
	"mxfkit/internal/preflight"
	"mxfkit/internal/testsupport"
)

func TestCheckPrintsStatusLines(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "check")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	for _, want := range []string{"== Registry ==", "Registry alignment:", "[OK] 63 kinds in declaration order", "== Catalog ==", "Catalog directory:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, ansiReset) {
		t.Fatalf("expected no colour with output.color=never:\n%s", out)
	}
	if strings.Contains(out, "Catalog drift") {
		t.Fatalf("drift check should be skipped before export:\n%s", out)
	}
}

func TestCheckJSONIncludesDriftAfterExport(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.MustExport(t, env.cfg)

	out, _, err := env.run(t, "check", "-o", "json")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	var results []preflight.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	last := results[len(results)-1]
	if last.Name != "Catalog drift" || !last.Passed {
		t.Fatalf("unexpected drift result %+v", last)
	}
}

func TestResultLineStatus(t *testing.T) {
	tests := []struct {
		name   string
		result preflight.Result
		want   string
	}{
		{name: "passed", result: preflight.Result{Name: "Registry labels", Passed: true, Detail: "63 unique labels"}, want: "[OK] 63 unique labels"},
		{name: "skipped", result: preflight.Result{Name: "Catalog drift", Passed: true, Skipped: true, Detail: "Not exported"}, want: "[INFO] Not exported"},
		{name: "failed", result: preflight.Result{Name: "Catalog directory", Detail: "missing"}, want: "[ERROR] missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := resultLine(tt.result).render(false)
			if !strings.HasPrefix(line, "  "+tt.result.Name+":") || !strings.HasSuffix(line, tt.want) {
				t.Fatalf("unexpected line %q", line)
			}
		})
	}
}

func TestDriftLineStatus(t *testing.T) {
	missing := driftLine(catalog.Drift{ID: 62, Type: catalog.DriftMissing, Compiled: "vbi_data"})
	if missing.kind != statusError || missing.label != "Kind 62" {
		t.Fatalf("unexpected missing line %+v", missing)
	}
	relabelled := driftLine(catalog.Drift{ID: 59, Type: catalog.DriftRelabelled, Stored: "WAV PCM", Compiled: "WAVE PCM"})
	if relabelled.kind != statusWarn {
		t.Fatalf("unexpected relabelled line %+v", relabelled)
	}

	coloured := missing.render(true)
	if !strings.HasPrefix(coloured, ansiRed) || !strings.HasSuffix(coloured, ansiReset) {
		t.Fatalf("unexpected coloured line %q", coloured)
	}
}
