package catalog

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"mxfkit/internal/essence"
)

func openExported(t *testing.T) *Store {
	t.Helper()

	store, err := Open(t.Context(), filepath.Join(t.TempDir(), "essence.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if _, err := store.Export(t.Context()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	return store
}

func TestVerifyReportsDrift(t *testing.T) {
	store := openExported(t)
	ctx := t.Context()

	statements := []string{
		"UPDATE essence_kinds SET label = 'WAV PCM' WHERE id = 59",
		"UPDATE essence_kinds SET name = 'dv_50' WHERE id = 9",
		"UPDATE essence_kinds SET generic_id = 3 WHERE id = 60",
		"DELETE FROM essence_kinds WHERE id = 62",
		"INSERT INTO essence_kinds (id, name, generic_id, generic_name, label, run_id) SELECT 99, 'prores', 1, 'picture', 'ProRes', run_id FROM essence_kinds WHERE id = 0",
	}
	for _, stmt := range statements {
		if _, err := store.db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}

	drifts, err := store.Verify(ctx)
	if !errors.Is(err, ErrDrift) {
		t.Fatalf("expected ErrDrift, got %v", err)
	}

	want := []Drift{
		{ID: int(essence.DV50), Type: DriftRenamed, Stored: "dv_50", Compiled: "dv50"},
		{ID: int(essence.WavePCM), Type: DriftRelabelled, Stored: "WAV PCM", Compiled: "WAVE PCM"},
		{ID: int(essence.D10AES3PCM), Type: DriftRegrouped, Stored: "3", Compiled: "2"},
		{ID: int(essence.VBIData), Type: DriftMissing, Compiled: "vbi_data"},
		{ID: 99, Type: DriftExtra, Stored: "prores"},
	}
	if len(drifts) != len(want) {
		t.Fatalf("got %d drifts %v, want %d", len(drifts), drifts, len(want))
	}
	for i := range want {
		if drifts[i] != want[i] {
			t.Fatalf("drift %d = %+v, want %+v", i, drifts[i], want[i])
		}
	}
	if !strings.Contains(drifts[4].String(), "has no compiled kind") {
		t.Fatalf("unexpected extra drift text %q", drifts[4].String())
	}
}

func TestApplyMigrationsRejectsUnknownVersion(t *testing.T) {
	store := openExported(t)
	ctx := t.Context()

	if _, err := store.db.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ('9999_future')"); err != nil {
		t.Fatalf("insert version: %v", err)
	}
	if err := store.applyMigrations(ctx); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestLoadMigrationsSorted(t *testing.T) {
	migrations, err := loadMigrations()
	if err != nil {
		t.Fatalf("loadMigrations: %v", err)
	}
	if len(migrations) == 0 || migrations[0].version != "0001_init" {
		t.Fatalf("unexpected migrations %+v", migrations)
	}
}
