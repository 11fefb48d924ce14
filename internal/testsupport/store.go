package testsupport

import (
	"testing"

	"mxfkit/internal/catalog"
	"mxfkit/internal/config"
)

// MustOpenCatalog opens a catalog.Store for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(t.Context(), cfg.Catalog.Path, nil)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// MustExport opens the catalog and exports the compiled registry into it.
func MustExport(t testing.TB, cfg *config.Config) catalog.Run {
	t.Helper()

	store := MustOpenCatalog(t, cfg)
	run, err := store.Export(t.Context())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	return run
}
