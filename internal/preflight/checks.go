package preflight

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"mxfkit/internal/catalog"
	"mxfkit/internal/essence"
)

// CheckRegistry reports one result per essence table check group.
func CheckRegistry() []Result {
	groups := essence.CheckGroups()
	results := make([]Result, 0, len(groups))
	for _, g := range groups {
		name := "Registry " + g.Group
		if g.Err != nil {
			results = append(results, Result{Name: name, Detail: g.Err.Error()})
			continue
		}
		results = append(results, Result{Name: name, Passed: true, Detail: groupDetail(g.Group)})
	}
	return results
}

func groupDetail(group string) string {
	kinds := len(essence.Kinds())
	switch group {
	case "alignment":
		return fmt.Sprintf("%d kinds in declaration order", kinds)
	case "partition":
		return fmt.Sprintf("%d picture, %d sound, %d data",
			len(essence.ByGeneric(essence.Picture)),
			len(essence.ByGeneric(essence.Sound)),
			len(essence.ByGeneric(essence.Data)))
	default:
		return fmt.Sprintf("%d unique %s", kinds, group)
	}
}

// CheckCatalogDirectory verifies that the catalog's parent directory exists
// and is readable and writable.
func CheckCatalogDirectory(path string) Result {
	const name = "Catalog directory"

	dir := filepath.Dir(path)
	if err := catalog.CheckDirectory(dir); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", dir)}
}

// CheckCatalogDrift compares the exported catalog at path with the compiled
// registry.
func CheckCatalogDrift(ctx context.Context, path string) Result {
	const name = "Catalog drift"

	store, err := catalog.Open(ctx, path, nil)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	defer store.Close()

	drifts, err := store.Verify(ctx)
	switch {
	case errors.Is(err, catalog.ErrNotExported):
		return Result{Name: name, Passed: true, Skipped: true, Detail: "Not exported"}
	case errors.Is(err, catalog.ErrDrift):
		return Result{Name: name, Detail: fmt.Sprintf("%d difference(s), first: %s", len(drifts), drifts[0])}
	case err != nil:
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: "In sync"}
}
