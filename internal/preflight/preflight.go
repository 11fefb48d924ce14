package preflight

import (
	"context"
	"os"

	"mxfkit/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	// Skipped marks a passing result whose check had nothing to inspect.
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail"`
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	results := CheckRegistry()
	if cfg == nil {
		return results
	}

	results = append(results, CheckCatalogDirectory(cfg.Catalog.Path))

	// Catalog drift (only once something was exported)
	if _, err := os.Stat(cfg.Catalog.Path); err == nil {
		results = append(results, CheckCatalogDrift(ctx, cfg.Catalog.Path))
	}

	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
