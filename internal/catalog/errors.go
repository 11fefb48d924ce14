package catalog

import "errors"

var (
	// ErrLocked indicates another export holds the catalog lock.
	ErrLocked = errors.New("catalog locked by another export")
	// ErrNotExported indicates the catalog has no export yet, or lacks the requested kind.
	ErrNotExported = errors.New("not exported")
	// ErrDrift indicates stored rows differ from the compiled registry.
	ErrDrift = errors.New("catalog drift")
	// ErrSchemaMismatch indicates the database was migrated by a newer build.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)
