// Package catalog publishes the compiled essence registry into a SQLite
// reference database so tools outside the Go binary can join against it.
//
// Key types:
//   - Store: open handle on the catalog database
//   - Row: one stored essence kind
//   - Run: one export, identified by a UUID
//   - Drift: one difference between the stored rows and the compiled registry
//
// Export replaces every stored row in a single transaction while holding an
// exclusive lock file next to the database, so concurrent exports fail fast
// with ErrLocked instead of interleaving. Verify reports drift between a
// previously exported snapshot and the registry linked into this binary.
package catalog
