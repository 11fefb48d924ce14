package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mxfkit/internal/essence"
	"mxfkit/internal/logging"
)

// Run records one export of the compiled registry.
type Run struct {
	ID         string    `json:"id"`
	ExportedAt time.Time `json:"exported_at"`
	KindCount  int       `json:"kind_count"`
}

// Export replaces every stored row with the compiled registry in one
// transaction. It returns ErrLocked when another export holds the lock.
func (s *Store) Export(ctx context.Context) (Run, error) {
	lock := flock.New(s.path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return Run{}, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		s.logger.Warn("catalog export skipped", logging.Error(ErrLocked))
		return Run{}, ErrLocked
	}
	defer func() {
		_ = lock.Unlock()
	}()

	kinds := essence.Kinds()
	run := Run{
		ID:         uuid.NewString(),
		ExportedAt: time.Now().UTC(),
		KindCount:  len(kinds),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("begin export tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO export_runs (id, exported_at, kind_count) VALUES (?, ?, ?)",
		run.ID, run.ExportedAt.Format(timeLayout), run.KindCount,
	); err != nil {
		return Run{}, fmt.Errorf("record export run: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM essence_kinds"); err != nil {
		return Run{}, fmt.Errorf("clear essence kinds: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO essence_kinds (id, name, generic_id, generic_name, label, run_id)
        VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, k := range kinds {
		g := k.Generic()
		if _, err := stmt.ExecContext(ctx, int(k), k.Name(), int(g), g.Name(), k.Label(), run.ID); err != nil {
			return Run{}, fmt.Errorf("insert %s: %w", k.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("catalog export failed", slog.String(logging.FieldRunID, run.ID), logging.Error(err))
		return Run{}, fmt.Errorf("commit export: %w", err)
	}

	s.logger.Info("catalog exported",
		slog.String(logging.FieldRunID, run.ID),
		slog.Int("count", run.KindCount),
	)
	return run, nil
}
