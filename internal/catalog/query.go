package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"mxfkit/internal/essence"
)

// Row is one stored essence kind.
type Row struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	GenericID   int    `json:"generic_id"`
	GenericName string `json:"generic"`
	Label       string `json:"label"`
	RunID       string `json:"run_id"`
}

// Filter narrows List results. A zero Filter returns every row.
type Filter struct {
	Generics     []essence.Kind
	ConcreteOnly bool
}

const rowColumns = "id, name, generic_id, generic_name, label, run_id"

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(sc scanner) (Row, error) {
	var row Row
	if err := sc.Scan(&row.ID, &row.Name, &row.GenericID, &row.GenericName, &row.Label, &row.RunID); err != nil {
		return Row{}, err
	}
	return row, nil
}

// Get returns the stored row for the kind with the given name.
func (s *Store) Get(ctx context.Context, name string) (Row, error) {
	row, err := scanRow(s.db.QueryRowContext(ctx,
		"SELECT "+rowColumns+" FROM essence_kinds WHERE name = ?", strings.ToLower(strings.TrimSpace(name))))
	if errors.Is(err, sql.ErrNoRows) {
		return Row{}, fmt.Errorf("kind %q: %w", name, ErrNotExported)
	}
	if err != nil {
		return Row{}, fmt.Errorf("get kind %q: %w", name, err)
	}
	return row, nil
}

// List returns stored rows ordered by id.
func (s *Store) List(ctx context.Context, filter Filter) ([]Row, error) {
	var (
		where []string
		args  []any
	)
	if len(filter.Generics) > 0 {
		placeholders := make([]string, len(filter.Generics))
		for i, g := range filter.Generics {
			placeholders[i] = "?"
			args = append(args, int(g))
		}
		where = append(where, "generic_id IN ("+strings.Join(placeholders, ",")+")")
	}
	if filter.ConcreteOnly {
		where = append(where, "id <> generic_id")
	}

	query := "SELECT " + rowColumns + " FROM essence_kinds"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list kinds: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kind: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Runs returns up to limit export runs, newest first. A non-positive limit
// returns every run.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	query := "SELECT id, exported_at, kind_count FROM export_runs ORDER BY exported_at DESC, rowid DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			run        Run
			exportedAt string
		)
		if err := rows.Scan(&run.ID, &exportedAt, &run.KindCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.ExportedAt, err = time.Parse(timeLayout, exportedAt)
		if err != nil {
			return nil, fmt.Errorf("parse run %s timestamp: %w", run.ID, err)
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
