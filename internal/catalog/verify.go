package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"mxfkit/internal/essence"
	"mxfkit/internal/logging"
)

// Drift kinds reported by Verify.
const (
	DriftMissing    = "missing"
	DriftExtra      = "extra"
	DriftRenamed    = "renamed"
	DriftRelabelled = "relabelled"
	DriftRegrouped  = "regrouped"
)

// Drift is one difference between the stored rows and the compiled registry.
type Drift struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Stored   string `json:"stored,omitempty"`
	Compiled string `json:"compiled,omitempty"`
}

func (d Drift) String() string {
	switch d.Type {
	case DriftMissing:
		return fmt.Sprintf("kind %d (%s) missing from catalog", d.ID, d.Compiled)
	case DriftExtra:
		return fmt.Sprintf("catalog row %d (%s) has no compiled kind", d.ID, d.Stored)
	default:
		return fmt.Sprintf("kind %d %s: catalog %q, compiled %q", d.ID, d.Type, d.Stored, d.Compiled)
	}
}

// Verify compares the stored rows with the compiled registry. When any
// difference exists the drifts are returned together with an error wrapping
// ErrDrift. It returns ErrNotExported when the catalog was never exported.
func (s *Store) Verify(ctx context.Context) ([]Drift, error) {
	var runs int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM export_runs").Scan(&runs); err != nil {
		return nil, fmt.Errorf("count runs: %w", err)
	}
	if runs == 0 {
		return nil, fmt.Errorf("catalog %s: %w", s.path, ErrNotExported)
	}

	stored, err := s.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	byID := make(map[int]Row, len(stored))
	for _, row := range stored {
		byID[row.ID] = row
	}

	var drifts []Drift
	for _, k := range essence.Kinds() {
		id := int(k)
		row, ok := byID[id]
		if !ok {
			drifts = append(drifts, Drift{ID: id, Type: DriftMissing, Compiled: k.Name()})
			continue
		}
		delete(byID, id)
		if row.Name != k.Name() {
			drifts = append(drifts, Drift{ID: id, Type: DriftRenamed, Stored: row.Name, Compiled: k.Name()})
		}
		if row.Label != k.Label() {
			drifts = append(drifts, Drift{ID: id, Type: DriftRelabelled, Stored: row.Label, Compiled: k.Label()})
		}
		if g := k.Generic(); row.GenericID != int(g) {
			drifts = append(drifts, Drift{
				ID:       id,
				Type:     DriftRegrouped,
				Stored:   strconv.Itoa(row.GenericID),
				Compiled: strconv.Itoa(int(g)),
			})
		}
	}
	for _, row := range stored {
		if _, leftover := byID[row.ID]; leftover {
			drifts = append(drifts, Drift{ID: row.ID, Type: DriftExtra, Stored: row.Name})
		}
	}

	if len(drifts) == 0 {
		return nil, nil
	}
	for _, d := range drifts {
		s.logger.Warn("catalog drift",
			slog.Int("id", d.ID),
			slog.String("type", d.Type),
			slog.String(logging.FieldKind, d.Compiled),
		)
	}
	return drifts, fmt.Errorf("%w: %d difference(s)", ErrDrift, len(drifts))
}
