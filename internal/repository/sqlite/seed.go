package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"harnesspair/internal/domain"
)

func (r *Repository) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS harness_drawing (
		id INTEGER PRIMARY KEY,
		harness_version TEXT,
		harness TEXT,
		drawing_version TEXT,
		drawing TEXT
	);

	CREATE TABLE IF NOT EXISTS harness_wires (
		id INTEGER PRIMARY KEY,
		harness_id INTEGER NOT NULL,
		length TEXT,
		color TEXT,
		housing_1 TEXT,
		housing_2 TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_harness_wires_harness ON harness_wires(harness_id);
	`
	return r.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, schema)
		return err
	})
}

// execer is satisfied by *sql.Conn and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertDrawing(ctx context.Context, ex execer, d domain.HarnessDrawing) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO harness_drawing (`+drawingColumns+`)
		VALUES (?, ?, ?, ?, ?)
	`, d.ID, d.Harness, d.HarnessVersion, d.Drawing, d.DrawingVersion)
	if err != nil {
		return fmt.Errorf("%w: insert harness drawing %d: %w", domain.ErrStorage, d.ID, err)
	}
	return nil
}

func insertWire(ctx context.Context, ex execer, w domain.HarnessWiring) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO harness_wires (`+wireColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, w.ID, w.HarnessID, w.Length, w.Color, w.Housing1, w.Housing2)
	if err != nil {
		return fmt.Errorf("%w: insert harness wire %d: %w", domain.ErrStorage, w.ID, err)
	}
	return nil
}

// InsertDrawing adds a single drawing row
func (r *Repository) InsertDrawing(ctx context.Context, d domain.HarnessDrawing) error {
	return r.withConn(ctx, func(conn *sql.Conn) error {
		return insertDrawing(ctx, conn, d)
	})
}

// InsertWire adds a single wire row
func (r *Repository) InsertWire(ctx context.Context, w domain.HarnessWiring) error {
	return r.withConn(ctx, func(conn *sql.Conn) error {
		return insertWire(ctx, conn, w)
	})
}

// ImportFixture validates and inserts a fixture in one transaction.
// With replace set, existing rows are removed first.
func (r *Repository) ImportFixture(ctx context.Context, f *domain.Fixture, replace bool) error {
	if err := f.Validate(); err != nil {
		return err
	}

	return r.withConn(ctx, func(conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: begin import: %w", domain.ErrStorage, err)
		}
		defer tx.Rollback()

		if replace {
			for _, stmt := range []string{`DELETE FROM harness_wires`, `DELETE FROM harness_drawing`} {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("%w: clear tables: %w", domain.ErrStorage, err)
				}
			}
		}

		for _, d := range f.Drawings {
			if err := insertDrawing(ctx, tx, d); err != nil {
				return err
			}
		}
		for _, w := range f.Wires {
			if err := insertWire(ctx, tx, w); err != nil {
				return err
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: commit import: %w", domain.ErrStorage, err)
		}
		return nil
	})
}
