package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"harnesspair/internal/domain"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// Repository implements repository.DrawingRepository using SQLite
type Repository struct {
	db *sql.DB
}

// New opens an existing database read-only and checks that both harness
// tables are present. A missing file is an error; it is never created.
func New(dbPath string) (*Repository, error) {
	repo, err := open(dsn(dbPath, true))
	if err != nil {
		return nil, err
	}
	if err := repo.checkSchema(context.Background()); err != nil {
		repo.Close()
		return nil, err
	}
	return repo, nil
}

// Create opens a database read-write, creating the file and the schema if
// needed. The core never writes; this exists for seeding and tests.
func Create(dbPath string) (*Repository, error) {
	repo, err := open(dsn(dbPath, false))
	if err != nil {
		return nil, err
	}
	if err := repo.migrate(context.Background()); err != nil {
		repo.Close()
		return nil, fmt.Errorf("%w: migrate database: %w", domain.ErrStorage, err)
	}
	return repo, nil
}

func open(dataSource string) (*Repository, error) {
	db, err := sql.Open(driverName, dataSource)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", domain.ErrStorage, err)
	}
	// One connection, checked out per query. This also keeps a :memory:
	// database alive across queries.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: connect to database: %w", domain.ErrStorage, err)
	}
	return &Repository{db: db}, nil
}

func dsn(dbPath string, readOnly bool) string {
	if dbPath == ":memory:" || strings.HasPrefix(dbPath, "file:") {
		return dbPath
	}
	params := "_pragma=busy_timeout(5000)"
	if readOnly {
		params = "mode=ro&" + params
	}
	return "file:" + dbPath + "?" + params
}

// Close closes the database
func (r *Repository) Close() error {
	return r.db.Close()
}

// withConn checks out a dedicated connection for the duration of fn
func (r *Repository) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %w", domain.ErrStorage, err)
	}
	defer conn.Close()
	return fn(conn)
}

func (r *Repository) checkSchema(ctx context.Context) error {
	return r.withConn(ctx, func(conn *sql.Conn) error {
		for _, table := range []string{"harness_drawing", "harness_wires"} {
			var name string
			err := conn.QueryRowContext(ctx,
				`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
			).Scan(&name)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: missing table %s", domain.ErrStorage, table)
			}
			if err != nil {
				return fmt.Errorf("%w: inspect schema: %w", domain.ErrStorage, err)
			}
		}
		return nil
	})
}

// ListDrawings returns every harness drawing in storage order
func (r *Repository) ListDrawings(ctx context.Context) ([]domain.HarnessDrawing, error) {
	var drawings []domain.HarnessDrawing
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT `+drawingColumns+` FROM harness_drawing ORDER BY id`)
		if err != nil {
			return fmt.Errorf("%w: query harness drawings: %w", domain.ErrStorage, err)
		}
		defer rows.Close()

		for rows.Next() {
			var row drawingRow
			if err := rows.Scan(row.scanArgs()...); err != nil {
				return fmt.Errorf("%w: scan harness drawing: %w", domain.ErrStorage, err)
			}
			drawings = append(drawings, row.toDomain())
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: iterate harness drawings: %w", domain.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drawings, nil
}

// GetDrawing returns a single drawing by id
func (r *Repository) GetDrawing(ctx context.Context, id int64) (*domain.HarnessDrawing, error) {
	var drawing *domain.HarnessDrawing
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		var row drawingRow
		err := conn.QueryRowContext(ctx,
			`SELECT `+drawingColumns+` FROM harness_drawing WHERE id = ?`, id,
		).Scan(row.scanArgs()...)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: harness drawing %d", domain.ErrNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("%w: query harness drawing: %w", domain.ErrStorage, err)
		}
		d := row.toDomain()
		drawing = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drawing, nil
}

// ListWires returns all wire segments owned by harnessID, empty if none
func (r *Repository) ListWires(ctx context.Context, harnessID int64) ([]domain.HarnessWiring, error) {
	wires := []domain.HarnessWiring{}
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			`SELECT `+wireColumns+` FROM harness_wires WHERE harness_id = ? ORDER BY id`, harnessID)
		if err != nil {
			return fmt.Errorf("%w: query harness wires: %w", domain.ErrStorage, err)
		}
		defer rows.Close()

		for rows.Next() {
			var row wireRow
			if err := rows.Scan(row.scanArgs()...); err != nil {
				return fmt.Errorf("%w: scan harness wire: %w", domain.ErrStorage, err)
			}
			wires = append(wires, row.toDomain())
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: iterate harness wires: %w", domain.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wires, nil
}
