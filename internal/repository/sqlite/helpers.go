package sqlite

import (
	"database/sql"

	"harnesspair/internal/domain"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// ============================================================================
// Row Scanners
// ============================================================================
//
// Column order must match between the *Columns constant, scanArgs() and any
// INSERT using the same order.

const drawingColumns = `id, harness, harness_version, drawing, drawing_version`

// drawingRow holds all columns from a harness_drawing query for scanning
type drawingRow struct {
	ID             int64
	Harness        sql.NullString
	HarnessVersion sql.NullString
	Drawing        sql.NullString
	DrawingVersion sql.NullString
}

func (r *drawingRow) scanArgs() []any {
	return []any{&r.ID, &r.Harness, &r.HarnessVersion, &r.Drawing, &r.DrawingVersion}
}

func (r *drawingRow) toDomain() domain.HarnessDrawing {
	return domain.HarnessDrawing{
		ID:             r.ID,
		Harness:        nullToString(r.Harness),
		HarnessVersion: nullToString(r.HarnessVersion),
		Drawing:        nullToString(r.Drawing),
		DrawingVersion: nullToString(r.DrawingVersion),
	}
}

const wireColumns = `id, harness_id, length, color, housing_1, housing_2`

// wireRow holds all columns from a harness_wires query for scanning
type wireRow struct {
	ID        int64
	HarnessID int64
	Length    sql.NullString
	Color     sql.NullString
	Housing1  sql.NullString
	Housing2  sql.NullString
}

func (r *wireRow) scanArgs() []any {
	return []any{&r.ID, &r.HarnessID, &r.Length, &r.Color, &r.Housing1, &r.Housing2}
}

func (r *wireRow) toDomain() domain.HarnessWiring {
	return domain.HarnessWiring{
		ID:        r.ID,
		HarnessID: r.HarnessID,
		Length:    nullToString(r.Length),
		Color:     nullToString(r.Color),
		Housing1:  nullToString(r.Housing1),
		Housing2:  nullToString(r.Housing2),
	}
}
