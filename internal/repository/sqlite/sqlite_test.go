package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"harnesspair/internal/domain"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestRepo creates an in-memory SQLite repository with the schema applied
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Create(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// newMockRepo wraps a sqlmock connection
func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return &Repository{db: db}, mock
}

// assertNoError fails the test if err is not nil
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertEqual fails the test if expected != actual
func assertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

func sampleFixture() *domain.Fixture {
	return &domain.Fixture{
		Drawings: []domain.HarnessDrawing{
			{ID: 1, Harness: "H-100", HarnessVersion: "A", Drawing: "DRW-1", DrawingVersion: "1"},
			{ID: 2, Harness: "H-200", HarnessVersion: "B", Drawing: "DRW-2", DrawingVersion: "3"},
			{ID: 3, Harness: "H-300", HarnessVersion: "A", Drawing: "DRW-3", DrawingVersion: "2"},
		},
		Wires: []domain.HarnessWiring{
			{ID: 10, HarnessID: 1, Length: "120", Color: "red", Housing1: "J1", Housing2: "J2"},
			{ID: 11, HarnessID: 1, Length: "80", Color: "black", Housing1: "J3", Housing2: "J4"},
			{ID: 20, HarnessID: 2, Length: "200", Color: "blue", Housing1: "J9", Housing2: "J1"},
		},
	}
}

// ============================================================================
// Helper Function Tests
// ============================================================================

func TestNullToString(t *testing.T) {
	tests := []struct {
		name     string
		input    sql.NullString
		expected string
	}{
		{"valid string", sql.NullString{String: "test", Valid: true}, "test"},
		{"invalid string", sql.NullString{String: "test", Valid: false}, ""},
		{"empty valid string", sql.NullString{String: "", Valid: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertEqual(t, tt.expected, nullToString(tt.input))
		})
	}
}

func TestInsertKeepsEmptyStrings(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.InsertDrawing(ctx, domain.HarnessDrawing{ID: 1, Harness: "H"}))
	assertNoError(t, repo.InsertWire(ctx, domain.HarnessWiring{ID: 1, HarnessID: 1, Housing1: "", Housing2: "J2"}))

	var nullDrawingFields, nullWireFields int
	err := repo.db.QueryRow(`SELECT
		(harness_version IS NULL) + (drawing IS NULL) + (drawing_version IS NULL)
		FROM harness_drawing WHERE id = 1`).Scan(&nullDrawingFields)
	assertNoError(t, err)
	assertEqual(t, 0, nullDrawingFields)

	err = repo.db.QueryRow(`SELECT
		(length IS NULL) + (color IS NULL) + (housing_1 IS NULL) + (housing_2 IS NULL)
		FROM harness_wires WHERE id = 1`).Scan(&nullWireFields)
	assertNoError(t, err)
	assertEqual(t, 0, nullWireFields)

	var housing1 string
	assertNoError(t, repo.db.QueryRow(`SELECT housing_1 FROM harness_wires WHERE id = 1`).Scan(&housing1))
	assertEqual(t, "", housing1)
}

func TestDSN(t *testing.T) {
	tests := []struct {
		path     string
		readOnly bool
		expected string
	}{
		{":memory:", true, ":memory:"},
		{"file:custom.db?mode=rw", true, "file:custom.db?mode=rw"},
		{"dbs.db", true, "file:dbs.db?mode=ro&_pragma=busy_timeout(5000)"},
		{"dbs.db", false, "file:dbs.db?_pragma=busy_timeout(5000)"},
	}
	for _, tt := range tests {
		assertEqual(t, tt.expected, dsn(tt.path, tt.readOnly))
	}
}

// ============================================================================
// Read Tests
// ============================================================================

func TestListDrawings(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		drawings, err := repo.ListDrawings(ctx)
		assertNoError(t, err)
		assertEqual(t, 0, len(drawings))
	})

	assertNoError(t, repo.ImportFixture(ctx, sampleFixture(), false))

	t.Run("returns rows in storage order", func(t *testing.T) {
		drawings, err := repo.ListDrawings(ctx)
		assertNoError(t, err)
		assertEqual(t, sampleFixture().Drawings, drawings)
	})
}

func TestListWires(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	assertNoError(t, repo.ImportFixture(ctx, sampleFixture(), false))

	t.Run("filters by harness", func(t *testing.T) {
		wires, err := repo.ListWires(ctx, 1)
		assertNoError(t, err)
		assertEqual(t, sampleFixture().Wires[:2], wires)
	})

	t.Run("no wires yields empty slice", func(t *testing.T) {
		wires, err := repo.ListWires(ctx, 3)
		assertNoError(t, err)
		if wires == nil {
			t.Fatal("expected empty non-nil slice")
		}
		assertEqual(t, 0, len(wires))
	})

	t.Run("unknown harness yields empty slice", func(t *testing.T) {
		wires, err := repo.ListWires(ctx, 999)
		assertNoError(t, err)
		assertEqual(t, 0, len(wires))
	})
}

func TestListWiresNullColumns(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assertNoError(t, repo.InsertDrawing(ctx, domain.HarnessDrawing{ID: 1, Harness: "H"}))
	_, err := repo.db.Exec(`INSERT INTO harness_wires (id, harness_id, length, color, housing_1, housing_2) VALUES (1, 1, 42, NULL, 'J1', NULL)`)
	assertNoError(t, err)

	wires, err := repo.ListWires(ctx, 1)
	assertNoError(t, err)
	assertEqual(t, []domain.HarnessWiring{{ID: 1, HarnessID: 1, Length: "42", Housing1: "J1"}}, wires)
}

func TestGetDrawing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	assertNoError(t, repo.ImportFixture(ctx, sampleFixture(), false))

	d, err := repo.GetDrawing(ctx, 2)
	assertNoError(t, err)
	assertEqual(t, "H-200", d.Harness)

	_, err = repo.GetDrawing(ctx, 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ============================================================================
// Open Tests
// ============================================================================

func TestNewReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbs.db")
	ctx := context.Background()

	seed, err := Create(path)
	assertNoError(t, err)
	assertNoError(t, seed.ImportFixture(ctx, sampleFixture(), false))
	assertNoError(t, seed.Close())

	repo, err := New(path)
	assertNoError(t, err)
	defer repo.Close()

	drawings, err := repo.ListDrawings(ctx)
	assertNoError(t, err)
	assertEqual(t, 3, len(drawings))

	err = repo.InsertDrawing(ctx, domain.HarnessDrawing{ID: 99})
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected write to read-only database to fail with ErrStorage, got %v", err)
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.db"))
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestNewMissingTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open(driverName, path)
	assertNoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (id INTEGER)`)
	assertNoError(t, err)
	db.Close()

	_, err = New(path)
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage for missing tables, got %v", err)
	}
}

// ============================================================================
// Import Tests
// ============================================================================

func TestImportFixtureReplace(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	assertNoError(t, repo.ImportFixture(ctx, sampleFixture(), false))

	replacement := &domain.Fixture{
		Drawings: []domain.HarnessDrawing{{ID: 7, Harness: "H-700"}},
	}
	assertNoError(t, repo.ImportFixture(ctx, replacement, true))

	drawings, err := repo.ListDrawings(ctx)
	assertNoError(t, err)
	assertEqual(t, 1, len(drawings))
	assertEqual(t, int64(7), drawings[0].ID)

	wires, err := repo.ListWires(ctx, 1)
	assertNoError(t, err)
	assertEqual(t, 0, len(wires))
}

func TestImportFixtureRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	assertNoError(t, repo.InsertDrawing(ctx, domain.HarnessDrawing{ID: 2, Harness: "existing"}))

	// id 2 collides with the existing row, so drawing 1 must not survive
	err := repo.ImportFixture(ctx, &domain.Fixture{
		Drawings: []domain.HarnessDrawing{{ID: 1}, {ID: 2}},
	}, false)
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	drawings, err := repo.ListDrawings(ctx)
	assertNoError(t, err)
	assertEqual(t, 1, len(drawings))
}

func TestImportFixtureValidates(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.ImportFixture(context.Background(), &domain.Fixture{
		Wires: []domain.HarnessWiring{{ID: 1, HarnessID: 5}},
	}, false)
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

// ============================================================================
// Driver Failure Tests
// ============================================================================

func TestListDrawingsQueryFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + drawingColumns + ` FROM harness_drawing`)).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.ListDrawings(context.Background())
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	assertNoError(t, mock.ExpectationsWereMet())
}

func TestListWiresBindsHarnessID(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"id", "harness_id", "length", "color", "housing_1", "housing_2"}).
		AddRow(int64(1), int64(7), "10", "red", "J1", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM harness_wires WHERE harness_id = ?`)).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	wires, err := repo.ListWires(context.Background(), 7)
	assertNoError(t, err)
	assertEqual(t, []domain.HarnessWiring{{ID: 1, HarnessID: 7, Length: "10", Color: "red", Housing1: "J1"}}, wires)
	assertNoError(t, mock.ExpectationsWereMet())
}

func TestListWiresRowError(t *testing.T) {
	repo, mock := newMockRepo(t)
	rows := sqlmock.NewRows([]string{"id", "harness_id", "length", "color", "housing_1", "housing_2"}).
		AddRow(int64(1), int64(7), "10", "red", "J1", "J2").
		RowError(0, errors.New("connection reset"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM harness_wires`)).WillReturnRows(rows)

	_, err := repo.ListWires(context.Background(), 7)
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}
