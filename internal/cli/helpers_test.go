package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"harnesspair/internal/domain"
	"harnesspair/internal/repository/sqlite"
)

const fixtureYAML = `
drawings:
  - id: 1
    harness: H-100
    harness_version: A
    drawing: DRW-10
    drawing_version: "1"
    wires:
      - {length: "120", color: red, housing_1: J1, housing_2: J2}
  - id: 2
    harness: H-200
    harness_version: B
    drawing: DRW-20
    drawing_version: "2"
    wires:
      - {length: "40", color: white, housing_1: J1, housing_2: J9}
  - id: 3
    harness: H-300
    harness_version: A
    drawing: DRW-30
    drawing_version: "1"
    wires:
      - {length: "70", color: blue, housing_1: K1, housing_2: K2}
`

// writeConfig writes a quiet config file so tests never pick up one from
// the environment
func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "harnesspair.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0644))
	return path
}

// seedDatabase creates a database holding the given drawings, one wire each
func seedDatabase(t *testing.T, dir string, drawings ...domain.HarnessDrawing) string {
	t.Helper()
	path := filepath.Join(dir, "dbs.db")
	repo, err := sqlite.Create(path)
	require.NoError(t, err)
	defer repo.Close()

	f := &domain.Fixture{Drawings: drawings}
	for i, d := range drawings {
		f.Wires = append(f.Wires, domain.HarnessWiring{
			ID: int64(i + 1), HarnessID: d.ID, Housing1: "J1", Housing2: "J2",
		})
	}
	require.NoError(t, repo.ImportFixture(context.Background(), f, false))
	return path
}

func drawing(id int64, harness string) domain.HarnessDrawing {
	return domain.HarnessDrawing{ID: id, Harness: harness, HarnessVersion: "A", Drawing: "DRW-" + harness, DrawingVersion: "1"}
}

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommand(t, NewRootCommand(), args...)
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
