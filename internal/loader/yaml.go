// Package loader reads harness fixtures from YAML files.
package loader

import (
	"fmt"
	"os"

	"harnesspair/internal/domain"

	"gopkg.in/yaml.v3"
)

// FixtureYAML represents the YAML file structure
type FixtureYAML struct {
	Version  string        `yaml:"version,omitempty"`
	Drawings []DrawingYAML `yaml:"drawings"`
}

// DrawingYAML represents one harness drawing with its wires
type DrawingYAML struct {
	ID             int64      `yaml:"id"`
	Harness        string     `yaml:"harness"`
	HarnessVersion string     `yaml:"harness_version,omitempty"`
	Drawing        string     `yaml:"drawing"`
	DrawingVersion string     `yaml:"drawing_version,omitempty"`
	Wires          []WireYAML `yaml:"wires,omitempty"`
}

// WireYAML represents a wire; ID may be omitted and is then assigned
type WireYAML struct {
	ID       int64  `yaml:"id,omitempty"`
	Length   string `yaml:"length,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Housing1 string `yaml:"housing_1,omitempty"`
	Housing2 string `yaml:"housing_2,omitempty"`
}

// LoadYAML loads a fixture from a YAML file
func LoadYAML(path string) (*domain.Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseYAML(data)
}

// ParseYAML parses and validates a fixture from YAML bytes
func ParseYAML(data []byte) (*domain.Fixture, error) {
	var y FixtureYAML
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %w", domain.ErrInvalidArgument, err)
	}

	fixture := convertYAMLToFixture(&y)
	if err := fixture.Validate(); err != nil {
		return nil, err
	}
	return fixture, nil
}

func convertYAMLToFixture(y *FixtureYAML) *domain.Fixture {
	fixture := &domain.Fixture{}

	// Explicit wire ids win; the rest are numbered after the highest one
	var nextWireID int64
	for _, d := range y.Drawings {
		for _, w := range d.Wires {
			if w.ID > nextWireID {
				nextWireID = w.ID
			}
		}
	}

	for _, d := range y.Drawings {
		fixture.Drawings = append(fixture.Drawings, domain.HarnessDrawing{
			ID:             d.ID,
			Harness:        d.Harness,
			HarnessVersion: d.HarnessVersion,
			Drawing:        d.Drawing,
			DrawingVersion: d.DrawingVersion,
		})

		for _, w := range d.Wires {
			id := w.ID
			if id == 0 {
				nextWireID++
				id = nextWireID
			}
			fixture.Wires = append(fixture.Wires, domain.HarnessWiring{
				ID:        id,
				HarnessID: d.ID,
				Length:    w.Length,
				Color:     w.Color,
				Housing1:  w.Housing1,
				Housing2:  w.Housing2,
			})
		}
	}

	return fixture
}

// ExportYAML writes a fixture back out with wires nested under their drawing
func ExportYAML(f *domain.Fixture) ([]byte, error) {
	y := &FixtureYAML{Version: "1"}

	index := make(map[int64]int, len(f.Drawings))
	for _, d := range f.Drawings {
		index[d.ID] = len(y.Drawings)
		y.Drawings = append(y.Drawings, DrawingYAML{
			ID:             d.ID,
			Harness:        d.Harness,
			HarnessVersion: d.HarnessVersion,
			Drawing:        d.Drawing,
			DrawingVersion: d.DrawingVersion,
		})
	}

	for _, w := range f.Wires {
		i, ok := index[w.HarnessID]
		if !ok {
			return nil, fmt.Errorf("%w: wire %d references unknown harness %d", domain.ErrInvalidArgument, w.ID, w.HarnessID)
		}
		y.Drawings[i].Wires = append(y.Drawings[i].Wires, WireYAML{
			ID:       w.ID,
			Length:   w.Length,
			Color:    w.Color,
			Housing1: w.Housing1,
			Housing2: w.Housing2,
		})
	}

	return yaml.Marshal(y)
}
