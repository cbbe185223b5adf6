package domain

import "fmt"

// Fixture is a set of drawings and wires to seed a database with
type Fixture struct {
	Drawings []HarnessDrawing
	Wires    []HarnessWiring
}

// Validate checks ids are positive and unique and that every wire belongs
// to a drawing in the fixture
func (f *Fixture) Validate() error {
	drawings := make(map[int64]bool, len(f.Drawings))
	for _, d := range f.Drawings {
		if d.ID <= 0 {
			return fmt.Errorf("%w: drawing %q has non-positive id %d", ErrInvalidArgument, d.Harness, d.ID)
		}
		if drawings[d.ID] {
			return fmt.Errorf("%w: duplicate drawing id %d", ErrInvalidArgument, d.ID)
		}
		drawings[d.ID] = true
	}

	wires := make(map[int64]bool, len(f.Wires))
	for _, w := range f.Wires {
		if w.ID <= 0 {
			return fmt.Errorf("%w: wire has non-positive id %d", ErrInvalidArgument, w.ID)
		}
		if wires[w.ID] {
			return fmt.Errorf("%w: duplicate wire id %d", ErrInvalidArgument, w.ID)
		}
		wires[w.ID] = true
		if !drawings[w.HarnessID] {
			return fmt.Errorf("%w: wire %d references unknown harness %d", ErrInvalidArgument, w.ID, w.HarnessID)
		}
	}
	return nil
}
