package domain

import "testing"

func TestNewHarnessPair(t *testing.T) {
	a := HarnessDrawing{ID: 1, Harness: "H1", HarnessVersion: "A", Drawing: "D1", DrawingVersion: "1"}
	b := HarnessDrawing{ID: 2, Harness: "H2", HarnessVersion: "B", Drawing: "D2", DrawingVersion: "2"}

	p := NewHarnessPair(a, b, true)

	want := HarnessPair{
		Harness1: "H1", Harness1Version: "A", Drawing1: "D1", Drawing1Version: "1",
		Harness2: "H2", Harness2Version: "B", Drawing2: "D2", Drawing2Version: "2",
		Duplicate: true,
	}
	if p != want {
		t.Errorf("NewHarnessPair() = %+v, want %+v", p, want)
	}
}

func TestHarnessPairEqual(t *testing.T) {
	a := HarnessDrawing{Harness: "H1", HarnessVersion: "A", Drawing: "D1", DrawingVersion: "1"}
	b := HarnessDrawing{Harness: "H2", HarnessVersion: "B", Drawing: "D2", DrawingVersion: "2"}

	t.Run("same fields are equal", func(t *testing.T) {
		if !NewHarnessPair(a, b, false).Equal(NewHarnessPair(a, b, false)) {
			t.Error("expected equal pairs")
		}
	})

	t.Run("order matters", func(t *testing.T) {
		if NewHarnessPair(a, b, false).Equal(NewHarnessPair(b, a, false)) {
			t.Error("expected (a, b) and (b, a) to differ")
		}
	})

	t.Run("duplicate flag matters", func(t *testing.T) {
		if NewHarnessPair(a, b, false).Equal(NewHarnessPair(a, b, true)) {
			t.Error("expected flag difference to make pairs unequal")
		}
	})

	t.Run("each field participates", func(t *testing.T) {
		base := NewHarnessPair(a, b, false)
		mutations := []func(*HarnessPair){
			func(p *HarnessPair) { p.Harness1 = "x" },
			func(p *HarnessPair) { p.Harness1Version = "x" },
			func(p *HarnessPair) { p.Drawing1 = "x" },
			func(p *HarnessPair) { p.Drawing1Version = "x" },
			func(p *HarnessPair) { p.Harness2 = "x" },
			func(p *HarnessPair) { p.Harness2Version = "x" },
			func(p *HarnessPair) { p.Drawing2 = "x" },
			func(p *HarnessPair) { p.Drawing2Version = "x" },
		}
		for i, mutate := range mutations {
			other := base
			mutate(&other)
			if base.Equal(other) {
				t.Errorf("mutation %d: expected pairs to differ", i)
			}
			if base == other {
				t.Errorf("mutation %d: == disagrees with Equal", i)
			}
		}
	})
}

func TestHarnessPairColumns(t *testing.T) {
	p := HarnessPair{Harness1: "H1", Harness2: "H2", Duplicate: true}
	cols := p.Columns()

	if len(cols) != len(PairColumns) {
		t.Fatalf("expected %d columns, got %d", len(PairColumns), len(cols))
	}
	if cols[0] != "H1" || cols[4] != "H2" || cols[8] != "true" {
		t.Errorf("unexpected columns: %v", cols)
	}
}

func TestPairRunDuplicateCount(t *testing.T) {
	run := &PairRun{Pairs: []HarnessPair{
		{Harness1: "a", Duplicate: true},
		{Harness1: "b"},
		{Harness1: "c", Duplicate: true},
	}}
	if got := run.DuplicateCount(); got != 2 {
		t.Errorf("DuplicateCount() = %d, want 2", got)
	}
}
