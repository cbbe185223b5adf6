package domain

import "time"

// HarnessPair is one row of the results grid.
//
// It is a comparable value: == and Equal agree, and both compare every
// field in order, so (A, B) and (B, A) are different pairs.
type HarnessPair struct {
	Harness1        string `json:"harness_1" yaml:"harness_1"`
	Harness1Version string `json:"harness_1_version" yaml:"harness_1_version"`
	Drawing1        string `json:"drawing_1" yaml:"drawing_1"`
	Drawing1Version string `json:"drawing_1_version" yaml:"drawing_1_version"`
	Harness2        string `json:"harness_2" yaml:"harness_2"`
	Harness2Version string `json:"harness_2_version" yaml:"harness_2_version"`
	Drawing2        string `json:"drawing_2" yaml:"drawing_2"`
	Drawing2Version string `json:"drawing_2_version" yaml:"drawing_2_version"`
	Duplicate       bool   `json:"duplicate" yaml:"duplicate"`
}

// NewHarnessPair builds a pair with a in the _1 fields and b in the _2 fields
func NewHarnessPair(a, b HarnessDrawing, duplicate bool) HarnessPair {
	return HarnessPair{
		Harness1:        a.Harness,
		Harness1Version: a.HarnessVersion,
		Drawing1:        a.Drawing,
		Drawing1Version: a.DrawingVersion,
		Harness2:        b.Harness,
		Harness2Version: b.HarnessVersion,
		Drawing2:        b.Drawing,
		Drawing2Version: b.DrawingVersion,
		Duplicate:       duplicate,
	}
}

// Equal reports whether all nine fields of p and other match
func (p HarnessPair) Equal(other HarnessPair) bool {
	return p.Harness1 == other.Harness1 &&
		p.Harness1Version == other.Harness1Version &&
		p.Drawing1 == other.Drawing1 &&
		p.Drawing1Version == other.Drawing1Version &&
		p.Harness2 == other.Harness2 &&
		p.Harness2Version == other.Harness2Version &&
		p.Drawing2 == other.Drawing2 &&
		p.Drawing2Version == other.Drawing2Version &&
		p.Duplicate == other.Duplicate
}

// Columns returns the grid cells of the pair in display order
func (p HarnessPair) Columns() []string {
	dup := "false"
	if p.Duplicate {
		dup = "true"
	}
	return []string{
		p.Harness1, p.Harness1Version, p.Drawing1, p.Drawing1Version,
		p.Harness2, p.Harness2Version, p.Drawing2, p.Drawing2Version,
		dup,
	}
}

// PairColumns are the grid headers matching HarnessPair.Columns
var PairColumns = []string{
	"Harness_1", "Harness_1_version", "Drawing_1", "Drawing_1_version",
	"Harness_2", "Harness_2_version", "Drawing_2", "Drawing_2_version",
	"Duplicate",
}

// PairRun is the outcome of one generation run
type PairRun struct {
	ID          string        `json:"id" yaml:"id"`
	GeneratedAt time.Time     `json:"generated_at" yaml:"generated_at"`
	Target      int           `json:"target" yaml:"target"`
	Attempts    int           `json:"attempts" yaml:"attempts"`
	Pairs       []HarnessPair `json:"pairs" yaml:"pairs"`
}

// DuplicateCount returns how many pairs in the run have the duplicate flag set
func (r *PairRun) DuplicateCount() int {
	n := 0
	for _, p := range r.Pairs {
		if p.Duplicate {
			n++
		}
	}
	return n
}
