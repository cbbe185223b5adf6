package domain

import "fmt"

// HarnessDrawing is one row of the harness_drawing table
type HarnessDrawing struct {
	ID             int64  `json:"id" yaml:"id"`
	Harness        string `json:"harness" yaml:"harness"`
	HarnessVersion string `json:"harness_version" yaml:"harness_version"`
	Drawing        string `json:"drawing" yaml:"drawing"`
	DrawingVersion string `json:"drawing_version" yaml:"drawing_version"`
}

// String returns a short label like "H-100 rev B / DRW-7 v3"
func (d HarnessDrawing) String() string {
	return fmt.Sprintf("%s %s / %s %s", d.Harness, d.HarnessVersion, d.Drawing, d.DrawingVersion)
}

// HarnessWiring is one row of the harness_wires table.
// NULL columns are read as empty strings.
type HarnessWiring struct {
	ID        int64  `json:"id" yaml:"id"`
	HarnessID int64  `json:"harness_id" yaml:"harness_id"`
	Length    string `json:"length" yaml:"length"`
	Color     string `json:"color" yaml:"color"`
	Housing1  string `json:"housing_1" yaml:"housing_1"`
	Housing2  string `json:"housing_2" yaml:"housing_2"`
}
