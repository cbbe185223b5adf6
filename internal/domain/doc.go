// Package domain defines the core types for harness pair checking.
//
// HarnessDrawing is a harness (name + version) together with the technical
// drawing (name + version) that describes it. HarnessWiring is one wire
// segment belonging to a harness, terminated by two housings.
//
// # Pairs
//
// HarnessPair is the derived row shown in the results grid: the identifying
// fields of two drawings plus a flag saying whether their wiring shares a
// duplicate housing. Pairs are plain comparable values and two pairs are the
// same pair only when all nine fields match, in order.
//
// PairRun is one generation run: a small set of distinct pairs drawn at
// random from the drawing table.
//
// # Housing Rule
//
// HasDuplicateHousing implements the duplicate rule used by the grid. The
// rule is intentionally not symmetric; see its doc comment.
package domain
