package domain

import mapset "github.com/deckarep/golang-set/v2"

// HasDuplicateHousing reports whether any wire in a shares a housing with
// any wire in b.
//
// A wire x in a matches a wire y in b when
//
//	x.Housing1 == y.Housing1 || x.Housing2 == y.Housing2 || x.Housing1 == y.Housing2
//
// x.Housing2 == y.Housing1 on its own is not a match, so swapping a and b
// can change the result. Either list being empty yields false.
func HasDuplicateHousing(a, b []HarnessWiring) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	first := mapset.NewThreadUnsafeSetWithSize[string](len(b))
	second := mapset.NewThreadUnsafeSetWithSize[string](len(b))
	for _, w := range b {
		first.Add(w.Housing1)
		second.Add(w.Housing2)
	}

	for _, w := range a {
		if first.Contains(w.Housing1) || second.Contains(w.Housing2) || second.Contains(w.Housing1) {
			return true
		}
	}
	return false
}
