package hr

import (
	"github.com/stablemate/matching/core"
)

// CheckStability scans the loaded assignment for blocking pairs and reports
// whether it is stable. The full pair list is recorded and available from
// BlockingPairs; instability is data, never an error. ErrNotSolved is
// returned when no matching has been loaded.
//
// Complexity: O(R×H) pair scan; each pair test is O(capacity).
func (g *Game) CheckStability() (bool, error) {
	if g.matching == nil {
		return false, ErrNotSolved
	}

	var pairs []BlockingPair
	for _, r := range g.residents {
		for _, h := range g.hospitals {
			if mutualPreference(r, h) && residentUnhappy(r, h) && hospitalUnhappy(r, h) {
				pairs = append(pairs, BlockingPair{Resident: r.Name(), Hospital: h.Name()})
			}
		}
	}
	g.blocking = pairs

	return len(pairs) == 0, nil
}

// mutualPreference: the pair appear in each other's current preference lists.
func mutualPreference(r *core.Resident, h *core.Hospital) bool {
	return h.Ranks(r.Name()) && r.Ranks(h.Name())
}

// residentUnhappy: the resident is unmatched, or strictly prefers the
// hospital to their current match.
func residentUnhappy(r *core.Resident, h *core.Hospital) bool {
	return !r.Matched() || r.Prefers(h.Name(), r.Match())
}

// hospitalUnhappy: the hospital is under capacity, or strictly prefers the
// resident to at least one resident it currently holds.
func hospitalUnhappy(r *core.Resident, h *core.Hospital) bool {
	if h.MatchCount() < h.Capacity() {
		return true
	}
	for _, held := range h.Matches() {
		if h.Prefers(r.Name(), held) {
			return true
		}
	}

	return false
}
