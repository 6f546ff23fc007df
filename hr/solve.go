package hr

import (
	"fmt"
	"sort"

	"github.com/stablemate/matching/core"
)

// Solve runs capacitated deferred acceptance in the given orientation and
// returns the resulting matching: every hospital is a key, each value is
// ordered by that hospital's preference. The snapshot is stored for the
// checkers and is independent of any later solve.
//
// Solve always starts from the sanitized preference lists and an empty
// assignment, so repeated solves (in either orientation) are independent.
// The result is stable with respect to the current (post-sanitization)
// preference lists, and optimal for the proposing side.
//
// Complexity: O(P) proposals for P = total preference-list length; each
// proposal does O(capacity) bookkeeping at the receiving hospital.
func (g *Game) Solve(o Orientation) (Matching, error) {
	switch o {
	case ResidentOptimal:
		g.reset()
		g.solveResidentOptimal()
	case HospitalOptimal:
		g.reset()
		g.solveHospitalOptimal()
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrientation, o)
	}

	g.matching = g.snapshotMatching()
	g.blocking = nil

	return g.matching.Clone(), nil
}

// solveResidentOptimal: unmatched residents propose down their lists; each
// hospital keeps the best capacity residents seen so far and rejects the
// rest. A rejection detaches the pair from both lists, so every round
// strictly shrinks the total remaining preference length and the loop
// terminates.
func (g *Game) solveResidentOptimal() {
	free := make([]*core.Resident, len(g.residents))
	copy(free, g.residents)

	for len(free) > 0 {
		r := free[len(free)-1]
		free = free[:len(free)-1]

		fav := r.Favourite()
		if fav == "" {
			continue // list exhausted; r stays unmatched
		}
		h, ok := g.hospitalByName[fav]
		if !ok {
			// dangling entry in an uncleaned game
			r.Forget(fav)
			free = append(free, r)

			continue
		}

		// tentative acceptance
		r.SetMatch(h.Name())
		h.AddMatch(r.Name())

		if h.Oversubscribed() {
			worstName := h.WorstMatch()
			h.RemoveMatch(worstName)
			h.Forget(worstName)
			if worst, ok := g.residentByName[worstName]; ok {
				worst.Unmatch()
				worst.Forget(h.Name())
				free = append(free, worst)
			}
		}

		if h.Full() {
			// nobody below the worst held match can ever be accepted
			for _, succ := range h.Successors() {
				h.Forget(succ)
				if s, ok := g.residentByName[succ]; ok {
					s.Forget(h.Name())
				}
			}
		}
	}
}

// solveHospitalOptimal: hospitals with spare capacity propose down their
// lists; each resident holds at most one offer and trades up only for a
// strictly better hospital. On acceptance the resident and every hospital
// ranked below the accepted one mutually forget each other; a displaced
// hospital re-enters the pool.
func (g *Game) solveHospitalOptimal() {
	free := make([]*core.Hospital, len(g.hospitals))
	copy(free, g.hospitals)

	for len(free) > 0 {
		h := free[len(free)-1]
		free = free[:len(free)-1]

		if h.Full() {
			continue
		}
		fav := h.Favourite()
		if fav == "" {
			continue // list exhausted or everyone ranked is already held
		}
		r, ok := g.residentByName[fav]
		if !ok {
			h.Forget(fav)
			free = append(free, h)

			continue
		}

		accepts := r.Ranks(h.Name()) &&
			(!r.Matched() || r.Prefers(h.Name(), r.Match()))
		if !accepts {
			h.Forget(fav)
			free = append(free, h)

			continue
		}

		if cur := r.Match(); cur != "" {
			if displaced, ok := g.hospitalByName[cur]; ok {
				displaced.RemoveMatch(r.Name())
				free = append(free, displaced)
			}
			r.Unmatch()
		}
		r.SetMatch(h.Name())
		h.AddMatch(r.Name())

		// r will never accept anything it likes less than h
		for _, succ := range r.Successors() {
			r.Forget(succ)
			if s, ok := g.hospitalByName[succ]; ok {
				s.Forget(r.Name())
			}
		}

		free = append(free, h)
	}
}

// snapshotMatching freezes the current assignment into a Matching, ordering
// each hospital's residents by its preference (unranked names sort last,
// then lexicographically, to keep the snapshot deterministic).
func (g *Game) snapshotMatching() Matching {
	m := make(Matching, len(g.hospitals))
	for _, h := range g.hospitals {
		matches := h.Matches()
		sort.SliceStable(matches, func(i, j int) bool {
			if h.Prefers(matches[i], matches[j]) {
				return true
			}
			if h.Prefers(matches[j], matches[i]) {
				return false
			}

			return matches[i] < matches[j]
		})
		m[h.Name()] = matches
	}

	return m
}
