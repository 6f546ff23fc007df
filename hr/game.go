package hr

import (
	"fmt"
	"sort"

	"github.com/stablemate/matching/core"
)

// Game is one instance of the hospital/resident problem. It owns deep
// copies of every participant, so mutating the caller's originals after
// construction never affects the game. A Game is not safe for concurrent
// use; all operations are synchronous and single-writer.
type Game struct {
	residents []*core.Resident
	hospitals []*core.Hospital

	residentByName map[string]*core.Resident
	hospitalByName map[string]*core.Hospital

	// sanitized preference lists, snapshotted after construction so every
	// Solve starts from the same state regardless of earlier solves.
	// Per-party maps: the two name spaces are independent.
	baseResidentPrefs map[string][]string
	baseHospitalPrefs map[string][]string

	clean    bool
	warnings []Warning

	matching Matching
	blocking []BlockingPair
}

// New builds a game from the given participants. Both slices are deep
// copied. The sanitizer runs immediately: every defect is recorded as a
// warning, and repaired first when clean is true.
//
// Construction fails only on structurally unusable input: a nil entry or a
// duplicated name within a party.
func New(residents []*core.Resident, hospitals []*core.Hospital, clean bool) (*Game, error) {
	g := &Game{
		residentByName: make(map[string]*core.Resident, len(residents)),
		hospitalByName: make(map[string]*core.Hospital, len(hospitals)),
		clean:          clean,
	}

	for _, r := range residents {
		if r == nil {
			return nil, fmt.Errorf("%w (residents)", ErrNilPlayer)
		}
		if _, dup := g.residentByName[r.Name()]; dup {
			return nil, fmt.Errorf("%w: resident %q", ErrDuplicateName, r.Name())
		}
		cp := r.Clone()
		cp.Unmatch()
		g.residents = append(g.residents, cp)
		g.residentByName[cp.Name()] = cp
	}
	for _, h := range hospitals {
		if h == nil {
			return nil, fmt.Errorf("%w (hospitals)", ErrNilPlayer)
		}
		if _, dup := g.hospitalByName[h.Name()]; dup {
			return nil, fmt.Errorf("%w: hospital %q", ErrDuplicateName, h.Name())
		}
		cp := h.Clone()
		for _, m := range cp.Matches() {
			cp.RemoveMatch(m)
		}
		g.hospitals = append(g.hospitals, cp)
		g.hospitalByName[cp.Name()] = cp
	}

	g.checkInputs()
	g.snapshotPrefs()

	return g, nil
}

// FromPreferenceMaps builds a game from name-keyed preference data:
// residentPrefs maps each resident to its ranked hospitals, hospitalPrefs
// maps each hospital to its ranked residents, and capacities supplies each
// hospital's slot count. Participants are created in sorted-name order so
// construction is deterministic.
func FromPreferenceMaps(
	residentPrefs map[string][]string,
	hospitalPrefs map[string][]string,
	capacities map[string]int,
	clean bool,
) (*Game, error) {
	residentNames := sortedKeys(residentPrefs)
	hospitalNames := sortedKeys(hospitalPrefs)

	residents := make([]*core.Resident, 0, len(residentNames))
	for _, name := range residentNames {
		for _, pref := range residentPrefs[name] {
			if _, ok := hospitalPrefs[pref]; !ok {
				return nil, fmt.Errorf("%w: resident %q ranks hospital %q", ErrUnknownPlayer, name, pref)
			}
		}
		r, err := core.NewResident(name, residentPrefs[name])
		if err != nil {
			return nil, fmt.Errorf("hr: resident %q: %w", name, err)
		}
		residents = append(residents, r)
	}

	hospitals := make([]*core.Hospital, 0, len(hospitalNames))
	for _, name := range hospitalNames {
		capacity, ok := capacities[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingCapacity, name)
		}
		for _, pref := range hospitalPrefs[name] {
			if _, ok := residentPrefs[pref]; !ok {
				return nil, fmt.Errorf("%w: hospital %q ranks resident %q", ErrUnknownPlayer, name, pref)
			}
		}
		h, err := core.NewHospital(name, capacity, hospitalPrefs[name])
		if err != nil {
			return nil, fmt.Errorf("hr: hospital %q: %w", name, err)
		}
		hospitals = append(hospitals, h)
	}

	return New(residents, hospitals, clean)
}

// Residents returns the resident names in game order.
func (g *Game) Residents() []string {
	out := make([]string, len(g.residents))
	for i, r := range g.residents {
		out[i] = r.Name()
	}

	return out
}

// Hospitals returns the hospital names in game order.
func (g *Game) Hospitals() []string {
	out := make([]string, len(g.hospitals))
	for i, h := range g.hospitals {
		out[i] = h.Name()
	}

	return out
}

// Warnings returns the diagnostics recorded by the sanitizer, in detection
// order.
func (g *Game) Warnings() []Warning {
	out := make([]Warning, len(g.warnings))
	copy(out, g.warnings)

	return out
}

// Matching returns the most recently loaded matching, or nil when neither
// Solve nor SetMatching has run.
func (g *Game) Matching() Matching {
	return g.matching.Clone()
}

// BlockingPairs returns the pairs recorded by the last CheckStability call,
// in resident-major scan order.
func (g *Game) BlockingPairs() []BlockingPair {
	out := make([]BlockingPair, len(g.blocking))
	copy(out, g.blocking)

	return out
}

// SetMatching loads an arbitrary assignment into the game so the checkers
// can audit assignments the engine did not produce. Hospitals absent from m
// hold nobody. Names outside the game are rejected.
func (g *Game) SetMatching(m Matching) error {
	for hname, rnames := range m {
		if _, ok := g.hospitalByName[hname]; !ok {
			return fmt.Errorf("%w: hospital %q", ErrUnknownPlayer, hname)
		}
		for _, rname := range rnames {
			if _, ok := g.residentByName[rname]; !ok {
				return fmt.Errorf("%w: resident %q", ErrUnknownPlayer, rname)
			}
		}
	}

	g.resetMatches()
	for hname, rnames := range m {
		h := g.hospitalByName[hname]
		for _, rname := range rnames {
			h.AddMatch(rname)
			g.residentByName[rname].SetMatch(hname)
		}
	}
	g.matching = m.Clone()
	g.blocking = nil

	return nil
}

// snapshotPrefs records the post-sanitization preference lists; every Solve
// restores them so repeated solves, in either orientation, are independent.
func (g *Game) snapshotPrefs() {
	g.baseResidentPrefs = make(map[string][]string, len(g.residents))
	g.baseHospitalPrefs = make(map[string][]string, len(g.hospitals))
	for _, r := range g.residents {
		g.baseResidentPrefs[r.Name()] = r.Prefs()
	}
	for _, h := range g.hospitals {
		g.baseHospitalPrefs[h.Name()] = h.Prefs()
	}
}

// resetMatches clears every participant's match state.
func (g *Game) resetMatches() {
	for _, r := range g.residents {
		r.Unmatch()
	}
	for _, h := range g.hospitals {
		for _, m := range h.Matches() {
			h.RemoveMatch(m)
		}
	}
}

// reset restores the sanitized preference lists and clears all match state.
func (g *Game) reset() {
	g.resetMatches()
	for _, r := range g.residents {
		r.SetPrefs(g.baseResidentPrefs[r.Name()])
	}
	for _, h := range g.hospitals {
		h.SetPrefs(g.baseHospitalPrefs[h.Name()])
	}
}

// Clone deep-copies a matching snapshot; nil stays nil.
func (m Matching) Clone() Matching {
	if m == nil {
		return nil
	}
	out := make(Matching, len(m))
	for hname, rnames := range m {
		cp := make([]string, len(rnames))
		copy(cp, rnames)
		out[hname] = cp
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
