package core

import "errors"

// ErrEmptyName indicates that a participant was given an empty name.
var ErrEmptyName = errors.New("core: participant name is empty")

// player carries the state shared by both sides of a matching game:
// a unique name, the remaining (mutable) preference list, and a rank
// index frozen from the most recent SetPrefs call.
//
// The rank index is intentionally NOT rebuilt by Forget: comparisons via
// Prefers always reflect the ordering the preferences had when they were
// set, so detaching entries mid-solve never reorders the survivors.
type player struct {
	name  string
	prefs []string
	rank  map[string]int
}

// Resident is a participant seeking a single slot at a hospital.
// An empty match name means the resident is unmatched.
type Resident struct {
	player
	match string
}

// Hospital is a participant offering capacity slots to residents.
// The held set is bounded by capacity in every valid state; the bound is
// enforced by the algorithms, not by AddMatch, so that verification code
// can represent and inspect invalid assignments.
type Hospital struct {
	player
	capacity int
	matches  []string
}

// NewResident builds a resident with the given name and preference list
// (most preferred first). The list is copied; the caller's slice is never
// retained.
func NewResident(name string, prefs []string) (*Resident, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	r := &Resident{player: player{name: name}}
	r.SetPrefs(prefs)

	return r, nil
}

// NewHospital builds a hospital with the given name, capacity and preference
// list (most preferred first). Capacities below one are accepted here and
// left for game-level sanitization to flag or exclude.
func NewHospital(name string, capacity int, prefs []string) (*Hospital, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	h := &Hospital{player: player{name: name}, capacity: capacity}
	h.SetPrefs(prefs)

	return h, nil
}
