package core

// Match returns the name of the hospital currently holding this resident,
// or the empty string when unmatched.
func (r *Resident) Match() string { return r.match }

// Matched reports whether the resident currently holds a match.
func (r *Resident) Matched() bool { return r.match != "" }

// SetMatch records hospital as the resident's current match.
func (r *Resident) SetMatch(hospital string) { r.match = hospital }

// Unmatch clears the resident's current match.
func (r *Resident) Unmatch() { r.match = "" }

// Favourite returns the most preferred hospital still on the remaining
// list, or the empty string when the list is exhausted.
func (r *Resident) Favourite() string {
	if len(r.prefs) == 0 {
		return ""
	}

	return r.prefs[0]
}

// Successors returns the hospitals the resident ranks strictly below the
// current match. Unmatched residents, and residents whose match was never
// ranked, have no successors.
func (r *Resident) Successors() []string {
	if r.match == "" {
		return nil
	}

	return r.after(r.match)
}

// Clone returns a deep copy of the resident, including match state.
// No slice or map is shared with the original.
func (r *Resident) Clone() *Resident {
	return &Resident{player: r.clone(), match: r.match}
}
