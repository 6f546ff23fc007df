package core

// Capacity returns the number of slots the hospital offers.
func (h *Hospital) Capacity() int { return h.capacity }

// Matches returns a copy of the residents the hospital currently holds,
// in acceptance order.
func (h *Hospital) Matches() []string {
	out := make([]string, len(h.matches))
	copy(out, h.matches)

	return out
}

// MatchCount returns the number of residents currently held.
func (h *Hospital) MatchCount() int { return len(h.matches) }

// Full reports whether the hospital holds at least capacity residents.
func (h *Hospital) Full() bool { return len(h.matches) >= h.capacity }

// Oversubscribed reports whether the hospital holds more residents than
// its capacity permits.
func (h *Hospital) Oversubscribed() bool { return len(h.matches) > h.capacity }

// AddMatch records resident as held by the hospital. The capacity bound is
// deliberately not enforced here; checkers need to represent states that
// violate it.
func (h *Hospital) AddMatch(resident string) {
	h.matches = append(h.matches, resident)
}

// RemoveMatch releases the first held occurrence of resident.
func (h *Hospital) RemoveMatch(resident string) {
	for i, n := range h.matches {
		if n == resident {
			h.matches = append(h.matches[:i], h.matches[i+1:]...)

			return
		}
	}
}

// Holds reports whether the hospital currently holds resident.
func (h *Hospital) Holds(resident string) bool {
	for _, n := range h.matches {
		if n == resident {
			return true
		}
	}

	return false
}

// Favourite returns the most preferred remaining resident the hospital does
// not already hold, or the empty string when no such resident exists.
func (h *Hospital) Favourite() string {
	for _, n := range h.prefs {
		if !h.Holds(n) {
			return n
		}
	}

	return ""
}

// WorstMatch returns the least preferred resident among those currently
// held. A held resident that was never ranked is considered worse than any
// ranked one. Returns the empty string when nothing is held.
func (h *Hospital) WorstMatch() string {
	worst := ""
	for _, n := range h.matches {
		if worst == "" || h.Prefers(worst, n) {
			worst = n
		}
	}

	return worst
}

// Successors returns the residents ranked strictly below the worst held
// match. When nothing is held every remaining entry is a successor; when
// the worst held resident was never ranked there is no well-defined cut
// and Successors returns nil.
func (h *Hospital) Successors() []string {
	worst := h.WorstMatch()
	if worst == "" {
		return h.Prefs()
	}

	return h.after(worst)
}

// Clone returns a deep copy of the hospital, including held residents.
// No slice or map is shared with the original.
func (h *Hospital) Clone() *Hospital {
	cp := &Hospital{
		player:   h.clone(),
		capacity: h.capacity,
		matches:  make([]string, len(h.matches)),
	}
	copy(cp.matches, h.matches)

	return cp
}
