package core

// Name returns the participant's unique name.
func (p *player) Name() string { return p.name }

// Prefs returns a copy of the remaining preference list, most preferred
// first. Mutating the returned slice does not affect the participant.
func (p *player) Prefs() []string {
	out := make([]string, len(p.prefs))
	copy(out, p.prefs)

	return out
}

// SetPrefs replaces the preference list and rebuilds the rank index.
// Duplicates are kept in the list (detection is a sanitizer concern) but
// only the first occurrence contributes to the rank index, so comparisons
// are stable under later deduplication.
//
// Complexity: O(k) for k entries.
func (p *player) SetPrefs(prefs []string) {
	p.prefs = make([]string, len(prefs))
	copy(p.prefs, prefs)

	p.rank = make(map[string]int, len(prefs))
	for i, name := range prefs {
		if _, seen := p.rank[name]; !seen {
			p.rank[name] = i
		}
	}
}

// Ranks reports whether name still appears in the remaining preference list.
//
// Complexity: O(k). Forget keeps the rank index intact, so membership must
// be read from the list itself.
func (p *player) Ranks(name string) bool {
	for _, n := range p.prefs {
		if n == name {
			return true
		}
	}

	return false
}

// Prefers reports whether the participant strictly prefers a to b according
// to the rank index frozen at the last SetPrefs. A name that was never
// ranked loses to any ranked name and never wins.
//
// Complexity: O(1).
func (p *player) Prefers(a, b string) bool {
	ra, okA := p.rank[a]
	if !okA {
		return false
	}
	rb, okB := p.rank[b]
	if !okB {
		return true
	}

	return ra < rb
}

// Forget detaches every occurrence of name from the remaining preference
// list. The rank index is untouched so that Prefers keeps answering from
// the original ordering.
//
// Complexity: O(k).
func (p *player) Forget(name string) {
	kept := p.prefs[:0]
	for _, n := range p.prefs {
		if n != name {
			kept = append(kept, n)
		}
	}
	p.prefs = kept
}

// after returns a copy of the preference entries strictly less preferred
// than pivot. A pivot that was never ranked yields nil.
func (p *player) after(pivot string) []string {
	rp, ok := p.rank[pivot]
	if !ok {
		return nil
	}

	var out []string
	for _, n := range p.prefs {
		if r, ranked := p.rank[n]; ranked && r > rp {
			out = append(out, n)
		}
	}

	return out
}

// clone returns a deep copy of the shared player state.
func (p *player) clone() player {
	cp := player{
		name:  p.name,
		prefs: make([]string, len(p.prefs)),
		rank:  make(map[string]int, len(p.rank)),
	}
	copy(cp.prefs, p.prefs)
	for name, r := range p.rank {
		cp.rank[name] = r
	}

	return cp
}
