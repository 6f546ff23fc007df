package hr

import "fmt"

// CheckValidity audits the loaded assignment for structural violations:
// participants matched outside their own preference list, and hospitals
// holding more residents than their capacity. Unmatched participants are
// acceptable. All violations are aggregated into a single *ValidityError;
// nil means the assignment is structurally valid.
//
// Validity is independent of stability: an unstable matching can be valid,
// while an oversubscribed one is always a bug in whoever produced it. The
// engine only assigns within capacity and from existing preference lists,
// so a failure here points at a post-solve mutation or a caller-supplied
// assignment.
//
// Complexity: O(P) for P = total preference-list length.
func (g *Game) CheckValidity() error {
	if g.matching == nil {
		return ErrNotSolved
	}

	unacceptable := append(
		g.unacceptableResidentMatches(),
		g.unacceptableHospitalMatches()...,
	)

	var oversubscribed []string
	for _, h := range g.hospitals {
		if h.Oversubscribed() {
			oversubscribed = append(oversubscribed, fmt.Sprintf(
				"%s is matched to %d residents but has a capacity of %d.",
				h.Name(), h.MatchCount(), h.Capacity(),
			))
		}
	}

	if len(unacceptable) > 0 || len(oversubscribed) > 0 {
		return &ValidityError{
			UnacceptableMatches:     unacceptable,
			OversubscribedHospitals: oversubscribed,
		}
	}

	return nil
}

func (g *Game) unacceptableResidentMatches() []string {
	var issues []string
	for _, r := range g.residents {
		if m := r.Match(); m != "" && !r.Ranks(m) {
			issues = append(issues, fmt.Sprintf(
				"%s is matched to %s but they do not appear in their preference list.",
				r.Name(), m,
			))
		}
	}

	return issues
}

func (g *Game) unacceptableHospitalMatches() []string {
	var issues []string
	for _, h := range g.hospitals {
		for _, held := range h.Matches() {
			if !h.Ranks(held) {
				issues = append(issues, fmt.Sprintf(
					"%s is matched to %s but they do not appear in their preference list.",
					h.Name(), held,
				))
			}
		}
	}

	return issues
}
