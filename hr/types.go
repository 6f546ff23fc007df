package hr

import (
	"errors"
	"fmt"
	"strings"
)

// Orientation selects which side's proposals drive deferred acceptance,
// and therefore which side receives its optimal stable outcome.
type Orientation int

const (
	// ResidentOptimal runs the resident-proposing algorithm: every resident
	// does at least as well as in any other stable matching.
	ResidentOptimal Orientation = iota

	// HospitalOptimal runs the hospital-proposing algorithm, the dual
	// guarantee for hospitals.
	HospitalOptimal
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case ResidentOptimal:
		return "resident-optimal"
	case HospitalOptimal:
		return "hospital-optimal"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// Sentinel errors returned by game construction and operations.
var (
	// ErrNilPlayer indicates a nil entry in a constructor's participant slice.
	ErrNilPlayer = errors.New("hr: nil participant in input")

	// ErrDuplicateName indicates two participants of the same party share a name.
	ErrDuplicateName = errors.New("hr: duplicate participant name")

	// ErrMissingCapacity indicates a hospital in the preference maps has no
	// capacity entry.
	ErrMissingCapacity = errors.New("hr: hospital has no capacity entry")

	// ErrUnknownPlayer indicates a name that does not belong to the game.
	ErrUnknownPlayer = errors.New("hr: unknown participant name")

	// ErrUnknownOrientation indicates Solve was given an orientation other
	// than ResidentOptimal or HospitalOptimal.
	ErrUnknownOrientation = errors.New("hr: unknown orientation")

	// ErrNotSolved indicates a checker ran before any matching was loaded.
	ErrNotSolved = errors.New("hr: no matching loaded; call Solve or SetMatching first")
)

// Matching maps each hospital name to the residents it holds, ordered by
// the hospital's preference. Every hospital in the game appears as a key.
// A Matching is a snapshot: later solves or mutations never alter it.
type Matching map[string][]string

// BlockingPair is a mutually acceptable resident-hospital pair in which
// each side would rather have the other than its current assignment.
type BlockingPair struct {
	Resident string
	Hospital string
}

// ValidityError aggregates every structural violation found by
// CheckValidity: matches outside a participant's preference list and
// hospitals holding more residents than their capacity. Both lists are
// carried in one error so callers never see a partial diagnostic.
type ValidityError struct {
	UnacceptableMatches     []string
	OversubscribedHospitals []string
}

// Error implements error.
func (e *ValidityError) Error() string {
	var sb strings.Builder
	sb.WriteString("hr: invalid matching")
	if n := len(e.UnacceptableMatches); n > 0 {
		fmt.Fprintf(&sb, "; %d unacceptable match(es): %s",
			n, strings.Join(e.UnacceptableMatches, "; "))
	}
	if n := len(e.OversubscribedHospitals); n > 0 {
		fmt.Fprintf(&sb, "; %d oversubscribed hospital(s): %s",
			n, strings.Join(e.OversubscribedHospitals, "; "))
	}

	return sb.String()
}
