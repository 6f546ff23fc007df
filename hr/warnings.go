package hr

import "fmt"

// Warning is an advisory diagnostic recorded during sanitization. Warnings
// are a side channel, not control flow: the game proceeds whether or not
// the caller inspects them.
type Warning interface {
	fmt.Stringer

	// sealed: only the sanitizer produces warnings.
	warning()
}

// PreferencesChangedWarning records one preference-list defect: a duplicate
// entry, an entry outside the opposite party, or an unreciprocated ranking.
// Player names the participant whose list is repaired in clean mode.
type PreferencesChangedWarning struct {
	Player string
	Detail string
}

func (w PreferencesChangedWarning) warning() {}

// String implements fmt.Stringer.
func (w PreferencesChangedWarning) String() string { return w.Detail }

// PlayerExcludedWarning records a participant that is functionally excluded
// from the solve: a hospital with capacity below one (removed from the game
// in clean mode) or a participant whose preference list is empty.
type PlayerExcludedWarning struct {
	Name string
}

func (w PlayerExcludedWarning) warning() {}

// String implements fmt.Stringer.
func (w PlayerExcludedWarning) String() string {
	return fmt.Sprintf("%s is excluded from the game.", w.Name)
}
