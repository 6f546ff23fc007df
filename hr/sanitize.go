package hr

import "fmt"

// prefHolder is the slice of the participant API the sanitizer needs; both
// *core.Resident and *core.Hospital satisfy it. Checks that apply to both
// parties run through this interface with an explicit per-party call, so
// there is no runtime dispatch on a party name.
type prefHolder interface {
	Name() string
	Prefs() []string
	SetPrefs([]string)
	Forget(string)
}

// checkInputs runs every sanitizer check in a fixed order. Each check is
// idempotent on already-clean data, so the order only shapes the warning
// sequence, never the repaired state. All checks are non-fatal: without
// clean the game proceeds unmodified and defects may later surface as
// validity failures.
func (g *Game) checkInputs() {
	g.checkPrefsUnique(g.residentHolders())
	g.checkPrefsUnique(g.hospitalHolders())

	g.checkPrefsInParty(g.residentHolders(), g.hasHospital)
	g.checkPrefsInParty(g.hospitalHolders(), g.hasResident)

	g.checkHospitalsRankOnlyRankers()
	g.checkRankersAreRankedBack()

	g.checkPrefsNonempty(g.residentHolders())
	g.checkPrefsNonempty(g.hospitalHolders())

	g.checkCapacities()
}

// checkPrefsUnique detects participants that rank the same counterpart more
// than once. Repair: deduplicate, keeping first-seen order.
func (g *Game) checkPrefsUnique(players []prefHolder) {
	for _, p := range players {
		prefs := p.Prefs()
		seen := make(map[string]bool, len(prefs))
		unique := prefs[:0]
		for _, name := range prefs {
			if seen[name] {
				g.warn(PreferencesChangedWarning{
					Player: p.Name(),
					Detail: fmt.Sprintf("%s has ranked %s multiple times.", p.Name(), name),
				})

				continue
			}
			seen[name] = true
			unique = append(unique, name)
		}
		if g.clean && len(unique) < len(prefs) {
			p.SetPrefs(unique)
		}
	}
}

// checkPrefsInParty detects preference entries that name nobody in the
// opposite party. Repair: detach the dangling entry.
func (g *Game) checkPrefsInParty(players []prefHolder, inOpposite func(string) bool) {
	for _, p := range players {
		for _, name := range p.Prefs() {
			if inOpposite(name) {
				continue
			}
			g.warn(PreferencesChangedWarning{
				Player: p.Name(),
				Detail: fmt.Sprintf("%s ranked %s but they are not in the game.", p.Name(), name),
			})
			if g.clean {
				p.Forget(name)
			}
		}
	}
}

// checkHospitalsRankOnlyRankers detects hospitals ranking residents that do
// not rank them back. Repair: the hospital stops ranking that resident (the
// unreciprocated entry is removed from the ranker's own list).
func (g *Game) checkHospitalsRankOnlyRankers() {
	for _, h := range g.hospitals {
		for _, rname := range h.Prefs() {
			r, ok := g.residentByName[rname]
			if !ok || r.Ranks(h.Name()) {
				continue
			}
			g.warn(PreferencesChangedWarning{
				Player: h.Name(),
				Detail: fmt.Sprintf("%s ranked %s but they did not.", h.Name(), rname),
			})
			if g.clean {
				h.Forget(rname)
			}
		}
	}
}

// checkRankersAreRankedBack detects residents ranking hospitals that do not
// rank them back. Repair mirrors checkHospitalsRankOnlyRankers: the
// resident stops ranking that hospital.
func (g *Game) checkRankersAreRankedBack() {
	for _, h := range g.hospitals {
		for _, r := range g.residents {
			if !r.Ranks(h.Name()) || h.Ranks(r.Name()) {
				continue
			}
			g.warn(PreferencesChangedWarning{
				Player: r.Name(),
				Detail: fmt.Sprintf("%s ranked %s but they did not.", r.Name(), h.Name()),
			})
			if g.clean {
				r.Forget(h.Name())
			}
		}
	}
}

// checkPrefsNonempty detects participants left ranking nobody. Such
// participants are functionally excluded from any solve; there is no repair
// beyond what the earlier checks already applied.
func (g *Game) checkPrefsNonempty(players []prefHolder) {
	for _, p := range players {
		if len(p.Prefs()) == 0 {
			g.warn(PlayerExcludedWarning{Name: p.Name()})
		}
	}
}

// checkCapacities detects hospitals with capacity below one. Repair: remove
// the hospital from the game and detach it from every resident's list.
func (g *Game) checkCapacities() {
	var excluded []string
	for _, h := range g.hospitals {
		if h.Capacity() < 1 {
			g.warn(PlayerExcludedWarning{Name: h.Name()})
			excluded = append(excluded, h.Name())
		}
	}
	if !g.clean {
		return
	}

	for _, name := range excluded {
		g.removeHospital(name)
	}
}

// removeHospital drops the named hospital from the game and from every
// resident's preference list.
func (g *Game) removeHospital(name string) {
	delete(g.hospitalByName, name)
	for i, h := range g.hospitals {
		if h.Name() == name {
			g.hospitals = append(g.hospitals[:i], g.hospitals[i+1:]...)

			break
		}
	}
	for _, r := range g.residents {
		r.Forget(name)
	}
}

func (g *Game) warn(w Warning) { g.warnings = append(g.warnings, w) }

func (g *Game) hasResident(name string) bool {
	_, ok := g.residentByName[name]

	return ok
}

func (g *Game) hasHospital(name string) bool {
	_, ok := g.hospitalByName[name]

	return ok
}

func (g *Game) residentHolders() []prefHolder {
	out := make([]prefHolder, len(g.residents))
	for i, r := range g.residents {
		out[i] = r
	}

	return out
}

func (g *Game) hospitalHolders() []prefHolder {
	out := make([]prefHolder, len(g.hospitals))
	for i, h := range g.hospitals {
		out[i] = h
	}

	return out
}
