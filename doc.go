// Package matching computes and verifies stable assignments between two
// ranked parties, centered on the hospital/resident problem: residents
// seek one slot each, hospitals offer capacity slots, and no matched
// outcome should leave a pair who would rather have each other.
//
// What's inside:
//
//	core/        — Resident and Hospital primitives: ranked preference
//	               lists, O(1) order comparison, match bookkeeping
//	hr/          — the hospital/resident game: preference sanitization,
//	               capacitated deferred acceptance (resident- and
//	               hospital-optimal orientations), blocking-pair and
//	               validity checks
//	cmd/hrsolve/ — JSON-in, JSON-out command-line solver
//
// Start with hr.FromPreferenceMaps to build a game from name-keyed data,
// or hr.New to build one from core entities you assembled yourself.
//
//	go get github.com/stablemate/matching/hr
package matching
