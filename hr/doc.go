// Package hr solves and verifies instances of the hospital/resident
// assignment problem (HR): residents seek a single slot, hospitals offer
// capacity slots, and both sides rank each other.
//
// What:
//
//   - Game owns a private, deep-copied set of participants; construction
//     immediately sanitizes preference data (warn-only, or repair with
//     clean) so every solver precondition holds.
//   - Solve runs capacitated deferred acceptance in either orientation and
//     returns a Matching: hospital name → resident names, every hospital
//     present, each value ordered by that hospital's preference.
//   - CheckStability scans the loaded assignment for blocking pairs; the
//     verdict is data, never an error.
//   - CheckValidity audits the loaded assignment for unacceptable matches
//     and oversubscription, aggregating both lists into one ValidityError.
//
// A resident-hospital pair is blocking when all of the following hold:
// they rank each other; the resident is unmatched or prefers the hospital
// to their current match; and the hospital is under capacity or prefers the
// resident to at least one resident it holds.
//
// Why:
//
//   - Trainee-to-program assignment: no pair of participants can jointly
//     improve by deviating from the returned matching.
//   - Auditing externally produced assignments: SetMatching loads any
//     assignment so the same checkers can judge it.
//
// Complexity:
//
//   - Solve: O(P) proposals where P = total preference-list length.
//   - CheckStability: O(R×H) pair scan with O(capacity) hospital test.
//   - CheckValidity: O(P).
//
// Options:
//
//   - clean (construction flag): repair defective preference data instead
//     of only warning about it.
//   - Orientation: ResidentOptimal or HospitalOptimal, selecting which side
//     receives its best stable outcome.
//
// Errors:
//
//   - ErrNilPlayer, ErrDuplicateName: defective construction input.
//   - ErrMissingCapacity, ErrUnknownPlayer: defective preference maps.
//   - ErrUnknownOrientation: Solve given anything but the two orientations.
//   - ErrNotSolved: a checker was called before Solve or SetMatching.
//   - ValidityError: the aggregate structural diagnostic from CheckValidity.
//
// Sanitization is advisory by default: each defect (duplicate entries,
// dangling entries, unreciprocated rankings, sub-minimum capacities, empty
// lists) is reported through Warnings(); with clean the repair is applied
// before any solve.
package hr
