// Package core defines the participant primitives for matching games:
// Resident and Hospital entities with ranked preference lists and
// current-match bookkeeping.
//
// What:
//
//   - Resident: holds an ordered preference list over hospital names and at
//     most one current match.
//   - Hospital: holds an ordered preference list over resident names, a
//     positive capacity, and the set of residents it currently holds.
//   - Both expose O(1) preference-order comparison (Prefers) through a rank
//     index built when preferences are set, detachment of single entries
//     (Forget), and deep Clone for aliasing-free snapshots.
//
// Why:
//
//   - Matching algorithms repeatedly ask "does X prefer A to B?" and
//     "does X still rank A?"; the rank index answers the former from the
//     original ordering even after entries have been forgotten, so
//     comparisons stay consistent mid-solve.
//   - Game types deep-copy participants on construction; Clone guarantees
//     no slice or map is shared with the caller afterwards.
//
// Complexity:
//
//   - SetPrefs: O(k) for k preference entries.
//   - Prefers / Ranks: O(1).
//   - Forget: O(k).
//   - Clone: O(k).
//
// Errors:
//
//   - ErrEmptyName: a participant was constructed with an empty name.
package core
