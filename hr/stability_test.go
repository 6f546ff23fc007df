package hr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stablemate/matching/hr"
)

func twoByTwo(t *testing.T) *hr.Game {
	t.Helper()
	g, err := hr.FromPreferenceMaps(
		map[string][]string{
			"R1": {"H1", "H2"},
			"R2": {"H1", "H2"},
		},
		map[string][]string{
			"H1": {"R2", "R1"},
			"H2": {"R1", "R2"},
		},
		map[string]int{"H1": 1, "H2": 1},
		false,
	)
	require.NoError(t, err)

	return g
}

func TestCheckStability_RequiresMatching(t *testing.T) {
	g := twoByTwo(t)
	_, err := g.CheckStability()
	require.ErrorIs(t, err, hr.ErrNotSolved)
}

// TestCheckStability_DetectsBlockingPair loads the deliberately unstable
// assignment {H1: [R1]}: R2 is unmatched and H1 prefers R2 to R1, so
// (R2, H1) must be reported.
func TestCheckStability_DetectsBlockingPair(t *testing.T) {
	g := twoByTwo(t)
	require.NoError(t, g.SetMatching(hr.Matching{"H1": {"R1"}}))

	stable, err := g.CheckStability()
	require.NoError(t, err)
	require.False(t, stable)
	require.Contains(t, g.BlockingPairs(), hr.BlockingPair{Resident: "R2", Hospital: "H1"})
}

func TestCheckStability_StableAssignmentHasNoPairs(t *testing.T) {
	g := twoByTwo(t)
	require.NoError(t, g.SetMatching(hr.Matching{"H1": {"R2"}, "H2": {"R1"}}))

	stable, err := g.CheckStability()
	require.NoError(t, err)
	require.True(t, stable)
	require.Empty(t, g.BlockingPairs())
}

// TestCheckStability_UnderCapacityHospitalBlocks: a hospital with an open
// slot blocks with any mutually acceptable resident that wants in.
func TestCheckStability_UnderCapacityHospitalBlocks(t *testing.T) {
	g, err := hr.FromPreferenceMaps(
		map[string][]string{"R1": {"H1", "H2"}},
		map[string][]string{"H1": {"R1"}, "H2": {"R1"}},
		map[string]int{"H1": 1, "H2": 1},
		false,
	)
	require.NoError(t, err)

	// R1 parked at its second choice; first choice has room.
	require.NoError(t, g.SetMatching(hr.Matching{"H2": {"R1"}}))

	stable, err := g.CheckStability()
	require.NoError(t, err)
	require.False(t, stable)
	require.Equal(t, []hr.BlockingPair{{Resident: "R1", Hospital: "H1"}}, g.BlockingPairs())
}

func TestSetMatching_RejectsUnknownNames(t *testing.T) {
	g := twoByTwo(t)
	require.ErrorIs(t, g.SetMatching(hr.Matching{"H9": {"R1"}}), hr.ErrUnknownPlayer)
	require.ErrorIs(t, g.SetMatching(hr.Matching{"H1": {"R9"}}), hr.ErrUnknownPlayer)
}
