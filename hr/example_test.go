// Package hr_test provides runnable examples for the hospital/resident
// game, from raw preference maps to stability diagnostics.
package hr_test

import (
	"fmt"

	"github.com/stablemate/matching/hr"
)

// ExampleFromPreferenceMaps builds the classic 2×2 instance and solves it.
// The instance has a unique stable matching, so either orientation returns
// the same assignment.
func ExampleFromPreferenceMaps() {
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
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	m, err := g.Solve(hr.ResidentOptimal)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("H1: %v\n", m["H1"])
	fmt.Printf("H2: %v\n", m["H2"])
	// Output:
	// H1: [R2]
	// H2: [R1]
}

// ExampleGame_CheckStability audits an assignment the engine did not
// produce: with R2 left out and H1 preferring R2 to its held resident,
// (R2, H1) is a blocking pair.
func ExampleGame_CheckStability() {
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
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if err := g.SetMatching(hr.Matching{"H1": {"R1"}}); err != nil {
		fmt.Println("error:", err)

		return
	}

	stable, err := g.CheckStability()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("stable:", stable)
	for _, p := range g.BlockingPairs() {
		fmt.Printf("blocking: (%s, %s)\n", p.Resident, p.Hospital)
	}
	// Output:
	// stable: false
	// blocking: (R2, H1)
	// blocking: (R2, H2)
}

// ExampleGame_Warnings shows the sanitizer's diagnostics side channel: the
// game is constructed warn-only, so the defect is reported but untouched.
func ExampleGame_Warnings() {
	g, err := hr.FromPreferenceMaps(
		map[string][]string{
			"R1": {"H1"},
			"R2": {"H1"},
		},
		map[string][]string{"H1": {"R1"}},
		map[string]int{"H1": 1},
		false,
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, w := range g.Warnings() {
		fmt.Println(w)
	}
	// Output:
	// R2 ranked H1 but they did not.
}
