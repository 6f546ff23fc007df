package hr_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stablemate/matching/hr"
)

// randomInstance builds a fully reciprocated instance with nResidents
// residents and nHospitals hospitals, each side ranking all of the other in
// a seeded random order. Capacities split the residents roughly evenly.
func randomInstance(nResidents, nHospitals int) (map[string][]string, map[string][]string, map[string]int) {
	rng := rand.New(rand.NewSource(42)) // fixed seed: benchmarks must be comparable

	residentNames := make([]string, nResidents)
	for i := range residentNames {
		residentNames[i] = fmt.Sprintf("R%03d", i)
	}
	hospitalNames := make([]string, nHospitals)
	for i := range hospitalNames {
		hospitalNames[i] = fmt.Sprintf("H%03d", i)
	}

	shuffled := func(names []string) []string {
		out := make([]string, len(names))
		copy(out, names)
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

		return out
	}

	residentPrefs := make(map[string][]string, nResidents)
	for _, name := range residentNames {
		residentPrefs[name] = shuffled(hospitalNames)
	}
	hospitalPrefs := make(map[string][]string, nHospitals)
	capacities := make(map[string]int, nHospitals)
	for _, name := range hospitalNames {
		hospitalPrefs[name] = shuffled(residentNames)
		capacities[name] = nResidents/nHospitals + 1
	}

	return residentPrefs, hospitalPrefs, capacities
}

func benchmarkSolve(b *testing.B, nResidents, nHospitals int, o hr.Orientation) {
	residentPrefs, hospitalPrefs, capacities := randomInstance(nResidents, nHospitals)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := hr.FromPreferenceMaps(residentPrefs, hospitalPrefs, capacities, false)
		if err != nil {
			b.Fatalf("construction failed: %v", err)
		}
		if _, err := g.Solve(o); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_ResidentOptimalSmall(b *testing.B) {
	benchmarkSolve(b, 50, 5, hr.ResidentOptimal)
}

func BenchmarkSolve_ResidentOptimalMedium(b *testing.B) {
	benchmarkSolve(b, 200, 20, hr.ResidentOptimal)
}

func BenchmarkSolve_HospitalOptimalSmall(b *testing.B) {
	benchmarkSolve(b, 50, 5, hr.HospitalOptimal)
}

func BenchmarkSolve_HospitalOptimalMedium(b *testing.B) {
	benchmarkSolve(b, 200, 20, hr.HospitalOptimal)
}

// BenchmarkCheckStability measures the O(R×H) pair scan on a solved medium
// instance.
func BenchmarkCheckStability(b *testing.B) {
	residentPrefs, hospitalPrefs, capacities := randomInstance(200, 20)
	g, err := hr.FromPreferenceMaps(residentPrefs, hospitalPrefs, capacities, false)
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	if _, err := g.Solve(hr.ResidentOptimal); err != nil {
		b.Fatalf("solve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if stable, err := g.CheckStability(); err != nil || !stable {
			b.Fatalf("expected stable matching, got stable=%v err=%v", stable, err)
		}
	}
}
