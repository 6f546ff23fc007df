package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/stablemate/matching/hr"
)

// Instance is the JSON shape of one problem instance.
type Instance struct {
	Residents map[string][]string     `json:"residents"`
	Hospitals map[string]HospitalSpec `json:"hospitals"`
}

// HospitalSpec carries one hospital's capacity and ranked residents.
type HospitalSpec struct {
	Capacity int      `json:"capacity"`
	Prefs    []string `json:"prefs"`
}

// Report is the JSON shape of a solve result.
type Report struct {
	Matching      hr.Matching `json:"matching"`
	Stable        bool        `json:"stable"`
	BlockingPairs []pairJSON  `json:"blocking_pairs,omitempty"`
	Warnings      []string    `json:"warnings,omitempty"`
}

type pairJSON struct {
	Resident string `json:"resident"`
	Hospital string `json:"hospital"`
}

func doSolve(inputFile, outputFile string, orientation hr.Orientation, clean bool) error {
	inst, err := loadInstance(inputFile)
	if err != nil {
		return fmt.Errorf("load instance file failed: %w", err)
	}

	game, err := inst.game(clean)
	if err != nil {
		return fmt.Errorf("build game failed: %w", err)
	}

	matching, err := game.Solve(orientation)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	if err := game.CheckValidity(); err != nil {
		return fmt.Errorf("solved matching failed validation: %w", err)
	}

	stable, err := game.CheckStability()
	if err != nil {
		return fmt.Errorf("stability check failed: %w", err)
	}

	report := Report{Matching: matching, Stable: stable}
	for _, p := range game.BlockingPairs() {
		report.BlockingPairs = append(report.BlockingPairs, pairJSON{p.Resident, p.Hospital})
	}
	for _, w := range game.Warnings() {
		report.Warnings = append(report.Warnings, w.String())
	}

	return writeReport(outputFile, report)
}

// game converts the decoded instance into an hr.Game.
func (inst *Instance) game(clean bool) (*hr.Game, error) {
	hospitalPrefs := make(map[string][]string, len(inst.Hospitals))
	capacities := make(map[string]int, len(inst.Hospitals))
	for name, spec := range inst.Hospitals {
		hospitalPrefs[name] = spec.Prefs
		capacities[name] = spec.Capacity
	}

	return hr.FromPreferenceMaps(inst.Residents, hospitalPrefs, capacities, clean)
}

func loadInstance(file string) (*Instance, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var inst Instance
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&inst); err != nil {
		return nil, err
	}
	if len(inst.Residents) == 0 || len(inst.Hospitals) == 0 {
		return nil, fmt.Errorf("instance needs at least one resident and one hospital")
	}

	return &inst, nil
}

func writeReport(file string, report Report) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(report); err != nil {
		return err
	}

	if file == "" {
		_, err := os.Stdout.Write(buf.Bytes())

		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
