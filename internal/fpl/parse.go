// Package fpl reads and writes Condor flight plan (.fpl) files.
//
// The format is a line-oriented key=value dialect grouped under bracketed
// section headers. Keys inside the [Task] section are indexed
// (TPName0=..., TPPosX0=..., ...). Line order within a section is part of
// the contract for some downstream tools, and the simulator always writes
// CRLF line endings, so the writer does too regardless of host platform.
package fpl

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PlanTurnpoint is one turnpoint row read from an existing flight plan.
type PlanTurnpoint struct {
	Name string
	X    float64
	Y    float64
	Z    float64
}

// Plan holds the fields the turnpoint index needs from an existing .fpl
// file. Everything else in the file is ignored.
type Plan struct {
	Landscape  string
	Turnpoints []PlanTurnpoint
}

// ParsePlanFile reads path and extracts the landscape and turnpoint table.
//
// The corpus is hand-authored and heterogeneous, so parsing is deliberately
// tolerant: a file without a Landscape line yields an error, a file without
// a Count line yields a plan with no turnpoints, and a turnpoint row missing
// any of its four fields (name, x, y, z) is skipped without failing the
// file. Load-time strictness is not the safety net here; each later
// resolution is checked individually.
func ParsePlanFile(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, fmt.Errorf("open flight plan: %w", err)
	}
	defer f.Close()

	fields := make(map[string]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return Plan{}, fmt.Errorf("read flight plan: %w", err)
	}

	landscape, ok := fields["Landscape"]
	if !ok || landscape == "" {
		return Plan{}, fmt.Errorf("flight plan %s has no Landscape field", path)
	}
	plan := Plan{Landscape: landscape}

	count, err := strconv.Atoi(fields["Count"])
	if err != nil || count <= 0 {
		return plan, nil
	}

	for i := 0; i < count; i++ {
		tp, ok := parseTurnpoint(fields, i)
		if !ok {
			continue
		}
		plan.Turnpoints = append(plan.Turnpoints, tp)
	}
	return plan, nil
}

// parseTurnpoint extracts turnpoint i from the key map. All four fields
// must be present and parse cleanly, otherwise the row is rejected.
func parseTurnpoint(fields map[string]string, i int) (PlanTurnpoint, bool) {
	idx := strconv.Itoa(i)
	name, ok := fields["TPName"+idx]
	if !ok || name == "" {
		return PlanTurnpoint{}, false
	}
	x, errX := strconv.ParseFloat(fields["TPPosX"+idx], 64)
	y, errY := strconv.ParseFloat(fields["TPPosY"+idx], 64)
	z, errZ := strconv.ParseFloat(fields["TPPosZ"+idx], 64)
	if errX != nil || errY != nil || errZ != nil {
		return PlanTurnpoint{}, false
	}
	return PlanTurnpoint{Name: name, X: x, Y: y, Z: z}, true
}
