package strategy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/condor-taskgen/internal/domain"
)

func testRecord() domain.TaskRecord {
	return domain.TaskRecord{
		Landscape:   "Centro_Italia3",
		Aircraft:    "StdCirrus",
		Description: "SGC Spring 2026 Race 5",
		Weather: domain.Weather{
			WindDirDeg:      270, // from the west
			WindSpeedKts:    15,
			CloudBaseFt:     4921,
			ThermalStrength: 3,
			ThermalActivity: 3,
		},
		Turnpoints: []domain.Turnpoint{
			{Name: "Rieti", X: 0, Y: 0, Z: 389, IsAirport: true},
			{Name: "Start", X: 0, Y: 0, Z: 389},
			// Due east then back west, so one tailwind and one headwind leg.
			{Name: "East", X: 40000, Y: 0, Z: 500},
			{Name: "Back", X: 0, Y: 0, Z: 389},
		},
	}
}

func TestCompass(t *testing.T) {
	assert.Equal(t, "N", compass(0))
	assert.Equal(t, "E", compass(90))
	assert.Equal(t, "S", compass(180))
	assert.Equal(t, "W", compass(270))
	assert.Equal(t, "NNE", compass(22.5))
	assert.Equal(t, "N", compass(359))
}

func TestReport_Sections(t *testing.T) {
	report := Report(testRecord())

	for _, want := range []string{
		"FLIGHT STRATEGY",
		"SGC Spring 2026 Race 5",
		"CONDITIONS",
		"SUGGESTED CRUISE SPEED",
		"LEG-BY-LEG ANALYSIS",
		"ROUTING NOTES",
		"THERMAL EXIT ALTITUDES",
	} {
		assert.Contains(t, report, want)
	}
}

func TestReport_WindComponents(t *testing.T) {
	report := Report(testRecord())

	// West wind: the eastbound leg is favourable, the return is not.
	assert.Contains(t, report, "Tailwind  — favourable")
	assert.Contains(t, report, "Headwind  — difficult")
	assert.Contains(t, report, "Wind:       270° @ 15 kts  (W)")
}

func TestReport_CruiseSpeedScaling(t *testing.T) {
	rec := testRecord()
	report := Report(rec)
	// StdCirrus nominal 80 kts at McCready factor 1.00 for strength 3.
	assert.Contains(t, report, "Inter-thermal:  80 kts")

	rec.Weather.ThermalStrength = 5
	report = Report(rec)
	// 80 * 1.15 = 92.
	assert.Contains(t, report, "Inter-thermal:  92 kts")
}

func TestReport_LegCount(t *testing.T) {
	report := Report(testRecord())
	// Three route turnpoints make two legs; the airfield entry is excluded.
	assert.Equal(t, 2, strings.Count(report, "  Leg "))
	assert.NotContains(t, report, "Rieti →")
}

func TestReport_TooFewTurnpoints(t *testing.T) {
	rec := testRecord()
	rec.Turnpoints = rec.Turnpoints[:2] // airfield + one TP
	report := Report(rec)
	require.Contains(t, report, "(Not enough turnpoints for leg analysis.)")
	assert.NotContains(t, report, "LEG-BY-LEG")
}

func TestReport_UnknownAircraftUsesDefaultPolar(t *testing.T) {
	rec := testRecord()
	rec.Aircraft = "MysteryGlider"
	report := Report(rec)
	assert.Contains(t, report, "best glide ~38:1")
}
