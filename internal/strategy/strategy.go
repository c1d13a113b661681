// Package strategy renders a plain-text flight strategy for a completed
// task: per-leg wind analysis, McCready-scaled cruise speeds, routing notes
// and thermal exit altitude targets. Purely derived output; it holds no
// state and changes nothing.
package strategy

import (
	"fmt"
	"math"
	"strings"

	"github.com/couchcryptid/condor-taskgen/internal/domain"
)

const reportWidth = 66

// Arrival margin and safety buffer for exit altitude targets.
const (
	arrivalMarginM = 300
	targetBuffer   = 1.30
)

// polar holds a glider's best glide ratio, best L/D speed and nominal
// inter-thermal cruise speed (both kts).
type polar struct {
	bestGlide int
	bestLDKts int
	cruiseKts int
}

var polars = map[string]polar{
	"StdCirrus":   {38, 59, 80},
	"LS4":         {40, 60, 85},
	"LS8":         {44, 65, 90},
	"Discus2":     {43, 62, 88},
	"ASW28":       {46, 65, 92},
	"Nimbus4":     {56, 70, 100},
	"Ventus2":     {50, 68, 95},
	"DuoDiscus":   {40, 60, 85},
	"DuoDiscusXL": {42, 62, 88},
	"DuoDiscusT":  {40, 60, 85},
	"Blanik":      {28, 55, 70},
}

var defaultPolar = polar{38, 59, 80}

// Estimated thermal climb rate (m/s) per strength level.
var climbMS = map[int]float64{1: 0.8, 2: 1.5, 3: 2.5, 4: 3.5, 5: 5.0}

// McCready scaling: stronger thermals justify higher cruise speed.
var mcFactor = map[int]float64{1: 0.87, 2: 0.93, 3: 1.00, 4: 1.07, 5: 1.15}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func compass(bearingDeg float64) string {
	return compassPoints[int(math.Round(bearingDeg/22.5))%16]
}

type leg struct {
	idx          int
	from, to     string
	distM        float64
	distKm       float64
	bearing      float64
	tailwindKts  float64
	crosswindKts float64
}

// Report builds the strategy text for a completed task record. Legs run
// over the task turnpoints only; the airfield entry is not part of the
// scored route.
func Report(rec domain.TaskRecord) string {
	wx := rec.Weather
	cloudM := math.Round(wx.CloudBaseFt * domain.FtToM)

	climb, ok := climbMS[wx.ThermalStrength]
	if !ok {
		climb = 2.0
	}
	pol, ok := polars[rec.Aircraft]
	if !ok {
		pol = defaultPolar
	}
	factor, ok := mcFactor[wx.ThermalStrength]
	if !ok {
		factor = 1.0
	}
	cruiseKts := int(math.Round(float64(pol.cruiseKts) * factor))
	cruiseMS := float64(cruiseKts) * domain.KtsToMS

	// Wind velocity vector (east, north) in kts. WindDir is the FROM
	// direction; the flow vector points the opposite way.
	wr := wx.WindDirDeg * math.Pi / 180
	windEast := -wx.WindSpeedKts * math.Sin(wr)
	windNorth := -wx.WindSpeedKts * math.Cos(wr)

	var out []string
	title := "FLIGHT STRATEGY"
	if rec.Description != "" {
		title = "FLIGHT STRATEGY  —  " + rec.Description
	}
	out = append(out, rule("═"), title, rule("═"))

	out = append(out, "\nCONDITIONS", rule("─"))
	out = append(out,
		fmt.Sprintf("  Wind:       %.0f° @ %.0f kts  (%s)", wx.WindDirDeg, wx.WindSpeedKts, compass(wx.WindDirDeg)),
		fmt.Sprintf("  Cloud base: %.0f ft  (%.0f m)", wx.CloudBaseFt, cloudM),
		fmt.Sprintf("  Thermals:   Strength %d/5,  Activity %d/5  (~%.1f m/s climbs)",
			wx.ThermalStrength, wx.ThermalActivity, climb),
		fmt.Sprintf("  Aircraft:   %s  (best glide ~%d:1)", rec.Aircraft, pol.bestGlide),
	)

	out = append(out, "\nSUGGESTED CRUISE SPEED", rule("─"))
	slowFloor := cruiseKts - 5
	if pol.bestLDKts > slowFloor {
		slowFloor = pol.bestLDKts
	}
	out = append(out,
		fmt.Sprintf("  Inter-thermal:  %d kts  (McCready %d — thermal strength %d/5)",
			cruiseKts, wx.ThermalStrength, wx.ThermalStrength),
		fmt.Sprintf("  Headwind legs:  %d–%d kts  (fly faster to minimise time fighting headwind)",
			cruiseKts+5, cruiseKts+10),
		fmt.Sprintf("  Tailwind legs:  %d–%d kts  (slower — ground speed is already high)",
			slowFloor, cruiseKts),
	)

	route := rec.Route()
	if len(route) < 2 {
		out = append(out, "\n(Not enough turnpoints for leg analysis.)")
		return strings.Join(out, "\n")
	}

	out = append(out, "\nLEG-BY-LEG ANALYSIS", rule("─"))
	out = append(out,
		fmt.Sprintf("  %-3s %-22s %-22s %6s  %8s  %8s  Assessment", "#", "From", "To", "Dist", "Bearing", "Wind"),
		"  "+rule("─"),
	)

	var legs []leg
	for i := 0; i+1 < len(route); i++ {
		a, b := route[i], route[i+1]
		dx := b.X - a.X // east
		dy := b.Y - a.Y // north
		distM := math.Hypot(dx, dy)
		distKm := distM / 1000
		bearing := math.Mod(math.Atan2(dx, dy)*180/math.Pi+360, 360)

		ex, ey := dx/distM, dy/distM
		tailwind := windEast*ex + windNorth*ey
		crosswind := -windEast*ey + windNorth*ex

		assess := "Crosswind — neutral"
		if tailwind > 5 {
			assess = "Tailwind  — favourable"
		} else if tailwind < -5 {
			assess = "Headwind  — difficult"
		}

		out = append(out, fmt.Sprintf("  %-3d %-22s %-22s %5.1fkm  %s %3.0f°  %+6.0f kts  %s",
			i+1, a.Name, b.Name, distKm, compass(bearing), bearing, tailwind, assess))
		legs = append(legs, leg{
			idx: i + 1, from: a.Name, to: b.Name,
			distM: distM, distKm: distKm, bearing: bearing,
			tailwindKts: tailwind, crosswindKts: crosswind,
		})
	}

	out = append(out, routingNotes(legs, wx)...)
	out = append(out, exitAltitudes(legs, pol, cruiseKts, cruiseMS, cloudM)...)

	out = append(out, "", rule("═"))
	return strings.Join(out, "\n")
}

func routingNotes(legs []leg, wx domain.Weather) []string {
	out := []string{"\nROUTING NOTES", rule("─")}

	var totalTW, totalDist float64
	for _, d := range legs {
		totalTW += d.tailwindKts * d.distKm
		totalDist += d.distKm
	}
	avgTW := 0.0
	if totalDist > 0 {
		avgTW = totalTW / totalDist
	}

	switch {
	case avgTW > 3:
		out = append(out,
			"  Overall: Downwind-dominant task. Expect faster-than-nominal task times.",
			"           Build height early — a strong final glide is achievable.")
	case avgTW < -3:
		out = append(out,
			"  Overall: Headwind-dominant task. Expect slower-than-nominal task times.",
			"           Stay high, fly fast, and minimise detours from the optimal track.")
	default:
		out = append(out, "  Overall: Wind effects roughly balanced across the task.")
	}
	out = append(out, "")

	windToDir := math.Mod(wx.WindDirDeg+180, 360)
	windToCmp := compass(windToDir)
	streetsLikely := wx.WindSpeedKts > 12 && wx.ThermalStrength >= 2

	for _, d := range legs {
		tw := d.tailwindKts
		xw := math.Abs(d.crosswindKts)
		var notes []string

		switch {
		case tw > 8:
			notes = append(notes,
				"Strong tailwind — use dolphin technique through weaker thermals; "+
					"accept lower exit heights to maintain ground speed.")
		case tw < -8:
			notes = append(notes,
				"Strong headwind — fly faster, stay on the optimal track, and "+
					"only circle in strong climbs (>McCready setting).")
		case xw > 10:
			upwindSide := compass(math.Mod(d.bearing-90+360, 360))
			notes = append(notes, fmt.Sprintf(
				"Crosswind ~%.0f kts — offset slightly to the %s (upwind) side of "+
					"the direct track to compensate for drift and find better lift "+
					"along the windward slope.", xw, upwindSide))
		}

		if streetsLikely {
			alignment := math.Abs(math.Mod(windToDir-d.bearing+180+360, 360) - 180)
			if alignment < 35 {
				notes = append(notes,
					"Wind broadly aligned with this leg — cloud streets are likely. "+
						"Look for a street and dolphin straight through rather than circling.")
			}
		}

		if tw < -3 {
			notes = append(notes, fmt.Sprintf(
				"Headwind leg: look for orographic and convergence lift on the "+
					"%s (upwind) side of ridges and high ground.", windToCmp))
		}

		if len(notes) == 0 {
			notes = append(notes,
				"Standard thermal task. Follow cloud shadows and "+
					"look for blue thermals near sun-facing slopes.")
		}

		out = append(out, fmt.Sprintf("  Leg %d (%s → %s):", d.idx, d.from, d.to))
		for _, n := range notes {
			out = append(out, "    • "+n)
		}
	}
	return out
}

func exitAltitudes(legs []leg, pol polar, cruiseKts int, cruiseMS, cloudM float64) []string {
	out := []string{
		"\nTHERMAL EXIT ALTITUDES  (height above destination TP)",
		rule("─"),
		fmt.Sprintf("  Cloud base %.0f m  |  best glide %d:1  |  cruise %d kts",
			cloudM, pol.bestGlide, cruiseKts),
		"",
		fmt.Sprintf("  %-3s %-22s %6s  %9s  %9s  Note", "#", "Destination", "Dist", "Minimum", "Target"),
		"  " + rule("─"),
	}

	for _, d := range legs {
		twMS := d.tailwindKts * domain.KtsToMS
		effGlide := float64(pol.bestGlide)
		if cruiseMS > 0 {
			effGlide = float64(pol.bestGlide) * (1.0 + twMS/cruiseMS)
		}
		if floor := float64(pol.bestGlide) * 0.25; effGlide < floor {
			effGlide = floor
		}

		minM := d.distM/effGlide + arrivalMarginM
		tgtM := math.Min(minM*targetBuffer, cloudM-200)
		minR := int(math.Round(minM/10)) * 10
		tgtR := int(math.Round(tgtM/10)) * 10

		note := ""
		if float64(minR) > cloudM {
			note = "⚠ may need intermediate thermal"
		} else if float64(tgtR) >= cloudM-250 {
			note = "near cloud base"
		}

		out = append(out, fmt.Sprintf("  %-3d %-22s %5.1fkm  %7d m    %7d m  %s",
			d.idx, d.to, d.distKm, minR, tgtR, note))
	}
	return out
}

func rule(ch string) string {
	return strings.Repeat(ch, reportWidth)
}
