// Package briefing scrapes a race briefing sheet into a raw task record.
//
// The input is the plain text blob extracted from a briefing PDF by an
// external tool; this package never touches PDFs itself. Briefing sheets
// are human-authored and loosely formatted, so every field is optional:
// anything the scraper cannot find is left unset for the task builder's
// defaults. Turnpoint rows carry lat/lon in degrees-decimal-minutes, which
// are parsed for reference only and never projected to grid coordinates.
package briefing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/couchcryptid/condor-taskgen/internal/domain"
)

var (
	descriptionRe = regexp.MustCompile(`(SGC\s+\S+\s+\d{4}\s+Race\s+\d+)`)
	landscapeRe   = regexp.MustCompile(`(?is)Landscape\s+(.+)`)
	aircraftRe    = regexp.MustCompile(`(?is)Aircraft\s+(.+)`)
	startTypeRe   = regexp.MustCompile(`(?is)Start type\s+(.+)`)
	overRe        = regexp.MustCompile(`(?i)over\s+(.+)`)

	// The "Virtual date and time" label often wraps after "and".
	dateTimeLabelRe = regexp.MustCompile(`(?is)Virtual date and\s+(\d+\s+\w+\s+\d{4}\s+\d+:\d+)`)
	dateTimeRe      = regexp.MustCompile(`(\d{1,2})\s+(\w+)\s+(\d{4})\s+(\d{1,2}):(\d{2})`)

	startWindowRe = regexp.MustCompile(`(?is)Start time window\s+(\d+)`)
	raceDelayRe   = regexp.MustCompile(`(?is)Delay before race\s+(\d+)`)

	maxStartHeightRe = regexp.MustCompile(`(?is)Max start height\s+(.+)`)
	minFinishRe      = regexp.MustCompile(`(?is)Min finish height\s+(.+)`)
	metresRe         = regexp.MustCompile(`\((\d+)m\)`)

	maxSpeedRe       = regexp.MustCompile(`(?i)(\d+)kts\s+ground\s+speed`)
	ignoreAirspaceRe = regexp.MustCompile(`(?i)ignore airspace`)

	windRe      = regexp.MustCompile(`(?i)(?:Wind\s+)?(\d+(?:\.\d+)?)°\s+at\s+(\d+(?:\.\d+)?)kts`)
	cloudBaseRe = regexp.MustCompile(`(?i)Cloud\s+base\s+(\d+)ft`)

	ddmRe = regexp.MustCompile(`^([NSEWnsew])(\d+)°(\d+\.?\d*)`)

	// A turnpoint row: name, elevation in feet (the anchor that separates
	// data rows from header rows), lat/lon in DDM, sector radius and angle.
	//   Castellucio  4216ft  N42°48.702  E013°12.540  R1=5000m, θ=180°
	turnpointRe = regexp.MustCompile(
		`(?m)(.+?)\s+\d+ft\s+([NS]\d+°[\d.]+)\s+([EW]\d+°[\d.]+)\s+R1=(\d+)m,?\s*\S+=(\d+)°`)

	// Section labels whose value runs until the next capitalized label line.
	weatherSectionRe = regexp.MustCompile(`(?is)Weather report\s+(.+)`)
	notesSectionRe   = regexp.MustCompile(`(?is)Notes\s+(.+)`)
	nextLabelRe      = regexp.MustCompile(`\n[A-Z]`)
)

// DefaultCloudBaseFt is assumed when the weather report omits a cloud base.
const DefaultCloudBaseFt = 3000.0

var months = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// Parse scrapes the briefing text into a raw task. It never fails: fields
// that cannot be found stay unset and a sheet with no recognizable
// turnpoint table yields a task with an empty turnpoint list, which the
// builder rejects with a pointed message.
func Parse(text string) domain.RawTask {
	var raw domain.RawTask

	if m := descriptionRe.FindStringSubmatch(text); m != nil {
		raw.Description = ptr(strings.TrimSpace(m[1]))
	}

	if ls := firstLine(capture(landscapeRe, text)); ls != "" {
		raw.Landscape = domain.CanonicalLandscape(ls)
	}

	if date, hour, ok := parseDateTime(capture(dateTimeLabelRe, text)); ok {
		raw.TaskDate = ptr(date)
		raw.StartTime = ptr(hour)
	}

	if v, ok := atoi(capture(startWindowRe, text)); ok {
		raw.StartTimeWindow = ptr(v)
	}
	if v, ok := atoi(capture(raceDelayRe, text)); ok {
		raw.RaceStartDelayMins = ptr(v)
	}

	if ac := firstLine(capture(aircraftRe, text)); ac != "" {
		raw.Aircraft = ptr(domain.CanonicalAircraft(ac))
	}

	// Start type lines read "Airborne, 2526ft over Castellucio". Every race
	// sheet seen so far is an airborne start; the part after "over" names
	// the physical launch airfield.
	startType := firstLine(capture(startTypeRe, text))
	raw.StartType = ptr("airborne")
	if m := overRe.FindStringSubmatch(startType); m != nil {
		raw.AirportName = strings.TrimSpace(m[1])
	}

	if m := metresRe.FindStringSubmatch(firstLine(capture(maxStartHeightRe, text))); m != nil {
		if v, ok := atoi(m[1]); ok {
			raw.StartHeightM = ptr(v)
		}
	}
	if m := metresRe.FindStringSubmatch(firstLine(capture(minFinishRe, text))); m != nil {
		if v, ok := atoi(m[1]); ok {
			raw.MinFinishHeightM = ptr(v)
		}
	}

	notes := section(notesSectionRe, text)
	if m := maxSpeedRe.FindStringSubmatch(notes); m != nil {
		if v, ok := atoi(m[1]); ok {
			raw.MaxStartSpeedKts = ptr(v)
		}
	}
	raw.IgnoreAirspace = ignoreAirspaceRe.MatchString(notes)

	raw.Weather = parseWeather(text)
	raw.Turnpoints = parseTurnpoints(text)

	return raw
}

// parseWeather scrapes the weather report section, falling back to scanning
// the whole sheet when no labelled section exists.
func parseWeather(text string) *domain.RawWeather {
	wr := section(weatherSectionRe, text)
	if wr == "" {
		wr = text
	}

	wx := &domain.RawWeather{}
	if m := windRe.FindStringSubmatch(wr); m != nil {
		dir, errD := strconv.ParseFloat(m[1], 64)
		spd, errS := strconv.ParseFloat(m[2], 64)
		if errD == nil && errS == nil {
			wx.WindDirDeg = &dir
			wx.WindSpeedKts = &spd
		}
	}

	cloudBase := DefaultCloudBaseFt
	if m := cloudBaseRe.FindStringSubmatch(wr); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			cloudBase = v
		}
	}
	wx.CloudBaseFt = &cloudBase

	return wx
}

// parseTurnpoints extracts the task table rows. The elevation anchor keeps
// prose lines out; an explicit name check drops header-row artefacts.
func parseTurnpoints(text string) []domain.RawTurnpoint {
	var tps []domain.RawTurnpoint
	for _, m := range turnpointRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		switch strings.ToLower(name) {
		case "name", "task", "task name":
			continue
		}
		radius, errR := strconv.Atoi(m[4])
		angle, errA := strconv.Atoi(m[5])
		if errR != nil || errA != nil {
			continue
		}
		tps = append(tps, domain.RawTurnpoint{
			Name:       name,
			RadiusM:    &radius,
			AngleDeg:   &angle,
			SectorType: ptr(0),
			SectorDir:  ptr(0),
			Lat:        ddmToDecimal(m[2]),
			Lon:        ddmToDecimal(m[3]),
		})
	}
	return tps
}

// ddmToDecimal parses "N42°48.702" style degrees-decimal-minutes into
// decimal degrees, negative for south and west. Unparseable input yields 0.
func ddmToDecimal(ddm string) float64 {
	m := ddmRe.FindStringSubmatch(strings.TrimSpace(ddm))
	if m == nil {
		return 0
	}
	deg, errD := strconv.Atoi(m[2])
	mins, errM := strconv.ParseFloat(m[3], 64)
	if errD != nil || errM != nil {
		return 0
	}
	dec := float64(deg) + mins/60.0
	switch strings.ToUpper(m[1]) {
	case "S", "W":
		dec = -dec
	}
	return dec
}

// parseDateTime turns "21 June 2026 13:00" into an ISO date and start hour.
func parseDateTime(raw string) (string, int, bool) {
	m := dateTimeRe.FindStringSubmatch(raw)
	if m == nil {
		return "", 0, false
	}
	month, ok := months[strings.ToLower(m[2])]
	if !ok {
		return "", 0, false
	}
	day, _ := strconv.Atoi(m[1])
	hour, _ := strconv.Atoi(m[4])
	date := m[3] + "-" + pad2(month) + "-" + pad2(day)
	return date, hour, true
}

func pad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// capture returns re's first capture group in text, trimmed, or "".
func capture(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// section returns a labelled section's value, cut off at the next line that
// starts with a capital letter (the next label).
func section(re *regexp.Regexp, text string) string {
	v := capture(re, text)
	if loc := nextLabelRe.FindStringIndex(v); loc != nil {
		v = strings.TrimSpace(v[:loc[0]])
	}
	return v
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return strings.TrimSpace(s)
}

func ptr[T any](v T) *T { return &v }

// atoi parses s as a decimal integer, reporting success.
func atoi(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}
