package domain

import (
	"fmt"
)

// Field defaults applied by Complete whenever a raw field is absent or null.
const (
	DefaultLandscape        = "Centro_Italia3"
	DefaultCondorVersion    = 3100
	DefaultTaskDate         = "2026-06-21"
	DefaultStartTime        = 12
	DefaultStartTimeWindow  = 0
	DefaultRaceStartDelay   = 5
	DefaultAircraft         = "StdCirrus"
	DefaultSkin             = "Default"
	DefaultStartType        = "airborne"
	DefaultStartHeightM     = 1000
	DefaultMinFinishHeightM = 0
	DefaultMaxStartSpeedKts = 81
	DefaultPenalty          = 100

	DefaultWindDirDeg      = 0.0
	DefaultWindSpeedKts    = 0.0
	DefaultCloudBaseFt     = 4921.0
	DefaultOverdevelopment = 0.0
	DefaultThermalStrength = 2
	DefaultThermalActivity = 3

	DefaultTPRadiusM  = 3000
	DefaultTPAngleDeg = 180
)

// Complete merges a raw task into a fully populated TaskRecord, applying
// defaults, synthesizing the launch airfield, and validating that every
// turnpoint carries resolved coordinates. It is the only path from optional
// fields to the serializer; the serializer never sees a partial record.
func Complete(raw RawTask) (TaskRecord, error) {
	if len(raw.Turnpoints) == 0 {
		return TaskRecord{}, fmt.Errorf(
			"task has no turnpoints: check the briefing is a task sheet, or add a turnpoints list to the task JSON")
	}
	if len(raw.Turnpoints) < 2 {
		return TaskRecord{}, fmt.Errorf(
			"task has %d turnpoint(s), need at least a start gate and a finish", len(raw.Turnpoints))
	}

	route := make([]Turnpoint, 0, len(raw.Turnpoints)+1)

	airfield, err := synthesizeAirfield(raw)
	if err != nil {
		return TaskRecord{}, err
	}
	route = append(route, airfield)

	for i, tp := range raw.Turnpoints {
		if tp.X == nil || tp.Y == nil || tp.Z == nil {
			return TaskRecord{}, fmt.Errorf(
				"turnpoint %d (%q) has no coordinates: resolve it against a flight plan corpus or supply x/y/z in the task JSON",
				i+1, tp.Name)
		}
		route = append(route, Turnpoint{
			Name:       tp.Name,
			X:          *tp.X,
			Y:          *tp.Y,
			Z:          *tp.Z,
			SectorType: intOr(tp.SectorType, 0),
			SectorDir:  intOr(tp.SectorDir, 0),
			RadiusM:    intOr(tp.RadiusM, DefaultTPRadiusM),
			AngleDeg:   intOr(tp.AngleDeg, DefaultTPAngleDeg),
		})
	}

	taskDate := strOr(raw.TaskDate, DefaultTaskDate)
	if _, err := DateToSerial(taskDate); err != nil {
		return TaskRecord{}, err
	}

	landscape := raw.Landscape
	if landscape == "" {
		landscape = DefaultLandscape
	}

	rec := TaskRecord{
		Landscape:          landscape,
		CondorVersion:      intOr(raw.CondorVersion, DefaultCondorVersion),
		TaskDate:           taskDate,
		StartTime:          intOr(raw.StartTime, DefaultStartTime),
		StartTimeWindow:    intOr(raw.StartTimeWindow, DefaultStartTimeWindow),
		RaceStartDelayMins: intOr(raw.RaceStartDelayMins, DefaultRaceStartDelay),
		Aircraft:           strOr(raw.Aircraft, DefaultAircraft),
		Skin:               strOr(raw.Skin, DefaultSkin),
		StartTypeCode:      StartTypeCode(strOr(raw.StartType, DefaultStartType)),
		StartHeightM:       intOr(raw.StartHeightM, DefaultStartHeightM),
		MinFinishHeightM:   intOr(raw.MinFinishHeightM, DefaultMinFinishHeightM),
		MaxStartSpeedKts:   intOr(raw.MaxStartSpeedKts, DefaultMaxStartSpeedKts),
		Turnpoints:         route,
		Weather:            completeWeather(raw.Weather),
		Penalties:          completePenalties(raw.Penalties, raw.IgnoreAirspace),
		Description:        strOr(raw.Description, ""),
		Seed:               seedSource(),
		GeneratedAt:        clock.Now(),
	}

	return rec, nil
}

// synthesizeAirfield builds the TP0 airfield entry: from the explicit
// airport source when present, otherwise cloned from the first task
// turnpoint. The sector is always forced to the fixed wide shape.
func synthesizeAirfield(raw RawTask) (Turnpoint, error) {
	var name string
	var x, y, z *float64

	if raw.Airport != nil {
		name = raw.Airport.Name
		x, y, z = raw.Airport.X, raw.Airport.Y, raw.Airport.Z
	} else {
		first := raw.Turnpoints[0]
		name = first.Name
		x, y, z = first.X, first.Y, first.Z
	}

	if x == nil || y == nil || z == nil {
		return Turnpoint{}, fmt.Errorf(
			"launch airfield %q has no coordinates: resolve it against a flight plan corpus or supply x/y/z in the task JSON",
			name)
	}

	return Turnpoint{
		Name:       name,
		X:          *x,
		Y:          *y,
		Z:          *z,
		IsAirport:  true,
		SectorType: 0,
		SectorDir:  0,
		RadiusM:    AirfieldRadiusM,
		AngleDeg:   AirfieldAngleDeg,
	}, nil
}

// completeWeather resolves the weather snapshot, clamping thermal strength
// and activity into their documented 1–5 range.
func completeWeather(raw *RawWeather) Weather {
	if raw == nil {
		raw = &RawWeather{}
	}
	return Weather{
		WindDirDeg:      floatOr(raw.WindDirDeg, DefaultWindDirDeg),
		WindSpeedKts:    floatOr(raw.WindSpeedKts, DefaultWindSpeedKts),
		CloudBaseFt:     floatOr(raw.CloudBaseFt, DefaultCloudBaseFt),
		Overdevelopment: floatOr(raw.Overdevelopment, DefaultOverdevelopment),
		ThermalStrength: clampScale(intOr(raw.ThermalStrength, DefaultThermalStrength)),
		ThermalActivity: clampScale(intOr(raw.ThermalActivity, DefaultThermalActivity)),
	}
}

// completePenalties resolves penalty percentages. The ignore-airspace flag
// forces the airspace penalty to zero regardless of any configured value.
func completePenalties(raw *RawPenalties, ignoreAirspace bool) Penalties {
	if raw == nil {
		raw = &RawPenalties{}
	}
	p := Penalties{
		CloudFlying:    intOr(raw.CloudFlying, DefaultPenalty),
		PlaneRecovery:  intOr(raw.PlaneRecovery, DefaultPenalty),
		HeightRecovery: intOr(raw.HeightRecovery, DefaultPenalty),
		Airspace:       intOr(raw.Airspace, DefaultPenalty),
	}
	if ignoreAirspace {
		p.Airspace = 0
	}
	return p
}

func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
