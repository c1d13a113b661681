package fpl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/couchcryptid/condor-taskgen/internal/domain"
)

// Serialize renders a completed task record as .fpl file content with CRLF
// line endings. Section and key order are fixed: Condor itself is
// key-oriented, but several downstream tools read these files line by line,
// so the exact ordering is part of the output contract.
//
// The record must come from domain.Complete (in particular TaskDate must be
// a valid ISO date); Serialize performs no validation of its own.
func Serialize(rec domain.TaskRecord) string {
	var lines []string

	lines = append(lines,
		"[Version]",
		fmt.Sprintf("Condor version=%d", rec.CondorVersion),
		"",
	)

	lines = append(lines,
		"[Task]",
		"Landscape="+rec.Landscape,
		fmt.Sprintf("Count=%d", len(rec.Turnpoints)),
	)
	for i, tp := range rec.Turnpoints {
		lines = append(lines, turnpointLines(i, tp)...)
	}
	lines = append(lines,
		"PZCount=0",
		"DisabledAirspaces=",
		"",
	)

	lines = append(lines, weatherLines(rec.Weather)...)

	lines = append(lines,
		"[Plane]",
		"Class=All",
		"Name="+rec.Aircraft,
		"Skin="+rec.Skin,
		"Water=0",
		"FixedMass=0",
		"CGBias=0",
		"Seat=1",
		"Bugwipers=0",
		"",
	)

	lines = append(lines, gameOptionLines(rec)...)

	lines = append(lines,
		"[Description]",
		"Text="+rec.Description,
		"",
	)

	return strings.Join(lines, "\r\n")
}

// turnpointLines emits the per-turnpoint block. Altitude, width, height and
// azimuth are required by the format but not modelled by this system; they
// are always written with the same constant values.
func turnpointLines(i int, tp domain.Turnpoint) []string {
	airport := 0
	if tp.IsAirport {
		airport = 1
	}
	idx := strconv.Itoa(i)
	return []string{
		"TPName" + idx + "=" + tp.Name,
		"TPPosX" + idx + "=" + formatFloat(tp.X),
		"TPPosY" + idx + "=" + formatFloat(tp.Y),
		"TPPosZ" + idx + "=" + formatFloat(tp.Z),
		fmt.Sprintf("TPAirport%d=%d", i, airport),
		fmt.Sprintf("TPSectorType%d=%d", i, tp.SectorType),
		fmt.Sprintf("TPSectorDirection%d=%d", i, tp.SectorDir),
		fmt.Sprintf("TPRadius%d=%d", i, tp.RadiusM),
		fmt.Sprintf("TPAngle%d=%d", i, tp.AngleDeg),
		"TPAltitude" + idx + "=1500",
		"TPWidth" + idx + "=0",
		"TPHeight" + idx + "=10000",
		"TPAzimuth" + idx + "=0",
	}
}

// weatherLines emits the weather section: a single zone with fixed tuning
// fields plus the derived wind, inversion, overdevelopment and thermal
// values.
func weatherLines(wx domain.Weather) []string {
	return []string{
		"[Weather]",
		"RandomizeWeatherOnEachFlight=0",
		"WZCount=1",
		"",
		"[WeatherZone0]",
		"Name=Base",
		"PointCount=0",
		"MoveDir=0",
		"MoveSpeed=0",
		"BorderWidth=0",
		"WindDir=" + formatFloat(wx.WindDirDeg),
		fmt.Sprintf("WindSpeed=%.6f", wx.WindSpeedKts*domain.KtsToMS),
		"WindUpperSpeed=0",
		"WindDirVariation=1",
		"WindSpeedVariation=1",
		"WindTurbulence=2",
		"ThermalsTemp=22",
		"ThermalsTempVariation=1",
		"ThermalsDew=10",
		fmt.Sprintf("ThermalsStrength=%d", wx.ThermalStrength),
		"ThermalsStrengthVariation=1",
		fmt.Sprintf("ThermalsInversionheight=%d", domain.CloudBaseToInversionM(wx.CloudBaseFt)),
		"ThermalsOverdevelopment=" + formatFloat(wx.Overdevelopment),
		"ThermalsWidth=2",
		"ThermalsWidthVariation=1",
		fmt.Sprintf("ThermalsActivity=%d", wx.ThermalActivity),
		"ThermalsActivityVariation=1",
		"ThermalsTurbulence=2",
		"ThermalsFlatsActivity=2",
		"ThermalsStreeting=0",
		"ThermalsBugs=2",
		"WavesStability=5",
		"WavesMoisture=8",
		"HighCloudsCoverage=2",
		"",
	}
}

// gameOptionLines emits the game-options section. Window and delay minutes
// become fractional hours at 17 decimal digits, the width Condor's own
// serializer uses; truncating is an observable compatibility break.
func gameOptionLines(rec domain.TaskRecord) []string {
	serial, _ := domain.DateToSerial(rec.TaskDate)
	windowHours := float64(rec.StartTimeWindow) / 60.0
	delayHours := float64(rec.RaceStartDelayMins) / 60.0
	maxSpeedKmh := int(math.Round(float64(rec.MaxStartSpeedKts) * domain.KtsToKmh))

	return []string{
		"[GameOptions]",
		fmt.Sprintf("TaskDate=%d", serial),
		fmt.Sprintf("StartTime=%d", rec.StartTime),
		"StartTimeWindow=" + strconv.FormatFloat(windowHours, 'f', 17, 64),
		"RaceStartDelay=" + strconv.FormatFloat(delayHours, 'f', 17, 64),
		"AATTime=3",
		"IconsVisibleRange=20",
		"ThermalHelpersRange=0",
		"TurnpointHelpersRange=0",
		"AAT=0",
		"AllowBugwipers=1",
		"AllowPDA=1",
		"AllowRealtimeScoring=1",
		"AllowExternalView=1",
		"AllowPadlockView=1",
		"AllowSmoke=1",
		"AllowPlaneRecovery=0",
		"AllowHeightRecovery=0",
		"AllowMidairCollisionRecovery=0",
		"AllowInstructorActions=0",
		fmt.Sprintf("PenaltyCloudFlying=%d", rec.Penalties.CloudFlying),
		fmt.Sprintf("PenaltyPlaneRecovery=%d", rec.Penalties.PlaneRecovery),
		fmt.Sprintf("PenaltyHeightRecovery=%d", rec.Penalties.HeightRecovery),
		"PenaltyWrongWindowEnterance=100",
		"PenaltyWindowCollision=100",
		fmt.Sprintf("PenaltyAirspaceEnterance=%d", rec.Penalties.Airspace),
		"PenaltyPenaltyZoneEnterance=100",
		"PenaltyThermalHelpers=0",
		fmt.Sprintf("MaxStartGroundSpeed=%d", maxSpeedKmh),
		"PenaltyStartSpeed=1",
		"PenaltyHighStart=1",
		"PenaltyLowFinish=1",
		fmt.Sprintf("RandSeed=%d", rec.Seed),
		fmt.Sprintf("StartType=%d", rec.StartTypeCode),
		fmt.Sprintf("StartHeight=%d", rec.StartHeightM),
		"BreakProb=0",
		"RopeLength=50",
		"MaxWingLoading=0",
		"MaxTeams=0",
		"AcroFlight=0",
		"",
	}
}

// formatFloat renders a float with the shortest representation that
// round-trips, matching how coordinates appear in simulator-written files.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
