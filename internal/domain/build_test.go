package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func sp(v string) *string   { return &v }

func minimalRaw() RawTask {
	return RawTask{
		Turnpoints: []RawTurnpoint{
			{Name: "A", X: fp(0), Y: fp(0), Z: fp(100)},
			{Name: "B", X: fp(5000), Y: fp(5000), Z: fp(200)},
		},
	}
}

func TestComplete_Defaults(t *testing.T) {
	rec, err := Complete(minimalRaw())
	require.NoError(t, err)

	assert.Equal(t, "Centro_Italia3", rec.Landscape)
	assert.Equal(t, 3100, rec.CondorVersion)
	assert.Equal(t, "2026-06-21", rec.TaskDate)
	assert.Equal(t, 12, rec.StartTime)
	assert.Equal(t, 0, rec.StartTimeWindow)
	assert.Equal(t, 5, rec.RaceStartDelayMins)
	assert.Equal(t, "StdCirrus", rec.Aircraft)
	assert.Equal(t, "Default", rec.Skin)
	assert.Equal(t, StartAirborne, rec.StartTypeCode)
	assert.Equal(t, 1000, rec.StartHeightM)
	assert.Equal(t, 0, rec.MinFinishHeightM)
	assert.Equal(t, 81, rec.MaxStartSpeedKts)
	assert.Equal(t, Penalties{100, 100, 100, 100}, rec.Penalties)
	assert.Equal(t, Weather{
		WindDirDeg:      0,
		WindSpeedKts:    0,
		CloudBaseFt:     4921,
		Overdevelopment: 0,
		ThermalStrength: 2,
		ThermalActivity: 3,
	}, rec.Weather)
}

func TestComplete_AirfieldClonedFromFirstTurnpoint(t *testing.T) {
	raw := minimalRaw()
	raw.Turnpoints[0].RadiusM = ip(500)
	raw.Turnpoints[0].AngleDeg = ip(180)

	rec, err := Complete(raw)
	require.NoError(t, err)
	require.Len(t, rec.Turnpoints, 3)

	apt := rec.Turnpoints[0]
	assert.Equal(t, "A", apt.Name)
	assert.True(t, apt.IsAirport)
	assert.Equal(t, 0.0, apt.X)
	assert.Equal(t, 0.0, apt.Y)
	assert.Equal(t, 100.0, apt.Z)
	// The airfield sector is always forced wide, whatever the source TP had.
	assert.Equal(t, AirfieldRadiusM, apt.RadiusM)
	assert.Equal(t, AirfieldAngleDeg, apt.AngleDeg)

	// The source turnpoint keeps its own sector.
	assert.Equal(t, 500, rec.Turnpoints[1].RadiusM)
	assert.Equal(t, 180, rec.Turnpoints[1].AngleDeg)
	assert.False(t, rec.Turnpoints[1].IsAirport)
}

func TestComplete_ExplicitAirfield(t *testing.T) {
	raw := minimalRaw()
	raw.Airport = &RawAirfield{Name: "Rieti", X: fp(183917.75), Y: fp(229719.265625), Z: fp(389)}

	rec, err := Complete(raw)
	require.NoError(t, err)
	require.Len(t, rec.Turnpoints, 3)

	apt := rec.Turnpoints[0]
	assert.Equal(t, "Rieti", apt.Name)
	assert.True(t, apt.IsAirport)
	assert.Equal(t, 183917.75, apt.X)
	assert.Equal(t, AirfieldRadiusM, apt.RadiusM)
	assert.Equal(t, AirfieldAngleDeg, apt.AngleDeg)
}

func TestComplete_TooFewTurnpoints(t *testing.T) {
	_, err := Complete(RawTask{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no turnpoints")

	_, err = Complete(RawTask{Turnpoints: []RawTurnpoint{
		{Name: "A", X: fp(0), Y: fp(0), Z: fp(0)},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least a start gate and a finish")
}

func TestComplete_MissingCoordinates(t *testing.T) {
	raw := minimalRaw()
	raw.Turnpoints[1].Z = nil

	_, err := Complete(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `turnpoint 2 ("B")`)
	assert.Contains(t, err.Error(), "supply x/y/z")
}

func TestComplete_AirfieldMissingCoordinates(t *testing.T) {
	raw := minimalRaw()
	raw.Airport = &RawAirfield{Name: "Rieti"}

	_, err := Complete(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Rieti"`)
}

func TestComplete_NullFieldsFallBackToDefaults(t *testing.T) {
	// A failed upstream parse leaves pointers nil; nil must mean "default",
	// never zero.
	raw := minimalRaw()
	raw.StartTime = nil
	raw.StartHeightM = nil

	rec, err := Complete(raw)
	require.NoError(t, err)
	assert.Equal(t, 12, rec.StartTime)
	assert.Equal(t, 1000, rec.StartHeightM)
}

func TestComplete_ExplicitZeroIsKept(t *testing.T) {
	raw := minimalRaw()
	raw.StartHeightM = ip(0)
	raw.MinFinishHeightM = ip(0)

	rec, err := Complete(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.StartHeightM)
	assert.Equal(t, 0, rec.MinFinishHeightM)
}

func TestComplete_StartType(t *testing.T) {
	raw := minimalRaw()
	raw.StartType = sp("gate")
	rec, err := Complete(raw)
	require.NoError(t, err)
	assert.Equal(t, StartGate, rec.StartTypeCode)

	raw.StartType = sp("unrecognized")
	rec, err = Complete(raw)
	require.NoError(t, err)
	assert.Equal(t, StartAirborne, rec.StartTypeCode)
}

func TestComplete_IgnoreAirspaceForcesZeroPenalty(t *testing.T) {
	raw := minimalRaw()
	raw.Penalties = &RawPenalties{Airspace: ip(75)}
	raw.IgnoreAirspace = true

	rec, err := Complete(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Penalties.Airspace)
	assert.Equal(t, 100, rec.Penalties.CloudFlying)
}

func TestComplete_ThermalScaleClamped(t *testing.T) {
	raw := minimalRaw()
	raw.Weather = &RawWeather{ThermalStrength: ip(9), ThermalActivity: ip(0)}

	rec, err := Complete(raw)
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Weather.ThermalStrength)
	assert.Equal(t, 1, rec.Weather.ThermalActivity)
}

func TestComplete_InvalidDate(t *testing.T) {
	raw := minimalRaw()
	raw.TaskDate = sp("June 21st")

	_, err := Complete(raw)
	require.Error(t, err)
}

func TestComplete_SeedAndClock(t *testing.T) {
	frozen := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	SetSeedSource(func() int32 { return 424242 })
	t.Cleanup(func() {
		SetClock(nil)
		SetSeedSource(nil)
	})

	rec, err := Complete(minimalRaw())
	require.NoError(t, err)
	assert.Equal(t, int32(424242), rec.Seed)
	assert.Equal(t, frozen, rec.GeneratedAt)
}

func TestRoute_ExcludesAirfield(t *testing.T) {
	rec, err := Complete(minimalRaw())
	require.NoError(t, err)

	route := rec.Route()
	require.Len(t, route, 2)
	assert.Equal(t, "A", route[0].Name)
	assert.Equal(t, "B", route[1].Name)
}
