package briefing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleBriefing mirrors the text layout that PDF extraction produces for a
// race sheet: labels in a left column, some wrapped onto their own line
// ahead of the value.
const sampleBriefing = `SGC Spring 2026 Race 5
Landscape Centro_Italia3
Virtual date and
21 June 2026 13:00
Start time window 5
Delay before race
10
Aircraft Duo Discus XL
Start type Airborne, 2526ft over Castellucio
Max start height 3282ft (1000m) over Rieti, 4594ft QNH
Min finish height 0ft (0m)
Weather report Wind 235° at 16kts, cloud base 4921ft
Notes Max start speed 81kts ground speed. Ignore airspace.
Task
Castellucio 4216ft N42°48.702 E013°12.540 R1=5000m, θ=180°
Fiamignano 3156ft N42°15.960 E013°07.440 R1=3000m, θ=180°
Rieti 1276ft N42°25.560 E012°51.300 R1=1000m, θ=90°
`

func TestParse_FullSheet(t *testing.T) {
	raw := Parse(sampleBriefing)

	require.NotNil(t, raw.Description)
	assert.Equal(t, "SGC Spring 2026 Race 5", *raw.Description)
	assert.Equal(t, "Centro_Italia3", raw.Landscape)

	require.NotNil(t, raw.TaskDate)
	assert.Equal(t, "2026-06-21", *raw.TaskDate)
	require.NotNil(t, raw.StartTime)
	assert.Equal(t, 13, *raw.StartTime)

	require.NotNil(t, raw.StartTimeWindow)
	assert.Equal(t, 5, *raw.StartTimeWindow)
	require.NotNil(t, raw.RaceStartDelayMins)
	assert.Equal(t, 10, *raw.RaceStartDelayMins)

	require.NotNil(t, raw.Aircraft)
	assert.Equal(t, "DuoDiscusXL", *raw.Aircraft)
	require.NotNil(t, raw.StartType)
	assert.Equal(t, "airborne", *raw.StartType)
	assert.Equal(t, "Castellucio", raw.AirportName)

	require.NotNil(t, raw.StartHeightM)
	assert.Equal(t, 1000, *raw.StartHeightM)
	require.NotNil(t, raw.MinFinishHeightM)
	assert.Equal(t, 0, *raw.MinFinishHeightM, "explicit 0m must survive as 0, not default")

	require.NotNil(t, raw.MaxStartSpeedKts)
	assert.Equal(t, 81, *raw.MaxStartSpeedKts)
	assert.True(t, raw.IgnoreAirspace)
}

func TestParse_Weather(t *testing.T) {
	wx := Parse(sampleBriefing).Weather
	require.NotNil(t, wx)

	require.NotNil(t, wx.WindDirDeg)
	assert.Equal(t, 235.0, *wx.WindDirDeg)
	require.NotNil(t, wx.WindSpeedKts)
	assert.Equal(t, 16.0, *wx.WindSpeedKts)
	require.NotNil(t, wx.CloudBaseFt)
	assert.Equal(t, 4921.0, *wx.CloudBaseFt)
}

func TestParse_Turnpoints(t *testing.T) {
	tps := Parse(sampleBriefing).Turnpoints
	require.Len(t, tps, 3)

	assert.Equal(t, "Castellucio", tps[0].Name)
	require.NotNil(t, tps[0].RadiusM)
	assert.Equal(t, 5000, *tps[0].RadiusM)
	require.NotNil(t, tps[0].AngleDeg)
	assert.Equal(t, 180, *tps[0].AngleDeg)
	assert.InDelta(t, 42.8117, tps[0].Lat, 0.0001)
	assert.InDelta(t, 13.209, tps[0].Lon, 0.0001)

	assert.Equal(t, "Rieti", tps[2].Name)
	require.NotNil(t, tps[2].RadiusM)
	assert.Equal(t, 1000, *tps[2].RadiusM)
	require.NotNil(t, tps[2].AngleDeg)
	assert.Equal(t, 90, *tps[2].AngleDeg)

	// Coordinates stay unresolved; the index fills them in later.
	assert.Nil(t, tps[0].X)
	assert.Nil(t, tps[0].Y)
	assert.Nil(t, tps[0].Z)
}

func TestParse_HeaderRowRejected(t *testing.T) {
	text := "Task\nName 1000ft N42°00.000 E013°00.000 R1=3000m, θ=180°\n" +
		"Rieti 1276ft N42°25.560 E012°51.300 R1=1000m, θ=90°\n"
	tps := Parse(text).Turnpoints
	require.Len(t, tps, 1)
	assert.Equal(t, "Rieti", tps[0].Name)
}

func TestParse_EmptyText(t *testing.T) {
	raw := Parse("")

	assert.Empty(t, raw.Turnpoints)
	assert.Empty(t, raw.Landscape)
	assert.Empty(t, raw.AirportName)
	assert.Nil(t, raw.TaskDate)
	assert.Nil(t, raw.StartTimeWindow)
	assert.False(t, raw.IgnoreAirspace)

	// Weather is always present with the assumed cloud base.
	require.NotNil(t, raw.Weather)
	require.NotNil(t, raw.Weather.CloudBaseFt)
	assert.Equal(t, DefaultCloudBaseFt, *raw.Weather.CloudBaseFt)
	assert.Nil(t, raw.Weather.WindDirDeg)
}

func TestDDMToDecimal(t *testing.T) {
	assert.InDelta(t, 42.8117, ddmToDecimal("N42°48.702"), 0.0001)
	assert.InDelta(t, 13.209, ddmToDecimal("E013°12.540"), 0.0001)
	assert.InDelta(t, -33.5, ddmToDecimal("S33°30.000"), 0.0001)
	assert.InDelta(t, -70.25, ddmToDecimal("W070°15.000"), 0.0001)
	assert.Zero(t, ddmToDecimal("garbage"))
}
