package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Unit conversion factors.
const (
	KtsToMS  = 0.514444 // knots → metres per second
	KtsToKmh = 1.852    // knots → kilometres per hour
	FtToM    = 0.3048   // feet → metres
)

// serialEpoch is 1899-12-30, the spreadsheet day-serial epoch Condor uses
// for TaskDate.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DateToSerial converts an ISO date string (YYYY-MM-DD) to the day-count
// serial number Condor expects.
func DateToSerial(isoDate string) (int, error) {
	d, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return 0, fmt.Errorf("parse task date %q: %w", isoDate, err)
	}
	return int(d.Sub(serialEpoch).Hours() / 24), nil
}

// StartTypeCode maps a human-readable start type to the Condor integer code.
// Unrecognized values fall back to the airborne code.
func StartTypeCode(name string) int {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gate":
		return StartGate
	case "line":
		return StartLine
	default:
		return StartAirborne
	}
}

// CloudBaseToInversionM converts a cloud base in feet to the integer
// thermal inversion height in metres Condor's weather block expects.
func CloudBaseToInversionM(cloudBaseFt float64) int {
	return int(math.Round(cloudBaseFt * FtToM))
}

// TaskDistanceKm returns the task distance in kilometres over the given
// route legs (straight-line in landscape grid coordinates). Pass the route
// without the airfield entry; the airfield is not part of the scored task.
func TaskDistanceKm(route []Turnpoint) float64 {
	var dist float64
	for i := 0; i+1 < len(route); i++ {
		dx := route[i+1].X - route[i].X
		dy := route[i+1].Y - route[i].Y
		dist += math.Hypot(dx, dy)
	}
	return dist / 1000.0
}
