// Package domain models Condor soaring-simulator race tasks.
//
// # Data Source
//
// Task data arrives from two places: scraped fields from a club task
// briefing sheet (see the briefing package) or an explicit task JSON file.
// Both produce a RawTask in which every field is optional; Complete resolves
// defaults and yields a fully typed TaskRecord ready for serialization.
//
// # Condor Conventions
//
// Coordinates:
//
//	Turnpoint positions are Condor landscape-local grid coordinates in
//	metres: X = East, Y = North, Z = ground elevation. They are only
//	meaningful within one landscape. No geodetic projection is performed
//	anywhere in this module; briefing lat/lon values are carried for
//	reference but never converted to grid coordinates.
//
// Turnpoint ordering:
//
//	TP0  launch airfield (TPAirport=1, fixed wide sector)
//	TP1  start gate / cylinder (first entry from the task table)
//	TP2+ waypoints and finish (remaining task table entries)
//
//	The airfield entry is synthesized by Complete: from an explicit
//	airport source when one is present, otherwise cloned from the first
//	task turnpoint (legacy behaviour compatible with older task JSON
//	files). Either way its sector is forced to radius 3000 m / angle 90°,
//	the Condor standard for airport turnpoints.
//
// Landscape identifiers:
//
//	Source files are inconsistent about separators: "Centro_Italia3",
//	"Centro Italia 3" and "Centro Italia3" all name the same landscape.
//	NormalizeLandscape therefore strips underscores and whitespace
//	entirely, while NormalizeName (for turnpoints) only collapses internal
//	whitespace. See [NormalizeLandscape] and [NormalizeName].
//
// Start types:
//
//	"gate" → 0, "line" → 1, "airborne" and "tow" → 2. Unrecognized values
//	fall back to the airborne code; all known club races are airborne.
//
// Dates and times:
//
//	TaskDate is an ISO date string (YYYY-MM-DD) serialized as a day-count
//	relative to 1899-12-30, the spreadsheet epoch Condor inherited.
//	StartTime is a 24-hour clock hour. Window and delay durations are
//	minutes in the model and fractional hours on the wire.
//
// # Absent vs null
//
// Optional RawTask fields are pointers: JSON null and a missing key both
// unmarshal to nil, and both take the field's default. A failed upstream
// parse stores null, and null must not silently become zero. A present-but-zero value (e.g. start height 0 for a ground start)
// is a non-nil pointer and is preserved.
package domain
