package domain

import "time"

// Start type codes understood by Condor.
const (
	StartGate     = 0
	StartLine     = 1
	StartAirborne = 2
)

// Fixed sector applied to the synthesized airfield turnpoint regardless of
// its source (Condor standard for airport TPs).
const (
	AirfieldRadiusM  = 3000
	AirfieldAngleDeg = 90
)

// RawTurnpoint is a task-table turnpoint before completion. Coordinates are
// pointers because briefing-sourced turnpoints arrive as names only; the
// resolver fills them in from the turnpoint index.
type RawTurnpoint struct {
	Name       string   `json:"name"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Z          *float64 `json:"z"`
	RadiusM    *int     `json:"radius_m"`
	AngleDeg   *int     `json:"angle_deg"`
	SectorType *int     `json:"sector_type"`
	SectorDir  *int     `json:"sector_dir"`

	// Briefing-sheet coordinates in decimal degrees, reference only.
	Lat float64 `json:"lat,omitempty"`
	Lon float64 `json:"lon,omitempty"`
}

// RawAirfield is an explicit launch-airfield source. Its sector is ignored;
// the airfield always gets the fixed wide sector.
type RawAirfield struct {
	Name string   `json:"name"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	Z    *float64 `json:"z"`
}

// RawWeather holds the optional weather snapshot fields.
type RawWeather struct {
	WindDirDeg      *float64 `json:"wind_dir_deg"`
	WindSpeedKts    *float64 `json:"wind_speed_kts"`
	CloudBaseFt     *float64 `json:"cloud_base_ft"`
	Overdevelopment *float64 `json:"overdevelopment"`
	ThermalStrength *int     `json:"thermal_strength"`
	ThermalActivity *int     `json:"thermal_activity"`
}

// RawPenalties holds the optional penalty percentages.
type RawPenalties struct {
	CloudFlying    *int `json:"cloud_flying"`
	PlaneRecovery  *int `json:"plane_recovery"`
	HeightRecovery *int `json:"height_recovery"`
	Airspace       *int `json:"airspace"`
}

// RawTask is the optional-field task description produced by the briefing
// scraper or unmarshalled from a task JSON file. Every field may be absent.
type RawTask struct {
	Landscape          string         `json:"landscape"`
	CondorVersion      *int           `json:"condor_version"`
	TaskDate           *string        `json:"task_date"`
	StartTime          *int           `json:"start_time"`
	StartTimeWindow    *int           `json:"start_time_window"`
	RaceStartDelayMins *int           `json:"race_start_delay_mins"`
	Aircraft           *string        `json:"aircraft"`
	Skin               *string        `json:"skin"`
	StartType          *string        `json:"start_type"`
	Airport            *RawAirfield   `json:"airport_tp,omitempty"`
	StartHeightM       *int           `json:"start_height_m"`
	MinFinishHeightM   *int           `json:"min_finish_height_m"`
	MaxStartSpeedKts   *int           `json:"max_start_speed_kts"`
	Weather            *RawWeather    `json:"weather,omitempty"`
	Turnpoints         []RawTurnpoint `json:"turnpoints"`
	Penalties          *RawPenalties  `json:"penalties,omitempty"`
	Description        *string        `json:"description"`

	// AirportName is the launch airfield name scraped from the briefing
	// ("Airborne ... over <name>"). The pipeline resolves it into Airport.
	AirportName string `json:"airport_name,omitempty"`

	// IgnoreAirspace is set by the briefing scraper when the notes say
	// "ignore airspace"; it forces the airspace penalty to zero. Never
	// persisted in task JSON files.
	IgnoreAirspace bool `json:"-"`
}

// Turnpoint is a completed route entry with resolved coordinates and sector.
type Turnpoint struct {
	Name       string
	X          float64
	Y          float64
	Z          float64
	IsAirport  bool
	SectorType int
	SectorDir  int
	RadiusM    int
	AngleDeg   int
}

// Weather is the resolved weather snapshot.
type Weather struct {
	WindDirDeg      float64
	WindSpeedKts    float64
	CloudBaseFt     float64
	Overdevelopment float64
	ThermalStrength int // 1–5
	ThermalActivity int // 1–5
}

// Penalties holds the resolved penalty percentages.
type Penalties struct {
	CloudFlying    int
	PlaneRecovery  int
	HeightRecovery int
	Airspace       int
}

// TaskRecord is the complete, validated description of one race task.
// Turnpoints[0] is always the synthesized launch airfield. Consumed
// read-only by the serializer and the strategy report.
type TaskRecord struct {
	Landscape          string
	CondorVersion      int
	TaskDate           string // ISO YYYY-MM-DD
	StartTime          int    // hour, 24h clock
	StartTimeWindow    int    // minutes
	RaceStartDelayMins int
	Aircraft           string
	Skin               string
	StartTypeCode      int
	StartHeightM       int
	MinFinishHeightM   int
	MaxStartSpeedKts   int
	Turnpoints         []Turnpoint
	Weather            Weather
	Penalties          Penalties
	Description        string

	// Seed is generated once per build; it only makes the output look like
	// a Condor-authored plan and carries no correctness-critical randomness.
	Seed int32

	GeneratedAt time.Time
}

// Route returns the task turnpoints excluding the airfield entry.
func (t TaskRecord) Route() []Turnpoint {
	if len(t.Turnpoints) == 0 {
		return nil
	}
	return t.Turnpoints[1:]
}
