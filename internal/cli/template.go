package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/condor-taskgen/internal/domain"
)

func newTemplateCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a filled-in task JSON template to stdout",
		RunE: func(*cobra.Command, []string) error {
			data, err := json.MarshalIndent(templateTask(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

// templateTask is a complete example task on the default landscape, usable
// as-is and meant to be edited.
func templateTask() domain.RawTask {
	return domain.RawTask{
		Landscape:          "Centro_Italia3",
		CondorVersion:      ptr(3100),
		TaskDate:           ptr("2026-06-21"),
		StartTime:          ptr(13),
		StartTimeWindow:    ptr(5),
		RaceStartDelayMins: ptr(5),
		Aircraft:           ptr("Blanik"),
		Skin:               ptr("Default"),
		StartType:          ptr("airborne"),
		Airport: &domain.RawAirfield{
			Name: "Rieti",
			X:    ptr(183917.75),
			Y:    ptr(229719.265625),
			Z:    ptr(389.0),
		},
		StartHeightM:     ptr(1000),
		MinFinishHeightM: ptr(0),
		MaxStartSpeedKts: ptr(81),
		Weather: &domain.RawWeather{
			WindDirDeg:      ptr(90.0),
			WindSpeedKts:    ptr(13.0),
			CloudBaseFt:     ptr(4921.0),
			Overdevelopment: ptr(0.0),
			ThermalStrength: ptr(2),
			ThermalActivity: ptr(3),
		},
		Turnpoints: []domain.RawTurnpoint{
			{
				Name: "Cittaducalepiazz",
				X:    ptr(175684.546875), Y: ptr(224619.90625), Z: ptr(478.0),
				RadiusM: ptr(5000), AngleDeg: ptr(180),
				SectorType: ptr(0), SectorDir: ptr(0),
			},
			{
				Name: "Galleria S Rocco",
				X:    ptr(146981.578125), Y: ptr(205843.515625), Z: ptr(1314.0),
				RadiusM: ptr(3000), AngleDeg: ptr(90),
				SectorType: ptr(0), SectorDir: ptr(0),
			},
			{
				Name: "Rieti",
				X:    ptr(183917.75), Y: ptr(229719.265625), Z: ptr(389.0),
				RadiusM: ptr(1000), AngleDeg: ptr(180),
				SectorType: ptr(0), SectorDir: ptr(0),
			},
		},
		Penalties: &domain.RawPenalties{
			CloudFlying:    ptr(100),
			PlaneRecovery:  ptr(100),
			HeightRecovery: ptr(100),
			Airspace:       ptr(100),
		},
		Description: ptr("SGC Spring 2026 Race 1"),
	}
}

func ptr[T any](v T) *T { return &v }
