package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTurnpointsCmd(a *app) *cobra.Command {
	var landscape string

	cmd := &cobra.Command{
		Use:   "turnpoints",
		Short: "List turnpoints known from the flight plan directory",
		RunE: func(*cobra.Command, []string) error {
			ix := a.loadIndex()

			landscapes := ix.Landscapes()
			if landscape != "" {
				landscapes = []string{landscape}
			}
			for _, ls := range landscapes {
				names := ix.KnownNames(ls)
				fmt.Printf("%s (%d turnpoints)\n", ls, len(names))
				for _, name := range names {
					fmt.Printf("  %s\n", name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&landscape, "landscape", "l", "", "only list this landscape")
	return cmd
}
