package cmd

import (
	"fmt"

	"github.com/mmuldo/colormatch/cie"
	"github.com/spf13/cobra"
)

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff COLOR COLOR",
		Short: "Prints the CIEDE2000 difference between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			conv, err := a.converter()
			if err != nil {
				return err
			}
			w := a.weights()
			if err := w.Validate(); err != nil {
				return err
			}

			var labs [2]cie.Lab
			for i, c := range cs {
				if labs[i], err = conv.ToLab(c); err != nil {
					return err
				}
			}
			d := w.Difference(labs[0], labs[1])
			if err := cie.CheckFinite("ciede2000", d); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", d)
			return err
		},
	}
}
