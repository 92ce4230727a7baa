package cmd

import (
	"fmt"

	"github.com/mmuldo/colormatch/cie"
	"github.com/spf13/cobra"
)

func newLabCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lab COLOR...",
		Short: "Prints the linear RGB, XYZ and L*a*b* values of colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			conv, err := a.converter()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, c := range cs {
				lab, err := conv.ToLab(c)
				if err != nil {
					return err
				}
				// strict input got past ToLab, so clamping only changes lenient input;
				// XYZ is always the D65 pipeline's
				cl := c.Clamp()
				xyz := cie.ToXYZ(cl)
				fmt.Fprintf(w, "%s%s\n", swatch(w, c), c.Hex())
				fmt.Fprintf(w, "  linear  %.6f %.6f %.6f\n", cie.Linearize(cl.R), cie.Linearize(cl.G), cie.Linearize(cl.B))
				fmt.Fprintf(w, "  xyz     %.4f %.4f %.4f\n", xyz.X, xyz.Y, xyz.Z)
				fmt.Fprintf(w, "  lab     %.4f %.4f %.4f\n", lab.L, lab.A, lab.B)
				fmt.Fprintf(w, "  lch     %.4f %.4f %.4f\n", lab.L, lab.Chroma(), lab.Hue())
			}
			return nil
		},
	}
}
