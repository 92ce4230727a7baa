package cmd

import (
	"fmt"

	"github.com/mmuldo/colormatch/palette"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var threshold float64

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Lists catalog entries that are hard to tell apart",
		Long: `Check lists every pair of catalog entries whose CIEDE2000 difference is
below the threshold. Matches between such entries are decided by id order
rather than by color.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			pairs := palette.Confusable(cat, threshold)
			if len(pairs) == 0 {
				_, err = fmt.Fprintf(w, "%d entries, none closer than %.2f\n", cat.Len(), threshold)
				return err
			}
			for _, p := range pairs {
				fmt.Fprintf(w, "%d %q ~ %d %q (ΔE00 %.4f)\n", p.A.ID, p.A.Label, p.B.ID, p.B.Label, p.Distance)
			}
			return nil
		},
	}

	// 2.3 is the usual just-noticeable difference
	checkCmd.Flags().Float64Var(&threshold, "threshold", 2.3, "report pairs closer than this ΔE00")

	return checkCmd
}
