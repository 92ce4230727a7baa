package cmd

import (
	"errors"
	"math/rand/v2"

	"github.com/mmuldo/colormatch/cie"
	"github.com/mmuldo/colormatch/palette"
	"github.com/mmuldo/colormatch/theme"
	"github.com/spf13/cobra"
)

const matchTemplate = `{% for q in queries %}{% for r in q.results %}{{ q.swatch }}{{ q.query }} {{ q.color }} -> {% if r.found %}{{ r.swatch }}{{ r.id }} {{ r.label }} (ΔE00 {{ r.delta|floatformat:4 }}){% else %}no match{% endif %}
{% endfor %}{% endfor %}`

func newMatchCmd(a *app) *cobra.Command {
	var (
		top    int
		random int
		seed   uint64
	)

	matchCmd := &cobra.Command{
		Use:   "match [COLOR...]",
		Short: "Names colors after their nearest catalog entry",
		Long: `Match finds, for every color, the catalog entry with the smallest CIEDE2000
difference. Entries are scanned in ascending id order, so among equally
close entries the smallest id wins. With --top it lists the N closest entries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := parseColors(args)
			if err != nil {
				return err
			}
			if random > 0 {
				if !cmd.Flags().Changed("seed") {
					seed = rand.Uint64()
				}
				rng := rand.New(rand.NewPCG(seed, seed))
				for range random {
					queries = append(queries, cie.Random(rng))
				}
			}
			if len(queries) == 0 {
				return errors.New("no colors given")
			}

			cat, err := a.catalog()
			if err != nil {
				return err
			}

			var results [][]palette.Result[int]
			if top > 1 {
				for _, q := range queries {
					rs, err := cat.Nearest(q, top)
					if err != nil {
						return err
					}
					results = append(results, rs)
				}
			} else {
				rs, err := cat.MatchAll(cmd.Context(), queries, 0)
				if err != nil {
					return err
				}
				for _, r := range rs {
					results = append(results, []palette.Result[int]{r})
				}
			}

			w := cmd.OutOrStdout()
			rows := make([]map[string]interface{}, len(queries))
			for i, q := range queries {
				rs := make([]map[string]interface{}, len(results[i]))
				for j, r := range results[i] {
					rs[j] = map[string]interface{}{
						"found":  r.Found,
						"id":     r.ID,
						"label":  r.Label,
						"delta":  r.Distance,
						"hex":    r.Color.Hex(),
						"swatch": swatch(w, r.Color),
					}
				}
				if len(rs) == 0 {
					rs = append(rs, map[string]interface{}{"found": false})
				}
				rows[i] = map[string]interface{}{
					"query":   q.Hex(),
					"color":   q.String(),
					"swatch":  swatch(w, q),
					"results": rs,
				}
			}

			return a.render(w, theme.Theme{"queries": rows}, matchTemplate)
		},
	}

	matchCmd.Flags().IntVar(&top, "top", 1, "list the N closest entries")
	matchCmd.Flags().IntVar(&random, "random", 0, "also match N random colors")
	matchCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for --random")

	return matchCmd
}
