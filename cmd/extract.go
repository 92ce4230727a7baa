package cmd

import (
	"io"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colormatch/cie"
	cimage "github.com/mmuldo/colormatch/image"
	"github.com/mmuldo/colormatch/theme"
	"github.com/spf13/cobra"
)

const extractTemplate = `{% for c in colors %}{{ c.swatch }}{{ c.role }} = {{ c.hex }}  {{ c.name }} (ΔE00 {{ c.delta|floatformat:2 }}, {{ c.count }} px)
{% endfor %}`

func newExtractCmd(a *app) *cobra.Command {
	var (
		num    int
		output string
	)

	extractCmd := &cobra.Command{
		Use:   "extract IMAGE",
		Short: "Extracts the dominant colors of an image and names them",
		Long: `Extract reduces an image to at most N colors, assigns them theme roles
(darker half first, each half by prevalence) and names every color after its
nearest catalog entry. The result is rendered through --template, which sees
color0..colorN, colorK_name, colorK_delta, background, foreground and the
list colors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, e := cimage.Load(args[0])
			if e != nil {
				return e
			}

			cat, e := a.catalog()
			if e != nil {
				return e
			}

			cvs, e := theme.GetColors(img, num, cat)
			if e != nil {
				return e
			}
			slog.Debug("extracted colors", "image", args[0], "requested", num, "found", len(cvs))

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				path, e := homedir.Expand(output)
				if e != nil {
					return e
				}
				f, e := os.Create(path)
				if e != nil {
					return e
				}
				defer f.Close()
				w = f
			}

			t := theme.Create(theme.Delegate(cvs), a.v.GetStringMap("theme"))
			for _, c := range t["colors"].([]map[string]interface{}) {
				c["swatch"] = swatch(w, c["color"].(cie.Color))
			}

			return a.render(w, t, extractTemplate)
		},
	}

	extractCmd.Flags().IntVarP(&num, "num", "n", 8, "number of colors to extract")
	extractCmd.Flags().StringVarP(&output, "output", "o", "", "write the rendered theme to this file")

	return extractCmd
}
