/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

// NewRootCmd returns the colormatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "colormatch",
		Short: "Names colors by their perceptual distance to a catalog",
		Long: `colormatch converts colors to CIE L*a*b* and compares them with the
CIEDE2000 color difference. It names arbitrary colors after the nearest entry
of a catalog, checks catalogs for entries that are hard to tell apart and
extracts named dominant colors from images.

Colors are written as #rgb, #rrggbb or r,g,b[,a] with channels in [0,1].

Every setting can also be given as a COLORMATCH_ environment variable
(COLORMATCH_WEIGHTS_KL, COLORMATCH_CATALOG_FILE, ...), except the inline
catalog list, which is only read from the config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return a.initConfig()
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.colormatch.yaml)")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	f.Bool("lenient", false, "clamp out-of-range channels instead of rejecting them")
	f.String("converter", "standard", "color converter: standard, chromath or chromath-d50")
	f.String("catalog", "", "YAML catalog file (default is the built-in system catalog)")
	f.String("template", "", "pongo2 template used to render output")
	f.Float64("kl", 1, "CIEDE2000 lightness weight kL")
	f.Float64("kc", 1, "CIEDE2000 chroma weight kC")
	f.Float64("kh", 1, "CIEDE2000 hue weight kH")

	for key, flag := range map[string]string{
		"lenient":      "lenient",
		"converter":    "converter",
		"catalog_file": "catalog",
		"template":     "template",
		"weights.kl":   "kl",
		"weights.kc":   "kc",
		"weights.kh":   "kh",
	} {
		if err := a.v.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind %s to --%s: %v", key, flag, err))
		}
	}

	rootCmd.AddCommand(
		newMatchCmd(a),
		newDiffCmd(a),
		newLabCmd(a),
		newCheckCmd(a),
		newExtractCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".colormatch")
	}

	a.v.SetEnvPrefix("colormatch")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	slog.Debug("using config file", "path", a.v.ConfigFileUsed())
	return nil
}
