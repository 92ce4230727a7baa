package cmd

import (
	"fmt"
	"io"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colormatch/cie"
	"github.com/mmuldo/colormatch/theme"
	"golang.org/x/term"
)

// render writes ctx through the configured template, or through def when
// none is configured.
func (a *app) render(w io.Writer, ctx theme.Theme, def string) error {
	var (
		o string
		e error
	)
	if path := a.v.GetString("template"); path != "" {
		if path, e = homedir.Expand(path); e != nil {
			return e
		}
		o, e = theme.RenderFile(ctx, path)
	} else {
		o, e = theme.Render(ctx, def)
	}
	if e != nil {
		return e
	}

	_, e = io.WriteString(w, o)
	return e
}

// swatch returns a two-cell block of c when w is a terminal.
func swatch(w io.Writer, c cie.Color) string {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ""
	}
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m ", r, g, b)
}
