package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	colorAuto = "auto"
	colorOn   = "on"
	colorOff  = "off"
)

type palette struct {
	title   func(format string, a ...interface{}) string
	path    func(format string, a ...interface{}) string
	issue   func(format string, a ...interface{}) string
	ok      func(format string, a ...interface{}) string
	changed func(format string, a ...interface{}) string
	faint   func(format string, a ...interface{}) string
}

func newPalette(mode string, out io.Writer) (*palette, error) {
	var enabled bool

	switch mode {
	case colorAuto, "":
		enabled = isTerminal(out)
	case colorOn:
		enabled = true
	case colorOff:
		enabled = false
	default:
		return nil, fmt.Errorf("%w: %q", errColorMode, mode)
	}

	sprintf := func(attrs ...color.Attribute) func(string, ...interface{}) string {
		c := color.New(attrs...)

		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c.SprintfFunc()
	}

	return &palette{
		title:   sprintf(color.Bold),
		path:    sprintf(color.FgCyan),
		issue:   sprintf(color.FgYellow),
		ok:      sprintf(color.FgGreen),
		changed: sprintf(color.FgGreen, color.Bold),
		faint:   sprintf(color.Faint),
	}, nil
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

var errColorMode = fmt.Errorf("invalid color mode, expected %s, %s or %s", colorAuto, colorOn, colorOff)
