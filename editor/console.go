package editor

import (
	"fmt"
	"strings"

	"tinygo.org/x/tinyterm"
)

// console is the scrolling event log under the plot. tinyterm draws straight into the
// console rectangle, which the scene renderer never touches.
type console struct {
	d *fbDisplay
	t *tinyterm.Terminal

	started bool
}

func newConsole(d *fbDisplay, fm fontMetrics) *console {
	c := &console{d: d}
	c.t = tinyterm.NewTerminal(d)
	c.t.Configure(&tinyterm.Config{
		Font:              uiFont,
		FontHeight:        fm.height,
		FontOffset:        fm.offset,
		UseSoftwareScroll: true,
	})
	w, h := d.Size()
	_ = d.FillRectangle(0, 0, w, h, colorBG)
	return c
}

// Printf appends one line to the console.
func (c *console) Printf(format string, args ...any) {
	if c == nil || c.t == nil {
		return
	}
	line := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if c.started {
		_, _ = c.t.Write([]byte("\r\n"))
	}
	c.started = true
	_, _ = c.t.Write([]byte(line))
}
