package app

import (
	"fmt"

	"parabola/curve"
	"parabola/editor"
	"parabola/hal"
	"parabola/internal/buildinfo"
)

// New builds the editor on h and returns the per-frame step for the host runner.
// Construction failures are reported by the first step call.
func New(h hal.HAL, cfg Config) func() error {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("parabola %s starting", buildinfo.String()))
	}

	t, err := editor.NewTask(h, cfg.taskConfig())
	if err != nil {
		return func() error { return fmt.Errorf("app: %w", err) }
	}
	return guardStep(h, t.Step)
}

// DemoScript returns pointer events that pick up the draggable point, lift it,
// swing it onto the right point's pixel column and back, and release it.
//
// The column maps back to an x a fraction of a pixel away from the right point, so
// the curve turns steep there but stays solvable; the script never produces the
// degenerate warning.
func DemoScript(width, height int) []hal.PointerEvent {
	view := editor.DefaultView
	start := editor.InitialPoints[editor.RoleDrag]
	right := editor.InitialPoints[editor.RoleRight]

	px := func(kind hal.PointerKind, x, y float64) hal.PointerEvent {
		sx, sy := editor.ScreenPoint(width, height, view, curve.Point{X: x, Y: y})
		return hal.PointerEvent{Kind: kind, X: sx, Y: sy}
	}

	script := []hal.PointerEvent{px(hal.PointerPress, start.X, start.Y)}
	const steps = 20
	for i := 1; i <= steps; i++ {
		f := float64(i) / steps
		script = append(script, px(hal.PointerMove, start.X, start.Y+f*(4.3-start.Y)))
	}
	script = append(script,
		px(hal.PointerMove, right.X, 4.3),
		px(hal.PointerMove, start.X, 4.3),
		px(hal.PointerRelease, start.X, 4.3),
	)
	return script
}
