// Package editor implements the interactive parabola editor: three role-indexed
// points, the drag state machine that moves them, and the framebuffer plotter that
// draws the interpolating curve.
//
// The state machine and Editor have no display dependency; Task binds them to a HAL
// display and input devices.
package editor
