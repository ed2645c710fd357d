//go:build !cgo

package hal

import "fmt"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Title  string
}

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1, or use -tui / -headless): %w", ErrNotImplemented)
}
