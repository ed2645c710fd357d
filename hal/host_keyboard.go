//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (k *hostKeyboard) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		k.emit(KeyEvent{Code: KeyEscape, Press: false})
	}
}

// poll reads the cursor in layout (framebuffer) pixels. Ebiten keeps reporting the
// last position once the cursor leaves the window, which still lies outside the plot
// area when the exit was through the margins.
func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	p.sample(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}
