//go:build !android

package game

import "github.com/hajimehoshi/ebiten/v2"

func init() {
	ebiten.SetWindowSize(ScreenW, ScreenH)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}
