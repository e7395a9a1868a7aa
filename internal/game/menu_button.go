package game

import (
	"github.com/demondragonwren/heartecho/internal/game/assets/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuButton is a text label on the menu screen. Only buttons with an
// OnClick react to the mouse; the rest are placeholders.
type MenuButton struct {
	Label   string
	Bounds  rect
	OnClick func()
}

func NewMenuButton(label string, y int, onClick func()) *MenuButton {
	return &MenuButton{
		Label:   label,
		Bounds:  rect{x: menuX, y: y, w: menuBtnW, h: menuBtnH},
		OnClick: onClick,
	}
}

func (b *MenuButton) Clickable() bool { return b.OnClick != nil }

// Contains reports a hit only for clickable buttons.
func (b *MenuButton) Contains(x, y int) bool {
	return b.Clickable() && b.Bounds.contains(x, y)
}

func (b *MenuButton) Draw(screen *ebiten.Image, theme *Theme) {
	fonts.DrawTop(screen, b.Label, b.Bounds.x, b.Bounds.y, FontSize, theme.Text)
}
