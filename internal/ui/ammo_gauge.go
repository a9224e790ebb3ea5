package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AmmoGauge — столбик остатка боезапаса под батареей.
type AmmoGauge struct {
	Width, Height float32
	Fill          color.Color
	Empty         color.Color
}

func NewAmmoGauge(width, height float32, fill, empty color.Color) *AmmoGauge {
	return &AmmoGauge{Width: width, Height: height, Fill: fill, Empty: empty}
}

// Draw рисует шкалу с центром в (cx, top).
func (g *AmmoGauge) Draw(screen *ebiten.Image, cx, top float32, ammo, maxAmmo int) {
	x := cx - g.Width/2
	vector.DrawFilledRect(screen, x, top, g.Width, g.Height, g.Empty, false)
	if maxAmmo <= 0 || ammo <= 0 {
		return
	}
	frac := float32(ammo) / float32(maxAmmo)
	vector.DrawFilledRect(screen, x, top, g.Width*frac, g.Height, g.Fill, false)
}
