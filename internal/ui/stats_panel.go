package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	buttonWidth    = 150
	buttonHeight   = 40
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// Contains — попадает ли точка в кнопку.
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// StatsPanel выезжает снизу в конце сессии и показывает её статистику.
type StatsPanel struct {
	fontFace     font.Face
	screenWidth  int
	screenHeight int
	currentY     float64
	targetY      float64
	AgainButton  Button
}

func NewStatsPanel(face font.Face, screenWidth, screenHeight int) *StatsPanel {
	return &StatsPanel{
		fontFace:     face,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		currentY:     float64(screenHeight),
		targetY:      float64(screenHeight),
		AgainButton:  Button{Text: "PLAY AGAIN"},
	}
}

func (p *StatsPanel) Show() {
	p.targetY = float64(p.screenHeight - panelHeight)
}

func (p *StatsPanel) Hide() {
	p.targetY = float64(p.screenHeight)
}

// Visible — панель хоть немного видна на экране.
func (p *StatsPanel) Visible() bool {
	return p.currentY < float64(p.screenHeight)
}

// Update двигает панель к целевой позиции.
func (p *StatsPanel) Update() {
	diff := p.targetY - p.currentY
	switch {
	case diff == 0:
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
}

func (p *StatsPanel) rect() image.Rectangle {
	y := int(p.currentY)
	return image.Rect(panelMargin, y, p.screenWidth-panelMargin, y+panelHeight-panelMargin)
}

// StatLines — строки статистики сессии в порядке вывода.
func StatLines(s component.Session) []string {
	accuracy := 0
	if s.Stats.ShotsFired > 0 {
		accuracy = s.Stats.TotalKills() * 100 / s.Stats.ShotsFired
	}
	return []string{
		fmt.Sprintf("Score: %d / %d", s.Score, config.WinScore),
		fmt.Sprintf("Shots fired: %d  Kills per shot: %d%%", s.Stats.ShotsFired, accuracy),
		fmt.Sprintf("Kills: explosion %d, lightning %d, rare %d",
			s.Stats.Kills[component.KillExplosion],
			s.Stats.Kills[component.KillLightning],
			s.Stats.Kills[component.KillRare]),
		fmt.Sprintf("Impacts: %d  Cities lost: %d  Batteries lost: %d",
			s.Stats.Impacts, s.Stats.CitiesLost, s.Stats.BatteryLost),
	}
}

func (p *StatsPanel) Draw(screen *ebiten.Image, s component.Session) {
	if !p.Visible() {
		return
	}
	panelRect := p.rect()

	bgColor := color.RGBA{R: 20, G: 20, B: 30, A: 220}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	x, y := panelRect.Min.X+15, panelRect.Min.Y+15+lineHeight
	for _, line := range StatLines(s) {
		text.Draw(screen, line, p.fontFace, x, y, config.TextLightColor)
		y += lineHeight
	}

	p.drawAgainButton(screen, panelRect)
}

func (p *StatsPanel) drawAgainButton(screen *ebiten.Image, panelRect image.Rectangle) {
	p.AgainButton.Rect = image.Rect(
		panelRect.Max.X-buttonWidth-20,
		panelRect.Max.Y-buttonHeight-20,
		panelRect.Max.X-20,
		panelRect.Max.Y-20,
	)

	btnColor := color.RGBA{R: 60, G: 120, B: 60, A: 255}
	vector.DrawFilledRect(screen, float32(p.AgainButton.Rect.Min.X), float32(p.AgainButton.Rect.Min.Y), buttonWidth, buttonHeight, btnColor, true)

	textBounds := text.BoundString(p.fontFace, p.AgainButton.Text)
	textX := p.AgainButton.Rect.Min.X + (buttonWidth-textBounds.Dx())/2
	textY := p.AgainButton.Rect.Min.Y + (buttonHeight-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, p.AgainButton.Text, p.fontFace, textX, textY, color.White)
}
