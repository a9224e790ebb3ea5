package render

import (
	"fmt"
	"image/color"
	"math"

	"missile-defense/internal/component"
	"missile-defense/internal/config"
	"missile-defense/internal/entity"
	"missile-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Renderer рисует снимок симуляции. Он только читает снимок и ничего не меняет.
type Renderer struct {
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	background   *ebiten.Image // Предрендеренные небо и земля
}

func NewRenderer(screenWidth, screenHeight int) *Renderer {
	r := &Renderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     basicfont.Face7x13,
	}
	return r
}

// FontFace returns the HUD font so widgets can share it.
func (r *Renderer) FontFace() font.Face {
	return r.fontFace
}

// renderBackground рисует задник один раз
func (r *Renderer) renderBackground() {
	r.background = ebiten.NewImage(r.screenWidth, r.screenHeight)
	r.background.Fill(config.BackgroundColor)
	groundTop := float32(config.GroundY)
	vector.DrawFilledRect(r.background, 0, groundTop, float32(r.screenWidth), float32(r.screenHeight)-groundTop, config.GroundColor, false)
}

func (r *Renderer) Draw(screen *ebiten.Image, snap entity.Snapshot) {
	if r.background == nil {
		r.renderBackground()
	}
	screen.DrawImage(r.background, nil)

	r.drawCities(screen, snap.Cities)
	r.drawBatteries(screen, snap.Batteries)
	r.drawEnemies(screen, snap.Enemies)
	r.drawInterceptors(screen, snap.Interceptors)
	r.drawExplosions(screen, snap.Explosions)
	r.drawBolts(screen, snap.Bolts)
	r.drawParticles(screen, snap.Particles)
	r.drawHUD(screen, snap.Session)
}

func (r *Renderer) drawCities(screen *ebiten.Image, cities []component.City) {
	for _, c := range cities {
		x, y := float32(c.Pos.X), float32(c.Pos.Y)
		if !c.Active {
			vector.DrawFilledRect(screen, x-14, y-4, 28, 4, config.RuinColor, false)
			continue
		}
		vector.DrawFilledRect(screen, x-14, y-10, 8, 10, config.CityColor, false)
		vector.DrawFilledRect(screen, x-5, y-16, 10, 16, config.CityColor, false)
		vector.DrawFilledRect(screen, x+6, y-8, 8, 8, config.CityColor, false)
	}
}

func (r *Renderer) drawBatteries(screen *ebiten.Image, batteries []component.Battery) {
	for _, b := range batteries {
		x, y := float32(b.Pos.X), float32(b.Pos.Y)
		clr := config.BatteryColor
		if !b.Active {
			clr = DarkenColor(config.RuinColor)
		}
		vector.DrawFilledCircle(screen, x, y, 14, clr, true)
		vector.DrawFilledRect(screen, x-20, y, 40, 10, clr, false)
		if b.Active {
			label := fmt.Sprintf("%d", b.Ammo)
			text.Draw(screen, label, r.fontFace, int(x)-len(label)*7/2, int(y)+24, config.TextLightColor)
		}
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, enemies []component.Enemy) {
	for _, e := range enemies {
		vector.StrokeLine(screen, float32(e.Start.X), float32(e.Start.Y), float32(e.Pos.X), float32(e.Pos.Y), 1.5, config.EnemyTrailColor, true)
		vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), 3, config.EnemyColor, true)
	}
}

func (r *Renderer) drawInterceptors(screen *ebiten.Image, missiles []component.Interceptor) {
	for _, m := range missiles {
		clr := config.AmmoColors[m.Ammo]
		x, y := float32(m.Pos.X), float32(m.Pos.Y)
		if m.State == component.MissileHovering {
			vector.StrokeCircle(screen, x, y, 10, 2, clr, true)
			vector.DrawFilledCircle(screen, x, y, 4, clr, true)
			continue
		}
		vector.StrokeLine(screen, float32(m.Start.X), float32(m.Start.Y), x, y, 1, Fade(clr, 0.5), true)
		// Корпус ракеты по направлению полёта
		heading := m.Heading()
		tail := utils.PointOnCircle(m.Pos, heading+math.Pi, 8)
		vector.StrokeLine(screen, float32(tail.X), float32(tail.Y), x, y, 3, clr, true)
		vector.DrawFilledCircle(screen, x, y, 2, color.White, true)
		// Крестик на точке подрыва
		tx, ty := float32(m.Target.X), float32(m.Target.Y)
		vector.StrokeLine(screen, tx-5, ty-5, tx+5, ty+5, 1, clr, true)
		vector.StrokeLine(screen, tx-5, ty+5, tx+5, ty-5, 1, clr, true)
	}
}

func (r *Renderer) drawExplosions(screen *ebiten.Image, explosions []component.Explosion) {
	for _, x := range explosions {
		if x.Radius <= 0 {
			continue
		}
		base := config.ExplosionColor
		alpha := 0.8
		if x.Rare {
			base = config.RareExplosionTint
			alpha = 0.35
		}
		vector.DrawFilledCircle(screen, float32(x.Center.X), float32(x.Center.Y), float32(x.Radius), Fade(base, alpha*x.Life+0.2), true)
	}
}

func (r *Renderer) drawBolts(screen *ebiten.Image, bolts []component.Bolt) {
	for _, b := range bolts {
		clr := Fade(config.BoltColor, b.Life)
		for i := 1; i < len(b.Points); i++ {
			p0, p1 := b.Points[i-1], b.Points[i]
			vector.StrokeLine(screen, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), 2, clr, true)
		}
	}
}

func (r *Renderer) drawParticles(screen *ebiten.Image, particles []component.Particle) {
	for _, p := range particles {
		s := float32(p.Size)
		vector.DrawFilledRect(screen, float32(p.Pos.X)-s/2, float32(p.Pos.Y)-s/2, s, s, Fade(p.Color, p.Life), false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s component.Session) {
	hud := fmt.Sprintf("SCORE %d / %d   KILLS %d   SHOTS %d", s.Score, config.WinScore, s.Stats.TotalKills(), s.Stats.ShotsFired)
	text.Draw(screen, hud, r.fontFace, 16, 24, config.TextLightColor)
}

// DrawBanner выводит крупную надпись по центру экрана с затемнением.
func (r *Renderer) DrawBanner(screen *ebiten.Image, title, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenWidth), float32(r.screenHeight), color.NRGBA{0, 0, 0, 128}, false)
	cx, cy := r.screenWidth/2, r.screenHeight/2
	text.Draw(screen, title, r.fontFace, cx-len(title)*7/2, cy-10, config.TextLightColor)
	if subtitle != "" {
		text.Draw(screen, subtitle, r.fontFace, cx-len(subtitle)*7/2, cy+14, config.TextLightColor)
	}
}
