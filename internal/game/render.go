package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"horde-arena/internal/shared/hud"
	"horde-arena/internal/world"
)

const gridStep = 40

var (
	clrBackground = color.RGBA{15, 17, 26, 255}
	clrGrid       = color.RGBA{255, 255, 255, 15}
	clrOrb        = color.RGBA{0x53, 0xff, 0xd0, 255}
	clrProjectile = color.RGBA{0xff, 0xe0, 0x7e, 255}
	clrEnemy      = color.RGBA{0xff, 0x8f, 0x7e, 255}
	clrIgnited    = color.RGBA{0xff, 0x9d, 0x4d, 255}
	clrBoss       = color.RGBA{0xff, 0x4d, 0x6d, 255}
	clrBarBack    = color.RGBA{0, 0, 0, 115}
	clrBarFill    = color.RGBA{0x66, 0xff, 0x85, 255}
	clrLightning  = color.RGBA{120, 190, 255, 242}
	clrExplosion  = color.RGBA{255, 130, 40, 56}
	clrBurn       = color.RGBA{255, 95, 45, 204}
	clrPlayer     = color.RGBA{0x7d, 0xb4, 0xff, 255}
	clrRangeRing  = color.RGBA{125, 180, 255, 31}
	clrOverlay    = color.RGBA{0, 0, 0, 180}
	clrStick      = color.RGBA{255, 255, 255, 60}
)

func drawSnapshot(screen *ebiten.Image, s world.Snapshot, stick Joystick) {
	screen.Fill(clrBackground)
	drawGrid(screen, s.W, s.H)

	for _, o := range s.Orbs {
		vector.DrawFilledCircle(screen, o.Pos.X, o.Pos.Y, o.R, clrOrb, true)
	}
	for _, p := range s.Projectiles {
		vector.DrawFilledCircle(screen, p.Pos.X, p.Pos.Y, p.R, clrProjectile, true)
	}
	for _, e := range s.Enemies {
		drawEnemy(screen, e)
	}
	for _, ef := range s.Effects {
		drawEffect(screen, ef)
	}

	p := s.Player
	vector.DrawFilledCircle(screen, p.Pos.X, p.Pos.Y, p.R, clrPlayer, true)
	vector.StrokeCircle(screen, p.Pos.X, p.Pos.Y, p.AttackRange, 1, clrRangeRing, true)

	if stick.Active {
		vector.StrokeCircle(screen, stick.OriginX, stick.OriginY, joystickReach, 2, clrStick, true)
		vector.DrawFilledCircle(screen,
			stick.OriginX+stick.X*joystickReach,
			stick.OriginY+stick.Y*joystickReach,
			10, clrStick, true)
	}

	drawHUD(screen, s)
	drawOverlay(screen, s)
}

func drawGrid(screen *ebiten.Image, w, h float32) {
	for x := float32(0); x < w; x += gridStep {
		vector.StrokeLine(screen, x, 0, x, h, 1, clrGrid, false)
	}
	for y := float32(0); y < h; y += gridStep {
		vector.StrokeLine(screen, 0, y, w, y, 1, clrGrid, false)
	}
}

func drawEnemy(screen *ebiten.Image, e world.EnemyView) {
	clr := clrEnemy
	switch {
	case e.Boss:
		clr = clrBoss
	case e.Ignited:
		clr = clrIgnited
	}
	vector.DrawFilledCircle(screen, e.Pos.X, e.Pos.Y, e.R, clr, true)

	if !e.Boss {
		return
	}
	// health bar above the boss
	const barW, barH = 50, 6
	x := e.Pos.X - barW/2
	y := e.Pos.Y - e.R - 12
	vector.DrawFilledRect(screen, x, y, barW, barH, clrBarBack, false)
	vector.DrawFilledRect(screen, x, y, barW*e.Health, barH, clrBarFill, false)
}

func drawEffect(screen *ebiten.Image, ef world.Effect) {
	switch ef.Kind {
	case world.EffectLightning:
		vector.StrokeLine(screen, ef.Pos.X, ef.Pos.Y, ef.To.X, ef.To.Y, 2, clrLightning, true)
	case world.EffectExplosion:
		vector.DrawFilledCircle(screen, ef.Pos.X, ef.Pos.Y, ef.Radius, clrExplosion, true)
	case world.EffectBurn:
		vector.DrawFilledCircle(screen, ef.Pos.X, ef.Pos.Y, 8, clrBurn, true)
	}
}

func drawHUD(screen *ebiten.Image, s world.Snapshot) {
	text.Draw(screen, hud.StatusLine(s), basicfont.Face7x13, 10, 20, color.White)
}

func drawOverlay(screen *ebiten.Image, s world.Snapshot) {
	hint := "Press Enter to start."
	if s.Phase.Ended() {
		hint = "Press Enter or R to play again."
	}
	lines := hud.OverlayLines(s, hint)
	if lines == nil {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), clrOverlay, false)

	x := sw/2 - 180
	y := sh/2 - len(lines)*9
	for _, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, x, y, color.White)
		y += 18
	}

	// match id for bug reports
	if s.MatchID != "" {
		ebitenutil.DebugPrintAt(screen, s.MatchID, 8, sh-20)
	}
}
