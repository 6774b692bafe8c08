package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"horde-arena/internal/shared/hud"
	"horde-arena/internal/world"
)

var (
	styleBase      = tcell.StyleDefault
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x7d, 0xb4, 0xff)).Bold(true)
	styleEnemy     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0x8f, 0x7e))
	styleIgnited   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0x9d, 0x4d))
	styleBoss      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0x4d, 0x6d)).Bold(true)
	styleOrb       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x53, 0xff, 0xd0))
	styleShot      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xe0, 0x7e))
	styleLightning = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 190, 255))
	styleBlast     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 130, 40))
	styleModal     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

const (
	glyphPlayer    = '@'
	glyphEnemy     = 'o'
	glyphIgnited   = '*'
	glyphBoss      = 'B'
	glyphOrb       = '.'
	glyphShot      = '+'
	glyphLightning = '~'
	glyphBlast     = '#'
)

// Renderer draws snapshots onto a tcell screen. Row 0 is the status line;
// the arena is scaled into the remaining rows.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(s tcell.Screen) *Renderer {
	s.SetStyle(styleBase)
	return &Renderer{screen: s}
}

// grid maps arena coordinates onto terminal cells.
type grid struct {
	cols, rows int
	sx, sy     float32
}

func newGrid(arenaW, arenaH float32, cols, rows int) grid {
	g := grid{cols: cols, rows: rows - 1}
	if g.cols < 1 || g.rows < 1 || arenaW <= 0 || arenaH <= 0 {
		return grid{}
	}
	g.sx = float32(g.cols) / arenaW
	g.sy = float32(g.rows) / arenaH
	return g
}

// cell returns the screen cell for p, or false when p is off the arena.
func (g grid) cell(p world.Vec2) (x, y int, ok bool) {
	if g.cols == 0 {
		return 0, 0, false
	}
	x = int(p.X * g.sx)
	y = int(p.Y * g.sy)
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return 0, 0, false
	}
	return x, y + 1, true
}

func (r *Renderer) Draw(s world.Snapshot) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	g := newGrid(s.W, s.H, cols, rows)

	put := func(p world.Vec2, ch rune, st tcell.Style) {
		if x, y, ok := g.cell(p); ok {
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}

	for _, ef := range s.Effects {
		switch ef.Kind {
		case world.EffectLightning:
			r.line(g, ef.Pos, ef.To, glyphLightning, styleLightning)
		case world.EffectExplosion, world.EffectBurn:
			put(ef.Pos, glyphBlast, styleBlast)
		}
	}
	for _, o := range s.Orbs {
		put(o.Pos, glyphOrb, styleOrb)
	}
	for _, p := range s.Projectiles {
		put(p.Pos, glyphShot, styleShot)
	}
	for _, e := range s.Enemies {
		switch {
		case e.Boss:
			put(e.Pos, glyphBoss, styleBoss)
		case e.Ignited:
			put(e.Pos, glyphIgnited, styleIgnited)
		default:
			put(e.Pos, glyphEnemy, styleEnemy)
		}
	}
	put(s.Player.Pos, glyphPlayer, stylePlayer)

	r.text(0, 0, padRight(hud.StatusLine(s), cols), styleStatus)
	r.modal(s, cols, rows)

	r.screen.Show()
}

// line plots a segment by sampling, enough for short lightning hops.
func (r *Renderer) line(g grid, a, b world.Vec2, ch rune, st tcell.Style) {
	const steps = 12
	d := b.Sub(a)
	for i := range steps + 1 {
		p := a.Add(d.Mul(float32(i) / steps))
		if x, y, ok := g.cell(p); ok {
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (r *Renderer) modal(s world.Snapshot, cols, rows int) {
	hint := "Press Enter to start, q to quit."
	if s.Phase.Ended() {
		hint = "Press Enter or r to play again, q to quit."
	}
	lines := hud.OverlayLines(s, hint)
	if lines == nil {
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	x0 := max(0, (cols-width)/2-2)
	y0 := max(1, (rows-len(lines))/2)
	for i, l := range lines {
		r.text(x0, y0+i, "  "+padRight(l, width)+"  ", styleModal)
	}
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
}

func padRight(s string, n int) string {
	if gap := n - len([]rune(s)); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
