package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"horde-arena/internal/shared/input"
)

type Action uint8

const (
	ActNone Action = iota
	ActUp
	ActDown
	ActLeft
	ActRight
	ActStart
	ActChoose
	ActQuit
)

// mapKey translates a key press; choice is the zero-based offer index for
// ActChoose.
func mapKey(k tcell.Key, r rune) (act Action, choice int) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActQuit, 0
	case tcell.KeyEnter:
		return ActStart, 0
	case tcell.KeyUp:
		return ActUp, 0
	case tcell.KeyDown:
		return ActDown, 0
	case tcell.KeyLeft:
		return ActLeft, 0
	case tcell.KeyRight:
		return ActRight, 0
	case tcell.KeyRune:
	default:
		return ActNone, 0
	}

	switch r {
	case 'w', 'W':
		return ActUp, 0
	case 's', 'S':
		return ActDown, 0
	case 'a', 'A':
		return ActLeft, 0
	case 'd', 'D':
		return ActRight, 0
	case 'r', 'R':
		return ActStart, 0
	case 'q', 'Q':
		return ActQuit, 0
	}
	if r >= '1' && r <= '9' {
		return ActChoose, int(r - '1')
	}
	return ActNone, 0
}

// Latch holds a direction for a short window after its key was seen.
// Terminals report key repeats but never releases, so a held key stays
// latched as long as repeats keep arriving.
type Latch struct {
	Window time.Duration

	up, down, left, right time.Time
}

func NewLatch(window time.Duration) *Latch {
	return &Latch{Window: window}
}

func (l *Latch) Press(a Action, now time.Time) {
	until := now.Add(l.Window)
	switch a {
	case ActUp:
		l.up = until
		l.down = time.Time{}
	case ActDown:
		l.down = until
		l.up = time.Time{}
	case ActLeft:
		l.left = until
		l.right = time.Time{}
	case ActRight:
		l.right = until
		l.left = time.Time{}
	}
}

func (l *Latch) State(now time.Time) input.State {
	return input.State{
		Up:    now.Before(l.up),
		Down:  now.Before(l.down),
		Left:  now.Before(l.left),
		Right: now.Before(l.right),
	}
}

func (l *Latch) Clear() {
	*l = Latch{Window: l.Window}
}
