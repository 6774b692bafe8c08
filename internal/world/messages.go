package world

import "horde-arena/internal/shared/input"

type Msg interface{ isMsg() }

// MsgInput replaces the movement request used by following ticks.
type MsgInput struct{ Input input.State }

func (MsgInput) isMsg() {}

type MsgChooseUpgrade struct {
	Choice int // index into the current offer
}

func (MsgChooseUpgrade) isMsg() {}

// MsgStart starts a match, or resets the current one.
type MsgStart struct{}

func (MsgStart) isMsg() {}
