package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"horde-arena/internal/commons/logger_config"
	"horde-arena/internal/telemetry"
	"horde-arena/internal/world"
)

const (
	frameEvery  = 16 * time.Millisecond
	latchWindow = 180 * time.Millisecond
)

// App owns the world and drives it from the terminal. Only the Run
// goroutine touches the world; the event pump just forwards events.
type App struct {
	screen   tcell.Screen
	w        *world.World
	clock    *world.Clock
	latch    *Latch
	renderer *Renderer
	recorder *telemetry.Recorder
}

// NewApp takes an initialized screen. recorder may be nil.
func NewApp(screen tcell.Screen, cfg world.Config, recorder *telemetry.Recorder) (*App, error) {
	w, err := world.NewWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return &App{
		screen:   screen,
		w:        w,
		clock:    world.NewClock(cfg.MaxStepDuration()),
		latch:    NewLatch(latchWindow),
		renderer: NewRenderer(screen),
		recorder: recorder,
	}, nil
}

// Run blocks until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil { // screen finalized
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev, time.Now()) {
				logger_config.Logger.Info("tui quit", "match", a.w.MatchID)
				return nil
			}

		case now := <-ticker.C:
			a.step(now)
		}
	}
}

func (a *App) step(now time.Time) {
	dt := a.clock.Step(now)
	a.w.Enqueue(world.MsgInput{Input: a.latch.State(now)})
	a.w.Tick(dt)

	snap := a.w.Snapshot()
	if a.recorder != nil {
		a.recorder.Observe(snap, dt)
	}
	a.renderer.Draw(snap)
}

// handleEvent returns false when the app should exit.
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, choice := mapKey(ev.Key(), ev.Rune())
		return a.apply(act, choice, now)

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) apply(act Action, choice int, now time.Time) bool {
	phase := a.w.Phase()
	switch act {
	case ActQuit:
		return false
	case ActStart:
		a.latch.Clear()
		a.w.Enqueue(world.MsgStart{})
	case ActChoose:
		if phase == world.PhaseAwaitingChoice {
			a.latch.Clear()
			a.w.Enqueue(world.MsgChooseUpgrade{Choice: choice})
		}
	case ActUp, ActDown, ActLeft, ActRight:
		a.latch.Press(act, now)
	}
	return true
}
