package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"horde-arena/internal/commons/logger_config"
	"horde-arena/internal/telemetry"
	"horde-arena/internal/world"
)

type Game struct {
	w     *world.World
	clock *world.Clock

	// last published view, drawn between updates
	snap world.Snapshot

	stick Joystick

	// telemetry sink
	telemetry *telemetry.Sink
	recorder  *telemetry.Recorder
}

func New(cfg world.Config) (*Game, error) {
	w, err := world.NewWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		w:         w,
		clock:     world.NewClock(cfg.MaxStepDuration()),
		telemetry: telemetry.NewSink(),
	}
	g.recorder = telemetry.NewRecorder(g.telemetry)
	g.snap = w.Snapshot()
	return g, nil
}

func (g *Game) Update() error {
	now := time.Now()
	dt := g.clock.Step(now)

	phase := g.w.Phase()
	if ReadStart(phase) {
		g.w.Enqueue(world.MsgStart{})
	}
	if phase == world.PhaseAwaitingChoice {
		if choice, ok := ReadChoice(len(g.snap.Offer)); ok {
			g.w.Enqueue(world.MsgChooseUpgrade{Choice: choice})
		}
	}

	g.w.Enqueue(world.MsgInput{Input: ReadInput(&g.stick)})
	g.w.Tick(dt)

	g.snap = g.w.Snapshot()
	if g.recorder != nil {
		g.recorder.Observe(g.snap, dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, g.snap, g.stick)
}

// Layout pins the logical screen to the arena; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.snap.W), int(g.snap.H)
}

func (g *Game) Close() {
	if g.telemetry != nil {
		g.telemetry.Close()
		g.telemetry = nil
		g.recorder = nil
	}
	logger_config.Logger.Debug("game closed", "match", g.snap.MatchID)
}
