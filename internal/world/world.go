package world

import (
	"fmt"

	"github.com/google/uuid"

	"horde-arena/internal/commons/logger_config"
	"horde-arena/internal/shared/input"
)

// NewWorld validates cfg and returns an idle world; call Start to play.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	w := &World{
		Cfg:     cfg,
		rngSeed: cfg.Seed,
	}
	w.ensureRNG()
	w.resetEntities()
	return w, nil
}

func (w *World) resetEntities() {
	w.Player = newPlayer(w.Cfg)
	w.Enemies.Reset()
	w.Projectiles = make([]Projectile, 0, 64)
	w.Orbs = make([]XPOrb, 0, 128)
	w.Effects = make([]Effect, 0, 32)
	w.Match = newMatchState(w.Cfg)
	w.Upgrade = UpgradeMenu{}
	w.Stats = Stats{}
	w.input = input.State{}
}

// Start begins a fresh match, discarding any match in progress.
// The rng keeps its stream so consecutive matches differ.
func (w *World) Start() {
	w.resetEntities()
	w.MatchID = uuid.New().String()

	if err := w.Match.fire(evStart); err != nil {
		logger_config.Errorf("[world] start: %v", err)
		return
	}
	logger_config.Logger.Info("match started",
		"match", w.MatchID,
		"seed", w.rngSeed,
		"duration", w.Cfg.MatchDuration,
	)
}

func (w *World) Enqueue(m Msg) {
	w.inbox = append(w.inbox, m)
}

func (w *World) Phase() Phase { return w.Match.Phase() }

// Tick runs one synchronous simulation step. Messages are always drained;
// the simulation itself only advances while the match is active.
func (w *World) Tick(dt float32) {
	for _, m := range w.inbox {
		switch msg := m.(type) {
		case MsgInput:
			w.input = msg.Input
		case MsgChooseUpgrade:
			if err := w.ChooseUpgrade(msg.Choice); err != nil {
				logger_config.Logger.Debug("choice ignored", "choice", msg.Choice, "err", err)
			}
		case MsgStart:
			w.Start()
		}
	}
	w.inbox = w.inbox[:0]

	if w.Match.Phase() != PhaseActive {
		return
	}
	if dt < 0 {
		dt = 0
	}

	w.Match.Elapsed += dt

	w.updateSpawning(dt)
	w.maybeSpawnBoss()

	w.movePlayer(dt, w.input)
	if w.moveEnemies(dt) {
		w.endMatch(evContact)
		return
	}

	w.updateAttack(dt)
	w.updateProjectiles(dt)
	w.updateXPOrbs(dt)
	w.updateEffects(dt)

	if w.Match.Elapsed >= w.Cfg.MatchDuration {
		w.endMatch(evTimeUp)
	}
}

func (w *World) endMatch(ev phaseEvent) {
	if err := w.Match.fire(ev); err != nil {
		logger_config.Errorf("[world] end match: %v", err)
		return
	}
	w.Upgrade = UpgradeMenu{}

	logger_config.Logger.Info("match ended",
		"match", w.MatchID,
		"outcome", w.Match.Phase().Outcome().String(),
		"elapsed", w.Match.Elapsed,
		"level", w.Match.Level,
		"kills", w.Stats.EnemiesKilled,
	)
}

// Remaining is the match time left in seconds, never negative.
func (w *World) Remaining() float32 {
	return maxf(0, w.Cfg.MatchDuration-w.Match.Elapsed)
}
