package world

import "horde-arena/internal/commons/logger_config"

// ============================================================================
// XP & LEVELING SYSTEM
// ============================================================================

func (w *World) updateXPOrbs(dt float32) {
	p := w.Player.Pos
	cfg := w.Cfg

	for i := 0; i < len(w.Orbs); {
		o := &w.Orbs[i]
		d := dist(p, o.Pos)

		// magnet: faster the closer it gets
		if d < cfg.MagnetRadius {
			speed := cfg.MagnetBaseSpeed + (cfg.MagnetRadius-minf(cfg.MagnetRadius, d))*cfg.MagnetPull
			o.Pos = o.Pos.Add(p.Sub(o.Pos).Norm().Mul(speed * dt))
		}

		if d <= w.Player.R+o.R+cfg.PickupPadding {
			value := o.Value
			w.removeOrbAt(i)
			w.gainXP(value)
			continue
		}
		i++
	}
}

// gainXP consumes every threshold crossed. Each crossing owes one upgrade
// choice; they are presented one after another.
func (w *World) gainXP(v int) {
	m := &w.Match
	m.XP += v
	w.Stats.XPCollected += v

	for m.XP >= m.XPToNext {
		m.XP -= m.XPToNext
		m.Level++
		m.XPToNext = w.Cfg.NextThreshold(m.XPToNext)

		w.Upgrade.Pending++
		w.Stats.LevelUps++

		logger_config.Logger.Info("level up",
			"match", w.MatchID,
			"level", m.Level,
			"next", m.XPToNext,
			"elapsed", m.Elapsed,
		)
	}

	w.openUpgradeMenuIfNeeded()
}
