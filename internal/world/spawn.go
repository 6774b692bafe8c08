package world

import "horde-arena/internal/commons/logger_config"

// ============================================================================
// SPAWNING & DIFFICULTY
// ============================================================================

// SpawnInterval shrinks linearly with elapsed time down to SpawnMinEvery.
func (c Config) SpawnInterval(elapsed float32) float32 {
	return maxf(c.SpawnMinEvery, c.SpawnBaseEvery-c.SpawnEveryDecay*elapsed)
}

// maybeSpawnRegular feeds dt into the spawn accumulator and returns how many
// regular enemies are due. Large dt can yield several spawns in one tick.
func maybeSpawnRegular(cfg Config, elapsed, dt, acc float32) (float32, int) {
	every := cfg.SpawnInterval(elapsed)
	acc += dt
	n := 0
	for acc >= every {
		acc -= every
		n++
	}
	return acc, n
}

// dueBossCheckpoints returns checkpoint indices reached but not yet triggered.
func dueBossCheckpoints(cfg Config, elapsed float32, triggered map[int]struct{}) []int {
	var due []int
	for i, at := range cfg.BossCheckpoints {
		if elapsed < at {
			continue
		}
		if _, done := triggered[i]; done {
			continue
		}
		due = append(due, i)
	}
	return due
}

func (w *World) updateSpawning(dt float32) {
	m := &w.Match

	acc, n := maybeSpawnRegular(w.Cfg, m.Elapsed, dt, m.SpawnAcc)
	m.SpawnAcc = acc
	for range n {
		w.spawnEnemy(false)
	}
}

func (w *World) maybeSpawnBoss() {
	m := &w.Match
	for _, i := range dueBossCheckpoints(w.Cfg, m.Elapsed, m.bossTriggered) {
		m.bossTriggered[i] = struct{}{}
		w.spawnEnemy(true)
		logger_config.Logger.Info("boss spawned",
			"match", w.MatchID,
			"checkpoint", w.Cfg.BossCheckpoints[i],
			"elapsed", m.Elapsed,
		)
	}
}

// enemyStats derives a spawn's stats from match progress.
func (c Config) enemyStats(elapsed float32, boss bool) EnemySpec {
	progress := clamp(elapsed/c.MatchDuration, 0, 1)
	strength := 1 + progress*c.EnemyStrengthGrowth

	if boss {
		return EnemySpec{
			R:       c.BossRadius,
			HP:      floorf((c.BossBaseHP + progress*c.BossHPGrowth) * strength),
			Speed:   c.BossBaseSpeed + progress*c.BossSpeedGrowth,
			XPValue: c.BossXP,
			Boss:    true,
		}
	}
	return EnemySpec{
		R:       c.EnemyBaseRadius + floorf(progress*c.EnemyRadiusGrowth),
		HP:      maxf(1, floorf((c.EnemyBaseHP+progress*c.EnemyHPGrowth)*strength)),
		Speed:   c.EnemyBaseSpeed + progress*c.EnemySpeedGrowth,
		XPValue: c.EnemyBaseXP + int(floorf(progress*c.EnemyXPGrowth)),
	}
}

func (w *World) spawnEnemy(boss bool) {
	spec := w.Cfg.enemyStats(w.Match.Elapsed, boss)
	spec.Pos = w.edgeSpawnPosition()

	e, err := NewEnemy(spec)
	if err != nil {
		logger_config.Warnf("[spawn] rejected enemy: %v", err)
		return
	}
	w.Enemies.Insert(e)

	w.Stats.EnemiesSpawned++
	if boss {
		w.Stats.BossesSpawned++
	}
}

// edgeSpawnPosition picks one of the four edges with equal probability and a
// uniform point along it, just outside the visible arena.
func (w *World) edgeSpawnPosition() Vec2 {
	W, H := w.Cfg.ArenaWidth, w.Cfg.ArenaHeight
	off := w.Cfg.SpawnEdgeOffset

	switch w.randIntn(4) {
	case 0: // top
		return Vec2{X: w.randRange(0, W), Y: -off}
	case 1: // right
		return Vec2{X: W + off, Y: w.randRange(0, H)}
	case 2: // bottom
		return Vec2{X: w.randRange(0, W), Y: H + off}
	default: // left
		return Vec2{X: -off, Y: w.randRange(0, H)}
	}
}
