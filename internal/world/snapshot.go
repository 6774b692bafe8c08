package world

// Snapshot is a read-only copy of everything the display layers need.
// It shares no memory with the world, so it stays valid across ticks.
type Snapshot struct {
	MatchID string  `json:"match_id"`
	Phase   Phase   `json:"phase"`
	Outcome Outcome `json:"outcome"`

	W float32 `json:"w"`
	H float32 `json:"h"`

	Elapsed   float32 `json:"elapsed"`
	Remaining float32 `json:"remaining"`

	Level    int `json:"level"`
	XP       int `json:"xp"`
	XPToNext int `json:"xp_to_next"`

	Player      PlayerView       `json:"player"`
	Enemies     []EnemyView      `json:"enemies"`
	Projectiles []ProjectileView `json:"projectiles"`
	Orbs        []OrbView        `json:"orbs"`
	Effects     []Effect         `json:"effects"`

	Offer          []UpgradeOption `json:"offer"`
	PendingChoices int             `json:"pending_choices"`

	Stats Stats `json:"stats"`
}

type PlayerView struct {
	Pos         Vec2    `json:"pos"`
	R           float32 `json:"r"`
	AttackRange float32 `json:"attack_range"`
}

type EnemyView struct {
	Pos     Vec2    `json:"pos"`
	R       float32 `json:"r"`
	Boss    bool    `json:"boss"`
	Ignited bool    `json:"ignited"`
	Health  float32 `json:"health"` // hp / max hp in [0, 1]; drawn for bosses only
}

type ProjectileView struct {
	Pos Vec2    `json:"pos"`
	R   float32 `json:"r"`
}

type OrbView struct {
	Pos Vec2    `json:"pos"`
	R   float32 `json:"r"`
}

func (w *World) Snapshot() Snapshot {
	enemies := make([]EnemyView, w.Enemies.Len())
	for i := range enemies {
		e := w.Enemies.At(i)
		health := float32(0)
		if e.MaxHP > 0 {
			health = clamp(e.HP/e.MaxHP, 0, 1)
		}
		enemies[i] = EnemyView{
			Pos:     e.Pos,
			R:       e.R,
			Boss:    e.Boss,
			Ignited: e.Ignited,
			Health:  health,
		}
	}

	projectiles := make([]ProjectileView, len(w.Projectiles))
	for i, p := range w.Projectiles {
		projectiles[i] = ProjectileView{Pos: p.Pos, R: p.R}
	}

	orbs := make([]OrbView, len(w.Orbs))
	for i, o := range w.Orbs {
		orbs[i] = OrbView{Pos: o.Pos, R: o.R}
	}

	effects := make([]Effect, len(w.Effects))
	copy(effects, w.Effects)

	phase := w.Match.Phase()
	return Snapshot{
		MatchID: w.MatchID,
		Phase:   phase,
		Outcome: phase.Outcome(),

		W: w.Cfg.ArenaWidth,
		H: w.Cfg.ArenaHeight,

		Elapsed:   w.Match.Elapsed,
		Remaining: w.Remaining(),

		Level:    w.Match.Level,
		XP:       w.Match.XP,
		XPToNext: w.Match.XPToNext,

		Player: PlayerView{
			Pos:         w.Player.Pos,
			R:           w.Player.R,
			AttackRange: w.Player.AttackRange,
		},
		Enemies:     enemies,
		Projectiles: projectiles,
		Orbs:        orbs,
		Effects:     effects,

		Offer:          w.Upgrade.OptionViews(),
		PendingChoices: w.Upgrade.Pending,

		Stats: w.Stats,
	}
}
