package world

import (
	"fmt"

	"horde-arena/internal/commons/logger_config"
)

type UpgradeKind int

const (
	UpDamage UpgradeKind = iota
	UpAttackSpeed
	UpMoveSpeed
	UpRange
	UpProjectileSpeed
	UpMultishot
	UpChainLightning
	UpIncendiary
)

const (
	minAttackCooldown  = 0.13
	maxLightningChance = 0.60
	maxFireChance      = 0.65
	maxExplosionRadius = 140
)

// UpgradeOption is what the UI shows for one choice.
type UpgradeOption struct {
	Kind  UpgradeKind `json:"kind"`
	Title string      `json:"title"`
	Desc  string      `json:"desc"`
}

type upgradeDef struct {
	UpgradeOption
	apply func(p *Player, cfg Config)
}

var upgradePool = []upgradeDef{
	{
		UpgradeOption: UpgradeOption{Kind: UpDamage, Title: "Sharpened Rounds", Desc: "Attack damage +1"},
		apply:         func(p *Player, _ Config) { p.Damage += 1 },
	},
	{
		UpgradeOption: UpgradeOption{Kind: UpAttackSpeed, Title: "Rapid Fire", Desc: "Attack interval -12%"},
		apply: func(p *Player, _ Config) {
			p.AttackCooldown = maxf(minAttackCooldown, p.AttackCooldown*0.88)
		},
	},
	{
		UpgradeOption: UpgradeOption{Kind: UpMoveSpeed, Title: "Light Boots", Desc: "Move speed +35"},
		apply:         func(p *Player, _ Config) { p.Speed += 35 },
	},
	{
		UpgradeOption: UpgradeOption{Kind: UpRange, Title: "Long Barrel", Desc: "Attack range +40"},
		apply:         func(p *Player, _ Config) { p.AttackRange += 40 },
	},
	{
		UpgradeOption: UpgradeOption{Kind: UpProjectileSpeed, Title: "Propellant", Desc: "Projectile speed +120"},
		apply:         func(p *Player, _ Config) { p.ProjectileSpeed += 120 },
	},
	{
		UpgradeOption: UpgradeOption{Kind: UpMultishot, Title: "Multishot", Desc: "One extra projectile per volley"},
		apply: func(p *Player, cfg Config) {
			p.ProjectileCount = min(cfg.MaxProjectileCount, p.ProjectileCount+1)
		},
	},
	{
		UpgradeOption: UpgradeOption{Kind: UpChainLightning, Title: "Chain Lightning", Desc: "Hits may call lightning: damage +1, one more bounce"},
		apply: func(p *Player, _ Config) {
			p.LightningChance = minf(maxLightningChance, p.LightningChance+0.12)
			p.LightningDamage += 1
			p.LightningChains += 1
		},
	},
	{
		UpgradeOption: UpgradeOption{Kind: UpIncendiary, Title: "Incendiary Rounds", Desc: "Hits may ignite; ignited enemies explode on death"},
		apply: func(p *Player, _ Config) {
			p.FireChance = minf(maxFireChance, p.FireChance+0.14)
			p.FireBonusDamage += 1
			p.ExplosionDamage += 1
			p.ExplosionRadius = minf(maxExplosionRadius, p.ExplosionRadius+8)
		},
	},
}

// UpgradeMenu tracks the offer on screen and the level-ups still owed a choice.
type UpgradeMenu struct {
	Options []upgradeDef
	Pending int
}

// OptionViews strips the apply funcs for display.
func (u UpgradeMenu) OptionViews() []UpgradeOption {
	out := make([]UpgradeOption, len(u.Options))
	for i, o := range u.Options {
		out[i] = o.UpgradeOption
	}
	return out
}

// sampleUpgrades draws k distinct entries uniformly with a partial
// Fisher-Yates shuffle over a copy of pool. Short pools return everything.
func sampleUpgrades(pool []upgradeDef, k int, intn func(int) int) []upgradeDef {
	picked := make([]upgradeDef, len(pool))
	copy(picked, pool)

	k = min(k, len(picked))
	for i := range k {
		j := i + intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:k]
}

func (w *World) openUpgradeMenuIfNeeded() {
	if w.Upgrade.Pending <= 0 || w.Match.Phase() != PhaseActive {
		return
	}

	w.Upgrade.Options = sampleUpgrades(upgradePool, w.Cfg.UpgradeOfferSize, w.randIntn)
	if err := w.Match.fire(evLevelUp); err != nil {
		logger_config.Warnf("[upgrade] %v", err)
	}
}

// ChooseUpgrade applies the chosen offer and resumes the match, or shows the
// next offer if more level-ups are queued.
func (w *World) ChooseUpgrade(choice int) error {
	if w.Match.Phase() != PhaseAwaitingChoice {
		return ErrNoChoicePending
	}
	if choice < 0 || choice >= len(w.Upgrade.Options) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrChoiceOutOfRange, choice, len(w.Upgrade.Options))
	}

	opt := w.Upgrade.Options[choice]
	opt.apply(&w.Player, w.Cfg)
	logger_config.Logger.Debug("upgrade chosen",
		"match", w.MatchID,
		"upgrade", opt.Title,
		"level", w.Match.Level,
	)

	w.Upgrade.Options = nil
	if w.Upgrade.Pending > 0 {
		w.Upgrade.Pending--
	}
	if err := w.Match.fire(evChoiceMade); err != nil {
		return err
	}

	// big pickups queue several level-ups; show the next one right away
	w.openUpgradeMenuIfNeeded()
	return nil
}
