package world

import (
	"fmt"
	"math/rand"

	"horde-arena/internal/shared/input"
)

type XPOrb struct {
	Pos   Vec2
	R     float32
	Value int
}

type Projectile struct {
	Pos    Vec2
	Vel    Vec2
	R      float32
	Damage float32
	Life   float32 // seconds left
}

type World struct {
	Cfg Config

	inbox []Msg
	input input.State

	MatchID     string
	Player      Player
	Enemies     EnemyStore
	Projectiles []Projectile
	Orbs        []XPOrb
	Effects     []Effect

	Match   MatchState
	Upgrade UpgradeMenu
	Stats   Stats

	rng      *rand.Rand
	rngSeed  int64
	rngCalls uint64
}

type Player struct {
	Pos   Vec2
	Speed float32
	R     float32

	// auto attack
	Damage          float32
	AttackRange     float32
	AttackCooldown  float32 // seconds
	ProjectileSpeed float32
	ProjectileCount int

	// on-hit effects
	LightningChance float32
	LightningDamage float32
	LightningChains int
	FireChance      float32
	FireBonusDamage float32
	ExplosionRadius float32
	ExplosionDamage float32
}

type Enemy struct {
	H Handle

	Pos   Vec2
	Speed float32
	R     float32

	HP    float32
	MaxHP float32

	XPValue int
	Boss    bool
	Ignited bool // explodes on death
}

// EnemySpec carries the stats NewEnemy validates.
type EnemySpec struct {
	Pos     Vec2
	R       float32
	HP      float32
	Speed   float32
	XPValue int
	Boss    bool
}

func NewEnemy(s EnemySpec) (Enemy, error) {
	if s.R <= 0 {
		return Enemy{}, fmt.Errorf("%w: radius %.2f must be > 0", ErrInvalidEnemy, s.R)
	}
	if s.HP <= 0 {
		return Enemy{}, fmt.Errorf("%w: hp %.2f must be > 0", ErrInvalidEnemy, s.HP)
	}
	if s.Speed < 0 {
		return Enemy{}, fmt.Errorf("%w: speed %.2f is negative", ErrInvalidEnemy, s.Speed)
	}
	if s.XPValue < 0 {
		return Enemy{}, fmt.Errorf("%w: xp value %d is negative", ErrInvalidEnemy, s.XPValue)
	}
	return Enemy{
		Pos:     s.Pos,
		Speed:   s.Speed,
		R:       s.R,
		HP:      s.HP,
		MaxHP:   s.HP,
		XPValue: s.XPValue,
		Boss:    s.Boss,
	}, nil
}

type Stats struct {
	EnemiesSpawned   int `json:"enemies_spawned"`
	BossesSpawned    int `json:"bosses_spawned"`
	EnemiesKilled    int `json:"enemies_killed"`
	BossesKilled     int `json:"bosses_killed"`
	ProjectilesFired int `json:"projectiles_fired"`
	LightningHops    int `json:"lightning_hops"`
	Explosions       int `json:"explosions"`
	LevelUps         int `json:"level_ups"`
	XPCollected      int `json:"xp_collected"`
}

func newPlayer(cfg Config) Player {
	return Player{
		Pos:   Vec2{X: cfg.ArenaWidth / 2, Y: cfg.ArenaHeight / 2},
		Speed: cfg.PlayerSpeed,
		R:     cfg.PlayerRadius,

		Damage:          cfg.PlayerDamage,
		AttackRange:     cfg.PlayerAttackRange,
		AttackCooldown:  cfg.PlayerAttackCooldown,
		ProjectileSpeed: cfg.PlayerProjectileSpeed,
		ProjectileCount: cfg.PlayerProjectileCount,

		LightningChance: cfg.PlayerLightningChance,
		LightningDamage: cfg.PlayerLightningDamage,
		LightningChains: cfg.PlayerLightningChains,
		FireChance:      cfg.PlayerFireChance,
		FireBonusDamage: cfg.PlayerFireBonusDamage,
		ExplosionRadius: cfg.PlayerExplosionRadius,
		ExplosionDamage: cfg.PlayerExplosionDamage,
	}
}
