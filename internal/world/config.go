package world

import (
	"fmt"
	"math"
	"time"
)

type Config struct {
	Seed int64 `mapstructure:"seed"`

	// Arena / pacing
	ArenaWidth      float32   `mapstructure:"arena_width"`
	ArenaHeight     float32   `mapstructure:"arena_height"`
	MatchDuration   float32   `mapstructure:"match_duration"` // seconds
	MaxStep         float32   `mapstructure:"max_step"`       // clock cap, seconds
	SpawnBaseEvery  float32   `mapstructure:"spawn_base_every"`
	SpawnEveryDecay float32   `mapstructure:"spawn_every_decay"` // seconds of interval lost per elapsed second
	SpawnMinEvery   float32   `mapstructure:"spawn_min_every"`
	SpawnEdgeOffset float32   `mapstructure:"spawn_edge_offset"`
	BossCheckpoints []float32 `mapstructure:"boss_checkpoints"`

	// Player
	PlayerRadius          float32 `mapstructure:"player_radius"`
	PlayerSpeed           float32 `mapstructure:"player_speed"`
	PlayerDamage          float32 `mapstructure:"player_damage"`
	PlayerAttackRange     float32 `mapstructure:"player_attack_range"`
	PlayerAttackCooldown  float32 `mapstructure:"player_attack_cooldown"`
	PlayerProjectileSpeed float32 `mapstructure:"player_projectile_speed"`
	PlayerProjectileCount int     `mapstructure:"player_projectile_count"`
	MaxProjectileCount    int     `mapstructure:"max_projectile_count"`

	PlayerLightningChance float32 `mapstructure:"player_lightning_chance"`
	PlayerLightningDamage float32 `mapstructure:"player_lightning_damage"`
	PlayerLightningChains int     `mapstructure:"player_lightning_chains"`
	PlayerFireChance      float32 `mapstructure:"player_fire_chance"`
	PlayerFireBonusDamage float32 `mapstructure:"player_fire_bonus_damage"`
	PlayerExplosionRadius float32 `mapstructure:"player_explosion_radius"`
	PlayerExplosionDamage float32 `mapstructure:"player_explosion_damage"`

	// Projectiles
	ProjectileRadius float32 `mapstructure:"projectile_radius"`
	ProjectileLife   float32 `mapstructure:"projectile_life"`
	ProjectileMargin float32 `mapstructure:"projectile_margin"`
	SpreadStep       float32 `mapstructure:"spread_step"` // radians added per extra projectile
	MaxSpread        float32 `mapstructure:"max_spread"`

	// Regular enemies, scaled by progress = elapsed / duration
	EnemyBaseHP         float32 `mapstructure:"enemy_base_hp"`
	EnemyHPGrowth       float32 `mapstructure:"enemy_hp_growth"`
	EnemyStrengthGrowth float32 `mapstructure:"enemy_strength_growth"`
	EnemyBaseRadius     float32 `mapstructure:"enemy_base_radius"`
	EnemyRadiusGrowth   float32 `mapstructure:"enemy_radius_growth"`
	EnemyBaseSpeed      float32 `mapstructure:"enemy_base_speed"`
	EnemySpeedGrowth    float32 `mapstructure:"enemy_speed_growth"`
	EnemyBaseXP         int     `mapstructure:"enemy_base_xp"`
	EnemyXPGrowth       float32 `mapstructure:"enemy_xp_growth"`

	// Boss
	BossBaseHP      float32 `mapstructure:"boss_base_hp"`
	BossHPGrowth    float32 `mapstructure:"boss_hp_growth"`
	BossRadius      float32 `mapstructure:"boss_radius"`
	BossBaseSpeed   float32 `mapstructure:"boss_base_speed"`
	BossSpeedGrowth float32 `mapstructure:"boss_speed_growth"`
	BossXP          int     `mapstructure:"boss_xp"`

	// Secondary effects
	LightningHopDistance float32 `mapstructure:"lightning_hop_distance"`
	LightningTTL         float32 `mapstructure:"lightning_ttl"`
	LightningBoltTTL     float32 `mapstructure:"lightning_bolt_ttl"`
	BurnTTL              float32 `mapstructure:"burn_ttl"`
	ExplosionTTL         float32 `mapstructure:"explosion_ttl"`

	// XP
	OrbRadius        float32 `mapstructure:"orb_radius"`
	MagnetRadius     float32 `mapstructure:"magnet_radius"`
	MagnetBaseSpeed  float32 `mapstructure:"magnet_base_speed"`
	MagnetPull       float32 `mapstructure:"magnet_pull"`
	PickupPadding    float32 `mapstructure:"pickup_padding"`
	XPFirstThreshold int     `mapstructure:"xp_first_threshold"`
	XPGrowthMul      float32 `mapstructure:"xp_growth_mul"`
	XPGrowthAdd      int     `mapstructure:"xp_growth_add"`
	UpgradeOfferSize int     `mapstructure:"upgrade_offer_size"`
}

func DefaultConfig() Config {
	return Config{
		Seed: 1,

		ArenaWidth:      960,
		ArenaHeight:     540,
		MatchDuration:   300,
		MaxStep:         0.033,
		SpawnBaseEvery:  0.78,
		SpawnEveryDecay: 0.0016,
		SpawnMinEvery:   0.20,
		SpawnEdgeOffset: 20,
		BossCheckpoints: []float32{150, 270},

		PlayerRadius:          14,
		PlayerSpeed:           220,
		PlayerDamage:          1,
		PlayerAttackRange:     220,
		PlayerAttackCooldown:  0.45,
		PlayerProjectileSpeed: 540,
		PlayerProjectileCount: 1,
		MaxProjectileCount:    5,

		PlayerLightningChance: 0,
		PlayerLightningDamage: 1,
		PlayerLightningChains: 1,
		PlayerFireChance:      0,
		PlayerFireBonusDamage: 1,
		PlayerExplosionRadius: 80,
		PlayerExplosionDamage: 1,

		ProjectileRadius: 4,
		ProjectileLife:   1.4,
		ProjectileMargin: 20,
		SpreadStep:       0.12,
		MaxSpread:        0.55,

		EnemyBaseHP:         2,
		EnemyHPGrowth:       7,
		EnemyStrengthGrowth: 1.4,
		EnemyBaseRadius:     12,
		EnemyRadiusGrowth:   4,
		EnemyBaseSpeed:      58,
		EnemySpeedGrowth:    58,
		EnemyBaseXP:         2,
		EnemyXPGrowth:       2,

		BossBaseHP:      24,
		BossHPGrowth:    20,
		BossRadius:      32,
		BossBaseSpeed:   78,
		BossSpeedGrowth: 12,
		BossXP:          14,

		LightningHopDistance: 170,
		LightningTTL:         0.12,
		LightningBoltTTL:     0.10,
		BurnTTL:              0.12,
		ExplosionTTL:         0.25,

		OrbRadius:        7,
		MagnetRadius:     120,
		MagnetBaseSpeed:  160,
		MagnetPull:       2,
		PickupPadding:    2,
		XPFirstThreshold: 8,
		XPGrowthMul:      1.28,
		XPGrowthAdd:      3,
		UpgradeOfferSize: 3,
	}
}

// Validate rejects configs that would break simulation invariants.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float32
	}{
		{"arena_width", c.ArenaWidth},
		{"arena_height", c.ArenaHeight},
		{"match_duration", c.MatchDuration},
		{"max_step", c.MaxStep},
		{"spawn_min_every", c.SpawnMinEvery},
		{"player_radius", c.PlayerRadius},
		{"player_attack_cooldown", c.PlayerAttackCooldown},
		{"projectile_radius", c.ProjectileRadius},
		{"projectile_life", c.ProjectileLife},
		{"enemy_base_radius", c.EnemyBaseRadius},
		{"boss_radius", c.BossRadius},
		{"orb_radius", c.OrbRadius},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.SpawnBaseEvery < c.SpawnMinEvery {
		return fmt.Errorf("%w: spawn_base_every %.3f below spawn_min_every %.3f", ErrInvalidConfig, c.SpawnBaseEvery, c.SpawnMinEvery)
	}
	if c.SpawnEveryDecay < 0 {
		return fmt.Errorf("%w: spawn_every_decay must be >= 0", ErrInvalidConfig)
	}
	if c.PlayerProjectileCount < 1 || c.MaxProjectileCount < c.PlayerProjectileCount {
		return fmt.Errorf("%w: projectile count %d outside [1, %d]", ErrInvalidConfig, c.PlayerProjectileCount, c.MaxProjectileCount)
	}
	for _, ch := range []float32{c.PlayerLightningChance, c.PlayerFireChance} {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("%w: trigger chance %.3f outside [0, 1]", ErrInvalidConfig, ch)
		}
	}
	if c.PlayerLightningChains < 0 {
		return fmt.Errorf("%w: player_lightning_chains must be >= 0", ErrInvalidConfig)
	}
	for _, cp := range c.BossCheckpoints {
		if cp < 0 {
			return fmt.Errorf("%w: boss checkpoint %.1f is negative", ErrInvalidConfig, cp)
		}
	}
	if c.XPFirstThreshold < 1 || c.XPGrowthMul < 1 {
		return fmt.Errorf("%w: xp threshold must start >= 1 and never shrink", ErrInvalidConfig)
	}
	if c.UpgradeOfferSize < 1 {
		return fmt.Errorf("%w: upgrade_offer_size must be >= 1", ErrInvalidConfig)
	}
	return nil
}

// MaxStepDuration is the clock cap as a time.Duration, rounded to the
// microsecond.
func (c Config) MaxStepDuration() time.Duration {
	us := math.Round(float64(c.MaxStep) * 1e6)
	return time.Duration(us) * time.Microsecond
}

// NextThreshold grows the xp requirement after a level-up.
// The epsilon keeps float32 multipliers like 1.28 from rounding exact
// products (25 * 1.28) one step down.
func (c Config) NextThreshold(cur int) int {
	grown := math.Floor(float64(cur)*float64(c.XPGrowthMul) + 1e-4)
	return int(grown) + c.XPGrowthAdd
}
