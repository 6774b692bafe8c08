package world

import (
	"cmp"
	"slices"
)

// ============================================================================
// COMBAT SYSTEM
// ============================================================================

type DamageSource uint8

const (
	DamageDirect DamageSource = iota
	DamageLightning
	DamageFire
	DamageExplosion
)

type target struct {
	h   Handle
	pos Vec2
	d   float32
}

func (w *World) updateAttack(dt float32) {
	m := &w.Match

	// keeps accumulating while nothing is in range
	m.AttackTimer += dt
	if m.AttackTimer < w.Player.AttackCooldown {
		return
	}

	targets := w.targetsInRange()
	if len(targets) == 0 {
		return
	}

	m.AttackTimer = 0
	w.fireVolley(targets)
}

// targetsInRange lists enemies within attack range, nearest first.
func (w *World) targetsInRange() []target {
	p := w.Player.Pos
	rng := w.Player.AttackRange

	var out []target
	for i := range w.Enemies.Len() {
		e := w.Enemies.At(i)
		d := dist(p, e.Pos)
		if d > rng {
			continue
		}
		out = append(out, target{h: e.H, pos: e.Pos, d: d})
	}

	slices.SortStableFunc(out, func(a, b target) int {
		return cmp.Compare(a.d, b.d)
	})
	return out
}

// fireVolley aims one projectile per target, reusing the nearest when there
// are fewer targets than projectiles, fanned evenly across the spread.
func (w *World) fireVolley(targets []target) {
	count := min(w.Player.ProjectileCount, w.Cfg.MaxProjectileCount)
	if count < 1 {
		count = 1
	}

	primary := targets[0]
	if count == 1 {
		w.spawnProjectile(primary.pos, 0)
		return
	}

	spread := minf(w.Cfg.MaxSpread, w.Cfg.SpreadStep*float32(count-1))
	for i := range count {
		t := float32(i) / float32(count-1)
		offset := -spread/2 + t*spread

		tgt := primary
		if i < len(targets) {
			tgt = targets[i]
		}
		w.spawnProjectile(tgt.pos, offset)
	}
}

func (w *World) spawnProjectile(at Vec2, angleOffset float32) {
	p := &w.Player
	heading := at.Sub(p.Pos).Angle() + angleOffset

	w.Projectiles = append(w.Projectiles, Projectile{
		Pos:    p.Pos,
		Vel:    fromAngle(heading, p.ProjectileSpeed),
		R:      w.Cfg.ProjectileRadius,
		Damage: p.Damage,
		Life:   w.Cfg.ProjectileLife,
	})
	w.Stats.ProjectilesFired++
}

func (w *World) updateProjectiles(dt float32) {
	for i := 0; i < len(w.Projectiles); {
		pr := &w.Projectiles[i]
		pr.Pos = pr.Pos.Add(pr.Vel.Mul(dt))
		pr.Life -= dt

		if h, ok := w.firstOverlap(pr.Pos, pr.R); ok {
			dmg := pr.Damage
			w.removeProjectileAt(i)
			w.resolveHit(h, dmg)
			continue
		}

		if pr.Life <= 0 || w.outOfArena(pr.Pos) {
			w.removeProjectileAt(i)
			continue
		}
		i++
	}
}

// firstOverlap returns the first enemy in store order touching the circle.
func (w *World) firstOverlap(pos Vec2, r float32) (Handle, bool) {
	for i := range w.Enemies.Len() {
		e := w.Enemies.At(i)
		if overlaps(pos, r, e.Pos, e.R) {
			return e.H, true
		}
	}
	return Handle{}, false
}

func (w *World) outOfArena(p Vec2) bool {
	m := w.Cfg.ProjectileMargin
	return p.X < -m || p.Y < -m || p.X > w.Cfg.ArenaWidth+m || p.Y > w.Cfg.ArenaHeight+m
}

// resolveHit applies a direct projectile hit and, if the enemy survives,
// rolls the on-hit effects.
func (w *World) resolveHit(h Handle, dmg float32) {
	h, alive := w.damageEnemy(h, dmg, DamageDirect)
	if !alive {
		return
	}
	w.applyOnHitEffects(h)
}

// damageEnemy returns the enemy's handle and true while it lives, or the
// zero Handle and false once it is gone (killed now or already removed).
func (w *World) damageEnemy(h Handle, dmg float32, src DamageSource) (Handle, bool) {
	e, ok := w.Enemies.Get(h)
	if !ok {
		return Handle{}, false
	}

	e.HP -= dmg
	if src == DamageFire {
		e.Ignited = true
	}
	if e.HP > 0 {
		return h, true
	}

	w.killEnemy(h)
	return Handle{}, false
}

// killEnemy removes the enemy exactly once, drops its orb and detonates it
// if ignited.
func (w *World) killEnemy(h Handle) {
	dead, ok := w.Enemies.Remove(h)
	if !ok {
		return
	}

	w.spawnXPOrb(dead.Pos, dead.XPValue)
	w.Stats.EnemiesKilled++
	if dead.Boss {
		w.Stats.BossesKilled++
	}

	if dead.Ignited {
		w.detonate(dead.Pos)
	}
}

// detonate deals area damage with the player's current explosion stats.
// Handles are taken before any damage so removals during the blast cannot
// skip or repeat anyone; chained deaths recurse through killEnemy.
func (w *World) detonate(at Vec2) {
	radius := w.Player.ExplosionRadius
	dmg := w.Player.ExplosionDamage

	w.addEffect(Effect{Kind: EffectExplosion, Pos: at, Radius: radius, TTL: w.Cfg.ExplosionTTL})
	w.Stats.Explosions++

	for _, h := range w.Enemies.Handles() {
		e, ok := w.Enemies.Get(h)
		if !ok || !overlaps(at, radius, e.Pos, e.R) {
			continue
		}
		w.damageEnemy(h, dmg, DamageExplosion)
	}
}

func (w *World) spawnXPOrb(pos Vec2, value int) {
	w.Orbs = append(w.Orbs, XPOrb{
		Pos:   pos,
		R:     w.Cfg.OrbRadius,
		Value: value,
	})
}
