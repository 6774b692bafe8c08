package world

import (
	"math"
	"testing"
)

func TestDamageAccumulatesUntilDeath(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	pos := Vec2{X: 100, Y: 100}
	h := addEnemy(t, w, pos, 10, 0)

	const dmg = float32(2)
	for n := 1; n <= 4; n++ {
		var alive bool
		h, alive = w.damageEnemy(h, dmg, DamageDirect)
		if !alive {
			t.Fatalf("enemy died early after %d hits", n)
		}
		e, _ := w.Enemies.Get(h)
		want := 10 - float32(n)*dmg
		if !approxEqual(e.HP, want) {
			t.Fatalf("hp after %d hits: got %.2f want %.2f", n, e.HP, want)
		}
	}

	next, alive := w.damageEnemy(h, dmg, DamageDirect)
	if alive || next != (Handle{}) {
		t.Fatalf("fifth hit should kill: alive=%v handle=%+v", alive, next)
	}
	if w.Enemies.Len() != 0 {
		t.Fatalf("dead enemy not removed: %d left", w.Enemies.Len())
	}
	if len(w.Orbs) != 1 {
		t.Fatalf("expected exactly one orb, got %d", len(w.Orbs))
	}
	if w.Orbs[0].Pos != pos || w.Orbs[0].Value != 2 {
		t.Fatalf("orb mismatch: %+v", w.Orbs[0])
	}

	// stale handle is a no-op
	if _, alive := w.damageEnemy(h, dmg, DamageDirect); alive {
		t.Fatal("damage through stale handle reported alive")
	}
	if len(w.Orbs) != 1 || w.Stats.EnemiesKilled != 1 {
		t.Fatalf("death processed twice: orbs=%d kills=%d", len(w.Orbs), w.Stats.EnemiesKilled)
	}
}

func TestAttackWaitsForTargetWithoutResettingTimer(t *testing.T) {
	w := newStartedWorld(t, quietConfig())

	for range 60 {
		w.updateAttack(frame)
	}
	if w.Stats.ProjectilesFired != 0 {
		t.Fatalf("fired with no target: %d", w.Stats.ProjectilesFired)
	}
	if w.Match.AttackTimer < w.Player.AttackCooldown {
		t.Fatalf("timer should keep accumulating: %.3f", w.Match.AttackTimer)
	}

	p := w.Player.Pos
	addEnemy(t, w, Vec2{X: p.X + 50, Y: p.Y}, 5, 0)
	w.updateAttack(frame)
	if w.Stats.ProjectilesFired != 1 {
		t.Fatalf("in-range enemy should trigger an immediate attack, fired=%d", w.Stats.ProjectilesFired)
	}
	if w.Match.AttackTimer != 0 {
		t.Fatalf("timer should reset after firing: %.3f", w.Match.AttackTimer)
	}
}

func TestTargetsInRangeSortedNearestFirst(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	p := w.Player.Pos

	far := addEnemy(t, w, Vec2{X: p.X + 200, Y: p.Y}, 5, 0)
	near := addEnemy(t, w, Vec2{X: p.X - 30, Y: p.Y}, 5, 0)
	addEnemy(t, w, Vec2{X: p.X, Y: p.Y + 400}, 5, 0) // out of range
	mid := addEnemy(t, w, Vec2{X: p.X, Y: p.Y - 90}, 5, 0)

	got := w.targetsInRange()
	want := []Handle{near, mid, far}
	if len(got) != len(want) {
		t.Fatalf("targets: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].h != want[i] {
			t.Fatalf("target[%d]: got %+v want %+v", i, got[i].h, want[i])
		}
	}
}

func TestVolleyFansAroundSingleTarget(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	w.Player.ProjectileCount = 3
	p := w.Player.Pos
	addEnemy(t, w, Vec2{X: p.X + 100, Y: p.Y}, 50, 0)

	w.fireVolley(w.targetsInRange())

	if len(w.Projectiles) != 3 {
		t.Fatalf("projectiles: got %d want 3", len(w.Projectiles))
	}
	spread := minf(w.Cfg.MaxSpread, w.Cfg.SpreadStep*2)
	want := []float32{-spread / 2, 0, spread / 2}
	for i, pr := range w.Projectiles {
		if !approxEqual(pr.Vel.Angle(), want[i]) {
			t.Fatalf("projectile %d heading: got %.4f want %.4f", i, pr.Vel.Angle(), want[i])
		}
		if !approxEqual(pr.Vel.Len(), w.Player.ProjectileSpeed) {
			t.Fatalf("projectile %d speed: got %.2f", i, pr.Vel.Len())
		}
	}
}

func TestVolleyCapsProjectileCountAndSpread(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	w.Player.ProjectileCount = 12
	p := w.Player.Pos
	addEnemy(t, w, Vec2{X: p.X, Y: p.Y + 100}, 50, 0)
	addEnemy(t, w, Vec2{X: p.X, Y: p.Y + 150}, 50, 0)

	w.fireVolley(w.targetsInRange())

	if len(w.Projectiles) != w.Cfg.MaxProjectileCount {
		t.Fatalf("projectiles: got %d want %d", len(w.Projectiles), w.Cfg.MaxProjectileCount)
	}
	base := float32(math.Pi / 2)
	for i, pr := range w.Projectiles {
		off := pr.Vel.Angle() - base
		if off < -w.Cfg.MaxSpread/2-1e-4 || off > w.Cfg.MaxSpread/2+1e-4 {
			t.Fatalf("projectile %d outside capped spread: offset %.4f", i, off)
		}
	}
}

func TestProjectileExpiresAndLeavesArena(t *testing.T) {
	w := newStartedWorld(t, quietConfig())

	w.Projectiles = append(w.Projectiles,
		Projectile{Pos: Vec2{X: 100, Y: 100}, Vel: Vec2{}, R: 4, Damage: 1, Life: 0.01},
		Projectile{Pos: Vec2{X: w.Cfg.ArenaWidth + 19, Y: 100}, Vel: Vec2{X: 540}, R: 4, Damage: 1, Life: 5},
		Projectile{Pos: Vec2{X: 300, Y: 300}, Vel: Vec2{}, R: 4, Damage: 1, Life: 5},
	)

	w.updateProjectiles(frame)

	if len(w.Projectiles) != 1 {
		t.Fatalf("expected only the idle live projectile to remain, got %d", len(w.Projectiles))
	}
	if w.Projectiles[0].Pos != (Vec2{X: 300, Y: 300}) {
		t.Fatalf("wrong projectile kept: %+v", w.Projectiles[0])
	}
}

func TestProjectileConsumedOnHit(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	h := addEnemy(t, w, Vec2{X: 200, Y: 200}, 5, 0)
	w.Projectiles = append(w.Projectiles, Projectile{Pos: Vec2{X: 190, Y: 200}, Vel: Vec2{X: 60}, R: 4, Damage: 2, Life: 1})

	w.updateProjectiles(frame)

	if len(w.Projectiles) != 0 {
		t.Fatalf("projectile not consumed: %d left", len(w.Projectiles))
	}
	e, _ := w.Enemies.Get(h)
	if !approxEqual(e.HP, 3) {
		t.Fatalf("hp after hit: got %.2f want 3", e.HP)
	}
}

func TestIgnitedDeathDetonatesOnce(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	w.Player.ExplosionRadius = 80
	w.Player.ExplosionDamage = 3

	at := Vec2{X: 300, Y: 300}
	burning := addEnemy(t, w, at, 1, 0)
	near := addEnemy(t, w, Vec2{X: 340, Y: 300}, 10, 0)
	far := addEnemy(t, w, Vec2{X: 600, Y: 300}, 10, 0)

	e, _ := w.Enemies.Get(burning)
	e.Ignited = true
	w.damageEnemy(burning, 5, DamageDirect)

	explosions := effectsOf(w, EffectExplosion)
	if len(explosions) != 1 {
		t.Fatalf("explosions: got %d want 1", len(explosions))
	}
	if explosions[0].Pos != at || explosions[0].Radius != 80 {
		t.Fatalf("explosion at wrong place/size: %+v", explosions[0])
	}
	ne, _ := w.Enemies.Get(near)
	if !approxEqual(ne.HP, 7) {
		t.Fatalf("near enemy hp: got %.2f want 7", ne.HP)
	}
	fe, _ := w.Enemies.Get(far)
	if !approxEqual(fe.HP, 10) {
		t.Fatalf("far enemy should be untouched: %.2f", fe.HP)
	}
}

func TestPlainDeathNeverDetonates(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	h := addEnemy(t, w, Vec2{X: 300, Y: 300}, 1, 0)

	w.damageEnemy(h, 1, DamageLightning)

	if n := len(effectsOf(w, EffectExplosion)); n != 0 {
		t.Fatalf("non-ignited death exploded %d times", n)
	}
}

func TestExplosionChainTerminates(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	w.Player.ExplosionRadius = 60
	w.Player.ExplosionDamage = 5

	// a packed line of ignited enemies, each within blast range of the next
	var first Handle
	for i := range 6 {
		h := addEnemy(t, w, Vec2{X: 100 + float32(i)*30, Y: 200}, 2, 0)
		e, _ := w.Enemies.Get(h)
		e.Ignited = true
		if i == 0 {
			first = h
		}
	}

	w.damageEnemy(first, 5, DamageDirect)

	if w.Enemies.Len() != 0 {
		t.Fatalf("chain should clear the line, %d left", w.Enemies.Len())
	}
	if w.Stats.EnemiesKilled != 6 || len(w.Orbs) != 6 {
		t.Fatalf("each death processed once: kills=%d orbs=%d", w.Stats.EnemiesKilled, len(w.Orbs))
	}
	if n := len(effectsOf(w, EffectExplosion)); n != 6 {
		t.Fatalf("explosions: got %d want 6", n)
	}
}

func effectsOf(w *World, kind EffectKind) []Effect {
	var out []Effect
	for _, ef := range w.Effects {
		if ef.Kind == kind {
			out = append(out, ef)
		}
	}
	return out
}
