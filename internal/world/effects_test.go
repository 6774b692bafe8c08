package world

import "testing"

func lightningWorld(t *testing.T, chains int) *World {
	t.Helper()
	w := newStartedWorld(t, quietConfig())
	w.Player.LightningDamage = 1
	w.Player.LightningChains = chains
	return w
}

func hpOf(t *testing.T, w *World, h Handle) float32 {
	t.Helper()
	e, ok := w.Enemies.Get(h)
	if !ok {
		t.Fatalf("enemy %+v not in store", h)
	}
	return e.HP
}

func TestChainLightningHopsToNearestUnvisited(t *testing.T) {
	w := lightningWorld(t, 2)

	a := addEnemy(t, w, Vec2{X: 100, Y: 100}, 100, 0)
	b := addEnemy(t, w, Vec2{X: 200, Y: 100}, 100, 0)
	c := addEnemy(t, w, Vec2{X: 300, Y: 100}, 100, 0)
	d := addEnemy(t, w, Vec2{X: 400, Y: 100}, 100, 0)

	got := w.chainLightning(a)
	if got != a {
		t.Fatalf("surviving target handle: got %+v want %+v", got, a)
	}

	for _, h := range []Handle{a, b, c} {
		if hp := hpOf(t, w, h); !approxEqual(hp, 99) {
			t.Fatalf("enemy %+v hp: got %.2f want 99", h, hp)
		}
	}
	if hp := hpOf(t, w, d); !approxEqual(hp, 100) {
		t.Fatalf("enemy past the hop budget was struck: hp %.2f", hp)
	}
	if w.Stats.LightningHops != 2 {
		t.Fatalf("hops: got %d want 2", w.Stats.LightningHops)
	}
	if n := len(effectsOf(w, EffectLightning)); n != 3 {
		t.Fatalf("lightning segments: got %d want 3 (bolt + 2 hops)", n)
	}
}

func TestChainLightningNeverRevisits(t *testing.T) {
	w := lightningWorld(t, 5)

	a := addEnemy(t, w, Vec2{X: 100, Y: 100}, 100, 0)
	b := addEnemy(t, w, Vec2{X: 150, Y: 100}, 100, 0)

	w.chainLightning(a)

	if hp := hpOf(t, w, a); !approxEqual(hp, 99) {
		t.Fatalf("first target struck more than once: hp %.2f", hp)
	}
	if hp := hpOf(t, w, b); !approxEqual(hp, 99) {
		t.Fatalf("second target hp: got %.2f want 99", hp)
	}
	if w.Stats.LightningHops != 1 {
		t.Fatalf("hops: got %d want 1", w.Stats.LightningHops)
	}
}

func TestChainLightningStopsBeyondHopDistance(t *testing.T) {
	w := lightningWorld(t, 3)
	hop := w.Cfg.LightningHopDistance

	a := addEnemy(t, w, Vec2{X: 100, Y: 100}, 100, 0)
	b := addEnemy(t, w, Vec2{X: 100 + hop + 1, Y: 100}, 100, 0)

	w.chainLightning(a)

	if hp := hpOf(t, w, b); !approxEqual(hp, 100) {
		t.Fatalf("enemy beyond hop distance was struck: hp %.2f", hp)
	}
	if w.Stats.LightningHops != 0 {
		t.Fatalf("hops: got %d want 0", w.Stats.LightningHops)
	}
}

func TestChainLightningStopsAtKilledHopTarget(t *testing.T) {
	w := lightningWorld(t, 2)

	a := addEnemy(t, w, Vec2{X: 100, Y: 100}, 100, 0)
	b := addEnemy(t, w, Vec2{X: 150, Y: 100}, 1, 0)
	c := addEnemy(t, w, Vec2{X: 200, Y: 100}, 100, 0)

	if got := w.chainLightning(a); got != a {
		t.Fatalf("surviving target handle: got %+v want %+v", got, a)
	}

	if w.Enemies.Contains(b) {
		t.Fatal("hop target should have died")
	}
	if hp := hpOf(t, w, c); !approxEqual(hp, 100) {
		t.Fatalf("chain continued past a killed target: hp %.2f", hp)
	}
	if w.Stats.LightningHops != 1 {
		t.Fatalf("hops: got %d want 1", w.Stats.LightningHops)
	}
}

func TestChainLightningReportsDeadPrimary(t *testing.T) {
	w := lightningWorld(t, 1)
	a := addEnemy(t, w, Vec2{X: 100, Y: 100}, 1, 0)
	b := addEnemy(t, w, Vec2{X: 150, Y: 100}, 100, 0)

	if got := w.chainLightning(a); got != (Handle{}) {
		t.Fatalf("expected zero handle for dead primary, got %+v", got)
	}
	if hp := hpOf(t, w, b); !approxEqual(hp, 100) {
		t.Fatalf("chain hopped after the bolt killed its target: hp %.2f", hp)
	}
	if w.Stats.LightningHops != 0 {
		t.Fatalf("hops: got %d want 0", w.Stats.LightningHops)
	}
}

func TestOnHitRollsBothEffects(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	w.Player.LightningChance = 1
	w.Player.LightningChains = 0
	w.Player.FireChance = 1

	h := addEnemy(t, w, Vec2{X: 100, Y: 100}, 10, 0)
	w.resolveHit(h, 1)

	e, ok := w.Enemies.Get(h)
	if !ok {
		t.Fatal("enemy should survive")
	}
	want := 10 - 1 - w.Player.LightningDamage - w.Player.FireBonusDamage
	if !approxEqual(e.HP, want) {
		t.Fatalf("hp: got %.2f want %.2f", e.HP, want)
	}
	if !e.Ignited {
		t.Fatal("fire hit should ignite")
	}
	if len(effectsOf(w, EffectLightning)) != 1 || len(effectsOf(w, EffectBurn)) != 1 {
		t.Fatalf("effects: %+v", w.Effects)
	}
}

func TestFireKillDetonates(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	w.Player.FireChance = 1

	h := addEnemy(t, w, Vec2{X: 100, Y: 100}, 2, 0)
	w.resolveHit(h, 1)

	if w.Enemies.Contains(h) {
		t.Fatal("fire bonus should have finished the enemy")
	}
	if n := len(effectsOf(w, EffectExplosion)); n != 1 {
		t.Fatalf("explosions: got %d want 1", n)
	}
}

func TestDirectKillSkipsOnHitEffects(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	w.Player.LightningChance = 1
	w.Player.FireChance = 1

	h := addEnemy(t, w, Vec2{X: 100, Y: 100}, 1, 0)
	calls := w.rngCalls
	w.resolveHit(h, 1)

	if len(w.Effects) != 0 {
		t.Fatalf("no on-hit effects expected after a killing blow: %+v", w.Effects)
	}
	if w.rngCalls != calls {
		t.Fatalf("killing blow consumed rng draws: %d", w.rngCalls-calls)
	}
}

func TestZeroChanceConsumesNoDraws(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	h := addEnemy(t, w, Vec2{X: 100, Y: 100}, 10, 0)

	calls := w.rngCalls
	w.resolveHit(h, 1)

	if w.rngCalls != calls {
		t.Fatalf("zero chances should not draw, drew %d", w.rngCalls-calls)
	}
}

func TestEffectsExpire(t *testing.T) {
	w := newStartedWorld(t, quietConfig())
	w.addEffect(Effect{Kind: EffectBurn, TTL: 0.05})
	w.addEffect(Effect{Kind: EffectExplosion, TTL: 0.5})

	w.updateEffects(0.1)

	if len(w.Effects) != 1 || w.Effects[0].Kind != EffectExplosion {
		t.Fatalf("effects after expiry: %+v", w.Effects)
	}
	if !approxEqual(w.Effects[0].TTL, 0.4) {
		t.Fatalf("ttl: got %.3f want 0.4", w.Effects[0].TTL)
	}
}
