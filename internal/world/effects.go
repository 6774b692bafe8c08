package world

// ============================================================================
// ON-HIT EFFECT CHAINS
// ============================================================================

type EffectKind uint8

const (
	EffectLightning EffectKind = iota
	EffectExplosion
	EffectBurn
)

func (k EffectKind) String() string {
	switch k {
	case EffectLightning:
		return "lightning"
	case EffectExplosion:
		return "explosion"
	case EffectBurn:
		return "burn"
	default:
		return "unknown"
	}
}

// Effect is a render-only marker; its gameplay consequences were applied
// when it was created.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Pos    Vec2       `json:"pos"`    // segment start, or centre
	To     Vec2       `json:"to"`     // segment end (lightning)
	Radius float32    `json:"radius"` // explosion
	TTL    float32    `json:"ttl"`
}

func (w *World) addEffect(ef Effect) {
	w.Effects = append(w.Effects, ef)
}

func (w *World) updateEffects(dt float32) {
	for i := 0; i < len(w.Effects); {
		w.Effects[i].TTL -= dt
		if w.Effects[i].TTL <= 0 {
			w.removeEffectAt(i)
			continue
		}
		i++
	}
}

// applyOnHitEffects rolls lightning and fire independently for one direct hit.
func (w *World) applyOnHitEffects(h Handle) {
	p := &w.Player
	lightning := w.roll(p.LightningChance)
	fire := w.roll(p.FireChance)

	if lightning {
		h = w.chainLightning(h)
	}
	if fire {
		w.ignite(h)
	}
}

// chainLightning strikes the enemy behind h, then hops to the nearest
// unvisited enemy within hop distance up to LightningChains times. The chain
// ends at the first enemy it kills. It returns h's handle if that enemy
// survived, else the zero Handle.
func (w *World) chainLightning(h Handle) Handle {
	e, ok := w.Enemies.Get(h)
	if !ok {
		return Handle{}
	}
	p := &w.Player
	from := e.Pos

	w.addEffect(Effect{Kind: EffectLightning, Pos: p.Pos, To: from, TTL: w.Cfg.LightningBoltTTL})
	survivor, alive := w.damageEnemy(h, p.LightningDamage, DamageLightning)
	if !alive {
		return Handle{}
	}

	visited := map[Handle]struct{}{h: {}}
	for range p.LightningChains {
		next, ok := w.nearestUnvisited(from, visited, w.Cfg.LightningHopDistance)
		if !ok {
			break
		}
		ne, _ := w.Enemies.Get(next)
		to := ne.Pos

		w.addEffect(Effect{Kind: EffectLightning, Pos: from, To: to, TTL: w.Cfg.LightningTTL})
		visited[next] = struct{}{}
		w.Stats.LightningHops++

		if _, alive := w.damageEnemy(next, p.LightningDamage, DamageLightning); !alive {
			break
		}
		from = to
	}

	if !w.Enemies.Contains(survivor) {
		return Handle{}
	}
	return survivor
}

// nearestUnvisited finds the closest enemy to from within maxDist that is not
// in visited. Ties keep the earlier enemy in store order.
func (w *World) nearestUnvisited(from Vec2, visited map[Handle]struct{}, maxDist float32) (Handle, bool) {
	best := Handle{}
	bestD2 := maxDist * maxDist
	found := false

	for i := range w.Enemies.Len() {
		e := w.Enemies.At(i)
		if _, seen := visited[e.H]; seen {
			continue
		}
		d2 := dist2(from, e.Pos)
		if d2 > bestD2 || (found && d2 == bestD2) {
			continue
		}
		best, bestD2, found = e.H, d2, true
	}
	return best, found
}

// ignite deals fire bonus damage and marks the enemy to explode on death.
// Re-igniting only adds the damage.
func (w *World) ignite(h Handle) {
	e, ok := w.Enemies.Get(h)
	if !ok {
		return
	}
	at := e.Pos

	w.addEffect(Effect{Kind: EffectBurn, Pos: at, TTL: w.Cfg.BurnTTL})
	w.damageEnemy(h, w.Player.FireBonusDamage, DamageFire)
}
