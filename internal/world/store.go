package world

// Handle is a generation-checked reference to an enemy. A handle captured
// before a removal either still resolves to the same enemy or fails to
// resolve; it never points at a different one. The zero Handle is invalid.
type Handle struct {
	Slot uint32
	Gen  uint32
}

type enemySlot struct {
	gen   uint32
	dense int // -1 when the slot is free
}

// EnemyStore keeps enemies dense for iteration and addressable by Handle.
// Removal swaps the last enemy into the hole and repoints its slot.
type EnemyStore struct {
	dense []Enemy
	slots []enemySlot
	free  []uint32
}

func (s *EnemyStore) Insert(e Enemy) Handle {
	var slot uint32
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		slot = uint32(len(s.slots))
		s.slots = append(s.slots, enemySlot{gen: 0, dense: -1})
	}

	sl := &s.slots[slot]
	sl.gen++
	sl.dense = len(s.dense)

	e.H = Handle{Slot: slot, Gen: sl.gen}
	s.dense = append(s.dense, e)
	return e.H
}

// Get resolves h, or returns (nil, false) for a stale or zero handle.
// The pointer is invalidated by the next Insert or Remove.
func (s *EnemyStore) Get(h Handle) (*Enemy, bool) {
	i, ok := s.index(h)
	if !ok {
		return nil, false
	}
	return &s.dense[i], true
}

func (s *EnemyStore) Contains(h Handle) bool {
	_, ok := s.index(h)
	return ok
}

// Remove deletes the enemy behind h and returns a copy of it.
func (s *EnemyStore) Remove(h Handle) (Enemy, bool) {
	i, ok := s.index(h)
	if !ok {
		return Enemy{}, false
	}

	removed := s.dense[i]
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.slots[s.dense[i].H.Slot].dense = i
	}
	s.dense = s.dense[:last]

	sl := &s.slots[h.Slot]
	sl.dense = -1
	sl.gen++ // stale handles stop resolving even before the slot is reused
	s.free = append(s.free, h.Slot)

	return removed, true
}

func (s *EnemyStore) Len() int { return len(s.dense) }

// At returns the enemy at dense position i. Positions shift on Remove.
func (s *EnemyStore) At(i int) *Enemy { return &s.dense[i] }

// Handles returns the handles of all live enemies in dense order.
func (s *EnemyStore) Handles() []Handle {
	out := make([]Handle, len(s.dense))
	for i := range s.dense {
		out[i] = s.dense[i].H
	}
	return out
}

// Reset frees every slot. Generations are kept so handles from the previous
// match stay stale.
func (s *EnemyStore) Reset() {
	for _, e := range s.dense {
		sl := &s.slots[e.H.Slot]
		sl.dense = -1
		sl.gen++
		s.free = append(s.free, e.H.Slot)
	}
	s.dense = s.dense[:0]
}

func (s *EnemyStore) index(h Handle) (int, bool) {
	if h.Gen == 0 || int(h.Slot) >= len(s.slots) {
		return -1, false
	}
	sl := s.slots[h.Slot]
	if sl.gen != h.Gen || sl.dense < 0 {
		return -1, false
	}
	return sl.dense, true
}

func (w *World) removeProjectileAt(i int) {
	last := len(w.Projectiles) - 1
	if i != last {
		w.Projectiles[i] = w.Projectiles[last]
	}
	w.Projectiles = w.Projectiles[:last]
}

func (w *World) removeOrbAt(i int) {
	last := len(w.Orbs) - 1
	if i != last {
		w.Orbs[i] = w.Orbs[last]
	}
	w.Orbs = w.Orbs[:last]
}

func (w *World) removeEffectAt(i int) {
	last := len(w.Effects) - 1
	if i != last {
		w.Effects[i] = w.Effects[last]
	}
	w.Effects = w.Effects[:last]
}
