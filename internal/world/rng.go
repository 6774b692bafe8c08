package world

import "math/rand"

func (w *World) ensureRNG() {
	if w.rng != nil {
		return
	}
	if w.rngSeed == 0 {
		w.rngSeed = 1
	}
	w.rng = rand.New(rand.NewSource(w.rngSeed))
}

func (w *World) randFloat32() float32 {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Float32()
}

func (w *World) randIntn(n int) int {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Intn(n)
}

func (w *World) randRange(lo, hi float32) float32 {
	return lo + w.randFloat32()*(hi-lo)
}

// roll reports whether an event with probability p happens. p <= 0 never
// consumes a draw.
func (w *World) roll(p float32) bool {
	if p <= 0 {
		return false
	}
	return w.randFloat32() < p
}
