package world

import "horde-arena/internal/shared/input"

// ============================================================================
// PLAYER & ENEMY MOVEMENT
// ============================================================================

func (w *World) movePlayer(dt float32, in input.State) {
	x, y := in.Vector()
	dir := Vec2{X: x, Y: y}.Norm()
	if dir.IsZero() {
		return
	}

	p := &w.Player
	p.Pos = p.Pos.Add(dir.Mul(p.Speed * dt))

	// clamp, never repel
	p.Pos.X = clamp(p.Pos.X, p.R, w.Cfg.ArenaWidth-p.R)
	p.Pos.Y = clamp(p.Pos.Y, p.R, w.Cfg.ArenaHeight-p.R)
}

// moveEnemies steers every enemy straight at the player. It stops at the
// first enemy that touches the player and reports the contact.
func (w *World) moveEnemies(dt float32) (contact bool) {
	p := w.Player.Pos
	pr := w.Player.R

	for i := range w.Enemies.Len() {
		e := w.Enemies.At(i)

		dir := p.Sub(e.Pos).Norm()
		e.Pos = e.Pos.Add(dir.Mul(e.Speed * dt))

		if overlaps(e.Pos, e.R, p, pr) {
			return true
		}
	}
	return false
}
