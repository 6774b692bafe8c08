package input

// State is the per-tick movement request handed to the simulation.
// Digital keys and the analog stick are combined by vector addition; the
// world normalizes the result, so the magnitude here may exceed 1.
type State struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// analog stick, each axis in [-1, 1]
	StickX float32
	StickY float32
}

// Vector returns the raw combined direction (not normalized).
func (s State) Vector() (x, y float32) {
	if s.Up {
		y -= 1
	}
	if s.Down {
		y += 1
	}
	if s.Left {
		x -= 1
	}
	if s.Right {
		x += 1
	}

	x += clampAxis(s.StickX)
	y += clampAxis(s.StickY)
	return x, y
}

func clampAxis(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
